package prompt

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-billingforms/pkg/formvalidation"
)

type stubDriver struct {
	inputs       []string
	selectIdx    []int
	messages     []string
	infoMessages []string
	inputPos     int
	selectPos    int
}

func (s *stubDriver) Input(_ context.Context, cfg InputConfig) (string, error) {
	if s.inputPos >= len(s.inputs) {
		return "", errors.New("no input scripted")
	}
	val := s.inputs[s.inputPos]
	s.inputPos++
	s.messages = append(s.messages, cfg.Message)
	if cfg.Validator != nil {
		if err := cfg.Validator(val); err != nil {
			return "", err
		}
	}
	return val, nil
}

func (s *stubDriver) Select(_ context.Context, _ SelectConfig) (int, error) {
	if s.selectPos >= len(s.selectIdx) {
		return -1, errors.New("no select scripted")
	}
	val := s.selectIdx[s.selectPos]
	s.selectPos++
	return val, nil
}

func (s *stubDriver) Info(_ context.Context, msg string) error {
	s.infoMessages = append(s.infoMessages, msg)
	return nil
}

func TestCollect_PromptsRequiredFieldsWithLabels(t *testing.T) {
	driver := &stubDriver{inputs: []string{" U1 ", "Mètre"}}

	values, err := Collect(context.Background(), driver, formvalidation.New(), formvalidation.KindUnite)
	if err != nil {
		t.Fatalf("collect: %v", err)
	}

	want := map[string]any{"code": "U1", "nom": "Mètre"}
	if diff := cmp.Diff(want, values); diff != "" {
		t.Fatalf("values mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"Code", "Nom"}, driver.messages); diff != "" {
		t.Fatalf("prompt messages mismatch (-want +got):\n%s", diff)
	}
}

func TestCollect_BlankAnswerRejected(t *testing.T) {
	driver := &stubDriver{inputs: []string{"   "}}

	_, err := Collect(context.Background(), driver, nil, formvalidation.KindService)
	if err == nil {
		t.Fatalf("expected validator error for blank answer")
	}
}

func TestCollect_UnknownKindInformsUser(t *testing.T) {
	driver := &stubDriver{}

	values, err := Collect(context.Background(), driver, nil, "facture")
	if err != nil {
		t.Fatalf("collect: %v", err)
	}
	if len(values) != 0 {
		t.Fatalf("expected no values, got %v", values)
	}
	if len(driver.infoMessages) != 1 {
		t.Fatalf("expected one info message, got %v", driver.infoMessages)
	}
}

func TestCollect_NilDriver(t *testing.T) {
	if _, err := Collect(context.Background(), nil, nil, formvalidation.KindUnite); err == nil {
		t.Fatalf("expected error for nil driver")
	}
}

func TestSelectKind(t *testing.T) {
	driver := &stubDriver{selectIdx: []int{3, 9}}

	kind, err := SelectKind(context.Background(), driver)
	if err != nil {
		t.Fatalf("select kind: %v", err)
	}
	if kind != formvalidation.KindTarif {
		t.Fatalf("expected %q, got %q", formvalidation.KindTarif, kind)
	}

	if _, err := SelectKind(context.Background(), driver); err == nil {
		t.Fatalf("expected out-of-range selection error")
	}
}

func TestTranslateSurveyErr(t *testing.T) {
	other := errors.New("boom")
	if got := translateSurveyErr(other); got != other {
		t.Fatalf("expected passthrough, got %v", got)
	}
}
