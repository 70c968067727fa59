package formrules_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/goliatone/go-billingforms/pkg/formrules"
	"github.com/goliatone/go-billingforms/pkg/formvalidation"
)

func TestCheck_CombinesPresenceAndRules(t *testing.T) {
	report := formrules.Check(nil, formvalidation.KindUnite, map[string]any{
		"code": "",
		"nom":  "Une unité dont le nom dépasse largement les cinquante caractères",
	})

	if report.Valid {
		t.Fatalf("expected invalid report")
	}
	if diff := cmp.Diff([]string{"code"}, report.Missing); diff != "" {
		t.Fatalf("missing mismatch (-want +got):\n%s", diff)
	}
	want := map[string][]string{
		"code": {"Le champ Code est requis"},
		"nom":  {"Le champ Nom ne doit pas dépasser 50 caractères"},
	}
	if diff := cmp.Diff(want, report.Fields); diff != "" {
		t.Fatalf("fields mismatch (-want +got):\n%s", diff)
	}

	wantMessages := []string{
		"Le champ Code est requis",
		"Le champ Nom ne doit pas dépasser 50 caractères",
	}
	if diff := cmp.Diff(wantMessages, report.Messages()); diff != "" {
		t.Fatalf("messages mismatch (-want +got):\n%s", diff)
	}
}

func TestCheck_Valid(t *testing.T) {
	svc := formvalidation.New()
	report := formrules.Check(svc, formvalidation.KindTarif, map[string]any{
		"serviceId":   1,
		"uniteId":     2,
		"typeTarifId": 3,
		"montant":     "12,50",
	})

	if !report.Valid {
		t.Fatalf("expected valid report, got %+v", report)
	}
	if diff := cmp.Diff([]string(nil), report.Messages(), cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("expected no messages (-want +got):\n%s", diff)
	}
}

func TestCheck_FormLevelErrorsInvalidate(t *testing.T) {
	rules := formrules.NewValidator().WithFormRules(func(_, _ map[string]string) (string, string) {
		return "", "Période déjà couverte"
	})
	report := formrules.CheckWith(nil, rules, formvalidation.KindService, map[string]any{"code": "S", "nom": "N"})

	if report.Valid {
		t.Fatalf("form-level errors should invalidate the report")
	}
	if diff := cmp.Diff([]string{"Période déjà couverte"}, report.Messages()); diff != "" {
		t.Fatalf("messages mismatch (-want +got):\n%s", diff)
	}
}

func TestMergeFormErrors(t *testing.T) {
	merged := formrules.MergeFormErrors([]string{" First ", "Second"}, "Second", "third", "  ")
	want := []string{"First", "Second", "third"}

	if diff := cmp.Diff(want, merged); diff != "" {
		t.Fatalf("merged form errors mismatch (-want +got):\n%s", diff)
	}
}
