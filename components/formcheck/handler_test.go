package formcheck

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type reportResponse struct {
	Kind    string              `json:"kind"`
	Valid   bool                `json:"valid"`
	Missing []string            `json:"missing"`
	Labels  map[string]string   `json:"labels"`
	Fields  map[string][]string `json:"fields"`
	Form    []string            `json:"form"`
}

func postJSON(t *testing.T, h http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestValidateHandler_MissingCode(t *testing.T) {
	h := ValidateHandler(NewOptions())

	rec := postJSON(t, h, defaultValidatePath, `{"kind":"unite","data":{"code":"","nom":"X"}}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		t.Fatalf("expected JSON content-type, got %q", ct)
	}

	var payload reportResponse
	if err := json.NewDecoder(rec.Body).Decode(&payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if payload.Valid {
		t.Fatalf("expected invalid report")
	}
	if diff := cmp.Diff([]string{"code"}, payload.Missing); diff != "" {
		t.Fatalf("missing mismatch (-want +got):\n%s", diff)
	}
	if payload.Labels["code"] != "Code" {
		t.Fatalf("expected labels in response, got %v", payload.Labels)
	}
}

func TestValidateHandler_RulesApplied(t *testing.T) {
	h := ValidateHandler(NewOptions())

	rec := postJSON(t, h, defaultValidatePath, `{"kind":"unite","data":{"code":"ABCDEFGHIJKL","nom":"Metre"}}`)
	var payload reportResponse
	if err := json.NewDecoder(rec.Body).Decode(&payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if payload.Valid || len(payload.Fields["code"]) != 1 {
		t.Fatalf("expected code length error, got %+v", payload)
	}
}

func TestValidateHandler_UnknownKindIsValid(t *testing.T) {
	h := ValidateHandler(NewOptions())

	rec := postJSON(t, h, defaultValidatePath, `{"kind":"unknown-kind","data":{}}`)
	var payload reportResponse
	if err := json.NewDecoder(rec.Body).Decode(&payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !payload.Valid || len(payload.Missing) != 0 {
		t.Fatalf("expected valid report for unknown kind, got %+v", payload)
	}
}

func TestValidateHandler_BadRequests(t *testing.T) {
	h := ValidateHandler(NewOptions(WithMaxBodyBytes(64)))

	rec := postJSON(t, h, defaultValidatePath, `{"kind":`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed JSON, got %d", rec.Code)
	}

	rec = postJSON(t, h, defaultValidatePath, `{"kind":"unite","data":{"nom":"`+strings.Repeat("x", 128)+`"}}`)
	if rec.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("expected 413 for oversized body, got %d", rec.Code)
	}

	req := httptest.NewRequest(http.MethodGet, defaultValidatePath, nil)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", rec.Code)
	}
	if allow := rec.Header().Get("Allow"); allow != http.MethodPost {
		t.Fatalf("unexpected Allow header %q", allow)
	}
}

func TestReorderHandler(t *testing.T) {
	h := ReorderHandler(NewOptions())

	rec := postJSON(t, h, defaultReorderPath, `{"items":["A","B","C","D"],"from":0,"to":2}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var payload struct {
		Items []string `json:"items"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if diff := cmp.Diff([]string{"B", "C", "A", "D"}, payload.Items); diff != "" {
		t.Fatalf("items mismatch (-want +got):\n%s", diff)
	}
}

func TestReorderHandler_PreservesObjects(t *testing.T) {
	h := ReorderHandler(NewOptions())

	rec := postJSON(t, h, defaultReorderPath, `{"items":[{"id":1},{"id":2}],"from":1,"to":0}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := strings.TrimSpace(rec.Body.String()); got != `{"items":[{"id":2},{"id":1}]}` {
		t.Fatalf("unexpected body %s", got)
	}
}

func TestReorderHandler_InvalidIndices(t *testing.T) {
	h := ReorderHandler(NewOptions())

	for _, body := range []string{
		`{"items":["A","B"],"from":0,"to":5}`,
		`{"items":[],"from":0,"to":0}`,
		`{"items":["A","B"],"from":0}`,
	} {
		rec := postJSON(t, h, defaultReorderPath, body)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d", body, rec.Code)
		}
		var payload errorResponse
		if err := json.NewDecoder(rec.Body).Decode(&payload); err != nil || payload.Error == "" {
			t.Fatalf("%s: expected error payload, got %v (%v)", body, payload, err)
		}
	}
}

func TestKindsHandler(t *testing.T) {
	h := KindsHandler(NewOptions())

	req := httptest.NewRequest(http.MethodGet, defaultKindsPath+"?kind=unite", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var payload kindsResponse
	if err := json.NewDecoder(rec.Body).Decode(&payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	want := []kindInfo{{
		Kind:     "unite",
		Required: []string{"code", "nom"},
		Labels:   map[string]string{"code": "Code", "nom": "Nom"},
	}}
	if diff := cmp.Diff(want, payload.Data); diff != "" {
		t.Fatalf("kinds mismatch (-want +got):\n%s", diff)
	}

	req = httptest.NewRequest(http.MethodGet, defaultKindsPath, nil)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	payload = kindsResponse{}
	if err := json.NewDecoder(rec.Body).Decode(&payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(payload.Data) != 5 {
		t.Fatalf("expected 5 kinds, got %d", len(payload.Data))
	}

	req = httptest.NewRequest(http.MethodGet, defaultKindsPath+"?kind=facture", nil)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown kind, got %d", rec.Code)
	}
}

func TestGuard_StatusErrorCode(t *testing.T) {
	h := ValidateHandler(NewOptions(WithGuard(func(*http.Request) error {
		return StatusError{Code: http.StatusUnauthorized, Err: errors.New("no session")}
	})))

	rec := postJSON(t, h, defaultValidatePath, `{"kind":"unite","data":{}}`)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}

	h = ReorderHandler(NewOptions(WithGuard(func(*http.Request) error {
		return errors.New("denied")
	})))
	rec = postJSON(t, h, defaultReorderPath, `{"items":["A"],"from":0,"to":0}`)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}
