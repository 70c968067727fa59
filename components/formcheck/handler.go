package formcheck

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/goliatone/go-billingforms/pkg/formrules"
	"github.com/goliatone/go-billingforms/pkg/formvalidation"
	"github.com/goliatone/go-billingforms/pkg/reorder"
)

type HTTPError interface {
	error
	StatusCode() int
}

type StatusError struct {
	Code int
	Err  error
}

func (e StatusError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return http.StatusText(e.Code)
}

func (e StatusError) Unwrap() error { return e.Err }

func (e StatusError) StatusCode() int {
	if e.Code <= 0 {
		return http.StatusInternalServerError
	}
	return e.Code
}

type validateRequest struct {
	Kind string         `json:"kind"`
	Data map[string]any `json:"data"`
}

type reorderRequest struct {
	Items []json.RawMessage `json:"items"`
	From  *int              `json:"from"`
	To    *int              `json:"to"`
}

type reorderResponse struct {
	Items []json.RawMessage `json:"items"`
}

type kindInfo struct {
	Kind     formvalidation.FormKind `json:"kind"`
	Required []string                `json:"required"`
	Labels   map[string]string       `json:"labels"`
}

type kindsResponse struct {
	Data []kindInfo `json:"data"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// ValidateHandler validates a submission for the kind named in the body.
// Unknown kinds validate against an empty required set.
func ValidateHandler(opts Options) http.Handler {
	opts = NewOptions(func(o *Options) { *o = opts })
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !allowMethods(w, r, http.MethodPost) || !guard(w, r, opts) {
			return
		}

		var req validateRequest
		if err := decodeJSON(w, r, opts.MaxBodyBytes, &req); err != nil {
			opts.Logger.WithError(err).Warn("formcheck: invalid validate payload")
			writeError(w, err)
			return
		}

		kind, err := formvalidation.ParseFormKind(req.Kind)
		if err != nil {
			kind = formvalidation.FormKind(strings.TrimSpace(req.Kind))
		}
		report := formrules.CheckWith(opts.Service, opts.Rules(kind), kind, req.Data)
		if report.Labels == nil {
			report.Labels = map[string]string{}
		}

		opts.Logger.WithField("kind", kind.String()).
			WithField("valid", report.Valid).
			WithField("missing", len(report.Missing)).
			Debug("formcheck: validated submission")

		writeJSON(w, r, http.StatusOK, report)
	})
}

// ReorderHandler moves one item of the posted list and returns the new order.
// Items are echoed back verbatim.
func ReorderHandler(opts Options) http.Handler {
	opts = NewOptions(func(o *Options) { *o = opts })
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !allowMethods(w, r, http.MethodPost) || !guard(w, r, opts) {
			return
		}

		var req reorderRequest
		if err := decodeJSON(w, r, opts.MaxBodyBytes, &req); err != nil {
			writeError(w, err)
			return
		}
		if req.From == nil || req.To == nil {
			writeError(w, StatusError{Code: http.StatusBadRequest, Err: errors.New("formcheck: from and to are required")})
			return
		}

		items, err := reorder.Move(req.Items, *req.From, *req.To)
		if err != nil {
			opts.Logger.WithError(err).Debug("formcheck: reorder rejected")
			writeError(w, StatusError{Code: http.StatusBadRequest, Err: err})
			return
		}
		writeJSON(w, r, http.StatusOK, reorderResponse{Items: items})
	})
}

// KindsHandler lists the required fields and labels of every form kind, or of
// the kind named by the query parameter.
func KindsHandler(opts Options) http.Handler {
	opts = NewOptions(func(o *Options) { *o = opts })
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !allowMethods(w, r, http.MethodGet, http.MethodHead) || !guard(w, r, opts) {
			return
		}

		kinds := formvalidation.Kinds()
		if raw := strings.TrimSpace(r.URL.Query().Get(opts.KindParam)); raw != "" {
			kind, err := formvalidation.ParseFormKind(raw)
			if err != nil {
				writeError(w, StatusError{Code: http.StatusNotFound, Err: err})
				return
			}
			kinds = []formvalidation.FormKind{kind}
		}

		labels := opts.Service.FieldLabels()
		data := make([]kindInfo, 0, len(kinds))
		for _, kind := range kinds {
			required := opts.Service.RequiredFields(kind)
			kindLabels := make(map[string]string, len(required))
			for _, field := range required {
				kindLabels[field] = labels[field]
			}
			data = append(data, kindInfo{Kind: kind, Required: required, Labels: kindLabels})
		}
		writeJSON(w, r, http.StatusOK, kindsResponse{Data: data})
	})
}

func allowMethods(w http.ResponseWriter, r *http.Request, methods ...string) bool {
	if r == nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return false
	}
	for _, method := range methods {
		if r.Method == method {
			return true
		}
	}
	w.Header().Set("Allow", strings.Join(methods, ", "))
	http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
	return false
}

func guard(w http.ResponseWriter, r *http.Request, opts Options) bool {
	if opts.Guard == nil {
		return true
	}
	if err := opts.Guard(r); err != nil {
		writeGuardError(w, err)
		return false
	}
	return true
}

func decodeJSON(w http.ResponseWriter, r *http.Request, limit int64, dest any) error {
	if r.Body == nil {
		return StatusError{Code: http.StatusBadRequest, Err: errors.New("formcheck: request body is empty")}
	}
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, limit))
	if err := dec.Decode(dest); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return StatusError{Code: http.StatusRequestEntityTooLarge, Err: err}
		}
		return StatusError{Code: http.StatusBadRequest, Err: fmt.Errorf("formcheck: decode body: %w", err)}
	}
	return nil
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if r != nil && r.Method == http.MethodHead {
		return
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(true)
	_ = enc.Encode(payload)
}

func writeError(w http.ResponseWriter, err error) {
	code := http.StatusBadRequest
	var httpErr HTTPError
	if errors.As(err, &httpErr) && httpErr != nil {
		code = httpErr.StatusCode()
	}
	writeJSON(w, nil, code, errorResponse{Error: err.Error()})
}

func writeGuardError(w http.ResponseWriter, err error) {
	if w == nil {
		return
	}
	if err == nil {
		http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
		return
	}
	code := http.StatusForbidden
	var httpErr HTTPError
	if errors.As(err, &httpErr) && httpErr != nil {
		code = httpErr.StatusCode()
		if code <= 0 {
			code = http.StatusForbidden
		}
	}
	http.Error(w, http.StatusText(code), code)
}
