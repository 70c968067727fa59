package formvalidation

import "fmt"

// Result is the outcome of a single Validate call.
type Result struct {
	Kind    FormKind          `json:"kind"`
	Valid   bool              `json:"valid"`
	Missing []string          `json:"missing"`
	Labels  map[string]string `json:"labels"`
}

// IsMissing reports whether field was flagged as missing.
func (r Result) IsMissing(field string) bool {
	for _, name := range r.Missing {
		if name == field {
			return true
		}
	}
	return false
}

// Messages returns one user-facing message per missing field, in required
// order.
func (r Result) Messages() []string {
	if len(r.Missing) == 0 {
		return nil
	}
	out := make([]string, 0, len(r.Missing))
	for _, field := range r.Missing {
		out = append(out, requiredMessage(r.label(field)))
	}
	return out
}

// FieldErrors returns the missing-field messages keyed by field name.
func (r Result) FieldErrors() map[string][]string {
	if len(r.Missing) == 0 {
		return nil
	}
	out := make(map[string][]string, len(r.Missing))
	for _, field := range r.Missing {
		out[field] = []string{requiredMessage(r.label(field))}
	}
	return out
}

func (r Result) label(field string) string {
	if label := r.Labels[field]; label != "" {
		return label
	}
	return field
}

func requiredMessage(label string) string {
	return fmt.Sprintf("Le champ %s est requis", label)
}
