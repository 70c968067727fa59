package formrules

import (
	"sort"
	"strings"

	"github.com/goliatone/go-billingforms/pkg/formvalidation"
)

// Report merges presence and business-rule failures for one submission.
type Report struct {
	Kind    formvalidation.FormKind `json:"kind"`
	Valid   bool                    `json:"valid"`
	Missing []string                `json:"missing"`
	Labels  map[string]string       `json:"labels"`
	Fields  map[string][]string     `json:"fields,omitempty"`
	Form    []string                `json:"form,omitempty"`
}

// Check validates data for kind: presence first through svc, then the
// built-in business rules for the kind. A nil svc uses the default catalog.
func Check(svc *formvalidation.Service, kind formvalidation.FormKind, data map[string]any) Report {
	return CheckWith(svc, ForKind(kind), kind, data)
}

// CheckWith is Check with an explicit business-rule validator.
func CheckWith(svc *formvalidation.Service, rules *Validator, kind formvalidation.FormKind, data map[string]any) Report {
	if svc == nil {
		svc = formvalidation.New()
	}
	presence := svc.Validate(kind, data)

	fields := make(map[string][]string)
	for field, messages := range presence.FieldErrors() {
		fields[field] = append(fields[field], messages...)
	}
	ruleFields, form := rules.Validate(data, presence.Labels)
	for field, messages := range ruleFields {
		fields[field] = append(fields[field], messages...)
	}
	for field, messages := range fields {
		fields[field] = normalizeMessages(messages)
	}
	if len(fields) == 0 {
		fields = nil
	}

	return Report{
		Kind:    kind,
		Valid:   presence.Valid && len(fields) == 0 && len(form) == 0,
		Missing: presence.Missing,
		Labels:  presence.Labels,
		Fields:  fields,
		Form:    form,
	}
}

// Messages flattens the report into display order: required-field messages
// in catalog order, remaining field messages sorted by field name, then
// form-level messages.
func (r Report) Messages() []string {
	var out []string
	seen := make(map[string]struct{}, len(r.Fields))
	for _, field := range r.Missing {
		out = append(out, r.Fields[field]...)
		seen[field] = struct{}{}
	}
	for _, field := range sortedKeys(r.Fields) {
		if _, ok := seen[field]; ok {
			continue
		}
		out = append(out, r.Fields[field]...)
	}
	out = append(out, r.Form...)
	return normalizeMessages(out)
}

// MergeFormErrors concatenates and normalises form-level messages, trimming
// whitespace and removing duplicates while preserving order.
func MergeFormErrors(existing []string, extras ...string) []string {
	combined := make([]string, 0, len(existing)+len(extras))
	combined = append(combined, existing...)
	combined = append(combined, extras...)
	return normalizeMessages(combined)
}

func normalizeMessages(messages []string) []string {
	if len(messages) == 0 {
		return nil
	}

	out := make([]string, 0, len(messages))
	seen := make(map[string]struct{}, len(messages))

	for _, message := range messages {
		trimmed := strings.TrimSpace(message)
		if trimmed == "" {
			continue
		}
		if _, exists := seen[trimmed]; exists {
			continue
		}
		seen[trimmed] = struct{}{}
		out = append(out, trimmed)
	}

	if len(out) == 0 {
		return nil
	}
	return out
}

func sortedKeys(fields map[string][]string) []string {
	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
