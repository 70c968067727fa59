package formrules

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-billingforms/pkg/formvalidation"
)

// FieldRules binds rules to a field name.
type FieldRules struct {
	Field string
	Rules []Rule
}

// Field is a shorthand for FieldRules.
func Field(name string, rules ...Rule) FieldRules {
	return FieldRules{Field: strings.TrimSpace(name), Rules: rules}
}

// Validator applies field and form rules for one form kind.
type Validator struct {
	fields    []FieldRules
	formRules []FormRule
}

// NewValidator builds a validator from per-field rules.
func NewValidator(fields ...FieldRules) *Validator {
	v := &Validator{}
	for _, field := range fields {
		if field.Field == "" || len(field.Rules) == 0 {
			continue
		}
		v.fields = append(v.fields, field)
	}
	return v
}

// WithFormRules returns a copy of v that also applies the provided form rules.
func (v *Validator) WithFormRules(rules ...FormRule) *Validator {
	out := &Validator{}
	if v != nil {
		out.fields = append(out.fields, v.fields...)
		out.formRules = append(out.formRules, v.formRules...)
	}
	for _, rule := range rules {
		if rule != nil {
			out.formRules = append(out.formRules, rule)
		}
	}
	return out
}

// Validate runs the rules against data. Blank or absent fields are skipped;
// presence is reported by formvalidation. Field messages are keyed by field
// name and form-level messages are returned separately.
func (v *Validator) Validate(data map[string]any, labels map[string]string) (map[string][]string, []string) {
	if v == nil {
		return nil, nil
	}

	values := stringValues(data)
	fields := make(map[string][]string)
	var form []string

	for _, entry := range v.fields {
		value, ok := values[entry.Field]
		if !ok || value == "" {
			continue
		}
		label := labelOf(labels, entry.Field)
		for _, rule := range entry.Rules {
			if rule == nil {
				continue
			}
			if msg := rule.Check(label, value); msg != "" {
				fields[entry.Field] = append(fields[entry.Field], msg)
			}
		}
	}

	for _, rule := range v.formRules {
		field, msg := rule(values, labels)
		if msg == "" {
			continue
		}
		if field == "" {
			form = append(form, msg)
			continue
		}
		fields[field] = append(fields[field], msg)
	}

	for field, messages := range fields {
		fields[field] = normalizeMessages(messages)
	}
	if len(fields) == 0 {
		fields = nil
	}
	return fields, normalizeMessages(form)
}

// Unite validates the unit form.
func Unite() *Validator {
	return NewValidator(
		Field("code", MaxLength(10)),
		Field("nom", MaxLength(50)),
	)
}

// Service validates the service form.
func Service() *Validator {
	return NewValidator(
		Field("code", MaxLength(10)),
		Field("nom", MaxLength(50)),
	)
}

// TypeTarif validates the tariff type form.
func TypeTarif() *Validator {
	return NewValidator(
		Field("code", MaxLength(10)),
		Field("libelle", MaxLength(50)),
	)
}

// Tarif validates the tariff form.
func Tarif() *Validator {
	return NewValidator(
		Field("montant", Positive()),
	)
}

// TarifSpecial validates the special tariff form.
func TarifSpecial() *Validator {
	return NewValidator(
		Field("montant", Positive()),
		Field("dateDebut", Date()),
		Field("dateFin", Date()),
	).WithFormRules(DateOrder("dateDebut", "dateFin"))
}

// ForKind returns the built-in validator for kind. Kinds without business
// rules get an empty validator.
func ForKind(kind formvalidation.FormKind) *Validator {
	switch kind {
	case formvalidation.KindService:
		return Service()
	case formvalidation.KindUnite:
		return Unite()
	case formvalidation.KindTypeTarif:
		return TypeTarif()
	case formvalidation.KindTarif:
		return Tarif()
	case formvalidation.KindTarifSpecial:
		return TarifSpecial()
	default:
		return NewValidator()
	}
}

func stringValues(data map[string]any) map[string]string {
	out := make(map[string]string, len(data))
	for key, value := range data {
		if formvalidation.IsBlankValue(value) {
			continue
		}
		switch typed := value.(type) {
		case string:
			out[key] = strings.TrimSpace(typed)
		default:
			out[key] = strings.TrimSpace(fmt.Sprint(typed))
		}
	}
	return out
}
