package formrules

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

// DateLayout is the wire format of date fields.
const DateLayout = "2006-01-02"

// Rule checks one field value. It returns an empty string when the value is
// acceptable and a user-facing message otherwise.
type Rule interface {
	Check(label, value string) string
}

// RuleFunc adapts a function to Rule.
type RuleFunc func(label, value string) string

// Check implements Rule.
func (fn RuleFunc) Check(label, value string) string {
	if fn == nil {
		return ""
	}
	return fn(label, value)
}

// MaxLength limits a value to n characters.
func MaxLength(n int) Rule {
	return RuleFunc(func(label, value string) string {
		if utf8.RuneCountInString(value) <= n {
			return ""
		}
		return fmt.Sprintf("Le champ %s ne doit pas dépasser %d caractères", label, n)
	})
}

// Positive requires a decimal amount strictly greater than zero. Both "." and
// "," are accepted as decimal separators.
func Positive() Rule {
	return RuleFunc(func(label, value string) string {
		amount, err := parseAmount(value)
		if err != nil || math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 {
			return fmt.Sprintf("Le champ %s doit être un montant positif", label)
		}
		return ""
	})
}

// Date requires a value in DateLayout.
func Date() Rule {
	return RuleFunc(func(label, value string) string {
		if _, err := time.Parse(DateLayout, value); err != nil {
			return fmt.Sprintf("Le champ %s doit être une date valide (AAAA-MM-JJ)", label)
		}
		return ""
	})
}

// FormRule checks a relationship between fields. It returns the field the
// message is attached to, or an empty field for a form-level message.
type FormRule func(values map[string]string, labels map[string]string) (field, message string)

// DateOrder requires the end date not to precede the start date. Either field
// being empty or malformed skips the check.
func DateOrder(start, end string) FormRule {
	return func(values map[string]string, labels map[string]string) (string, string) {
		from, err := time.Parse(DateLayout, values[start])
		if err != nil {
			return "", ""
		}
		to, err := time.Parse(DateLayout, values[end])
		if err != nil {
			return "", ""
		}
		if to.Before(from) {
			return end, fmt.Sprintf("Le champ %s doit être postérieur au champ %s", labelOf(labels, end), labelOf(labels, start))
		}
		return "", ""
	}
}

func parseAmount(raw string) (float64, error) {
	clean := strings.ReplaceAll(strings.TrimSpace(raw), " ", "")
	clean = strings.ReplaceAll(clean, ",", ".")
	return strconv.ParseFloat(clean, 64)
}

func labelOf(labels map[string]string, field string) string {
	if label := labels[field]; label != "" {
		return label
	}
	return field
}
