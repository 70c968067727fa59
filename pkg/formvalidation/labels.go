package formvalidation

import (
	"html"
	"regexp"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var splitWordsPattern = regexp.MustCompile(`[_\-\s]+`)

var (
	labelPolicyOnce sync.Once
	labelPolicy     *bluemonday.Policy
)

// DefaultLabeler converts a field name into a label when the catalog has none.
// It splits on underscores, dashes and camelCase boundaries and drops a
// trailing "Id" so "serviceId" reads as "Service".
func DefaultLabeler(name string) string {
	if name == "" {
		return ""
	}

	words := splitWordsPattern.Split(name, -1)
	var segments []string
	for _, word := range words {
		if word == "" {
			continue
		}
		segments = append(segments, strings.Fields(splitCamel(word))...)
	}
	if len(segments) > 1 && strings.EqualFold(segments[len(segments)-1], "id") {
		segments = segments[:len(segments)-1]
	}
	for idx, segment := range segments {
		if idx == 0 {
			segments[idx] = titleCase(segment)
			continue
		}
		segments[idx] = strings.ToLower(segment)
	}
	return strings.TrimSpace(strings.Join(segments, " "))
}

// sanitizeLabel strips markup from a label and returns plain text.
func sanitizeLabel(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	cleaned := labelSanitizer().Sanitize(trimmed)
	return strings.TrimSpace(html.UnescapeString(cleaned))
}

func labelSanitizer() *bluemonday.Policy {
	labelPolicyOnce.Do(func() {
		labelPolicy = bluemonday.StrictPolicy()
	})
	return labelPolicy
}

func splitCamel(input string) string {
	var out strings.Builder
	for i, r := range input {
		if i > 0 && isBoundary(input, i, r) {
			out.WriteRune(' ')
		}
		out.WriteRune(r)
	}
	return out.String()
}

func isBoundary(input string, index int, r rune) bool {
	prev := rune(input[index-1])
	return (isLower(prev) && isUpper(r)) || (isLetter(prev) && isDigit(r)) || (isDigit(prev) && isLetter(r))
}

func isUpper(r rune) bool  { return r >= 'A' && r <= 'Z' }
func isLower(r rune) bool  { return r >= 'a' && r <= 'z' }
func isDigit(r rune) bool  { return r >= '0' && r <= '9' }
func isLetter(r rune) bool { return isUpper(r) || isLower(r) }

func titleCase(word string) string {
	if word == "" {
		return ""
	}
	lower := strings.ToLower(word)
	return strings.ToUpper(lower[:1]) + lower[1:]
}
