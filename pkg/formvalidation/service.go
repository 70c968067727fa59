package formvalidation

import (
	"fmt"
	"reflect"
	"strings"
)

// Option configures a Service.
type Option func(*Service)

// WithCatalog replaces the embedded default catalog.
func WithCatalog(catalog *Catalog) Option {
	return func(s *Service) {
		if catalog != nil {
			s.catalog = catalog
		}
	}
}

// Service validates form submissions against a Catalog. It holds no mutable
// state; every call is keyed by an explicit FormKind.
type Service struct {
	catalog *Catalog
}

// New constructs a Service backed by DefaultCatalog unless WithCatalog is
// supplied.
func New(opts ...Option) *Service {
	svc := &Service{}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(svc)
	}
	if svc.catalog == nil {
		svc.catalog = DefaultCatalog()
	}
	return svc
}

// Catalog returns the configuration backing the service.
func (s *Service) Catalog() *Catalog {
	if s == nil || s.catalog == nil {
		return DefaultCatalog()
	}
	return s.catalog
}

// RequiredFields returns the ordered required fields of kind. Kinds missing
// from the catalog yield an empty slice rather than an error.
func (s *Service) RequiredFields(kind FormKind) []string {
	fields, ok := s.Catalog().RequiredFields(kind)
	if !ok {
		return []string{}
	}
	return fields
}

// FieldLabels returns a copy of the label table covering every field of every
// kind.
func (s *Service) FieldLabels() map[string]string {
	return s.Catalog().Labels()
}

// Label returns the display label of field.
func (s *Service) Label(field string) string {
	return s.Catalog().Label(field)
}

// Validate reports which required fields of kind are absent or blank in data.
// Values are compared through their fmt.Sprint form after trimming, so types,
// ranges and cross-field consistency are not checked here.
func (s *Service) Validate(kind FormKind, data map[string]any) Result {
	required := s.RequiredFields(kind)
	missing := make([]string, 0, len(required))
	for _, field := range required {
		if isBlank(data, field) {
			missing = append(missing, field)
		}
	}
	return Result{
		Kind:    kind,
		Valid:   len(missing) == 0,
		Missing: missing,
		Labels:  s.FieldLabels(),
	}
}

// ValidateRaw validates data for a kind given as a free-form tag, as received
// from transports. Unrecognised tags validate against an empty required set.
func (s *Service) ValidateRaw(kind string, data map[string]any) Result {
	parsed, err := ParseFormKind(kind)
	if err != nil {
		parsed = FormKind(strings.TrimSpace(kind))
	}
	return s.Validate(parsed, data)
}

func isBlank(data map[string]any, field string) bool {
	value, ok := data[field]
	if !ok {
		return true
	}
	return IsBlankValue(value)
}

// IsBlankValue reports whether a submitted value counts as absent: nil
// (including typed nil pointers, maps, slices and interfaces) or a value whose
// string form trims to empty.
func IsBlankValue(value any) bool {
	if isNil(value) {
		return true
	}
	switch typed := value.(type) {
	case string:
		return strings.TrimSpace(typed) == ""
	default:
		return strings.TrimSpace(fmt.Sprint(typed)) == ""
	}
}

func isNil(value any) bool {
	if value == nil {
		return true
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	default:
		return false
	}
}
