package formvalidation

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownKind is returned when a string does not name a FormKind.
var ErrUnknownKind = errors.New("formvalidation: unknown form kind")

// FormKind identifies one of the billing forms.
type FormKind string

const (
	KindService      FormKind = "service"
	KindUnite        FormKind = "unite"
	KindTypeTarif    FormKind = "type-tarif"
	KindTarif        FormKind = "tarif"
	KindTarifSpecial FormKind = "tarif-special"
)

var kinds = []FormKind{
	KindService,
	KindUnite,
	KindTypeTarif,
	KindTarif,
	KindTarifSpecial,
}

// Kinds returns every known form kind in declaration order.
func Kinds() []FormKind {
	return append([]FormKind(nil), kinds...)
}

// Valid reports whether k is one of the declared kinds.
func (k FormKind) Valid() bool {
	for _, known := range kinds {
		if k == known {
			return true
		}
	}
	return false
}

func (k FormKind) String() string { return string(k) }

// ParseFormKind resolves a form kind tag. Surrounding whitespace and case are
// ignored.
func ParseFormKind(raw string) (FormKind, error) {
	kind := FormKind(strings.ToLower(strings.TrimSpace(raw)))
	if !kind.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, raw)
	}
	return kind, nil
}
