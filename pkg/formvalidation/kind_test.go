package formvalidation_test

import (
	"errors"
	"testing"

	"github.com/goliatone/go-billingforms/pkg/formvalidation"
)

func TestParseFormKind(t *testing.T) {
	cases := map[string]formvalidation.FormKind{
		"service":       formvalidation.KindService,
		" UNITE ":       formvalidation.KindUnite,
		"type-tarif":    formvalidation.KindTypeTarif,
		"tarif":         formvalidation.KindTarif,
		"Tarif-Special": formvalidation.KindTarifSpecial,
	}
	for raw, want := range cases {
		got, err := formvalidation.ParseFormKind(raw)
		if err != nil {
			t.Fatalf("parse %q: %v", raw, err)
		}
		if got != want {
			t.Fatalf("parse %q: got %q, want %q", raw, got, want)
		}
	}

	for _, raw := range []string{"", "tarifs", "type_tarif"} {
		if _, err := formvalidation.ParseFormKind(raw); !errors.Is(err, formvalidation.ErrUnknownKind) {
			t.Fatalf("parse %q: expected ErrUnknownKind, got %v", raw, err)
		}
	}
}

func TestKinds_ReturnsCopy(t *testing.T) {
	kinds := formvalidation.Kinds()
	if len(kinds) != 5 {
		t.Fatalf("expected 5 kinds, got %d", len(kinds))
	}
	kinds[0] = "mutated"
	if formvalidation.Kinds()[0] != formvalidation.KindService {
		t.Fatalf("kinds mutated through returned slice")
	}
}
