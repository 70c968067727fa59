// Package prompt captures billing form values interactively, one prompt per
// required field, using the catalog labels as prompt messages.
package prompt

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-billingforms/pkg/formvalidation"
)

// Collect prompts for every required field of kind and returns the answers
// keyed by field name. Blank answers are rejected by the prompt validator.
func Collect(ctx context.Context, driver Driver, svc *formvalidation.Service, kind formvalidation.FormKind) (map[string]any, error) {
	if driver == nil {
		return nil, errors.New("prompt: driver is nil")
	}
	if svc == nil {
		svc = formvalidation.New()
	}

	fields := svc.RequiredFields(kind)
	values := make(map[string]any, len(fields))
	if len(fields) == 0 {
		if err := driver.Info(ctx, fmt.Sprintf("Aucun champ requis pour le formulaire %q", kind)); err != nil {
			return nil, err
		}
		return values, nil
	}

	for _, field := range fields {
		label := svc.Label(field)
		answer, err := driver.Input(ctx, InputConfig{
			Message:   label,
			Validator: requiredValidator(label),
		})
		if err != nil {
			return nil, fmt.Errorf("prompt: %s: %w", field, err)
		}
		values[field] = strings.TrimSpace(answer)
	}
	return values, nil
}

// SelectKind asks the user which form to fill in.
func SelectKind(ctx context.Context, driver Driver) (formvalidation.FormKind, error) {
	if driver == nil {
		return "", errors.New("prompt: driver is nil")
	}
	kinds := formvalidation.Kinds()
	options := make([]string, len(kinds))
	for idx, kind := range kinds {
		options[idx] = kind.String()
	}
	idx, err := driver.Select(ctx, SelectConfig{
		Message: "Formulaire",
		Options: options,
	})
	if err != nil {
		return "", err
	}
	if idx < 0 || idx >= len(kinds) {
		return "", fmt.Errorf("prompt: selection %d out of range", idx)
	}
	return kinds[idx], nil
}

func requiredValidator(label string) func(string) error {
	return func(value string) error {
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf("le champ %s est requis", label)
		}
		return nil
	}
}
