package formvalidation

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
)

// CatalogFromOpenAPI derives a catalog from the component schemas of an
// OpenAPI document. mapping names the schema backing each form kind; required
// fields come from the schema's required list and labels from property
// titles.
func CatalogFromOpenAPI(ctx context.Context, data []byte, mapping map[FormKind]string) (*Catalog, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, errors.New("formvalidation: openapi document is empty")
	}
	if len(mapping) == 0 {
		return nil, errors.New("formvalidation: openapi schema mapping is empty")
	}

	loader := &openapi3.Loader{Context: ctx}
	spec, err := loader.LoadFromData(data)
	if err != nil {
		return nil, fmt.Errorf("formvalidation: load openapi document: %w", err)
	}
	if spec.Components == nil || len(spec.Components.Schemas) == 0 {
		return nil, errors.New("formvalidation: openapi document has no component schemas")
	}

	required := make(map[FormKind][]string, len(mapping))
	labels := make(map[string]string)
	for kind, schemaName := range mapping {
		ref, ok := spec.Components.Schemas[strings.TrimSpace(schemaName)]
		if !ok || ref == nil || ref.Value == nil {
			return nil, fmt.Errorf("formvalidation: openapi schema %q for kind %q not found", schemaName, kind)
		}
		required[kind] = append([]string(nil), ref.Value.Required...)

		for name, property := range ref.Value.Properties {
			if property == nil || property.Value == nil {
				continue
			}
			if title := strings.TrimSpace(property.Value.Title); title != "" {
				labels[name] = title
			}
		}
	}

	return NewCatalog(required, labels)
}
