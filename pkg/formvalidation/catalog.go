package formvalidation

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// Catalog is the immutable configuration behind a Service: the ordered
// required fields of every form kind and one label table shared by all kinds.
// A Catalog is safe for concurrent use.
type Catalog struct {
	required map[FormKind][]string
	labels   map[string]string
}

var (
	defaultCatalogOnce sync.Once
	defaultCatalog     *Catalog
)

// DefaultCatalog returns the catalog bundled with the package.
func DefaultCatalog() *Catalog {
	defaultCatalogOnce.Do(func() {
		catalog, err := LoadCatalogFS(EmbeddedFS(), defaultCatalogPath)
		if err != nil {
			// The embedded document is part of the build.
			panic(err)
		}
		defaultCatalog = catalog
	})
	return defaultCatalog
}

// NewCatalog validates and copies the provided tables. Field names are
// trimmed; duplicate fields within a kind and unknown kinds are rejected.
// Labels are reduced to plain text and every required field without a label
// receives one from DefaultLabeler.
func NewCatalog(required map[FormKind][]string, labels map[string]string) (*Catalog, error) {
	catalog := &Catalog{
		required: make(map[FormKind][]string, len(required)),
		labels:   make(map[string]string, len(labels)),
	}

	for name, label := range labels {
		key := strings.TrimSpace(name)
		if key == "" {
			return nil, errors.New("formvalidation: catalog defines a label for an empty field name")
		}
		catalog.labels[key] = sanitizeLabel(label)
	}

	for kind, fields := range required {
		if !kind.Valid() {
			return nil, fmt.Errorf("%w: %q", ErrUnknownKind, string(kind))
		}
		seen := make(map[string]struct{}, len(fields))
		ordered := make([]string, 0, len(fields))
		for _, field := range fields {
			name := strings.TrimSpace(field)
			if name == "" {
				return nil, fmt.Errorf("formvalidation: kind %q lists an empty field name", kind)
			}
			if _, dup := seen[name]; dup {
				return nil, fmt.Errorf("formvalidation: kind %q lists field %q twice", kind, name)
			}
			seen[name] = struct{}{}
			ordered = append(ordered, name)

			if catalog.labels[name] == "" {
				catalog.labels[name] = DefaultLabeler(name)
			}
		}
		catalog.required[kind] = ordered
	}

	return catalog, nil
}

// RequiredFields returns a copy of the ordered required fields for kind. The
// boolean is false when the catalog has no entry for kind.
func (c *Catalog) RequiredFields(kind FormKind) ([]string, bool) {
	if c == nil {
		return nil, false
	}
	fields, ok := c.required[kind]
	if !ok {
		return nil, false
	}
	return append([]string(nil), fields...), true
}

// Labels returns a copy of the label table.
func (c *Catalog) Labels() map[string]string {
	if c == nil {
		return map[string]string{}
	}
	out := make(map[string]string, len(c.labels))
	for name, label := range c.labels {
		out[name] = label
	}
	return out
}

// Label returns the label for field, falling back to the field name.
func (c *Catalog) Label(field string) string {
	if c != nil {
		if label := c.labels[field]; label != "" {
			return label
		}
	}
	return field
}

// Kinds returns the kinds configured in the catalog, sorted.
func (c *Catalog) Kinds() []FormKind {
	if c == nil {
		return nil
	}
	out := make([]FormKind, 0, len(c.required))
	for kind := range c.required {
		out = append(out, kind)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

type catalogFile struct {
	Forms  map[string][]string `json:"forms" yaml:"forms"`
	Labels map[string]string   `json:"labels" yaml:"labels"`
}

// LoadCatalog parses a JSON or YAML catalog document.
func LoadCatalog(data []byte) (*Catalog, error) {
	return parseCatalog(data, "catalog")
}

// LoadCatalogFS reads and parses the catalog document at path within fsys.
func LoadCatalogFS(fsys fs.FS, path string) (*Catalog, error) {
	if fsys == nil {
		return nil, errors.New("formvalidation: catalog filesystem is nil")
	}
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("formvalidation: read %s: %w", path, err)
	}
	return parseCatalog(data, path)
}

func parseCatalog(data []byte, source string) (*Catalog, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, fmt.Errorf("formvalidation: catalog %s is empty", source)
	}

	var doc catalogFile
	if err := json.Unmarshal(data, &doc); err != nil {
		doc = catalogFile{}
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("formvalidation: parse %s: invalid JSON or YAML", source)
		}
	}

	required := make(map[FormKind][]string, len(doc.Forms))
	for raw, fields := range doc.Forms {
		kind, err := ParseFormKind(raw)
		if err != nil {
			return nil, fmt.Errorf("formvalidation: %s: %w", source, err)
		}
		required[kind] = fields
	}

	catalog, err := NewCatalog(required, doc.Labels)
	if err != nil {
		return nil, fmt.Errorf("formvalidation: %s: %w", source, err)
	}
	return catalog, nil
}
