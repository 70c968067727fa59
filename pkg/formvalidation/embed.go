package formvalidation

import (
	"embed"
	"io/fs"
)

//go:embed catalog/*.yaml
var embeddedCatalog embed.FS

const defaultCatalogPath = "forms.yaml"

// EmbeddedFS returns the bundled catalog documents. Callers may pass this
// filesystem to LoadCatalogFS to start from the default configuration.
func EmbeddedFS() fs.FS {
	sub, err := fs.Sub(embeddedCatalog, "catalog")
	if err != nil {
		// The embed directive guarantees the subpath exists.
		panic(err)
	}
	return sub
}
