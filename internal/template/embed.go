package template

import (
	"embed"
	"fmt"
	"io/fs"
)

//go:embed templates
var embeddedFS embed.FS

// EmbeddedTemplates returns the embedded template corpus rooted at the
// template directory, so template names carry no "templates/" prefix.
func EmbeddedTemplates() (fs.FS, error) {
	sub, err := fs.Sub(embeddedFS, "templates")
	if err != nil {
		return nil, fmt.Errorf("embedded templates: %w", err)
	}
	return sub, nil
}
