// Package views embeds the HTML templates rendered by the web layer.
package views

import (
	"embed"
	"html/template"
)

//go:embed templates
var files embed.FS

// Parse loads every template. Names are file base names, so they must be
// unique across directories.
func Parse() (*template.Template, error) {
	return template.ParseFS(files,
		"templates/*.tmpl",
		"templates/public/*.tmpl",
		"templates/admin/*.tmpl",
	)
}
