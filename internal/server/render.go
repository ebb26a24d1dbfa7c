package server

import (
	"bytes"
	"fmt"
	"html/template"
	"path/filepath"

	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/css"
	"github.com/tdewolff/minify/v2/html"
	"github.com/tdewolff/minify/v2/js"
)

// IndexTemplate is the page template file inside the template directory.
const IndexTemplate = "index.html"

// PageData is the template context of the index page.
type PageData struct {
	Title string
}

// RenderIndex executes the index template with title and minifies the result.
func RenderIndex(dir, title string) ([]byte, error) {
	tmpl, err := template.ParseFiles(filepath.Join(dir, IndexTemplate))
	if err != nil {
		return nil, fmt.Errorf("read template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, PageData{Title: title}); err != nil {
		return nil, fmt.Errorf("execute template: %w", err)
	}

	m := minify.New()
	m.AddFunc("text/css", css.Minify)
	m.AddFunc("text/html", html.Minify)
	m.AddFunc("text/javascript", js.Minify)

	out, err := m.Bytes("text/html", buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("minify HTML: %w", err)
	}

	return out, nil
}
