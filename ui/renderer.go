package ui

import (
	"bytes"
	"html/template"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"winery/internal/errors"
	"winery/internal/logging"
	"winery/ports"
)

// PageRenderer renders the catalog page from an HTML template file.
// The template is read on every Render so edits are picked up between runs.
type PageRenderer struct {
	templatePath string
	log          zerolog.Logger
}

var _ ports.PageRenderer = (*PageRenderer)(nil)

// NewPageRenderer creates a renderer for the template at templatePath
func NewPageRenderer(templatePath string) *PageRenderer {
	return &PageRenderer{
		templatePath: templatePath,
		log:          logging.Component("renderer"),
	}
}

// Render executes the template with data. Every value is escaped for its
// HTML context, and a reference to a missing map key is an error.
func (r *PageRenderer) Render(data ports.PageData) ([]byte, error) {
	tmpl, err := r.load()
	if err != nil {
		return nil, err
	}

	// Render to a buffer first so a failed execution never yields a partial page
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, errors.RenderError("failed to render "+r.templatePath, err)
	}

	if !strings.Contains(strings.ToLower(buf.String()), "</html>") {
		r.log.Warn().Str("template", r.templatePath).Int("bytes", buf.Len()).Msg("rendered page has no closing </html> tag")
	}

	r.log.Debug().Str("template", r.templatePath).Int("bytes", buf.Len()).Msg("page rendered")
	return buf.Bytes(), nil
}

func (r *PageRenderer) load() (*template.Template, error) {
	content, err := os.ReadFile(r.templatePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFound("template " + r.templatePath)
		}
		return nil, errors.IOError("failed to read template "+r.templatePath, err)
	}

	tmpl, err := template.New(filepath.Base(r.templatePath)).
		Option("missingkey=error").
		Funcs(templateFuncs()).
		Parse(string(content))
	if err != nil {
		return nil, errors.RenderError("failed to parse template "+r.templatePath, err)
	}
	return tmpl, nil
}
