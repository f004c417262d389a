package ui

import (
	"html/template"
	"strings"

	"github.com/gomarkdown/markdown"
	mdhtml "github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"

	"winery/domain/catalog"
	"winery/internal/plural"
)

// templateFuncs are available to every page template
func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"add": func(a, b int) int { return a + b },
		// field looks a column up without failing on a missing key.
		"field": func(p catalog.Product, column string) string {
			return p.Get(column)
		},
		// plural agrees a noun with n: {{plural .N "бутылка" "бутылки" "бутылок"}}.
		"plural": func(n int, one, few, many string) (string, error) {
			return plural.Forms{One: one, Few: few, Many: many}.Select(n)
		},
		"yearSign": plural.YearSuffix,
		"markdown": renderMarkdown,
	}
}

// renderMarkdown converts cell text to HTML. Raw HTML in the source is
// dropped so spreadsheet content cannot inject markup.
func renderMarkdown(s string) template.HTML {
	if strings.TrimSpace(s) == "" {
		return ""
	}

	p := parser.NewWithExtensions(parser.CommonExtensions | parser.HardLineBreak)
	renderer := mdhtml.NewRenderer(mdhtml.RendererOptions{
		Flags: mdhtml.SkipHTML | mdhtml.Safelink | mdhtml.NofollowLinks | mdhtml.NoreferrerLinks,
	})
	out := markdown.ToHTML([]byte(s), p, renderer)
	return template.HTML(strings.TrimSpace(string(out)))
}
