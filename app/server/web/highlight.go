package web

import (
	"bytes"
	"html"
	"html/template"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"

	"github.com/umputun/shade/app/enum"
)

// Highlighter renders YAML with a color style matching the page theme.
type Highlighter struct{}

// NewHighlighter creates a new Highlighter instance.
func NewHighlighter() *Highlighter {
	return &Highlighter{}
}

// YAML applies syntax highlighting to YAML source.
// returns HTML-safe highlighted code or plain escaped text if highlighting fails.
func (h *Highlighter) YAML(code string, t enum.Theme) template.HTML {
	plain := template.HTML("<pre>" + html.EscapeString(code) + "</pre>") //nolint:gosec // escaped

	lexer := lexers.Get("yaml")
	if lexer == nil {
		return plain
	}
	lexer = chroma.Coalesce(lexer)

	// inline styles, the palette follows the applied theme
	formatter := chromahtml.New(
		chromahtml.WithClasses(false),
		chromahtml.PreventSurroundingPre(false),
		chromahtml.WithLineNumbers(false),
	)

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return plain
	}

	style := styles.Get(styleName(t))
	if style == nil {
		style = styles.Fallback
	}

	var buf bytes.Buffer
	if err := formatter.Format(&buf, style, iterator); err != nil {
		return plain
	}
	return template.HTML(buf.String()) //nolint:gosec // chroma output is safe
}

// styleName returns the chroma style for the theme.
func styleName(t enum.Theme) string {
	if t.IsDark() {
		return "monokai"
	}
	return "monokailight"
}
