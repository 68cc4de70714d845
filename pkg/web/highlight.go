package web

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/alecthomas/chroma/formatters/html"
	"github.com/alecthomas/chroma/lexers"
	"github.com/alecthomas/chroma/styles"

	"github.com/revmark/revmark/pkg/models"
)

// styleClasses maps run style tags to the CSS classes shipped in
// static/css/revmark.css. Unknown tags fall back to a generic class so
// new extractor styles degrade gracefully rather than rendering unstyled.
var styleClasses = map[string]string{
	"positive":  "run-positive",
	"negative":  "run-negative",
	"aspect":    "run-aspect",
	"highlight": "run-highlight",
	"underline": "run-underline",
}

const defaultStyleClass = "run-annotated"

func StyleClass(style string) string {
	if class, ok := styleClasses[style]; ok {
		return class
	}
	return defaultStyleClass
}

// RenderRuns converts annotated runs into an HTML fragment. Plain runs are
// escaped as-is; styled runs are wrapped in a span carrying the mapped class.
func RenderRuns(runs []models.Run) template.HTML {
	var sb strings.Builder
	for _, run := range runs {
		escaped := template.HTMLEscapeString(run.Text)
		if run.Plain() {
			sb.WriteString(escaped)
			continue
		}
		sb.WriteString(fmt.Sprintf(`<span class="%s">%s</span>`, StyleClass(run.Style), escaped))
	}
	return template.HTML(sb.String()) //nolint:gosec // run text is escaped above
}

type CustomPreWrapper struct{}

// Start is called to write a start <pre> element.
// The code flag tells whether this block surrounds
// highlighted code. This will be false when surrounding
// line numbers.
func (p *CustomPreWrapper) Start(code bool, _ string) string {
	if code {
		return `<pre tabindex="0" style="-moz-tab-size:2;-o-tab-size:2;tab-size:2;white-space:pre-wrap;word-break:break-word;">`
	}
	return "<pre>"
}

// End is called to write the end </pre> element.
func (p *CustomPreWrapper) End(_ bool) string {
	return "</pre>"
}

// CodeHighlight takes a string of code and a lexer name and returns a
// highlighted HTML string.
func CodeHighlight(code string, lexer string) (string, error) {
	preWrapper := &CustomPreWrapper{}

	var buf bytes.Buffer
	l := lexers.Get(lexer)
	formatter := html.New(
		html.WrapLongLines(true),
		html.TabWidth(2),
		html.WithPreWrapper(preWrapper),
	)

	style := styles.Get("github")
	iterator, err := l.Tokenise(nil, code)
	if err != nil {
		return "", err
	}
	err = formatter.Format(&buf, style, iterator)
	if err != nil {
		return "", err
	}

	return buf.String(), nil
}
