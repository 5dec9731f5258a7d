package report

import (
	"io"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"

	"colprofile/domain/profile"
)

// HTMLWriter renders the Markdown report into a standalone HTML page
type HTMLWriter struct{}

// NewHTMLWriter creates an HTML report writer
func NewHTMLWriter() *HTMLWriter {
	return &HTMLWriter{}
}

func (h *HTMLWriter) Format() string {
	return "html"
}

func (h *HTMLWriter) Write(w io.Writer, rows []profile.ReportRow) error {
	p := parser.NewWithExtensions(parser.Tables | parser.NoIntraEmphasis)
	renderer := html.NewRenderer(html.RendererOptions{
		Title: Title,
		Flags: html.CompletePage,
	})

	_, err := w.Write(markdown.ToHTML([]byte(renderMarkdown(rows)), p, renderer))
	return err
}
