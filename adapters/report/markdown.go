package report

import (
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"colprofile/domain/profile"
)

// MarkdownWriter writes the report as a Markdown document holding one table
type MarkdownWriter struct{}

// NewMarkdownWriter creates a Markdown report writer
func NewMarkdownWriter() *MarkdownWriter {
	return &MarkdownWriter{}
}

func (m *MarkdownWriter) Format() string {
	return "markdown"
}

func (m *MarkdownWriter) Write(w io.Writer, rows []profile.ReportRow) error {
	_, err := io.WriteString(w, renderMarkdown(rows))
	return err
}

func renderMarkdown(rows []profile.ReportRow) string {
	tbl := table.NewWriter()

	header := make(table.Row, len(profile.ReportHeader))
	for i, h := range profile.ReportHeader {
		header[i] = h
	}
	tbl.AppendHeader(header)

	for _, row := range rows {
		cells := row.Cells()
		out := make(table.Row, len(cells))
		for i, c := range cells {
			out[i] = escapeMarkdown(c)
		}
		tbl.AppendRow(out)
	}

	var sb strings.Builder
	sb.WriteString("# " + Title + "\n\n")
	sb.WriteString(tbl.RenderMarkdown())
	sb.WriteString("\n")
	return sb.String()
}

// pipes and newlines are handled by the table renderer
var markdownEscaper = strings.NewReplacer(
	`\`, `\\`,
	"`", "\\`",
	"*", `\*`,
	"_", `\_`,
	"[", `\[`,
	"]", `\]`,
	"<", `\<`,
	">", `\>`,
	"#", `\#`,
	"&", `\&`,
	"\r", "",
)

func escapeMarkdown(s string) string {
	return markdownEscaper.Replace(s)
}
