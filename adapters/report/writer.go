package report

import (
	"path/filepath"
	"strings"

	"colprofile/ports"
)

// Title heads the Markdown and HTML reports
const Title = "Column profile"

// ForPath picks the writer for an output file from its extension. Unknown
// extensions fall back to CSV.
func ForPath(path string) ports.ReportWriter {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return NewXLSXWriter()
	case ".md", ".markdown":
		return NewMarkdownWriter()
	case ".html", ".htm":
		return NewHTMLWriter()
	default:
		return NewCSVWriter()
	}
}
