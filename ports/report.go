package ports

import (
	"io"

	"colprofile/domain/profile"
)

// ReportWriter serializes report rows in one output format
type ReportWriter interface {
	Write(w io.Writer, rows []profile.ReportRow) error
	Format() string
}

// ReportWriterFactory picks the writer for an output path
type ReportWriterFactory func(path string) ReportWriter
