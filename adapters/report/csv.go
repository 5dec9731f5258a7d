package report

import (
	"encoding/csv"
	"fmt"
	"io"

	"colprofile/domain/profile"
)

// CSVWriter writes the report as comma separated values with a header row
type CSVWriter struct{}

// NewCSVWriter creates a CSV report writer
func NewCSVWriter() *CSVWriter {
	return &CSVWriter{}
}

func (c *CSVWriter) Format() string {
	return "csv"
}

func (c *CSVWriter) Write(w io.Writer, rows []profile.ReportRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(profile.ReportHeader); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, row := range rows {
		if err := cw.Write(row.Cells()); err != nil {
			return fmt.Errorf("failed to write csv row for %s: %w", row.File, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
