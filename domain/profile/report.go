package profile

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ReportHeader lists the report columns in output order
var ReportHeader = []string{"File", "Column", "Min Value", "Max Value", "Max Length", "Null Values", "Notes"}

// ErrorColumn is the Column value of a row describing a failed file
const ErrorColumn = "Error"

// ReportRow is the flattened view of one (file, column, stats) triple
type ReportRow struct {
	File       string
	Column     string
	Min        *float64
	Max        *float64
	MaxLength  *int
	NullValues *int64
	Notes      string
	Boolean    bool // Min and Max are 0 or 1 standing for False and True
}

// Cells renders the row as report strings in ReportHeader order
func (r ReportRow) Cells() []string {
	nulls := ""
	if r.NullValues != nil {
		nulls = strconv.FormatInt(*r.NullValues, 10)
	}
	maxLen := ""
	if r.MaxLength != nil {
		maxLen = strconv.Itoa(*r.MaxLength)
	}
	return []string{r.File, r.Column, r.formatBound(r.Min), r.formatBound(r.Max), maxLen, nulls, r.Notes}
}

func (r ReportRow) formatBound(v *float64) string {
	if r.Boolean {
		return FormatBool(v)
	}
	return FormatNumber(v)
}

// IsError reports whether the row stands for a failed file
func (r ReportRow) IsError() bool {
	return r.Column == ErrorColumn && r.NullValues == nil
}

// FormatNumber renders a numeric bound; nil renders as an empty field.
// Integral values below 1e15 are written in plain notation and infinities
// as inf and -inf.
func FormatNumber(v *float64) string {
	if v == nil {
		return ""
	}
	f := *v
	if math.IsInf(f, 1) {
		return "inf"
	}
	if math.IsInf(f, -1) {
		return "-inf"
	}
	if f == math.Trunc(f) && math.Abs(f) < 1e15 {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// FormatBool renders a boolean bound held as 0 or 1; nil renders as an
// empty field
func FormatBool(v *float64) string {
	if v == nil {
		return ""
	}
	if *v != 0 {
		return "True"
	}
	return "False"
}

// RowsFor flattens one file result. A failed file yields a single error row.
func RowsFor(result FileResult) []ReportRow {
	if result.Err != nil {
		return []ReportRow{ErrorRow(result.Name, result.Err)}
	}
	if result.Analysis == nil {
		return nil
	}

	rows := make([]ReportRow, 0, result.Analysis.Len())
	result.Analysis.Each(func(column string, s *ColumnStats) {
		nulls := s.NullCount
		row := ReportRow{
			File:       result.Name,
			Column:     column,
			NullValues: &nulls,
			Notes:      notesFor(s),
		}
		switch s.Type {
		case TypeNumeric:
			row.Min, row.Max = s.Min, s.Max
			row.Boolean = s.Boolean
		case TypeText:
			row.MaxLength = s.MaxLength
		}
		rows = append(rows, row)
	})
	return rows
}

// ErrorRow builds the row reported for a file that could not be profiled
func ErrorRow(file string, err error) ReportRow {
	return ReportRow{
		File:   file,
		Column: ErrorColumn,
		Notes:  fmt.Sprintf("Error processing file: %v", err),
	}
}

func notesFor(s *ColumnStats) string {
	var notes []string
	if label := s.Label(); label != "" {
		notes = append(notes, label)
	}
	if s.Coerced > 0 {
		notes = append(notes, fmt.Sprintf("%d non-numeric values counted as null", s.Coerced))
	}
	if !s.HasValue() {
		notes = append(notes, "No non-null values")
	}
	return strings.Join(notes, "; ")
}
