package report

import (
	"fmt"
	"io"
	"math"

	"github.com/xuri/excelize/v2"

	"colprofile/domain/profile"
)

// SheetName is the worksheet holding the XLSX report
const SheetName = "Profile"

// XLSXWriter writes the report as a single-sheet workbook. Numeric bounds
// and counts are stored as numbers, empty fields as blank cells.
type XLSXWriter struct{}

// NewXLSXWriter creates an XLSX report writer
func NewXLSXWriter() *XLSXWriter {
	return &XLSXWriter{}
}

func (x *XLSXWriter) Format() string {
	return "xlsx"
}

func (x *XLSXWriter) Write(w io.Writer, rows []profile.ReportRow) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	sw, err := f.NewStreamWriter(SheetName)
	if err != nil {
		return fmt.Errorf("failed to create stream writer: %w", err)
	}

	header := make([]interface{}, len(profile.ReportHeader))
	for i, h := range profile.ReportHeader {
		header[i] = h
	}
	if err := sw.SetRow("A1", header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := sw.SetRow(cell, xlsxValues(row)); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	if err := sw.Flush(); err != nil {
		return fmt.Errorf("failed to flush workbook: %w", err)
	}
	return f.Write(w)
}

// xlsxValues maps a row to typed cells; nil leaves a cell blank
func xlsxValues(row profile.ReportRow) []interface{} {
	values := []interface{}{row.File, row.Column, nil, nil, nil, nil, nil}
	values[2] = xlsxBound(row.Min, row.Boolean)
	values[3] = xlsxBound(row.Max, row.Boolean)
	if row.MaxLength != nil {
		values[4] = *row.MaxLength
	}
	if row.NullValues != nil {
		values[5] = *row.NullValues
	}
	if row.Notes != "" {
		values[6] = row.Notes
	}
	return values
}

// xlsxBound keeps finite bounds numeric and boolean bounds boolean; a sheet
// cannot hold infinities, so those are written as text
func xlsxBound(v *float64, boolean bool) interface{} {
	switch {
	case v == nil:
		return nil
	case boolean:
		return *v != 0
	case math.IsInf(*v, 0):
		return profile.FormatNumber(v)
	default:
		return *v
	}
}
