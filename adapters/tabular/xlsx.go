package tabular

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/xuri/excelize/v2"

	"colprofile/adapters/datareadiness/coercer"
	"colprofile/domain/core"
	"colprofile/domain/profile"
	"colprofile/ports"
)

// xlsxSource streams rows of one worksheet in chunks
type xlsxSource struct {
	path      string
	workbook  *excelize.File
	rows      *excelize.Rows
	coercer   *coercer.TypeCoercer
	columns   []string
	chunkSize int
	index     int
	row       []profile.Cell
	done      bool
	closed    bool
}

func (s *Scanner) openXLSX(path string, chunkSize int) (ports.ChunkSource, error) {
	workbook, err := excelize.OpenFile(path)
	if err != nil {
		return nil, core.NewFileAccessError(path, err)
	}

	sheet := s.config.Sheet
	if sheet == "" {
		sheets := workbook.GetSheetList()
		if len(sheets) == 0 {
			workbook.Close()
			return nil, core.NewFileAccessError(path, core.ErrNoColumns)
		}
		sheet = sheets[0]
	}

	width, err := sheetWidth(workbook, sheet)
	if err != nil {
		workbook.Close()
		return nil, core.NewFileAccessError(path, fmt.Errorf("sheet %q: %w", sheet, err))
	}

	rows, err := workbook.Rows(sheet)
	if err != nil {
		workbook.Close()
		return nil, core.NewFileAccessError(path, fmt.Errorf("sheet %q: %w", sheet, err))
	}

	src := &xlsxSource{
		path:      path,
		workbook:  workbook,
		rows:      rows,
		coercer:   s.coercer,
		chunkSize: chunkSize,
	}

	header, err := src.nextRecord()
	if err != nil {
		src.Close()
		if errors.Is(err, io.EOF) {
			err = core.ErrNoColumns
		}
		return nil, core.NewFileAccessError(path, err)
	}
	if len(header) < width {
		header = append(header, make([]string, width-len(header))...)
	}
	src.columns = normalizeHeaders(header)

	return src, nil
}

// sheetWidth streams the sheet once and returns the widest row once trailing
// blanks are removed, so values under an unnamed trailing header get a column
func sheetWidth(workbook *excelize.File, sheet string) (int, error) {
	rows, err := workbook.Rows(sheet)
	if err != nil {
		return 0, err
	}
	defer rows.Close()

	width := 0
	for rows.Next() {
		cells, err := rows.Columns(excelize.Options{RawCellValue: true})
		if err != nil {
			return 0, err
		}
		width = max(width, len(trimTrailingEmpty(cells)))
	}
	return width, rows.Error()
}

// nextRecord returns the next non-empty row with trailing blanks removed
func (x *xlsxSource) nextRecord() ([]string, error) {
	for x.rows.Next() {
		cells, err := x.rows.Columns(excelize.Options{RawCellValue: true})
		if err != nil {
			return nil, err
		}
		cells = trimTrailingEmpty(cells)
		if len(cells) == 0 {
			continue
		}
		return cells, nil
	}
	if err := x.rows.Error(); err != nil {
		return nil, err
	}
	return nil, io.EOF
}

func (x *xlsxSource) Path() string {
	return x.path
}

func (x *xlsxSource) Columns() []string {
	out := make([]string, len(x.columns))
	copy(out, x.columns)
	return out
}

func (x *xlsxSource) Next(ctx context.Context) (*profile.Chunk, error) {
	if x.closed {
		return nil, core.NewFileAccessError(x.path, os.ErrClosed)
	}
	if x.done {
		return nil, io.EOF
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	chunk := profile.NewChunk(x.index, x.columns, min(x.chunkSize, initialChunkCapacity))
	for chunk.Len() < x.chunkSize {
		record, err := x.nextRecord()
		if errors.Is(err, io.EOF) {
			x.done = true
			break
		}
		if err != nil {
			return nil, core.NewFileAccessError(x.path, err)
		}

		x.row = x.coercer.ParseRow(x.row, record)
		chunk.AppendRow(x.row)
	}

	if chunk.Len() == 0 {
		return nil, io.EOF
	}
	x.index++
	return chunk, nil
}

func (x *xlsxSource) Close() error {
	if x.closed {
		return nil
	}
	x.closed = true
	return errors.Join(x.rows.Close(), x.workbook.Close())
}
