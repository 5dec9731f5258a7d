package testkit

import (
	"bytes"
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/xuri/excelize/v2"
)

// TestKit writes fixture files into a per-test temporary directory
type TestKit struct {
	t   testing.TB
	dir string
}

// New creates a kit rooted at t.TempDir()
func New(t testing.TB) *TestKit {
	t.Helper()
	return &TestKit{t: t, dir: t.TempDir()}
}

// Dir returns the fixture directory
func (k *TestKit) Dir() string {
	return k.dir
}

// Path returns the absolute path of a fixture name
func (k *TestKit) Path(name string) string {
	return filepath.Join(k.dir, name)
}

// WriteFile writes raw content and returns the file path
func (k *TestKit) WriteFile(name, content string) string {
	k.t.Helper()
	path := k.Path(name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		k.t.Fatalf("failed to create fixture dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		k.t.Fatalf("failed to write fixture %s: %v", name, err)
	}
	return path
}

// WriteCSV encodes header and rows with encoding/csv
func (k *TestKit) WriteCSV(name string, header []string, rows [][]string) string {
	k.t.Helper()
	return k.WriteFile(name, EncodeCSV(header, rows, ','))
}

// WriteTSV encodes header and rows tab separated
func (k *TestKit) WriteTSV(name string, header []string, rows [][]string) string {
	k.t.Helper()
	return k.WriteFile(name, EncodeCSV(header, rows, '\t'))
}

// WriteGzip writes content gzip compressed
func (k *TestKit) WriteGzip(name, content string) string {
	k.t.Helper()
	return k.writeCompressed(name, content, func(w io.Writer) (io.WriteCloser, error) {
		return gzip.NewWriter(w), nil
	})
}

// WriteZstd writes content zstd compressed
func (k *TestKit) WriteZstd(name, content string) string {
	k.t.Helper()
	return k.writeCompressed(name, content, func(w io.Writer) (io.WriteCloser, error) {
		return zstd.NewWriter(w)
	})
}

// WriteLZ4 writes content as an lz4 frame
func (k *TestKit) WriteLZ4(name, content string) string {
	k.t.Helper()
	return k.writeCompressed(name, content, func(w io.Writer) (io.WriteCloser, error) {
		return lz4.NewWriter(w), nil
	})
}

func (k *TestKit) writeCompressed(name, content string, open func(io.Writer) (io.WriteCloser, error)) string {
	k.t.Helper()
	var buf bytes.Buffer
	zw, err := open(&buf)
	if err != nil {
		k.t.Fatalf("failed to create compressor: %v", err)
	}
	if _, err := io.WriteString(zw, content); err != nil {
		k.t.Fatalf("failed to compress fixture %s: %v", name, err)
	}
	if err := zw.Close(); err != nil {
		k.t.Fatalf("failed to finish fixture %s: %v", name, err)
	}
	return k.WriteFile(name, buf.String())
}

// WriteXLSX writes a single-sheet workbook; values go in as typed cells
func (k *TestKit) WriteXLSX(name string, header []string, rows [][]interface{}) string {
	k.t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	sw, err := f.NewStreamWriter(sheet)
	if err != nil {
		k.t.Fatalf("failed to create stream writer: %v", err)
	}

	headerRow := make([]interface{}, len(header))
	for i, h := range header {
		headerRow[i] = h
	}
	all := append([][]interface{}{headerRow}, rows...)
	for i, row := range all {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := sw.SetRow(cell, row); err != nil {
			k.t.Fatalf("failed to write row %d: %v", i+1, err)
		}
	}
	if err := sw.Flush(); err != nil {
		k.t.Fatalf("failed to flush workbook: %v", err)
	}

	path := k.Path(name)
	if err := f.SaveAs(path); err != nil {
		k.t.Fatalf("failed to save workbook %s: %v", name, err)
	}
	return path
}

// EncodeCSV renders header and rows with the given delimiter
func EncodeCSV(header []string, rows [][]string, comma rune) string {
	var sb strings.Builder
	w := csv.NewWriter(&sb)
	w.Comma = comma
	w.Write(header)
	w.WriteAll(rows)
	return sb.String()
}
