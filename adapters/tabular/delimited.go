package tabular

import (
	"bufio"
	"context"
	"encoding/csv"
	"errors"
	"io"
	"os"
	"unicode/utf8"

	"colprofile/adapters/datareadiness/coercer"
	"colprofile/domain/core"
	"colprofile/domain/profile"
	"colprofile/ports"
)

// delimitedSource reads a CSV or TSV file one chunk at a time
type delimitedSource struct {
	path      string
	file      *os.File
	release   func() error
	reader    *csv.Reader
	coercer   *coercer.TypeCoercer
	columns   []string
	chunkSize int
	index     int
	row       []profile.Cell
	done      bool
	closed    bool
}

func (s *Scanner) openDelimited(path string, kind FileKind, chunkSize int) (ports.ChunkSource, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, core.NewFileAccessError(path, err)
	}

	stream, release, err := decompress(bufio.NewReaderSize(file, 64*1024), kind.Compression)
	if err != nil {
		file.Close()
		return nil, core.NewFileAccessError(path, err)
	}

	reader := csv.NewReader(stream)
	reader.Comma = kind.delimiter()
	reader.LazyQuotes = s.config.LazyQuotes
	reader.FieldsPerRecord = -1
	reader.ReuseRecord = true

	src := &delimitedSource{
		path:      path,
		file:      file,
		release:   release,
		reader:    reader,
		coercer:   s.coercer,
		chunkSize: chunkSize,
	}

	header, err := reader.Read()
	if err != nil {
		src.Close()
		if errors.Is(err, io.EOF) {
			err = core.ErrNoColumns
		}
		return nil, core.NewFileAccessError(path, err)
	}
	if err := validateRecord(reader, header); err != nil {
		src.Close()
		return nil, core.NewFileAccessError(path, err)
	}
	src.columns = normalizeHeaders(header)

	return src, nil
}

func (d *delimitedSource) Path() string {
	return d.path
}

func (d *delimitedSource) Columns() []string {
	out := make([]string, len(d.columns))
	copy(out, d.columns)
	return out
}

// Next reads up to chunkSize records. Short records are padded with nulls;
// records wider than the header fail the file.
func (d *delimitedSource) Next(ctx context.Context) (*profile.Chunk, error) {
	if d.closed {
		return nil, core.NewFileAccessError(d.path, os.ErrClosed)
	}
	if d.done {
		return nil, io.EOF
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	chunk := profile.NewChunk(d.index, d.columns, min(d.chunkSize, initialChunkCapacity))
	for chunk.Len() < d.chunkSize {
		record, err := d.reader.Read()
		if errors.Is(err, io.EOF) {
			d.done = true
			break
		}
		if err != nil {
			return nil, core.NewFileAccessError(d.path, err)
		}
		if len(record) > len(d.columns) {
			line, _ := d.reader.FieldPos(0)
			return nil, core.NewFileAccessError(d.path, core.NewTooManyFieldsError(line, len(d.columns), len(record)))
		}
		if err := validateRecord(d.reader, record); err != nil {
			return nil, core.NewFileAccessError(d.path, err)
		}

		d.row = d.coercer.ParseRow(d.row, record)
		chunk.AppendRow(d.row)
	}

	if chunk.Len() == 0 {
		return nil, io.EOF
	}
	d.index++
	return chunk, nil
}

// validateRecord rejects fields that are not valid UTF-8, naming the line
// of the first bad field
func validateRecord(reader *csv.Reader, record []string) error {
	for i, field := range record {
		if !utf8.ValidString(field) {
			line, _ := reader.FieldPos(i)
			return core.NewInvalidEncodingError(line)
		}
	}
	return nil
}

// Close releases the decompressor and the file handle
func (d *delimitedSource) Close() error {
	if d.closed {
		return nil
	}
	d.closed = true
	return errors.Join(d.release(), d.file.Close())
}
