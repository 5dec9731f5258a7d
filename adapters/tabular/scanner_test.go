package tabular

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"colprofile/domain/core"
	"colprofile/domain/profile"
	"colprofile/internal/testkit"
	"colprofile/ports"
)

func newTestScanner() *Scanner {
	return NewScanner(DefaultScannerConfig(), nil)
}

// drain reads every chunk from src and closes it
func drain(t *testing.T, src ports.ChunkSource) []*profile.Chunk {
	t.Helper()
	defer src.Close()

	var chunks []*profile.Chunk
	for {
		chunk, err := src.Next(context.Background())
		if errors.Is(err, io.EOF) {
			return chunks
		}
		require.NoError(t, err)
		chunks = append(chunks, chunk)
	}
}

func TestScanner_ChunksCSV(t *testing.T) {
	kit := testkit.New(t)
	path := kit.WriteCSV("orders.csv", []string{"id", "name"}, [][]string{
		{"1", "a"}, {"2", "b"}, {"3", "c"}, {"4", "d"}, {"5", "e"},
	})

	src, err := newTestScanner().Open(path, 2)
	require.NoError(t, err)
	assert.Equal(t, path, src.Path())
	assert.Equal(t, []string{"id", "name"}, src.Columns())

	chunks := drain(t, src)
	require.Len(t, chunks, 3)
	assert.Equal(t, []int{2, 2, 1}, []int{chunks[0].Len(), chunks[1].Len(), chunks[2].Len()})

	for i, chunk := range chunks {
		assert.Equal(t, i, chunk.Index)
	}

	ids, ok := chunks[2].Column("id")
	require.True(t, ok)
	assert.Equal(t, profile.CellNumber, ids[0].Kind)
	assert.Equal(t, 5.0, ids[0].Num)

	names, _ := chunks[0].Column("name")
	assert.Equal(t, "a", names[0].Raw)
	assert.Equal(t, "b", names[1].Raw)
}

func TestScanner_DefaultChunkSize(t *testing.T) {
	kit := testkit.New(t)
	path := kit.WriteCSV("one.csv", []string{"x"}, [][]string{{"1"}, {"2"}})

	for _, size := range []int{0, -3} {
		src, err := newTestScanner().Open(path, size)
		require.NoError(t, err)
		chunks := drain(t, src)
		require.Len(t, chunks, 1, "chunk size %d", size)
		assert.Equal(t, 2, chunks[0].Len())
	}
}

func TestScanner_TSVAndQuoting(t *testing.T) {
	kit := testkit.New(t)
	path := kit.WriteTSV("data.tsv", []string{"label", "value"}, [][]string{
		{"a,b", "1.5"},
		{"line\nbreak", "2"},
	})

	src, err := newTestScanner().Open(path, 10)
	require.NoError(t, err)
	chunks := drain(t, src)
	require.Len(t, chunks, 1)

	labels, _ := chunks[0].Column("label")
	assert.Equal(t, "a,b", labels[0].Raw)
	assert.Equal(t, "line\nbreak", labels[1].Raw)
}

func TestScanner_Compressed(t *testing.T) {
	content := "n,s\n1,x\n2,y\n3,z\n"
	kit := testkit.New(t)

	paths := map[string]string{
		"gzip": kit.WriteGzip("data.csv.gz", content),
		"zstd": kit.WriteZstd("data.csv.zst", content),
		"lz4":  kit.WriteLZ4("data.csv.lz4", content),
	}

	for name, path := range paths {
		t.Run(name, func(t *testing.T) {
			src, err := newTestScanner().Open(path, 2)
			require.NoError(t, err)
			chunks := drain(t, src)
			require.Len(t, chunks, 2)

			n, _ := chunks[1].Column("n")
			assert.Equal(t, 3.0, n[0].Num)
		})
	}
}

func TestScanner_CorruptCompressedStream(t *testing.T) {
	kit := testkit.New(t)
	path := kit.WriteFile("broken.csv.gz", "this is not gzip")

	_, err := newTestScanner().Open(path, 10)
	require.Error(t, err)
	assert.True(t, core.IsFileAccessError(err))
}

func TestScanner_XLSX(t *testing.T) {
	kit := testkit.New(t)
	path := kit.WriteXLSX("book.xlsx", []string{"qty", "item"}, [][]interface{}{
		{3, "pen"},
		{nil, "ink"},
		{7.5, "pad"},
	})

	src, err := newTestScanner().Open(path, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"qty", "item"}, src.Columns())

	chunks := drain(t, src)
	require.Len(t, chunks, 2)

	qty, _ := chunks[0].Column("qty")
	assert.Equal(t, profile.CellNumber, qty[0].Kind)
	assert.Equal(t, 3.0, qty[0].Num)
	assert.True(t, qty[1].IsNull())

	last, _ := chunks[1].Column("qty")
	assert.Equal(t, 7.5, last[0].Num)
}

func TestScanner_XLSXUnnamedTrailingColumns(t *testing.T) {
	kit := testkit.New(t)
	path := kit.WriteXLSX("wide.xlsx", []string{"id"}, [][]interface{}{
		{1},
		{2, nil, "late"},
	})

	src, err := newTestScanner().Open(path, 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"id", "Unnamed: 1", "Unnamed: 2"}, src.Columns())

	chunks := drain(t, src)
	require.Len(t, chunks, 1)
	assert.Equal(t, 2, chunks[0].Len())

	late, ok := chunks[0].Column("Unnamed: 2")
	require.True(t, ok)
	assert.True(t, late[0].IsNull())
	assert.Equal(t, "late", late[1].Raw)
}

func TestScanner_HeaderNormalization(t *testing.T) {
	kit := testkit.New(t)
	path := kit.WriteFile("h.csv", "\uFEFF id , ,id,name\n1,2,3,4\n")

	src, err := newTestScanner().Open(path, 10)
	require.NoError(t, err)
	defer src.Close()

	assert.Equal(t, []string{"id", "Unnamed: 1", "id.1", "name"}, src.Columns())
}

func TestScanner_RaggedRows(t *testing.T) {
	kit := testkit.New(t)

	t.Run("short rows are padded", func(t *testing.T) {
		path := kit.WriteFile("short.csv", "a,b,c\n1,2\n\n4,5,6\n")
		src, err := newTestScanner().Open(path, 10)
		require.NoError(t, err)

		chunks := drain(t, src)
		require.Len(t, chunks, 1)
		assert.Equal(t, 2, chunks[0].Len())

		c, _ := chunks[0].Column("c")
		assert.True(t, c[0].IsNull())
		assert.Equal(t, 6.0, c[1].Num)
	})

	t.Run("long rows fail", func(t *testing.T) {
		path := kit.WriteFile("long.csv", "a,b\n1,2\n1,2,3\n")
		src, err := newTestScanner().Open(path, 10)
		require.NoError(t, err)
		defer src.Close()

		_, err = src.Next(context.Background())
		require.Error(t, err)
		assert.True(t, core.IsFileAccessError(err))
		assert.ErrorIs(t, err, core.ErrTooManyFields)
		assert.Contains(t, err.Error(), "line 3")
	})
}

func TestScanner_InvalidUTF8Row(t *testing.T) {
	kit := testkit.New(t)
	path := kit.WriteFile("latin1.csv", "id,city\n1,Paris\n2,K\xf6ln\n")

	src, err := newTestScanner().Open(path, 10)
	require.NoError(t, err)
	defer src.Close()

	_, err = src.Next(context.Background())
	require.Error(t, err)
	assert.True(t, core.IsFileAccessError(err))
	assert.ErrorIs(t, err, core.ErrInvalidEncoding)
	assert.Contains(t, err.Error(), "line 3")
}

func TestScanner_OpenErrors(t *testing.T) {
	kit := testkit.New(t)
	scanner := newTestScanner()

	tests := []struct {
		name  string
		path  string
		cause error
	}{
		{"missing file", kit.Path("nope.csv"), nil},
		{"empty file", kit.WriteFile("empty.csv", ""), core.ErrNoColumns},
		{"blank lines only", kit.WriteFile("blank.csv", "\n\n"), core.ErrNoColumns},
		{"unsupported extension", kit.WriteFile("notes.txt", "a\n1\n"), core.ErrUnsupportedFile},
		{"binary header", kit.WriteFile("image.csv", "\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\xff\xfe\n"), core.ErrInvalidEncoding},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src, err := scanner.Open(tt.path, 10)
			require.Error(t, err)
			assert.Nil(t, src)
			assert.ErrorIs(t, err, core.ErrFileAccess)
			if tt.cause != nil {
				assert.ErrorIs(t, err, tt.cause)
			}
		})
	}
}

func TestScanner_HeaderOnly(t *testing.T) {
	kit := testkit.New(t)
	path := kit.WriteFile("header.csv", "a,b\n")

	src, err := newTestScanner().Open(path, 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, src.Columns())
	assert.Empty(t, drain(t, src))
}

func TestScanner_ContextCancelled(t *testing.T) {
	kit := testkit.New(t)
	path := kit.WriteCSV("c.csv", []string{"x"}, [][]string{{"1"}})

	src, err := newTestScanner().Open(path, 10)
	require.NoError(t, err)
	defer src.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = src.Next(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestScanner_CloseIsIdempotent(t *testing.T) {
	kit := testkit.New(t)
	path := kit.WriteCSV("c.csv", []string{"x"}, [][]string{{"1"}})

	src, err := newTestScanner().Open(path, 10)
	require.NoError(t, err)

	require.NoError(t, src.Close())
	require.NoError(t, src.Close())

	_, err = src.Next(context.Background())
	assert.Error(t, err)
}

func TestScanner_Supports(t *testing.T) {
	scanner := newTestScanner()

	assert.True(t, scanner.Supports("a.csv"))
	assert.True(t, scanner.Supports("A.CSV"))
	assert.True(t, scanner.Supports("a.tsv.gz"))
	assert.True(t, scanner.Supports("a.xlsx"))
	assert.False(t, scanner.Supports("a.xlsx.gz"))
	assert.False(t, scanner.Supports("a.json"))
	assert.False(t, scanner.Supports("csv"))
}
