package tabular

import (
	"path/filepath"
	"strings"
)

// Format is the tabular layout of a file
type Format string

const (
	FormatCSV  Format = "csv"
	FormatTSV  Format = "tsv"
	FormatXLSX Format = "xlsx"
)

// Compression is the stream compression wrapped around a delimited file
type Compression string

const (
	CompressionNone Compression = ""
	CompressionGzip Compression = "gzip"
	CompressionZstd Compression = "zstd"
	CompressionLZ4  Compression = "lz4"
)

// FileKind describes how a file has to be read
type FileKind struct {
	Format      Format
	Compression Compression
}

var compressionSuffixes = map[string]Compression{
	".gz":   CompressionGzip,
	".gzip": CompressionGzip,
	".zst":  CompressionZstd,
	".zstd": CompressionZstd,
	".lz4":  CompressionLZ4,
}

var formatSuffixes = map[string]Format{
	".csv":  FormatCSV,
	".tsv":  FormatTSV,
	".tab":  FormatTSV,
	".xlsx": FormatXLSX,
}

// DetectKind derives the file kind from the file name, case-insensitively.
// Compressed workbooks are not supported.
func DetectKind(name string) (FileKind, bool) {
	base := strings.ToLower(filepath.Base(name))

	kind := FileKind{Compression: CompressionNone}
	if comp, ok := compressionSuffixes[filepath.Ext(base)]; ok {
		kind.Compression = comp
		base = strings.TrimSuffix(base, filepath.Ext(base))
	}

	format, ok := formatSuffixes[filepath.Ext(base)]
	if !ok {
		return FileKind{}, false
	}
	if format == FormatXLSX && kind.Compression != CompressionNone {
		return FileKind{}, false
	}
	kind.Format = format
	return kind, true
}

// delimiter returns the field separator of a delimited format
func (k FileKind) delimiter() rune {
	if k.Format == FormatTSV {
		return '\t'
	}
	return ','
}
