package tabular

import (
	"fmt"
	"path/filepath"

	"colprofile/adapters/datareadiness/coercer"
	"colprofile/domain/core"
	"colprofile/internal"
	"colprofile/ports"
)

// Scanner opens delimited and spreadsheet files as chunk sources
type Scanner struct {
	config  ScannerConfig
	coercer *coercer.TypeCoercer
	logger  *internal.Logger
}

// NewScanner creates a scanner; a nil logger discards output
func NewScanner(config ScannerConfig, logger *internal.Logger) *Scanner {
	if config.ChunkSize <= 0 {
		config.ChunkSize = DefaultChunkSize
	}
	if logger == nil {
		logger = internal.NewNopLogger()
	}
	return &Scanner{
		config:  config,
		coercer: coercer.NewTypeCoercer(config.CoercionConfig),
		logger:  logger,
	}
}

// Supports reports whether the file name has a readable format
func (s *Scanner) Supports(name string) bool {
	_, ok := DetectKind(name)
	return ok
}

// Open starts a chunk sequence over path. A chunk size of zero or less uses
// the configured default. Failures are *core.FileAccessError.
func (s *Scanner) Open(path string, chunkSize int) (ports.ChunkSource, error) {
	kind, ok := DetectKind(path)
	if !ok {
		return nil, core.NewFileAccessError(path, fmt.Errorf("%w: %s", core.ErrUnsupportedFile, filepath.Base(path)))
	}
	if chunkSize <= 0 {
		chunkSize = s.config.ChunkSize
	}

	var (
		src ports.ChunkSource
		err error
	)
	switch kind.Format {
	case FormatXLSX:
		src, err = s.openXLSX(path, chunkSize)
	default:
		src, err = s.openDelimited(path, kind, chunkSize)
	}
	if err != nil {
		return nil, err
	}

	s.logger.Debug("[Scanner] opened %s (%s, %d columns, %d rows per chunk)",
		path, describeKind(kind), len(src.Columns()), chunkSize)
	return src, nil
}

func describeKind(kind FileKind) string {
	if kind.Compression == CompressionNone {
		return string(kind.Format)
	}
	return string(kind.Format) + "+" + string(kind.Compression)
}
