package ports

import (
	"context"

	"colprofile/domain/profile"
)

// ChunkSource is a lazy, forward-only sequence of chunks read from one file.
// It is not restartable; Close releases the underlying handle and may be
// called more than once.
type ChunkSource interface {
	Path() string
	Columns() []string

	// Next returns the next chunk, or io.EOF once every row has been read
	Next(ctx context.Context) (*profile.Chunk, error)

	Close() error
}

// ScannerPort opens chunk sources for files
type ScannerPort interface {
	Open(path string, chunkSize int) (ChunkSource, error)

	// Supports reports whether the file name has a readable format
	Supports(name string) bool
}
