package ports

import (
	"context"

	"colprofile/domain/profile"
)

// ProfilerPort computes per-column statistics for tabular files
type ProfilerPort interface {
	// Analyze consumes the whole chunk sequence of one source
	Analyze(ctx context.Context, source ChunkSource) (*profile.FileAnalysis, error)

	// AnalyzeFile opens path with the given chunk size and analyzes it
	AnalyzeFile(ctx context.Context, path string, chunkSize int) (*profile.FileAnalysis, error)
}
