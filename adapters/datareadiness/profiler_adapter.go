package datareadiness

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"colprofile/adapters/datareadiness/coercer"
	"colprofile/domain/profile"
	"colprofile/internal"
	"colprofile/ports"
)

// ProfilerAdapter implements ProfilerPort by folding every chunk of a file
// into running per-column statistics
type ProfilerAdapter struct {
	scanner ports.ScannerPort
	logger  *internal.Logger
}

// NewProfilerAdapter creates a new profiler adapter; a nil logger discards output
func NewProfilerAdapter(scanner ports.ScannerPort, logger *internal.Logger) *ProfilerAdapter {
	if logger == nil {
		logger = internal.NewNopLogger()
	}
	return &ProfilerAdapter{scanner: scanner, logger: logger}
}

// AnalyzeFile opens path and analyzes it. The source is always closed.
func (p *ProfilerAdapter) AnalyzeFile(ctx context.Context, path string, chunkSize int) (analysis *profile.FileAnalysis, err error) {
	if p.scanner == nil {
		return nil, fmt.Errorf("profiler has no scanner configured")
	}

	source, err := p.scanner.Open(path, chunkSize)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := source.Close(); cerr != nil && err == nil {
			analysis, err = nil, cerr
		}
	}()

	return p.Analyze(ctx, source)
}

// Analyze consumes every chunk of source. A column's type is fixed by the
// first chunk holding a non-null value for it; later chunks are summarized
// against that type. Any error discards the partial analysis.
func (p *ProfilerAdapter) Analyze(ctx context.Context, source ports.ChunkSource) (*profile.FileAnalysis, error) {
	start := time.Now()
	analysis := profile.NewFileAnalysis()
	chunks := 0

	for {
		chunk, err := source.Next(ctx)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		p.foldChunk(analysis, chunk)
		analysis.RowCount += int64(chunk.Len())
		chunks++
	}

	// header-only files still report their columns
	for _, column := range source.Columns() {
		if _, ok := analysis.Get(column); !ok {
			analysis.Put(column, profile.ColumnStats{Type: profile.TypeUnresolved})
		}
	}

	analysis.Each(func(_ string, s *profile.ColumnStats) {
		s.Finalize()
	})

	p.logger.Debug("[Profiler] %s: %d rows, %d columns in %d chunks (%v)",
		source.Path(), analysis.RowCount, analysis.Len(), chunks, time.Since(start))
	return analysis, nil
}

func (p *ProfilerAdapter) foldChunk(analysis *profile.FileAnalysis, chunk *profile.Chunk) {
	for i, column := range chunk.Columns {
		cells := chunk.Cells[i]

		typ := profile.TypeUnresolved
		if existing, ok := analysis.Get(column); ok {
			typ = existing.Type
		}
		if typ == profile.TypeUnresolved {
			typ = coercer.ClassifyColumn(cells)
		}

		analysis.Put(column, profile.Summarize(cells, typ))
	}
}
