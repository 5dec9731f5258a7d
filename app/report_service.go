package app

import (
	"bufio"
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	"golang.org/x/sync/errgroup"

	"colprofile/domain/core"
	"colprofile/domain/profile"
	"colprofile/internal"
	"colprofile/internal/errors"
	"colprofile/ports"
)

// ReportServiceConfig tunes a profiling run
type ReportServiceConfig struct {
	ChunkSize int `json:"chunk_size"`
	Workers   int `json:"workers"` // files profiled concurrently
}

// ReportService builds the column report for every supported file in a directory
type ReportService struct {
	profiler ports.ProfilerPort
	scanner  ports.ScannerPort
	writers  ports.ReportWriterFactory
	config   ReportServiceConfig
	logger   *internal.Logger
}

// RunSummary describes a finished run
type RunSummary struct {
	RunID   core.RunID           `json:"run_id"`
	Dir     string               `json:"dir"`
	Output  string               `json:"output"`
	Format  string               `json:"format"`
	Files   int                  `json:"files"`
	Failed  int                  `json:"failed"`
	Rows    int                  `json:"rows"` // report rows written
	Results []profile.FileResult `json:"results"`
	Elapsed time.Duration        `json:"elapsed"`
}

// NewReportService creates a report service; a nil logger discards output
func NewReportService(profiler ports.ProfilerPort, scanner ports.ScannerPort, writers ports.ReportWriterFactory, config ReportServiceConfig, logger *internal.Logger) *ReportService {
	if config.Workers <= 0 {
		config.Workers = 1
	}
	if logger == nil {
		logger = internal.NewNopLogger()
	}
	return &ReportService{
		profiler: profiler,
		scanner:  scanner,
		writers:  writers,
		config:   config,
		logger:   logger,
	}
}

// Run profiles every file in dir and writes the report to output. A file that
// fails becomes a single error row; only listing, cancellation and report
// write failures abort the run, and then nothing is written.
func (s *ReportService) Run(ctx context.Context, dir, output string) (*RunSummary, error) {
	start := time.Now()
	runID := core.NewRunID()
	logger := s.logger.With("run_id", runID.String())

	files, err := s.Discover(dir, output)
	if err != nil {
		return nil, err
	}
	logger.Info("[ReportService] found %d files in %s", len(files), dir)

	results, err := s.Profile(ctx, files)
	if err != nil {
		return nil, err
	}

	rows := Flatten(results)
	writer := s.writers(output)
	if err := writeReport(output, writer, rows); err != nil {
		return nil, err
	}

	summary := &RunSummary{
		RunID:   runID,
		Dir:     dir,
		Output:  output,
		Format:  writer.Format(),
		Files:   len(results),
		Rows:    len(rows),
		Results: results,
		Elapsed: time.Since(start),
	}
	for _, r := range results {
		if r.Failed() {
			summary.Failed++
		}
	}

	logger.Info("[ReportService] wrote %d rows for %d files (%d failed) to %s in %v",
		summary.Rows, summary.Files, summary.Failed, output, summary.Elapsed)
	return summary, nil
}

// Discover lists the supported regular files directly inside dir in lexical
// order. The file at exclude is skipped so a report written into dir is never
// read back as input.
func (s *ReportService) Discover(dir, exclude string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.DiscoveryFailed(dir, err)
	}

	var excluded os.FileInfo
	if exclude != "" {
		excluded, _ = os.Stat(exclude)
	}

	var files []string
	for _, entry := range entries {
		if !s.scanner.Supports(entry.Name()) {
			continue
		}
		path := filepath.Join(dir, entry.Name())

		info, err := os.Stat(path)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		if excluded != nil && os.SameFile(info, excluded) {
			s.logger.Debug("[ReportService] skipping report file %s", path)
			continue
		}
		files = append(files, path)
	}

	return files, nil
}

// Profile analyzes files with at most config.Workers in flight. Results keep
// the order of files.
func (s *ReportService) Profile(ctx context.Context, files []string) ([]profile.FileResult, error) {
	results := make([]profile.FileResult, len(files))

	var g errgroup.Group
	g.SetLimit(s.config.Workers)
	for i, path := range files {
		if ctx.Err() != nil {
			break
		}
		g.Go(func() error {
			results[i] = s.profileFile(ctx, path)
			return nil
		})
	}
	g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

func (s *ReportService) profileFile(ctx context.Context, path string) profile.FileResult {
	start := time.Now()
	result := profile.FileResult{
		Name: filepath.Base(path),
		Path: path,
	}
	if info, err := os.Stat(path); err == nil {
		result.Size = info.Size()
	}

	result.Analysis, result.Err = s.profiler.AnalyzeFile(ctx, path, s.config.ChunkSize)
	result.Duration = time.Since(start)

	if result.Err != nil {
		result.Analysis = nil
		s.logger.Warn("[ReportService] could not profile %s: %v", result.Name, result.Err)
		return result
	}

	s.logger.Debug("[ReportService] profiled %s (%s, %s rows, %d columns) in %v",
		result.Name, humanize.Bytes(uint64(result.Size)), humanize.Comma(result.Analysis.RowCount),
		result.Analysis.Len(), result.Duration)
	return result
}

// Flatten turns results into report rows: files in the given order, columns
// in first-observed order, one error row per failed file
func Flatten(results []profile.FileResult) []profile.ReportRow {
	var rows []profile.ReportRow
	for _, r := range results {
		rows = append(rows, profile.RowsFor(r)...)
	}
	return rows
}

// writeReport writes into a temporary file next to path and renames it into
// place once complete
func writeReport(path string, writer ports.ReportWriter, rows []profile.ReportRow) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return errors.ReportWriteFailed(path, err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	buf := bufio.NewWriter(tmp)
	if err = writer.Write(buf, rows); err != nil {
		return errors.ReportWriteFailed(path, err)
	}
	if err = buf.Flush(); err != nil {
		return errors.ReportWriteFailed(path, err)
	}
	if err = tmp.Chmod(0o644); err != nil {
		return errors.ReportWriteFailed(path, err)
	}
	if err = tmp.Close(); err != nil {
		return errors.ReportWriteFailed(path, err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return errors.ReportWriteFailed(path, err)
	}
	return nil
}
