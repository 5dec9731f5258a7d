package profile

import "time"

// FileAnalysis maps column names to their statistics for one file, keeping
// columns in the order they were first observed.
type FileAnalysis struct {
	RowCount int64
	order    []string
	columns  map[string]*ColumnStats
}

// NewFileAnalysis creates an empty analysis
func NewFileAnalysis() *FileAnalysis {
	return &FileAnalysis{columns: make(map[string]*ColumnStats)}
}

// Get returns the stats of a column
func (a *FileAnalysis) Get(column string) (*ColumnStats, bool) {
	s, ok := a.columns[column]
	return s, ok
}

// Put adds stats for a column, merging them into any existing entry
func (a *FileAnalysis) Put(column string, s ColumnStats) *ColumnStats {
	if existing, ok := a.columns[column]; ok {
		existing.Merge(s)
		return existing
	}
	stored := s.clone()
	a.columns[column] = &stored
	a.order = append(a.order, column)
	return &stored
}

// Columns returns column names in first-observed order
func (a *FileAnalysis) Columns() []string {
	out := make([]string, len(a.order))
	copy(out, a.order)
	return out
}

// Len returns the number of columns
func (a *FileAnalysis) Len() int {
	return len(a.order)
}

// Each calls fn for every column in first-observed order
func (a *FileAnalysis) Each(fn func(column string, s *ColumnStats)) {
	for _, name := range a.order {
		fn(name, a.columns[name])
	}
}

// FileResult is the outcome of profiling one file: either an analysis or an
// error, never both.
type FileResult struct {
	Name     string        `json:"name"`
	Path     string        `json:"path"`
	Size     int64         `json:"size"`
	Analysis *FileAnalysis `json:"-"`
	Err      error         `json:"-"`
	Duration time.Duration `json:"duration"`
}

// Failed reports whether the file could not be profiled
func (r FileResult) Failed() bool {
	return r.Err != nil
}
