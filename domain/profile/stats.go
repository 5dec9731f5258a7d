package profile

import (
	"unicode/utf8"

	"github.com/montanaflynn/stats"
)

// ColumnType is the coarse classification bucket of a column
type ColumnType string

const (
	// TypeUnresolved marks a column that has shown no non-null value yet
	TypeUnresolved ColumnType = "unresolved"
	TypeNumeric    ColumnType = "numeric"
	TypeText       ColumnType = "text"
	TypeOther      ColumnType = "other"
)

// OtherTypeLabel is reported for columns that are neither numeric nor text
const OtherTypeLabel = "Non-numeric/non-string column"

// ColumnStats is the running aggregate for one column. A nil Min, Max or
// MaxLength means no value was ever observed. Boolean marks a numeric column
// whose every value was a boolean literal, held as 0 and 1.
type ColumnStats struct {
	Type      ColumnType `json:"type"`
	Min       *float64   `json:"min,omitempty"`
	Max       *float64   `json:"max,omitempty"`
	MaxLength *int       `json:"max_length,omitempty"`
	NullCount int64      `json:"null_count"`
	Count     int64      `json:"count"`   // non-null values that contributed
	Coerced   int64      `json:"coerced"` // non-null values counted as null
	Boolean   bool       `json:"boolean,omitempty"`
}

// Label returns the type label for Other columns and "" otherwise
func (s *ColumnStats) Label() string {
	if s.Type == TypeOther {
		return OtherTypeLabel
	}
	return ""
}

// HasValue reports whether any non-null value contributed to the stats
func (s *ColumnStats) HasValue() bool {
	return s.Count > 0
}

// Summarize computes the stats of one chunk's cells for the given column type.
// Cells that do not fit the type are counted as nulls and as coerced.
func Summarize(cells []Cell, typ ColumnType) ColumnStats {
	out := ColumnStats{Type: typ}

	switch typ {
	case TypeNumeric:
		values := make([]float64, 0, len(cells))
		var bools int
		for _, c := range cells {
			switch c.Kind {
			case CellNull:
				out.NullCount++
			case CellNumber:
				values = append(values, c.Num)
			case CellBool:
				values = append(values, c.Num)
				bools++
			default:
				out.NullCount++
				out.Coerced++
			}
		}
		out.Count = int64(len(values))
		out.Boolean = bools > 0 && bools == len(values)
		if min, err := stats.Min(values); err == nil {
			out.Min = &min
		}
		if max, err := stats.Max(values); err == nil {
			out.Max = &max
		}

	case TypeText:
		maxLen := -1
		for _, c := range cells {
			if c.IsNull() {
				out.NullCount++
				continue
			}
			out.Count++
			if n := utf8.RuneCountInString(c.Raw); n > maxLen {
				maxLen = n
			}
		}
		if maxLen >= 0 {
			out.MaxLength = &maxLen
		}

	case TypeOther:
		for _, c := range cells {
			if c.IsNull() {
				out.NullCount++
			} else {
				out.Count++
			}
		}

	default:
		out.Type = TypeUnresolved
		for _, c := range cells {
			out.NullCount++
			if !c.IsNull() {
				out.Coerced++
			}
		}
	}

	return out
}

// Merge folds another summary of the same column into s. A summary of a
// different type never changes s's type: its null count is added and its
// values are counted as coerced nulls.
func (s *ColumnStats) Merge(o ColumnStats) {
	switch {
	case s.Type == TypeUnresolved:
		nulls, coerced := s.NullCount, s.Coerced
		*s = o.clone()
		s.NullCount += nulls
		s.Coerced += coerced
		return
	case o.Type == TypeUnresolved:
		s.NullCount += o.NullCount
		s.Coerced += o.Coerced
		return
	case s.Type != o.Type:
		s.NullCount += o.NullCount + o.Count
		s.Coerced += o.Coerced + o.Count
		return
	}

	switch {
	case s.Count == 0:
		s.Boolean = o.Boolean
	case o.Count > 0:
		s.Boolean = s.Boolean && o.Boolean
	}
	s.NullCount += o.NullCount
	s.Coerced += o.Coerced
	s.Count += o.Count

	switch s.Type {
	case TypeNumeric:
		s.Min = pickFloat(s.Min, o.Min, func(a, b float64) bool { return b < a })
		s.Max = pickFloat(s.Max, o.Max, func(a, b float64) bool { return b > a })
	case TypeText:
		if o.MaxLength != nil && (s.MaxLength == nil || *o.MaxLength > *s.MaxLength) {
			n := *o.MaxLength
			s.MaxLength = &n
		}
	}
}

// Finalize resolves a column that never showed a value. It becomes numeric
// with no extrema, matching a column read entirely as missing numbers.
func (s *ColumnStats) Finalize() {
	if s.Type == TypeUnresolved {
		s.Type = TypeNumeric
	}
}

func (s ColumnStats) clone() ColumnStats {
	out := s
	if s.Min != nil {
		v := *s.Min
		out.Min = &v
	}
	if s.Max != nil {
		v := *s.Max
		out.Max = &v
	}
	if s.MaxLength != nil {
		v := *s.MaxLength
		out.MaxLength = &v
	}
	return out
}

// pickFloat returns a copy of b when replace(a, b) holds or a is unset
func pickFloat(a, b *float64, replace func(a, b float64) bool) *float64 {
	if b == nil {
		return a
	}
	if a == nil || replace(*a, *b) {
		v := *b
		return &v
	}
	return a
}
