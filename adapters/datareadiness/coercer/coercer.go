package coercer

import (
	"math"
	"strconv"
	"strings"

	"colprofile/domain/profile"
)

// TypeCoercer turns raw cell text into typed cells. Parsing is per cell and
// never fails: anything that is not null, numeric or boolean is text.
type TypeCoercer struct {
	config CoercionConfig
	nulls  map[string]struct{}
	bools  map[string]bool
}

// CoercionConfig defines the tokens recognised while parsing cells
type CoercionConfig struct {
	NullTokens    []string `json:"null_tokens"`    // exact matches read as missing
	TrueLiterals  []string `json:"true_literals"`  // exact matches read as true
	FalseLiterals []string `json:"false_literals"` // exact matches read as false
	TrimNumbers   bool     `json:"trim_numbers"`   // accept surrounding blanks around numbers
}

// DefaultCoercionConfig returns the conventional missing-value markers of
// delimited data exports
func DefaultCoercionConfig() CoercionConfig {
	return CoercionConfig{
		NullTokens: []string{
			"", "#N/A", "#N/A N/A", "#NA", "-1.#IND", "-1.#QNAN", "-NaN", "-nan",
			"1.#IND", "1.#QNAN", "<NA>", "N/A", "NA", "NULL", "NaN", "None",
			"n/a", "nan", "null",
		},
		TrueLiterals:  []string{"True", "TRUE", "true"},
		FalseLiterals: []string{"False", "FALSE", "false"},
		TrimNumbers:   true,
	}
}

// NewTypeCoercer creates a coercer with the given config
func NewTypeCoercer(config CoercionConfig) *TypeCoercer {
	c := &TypeCoercer{
		config: config,
		nulls:  make(map[string]struct{}, len(config.NullTokens)),
		bools:  make(map[string]bool, len(config.TrueLiterals)+len(config.FalseLiterals)),
	}
	for _, tok := range config.NullTokens {
		c.nulls[tok] = struct{}{}
	}
	for _, tok := range config.TrueLiterals {
		c.bools[tok] = true
	}
	for _, tok := range config.FalseLiterals {
		c.bools[tok] = false
	}
	return c
}

// ParseCell deterministically converts raw text to a typed cell
func (c *TypeCoercer) ParseCell(raw string) profile.Cell {
	if _, ok := c.nulls[raw]; ok {
		return profile.NullCell()
	}

	if n, ok := c.tryParseNumeric(raw); ok {
		return profile.NumberCell(raw, n)
	}
	if isNaNLiteral(raw) {
		return profile.NullCell()
	}

	if v, ok := c.bools[raw]; ok {
		return profile.BoolCell(raw, v)
	}

	return profile.TextCell(raw)
}

// ParseRow parses a record into dst, reusing its capacity
func (c *TypeCoercer) ParseRow(dst []profile.Cell, record []string) []profile.Cell {
	dst = dst[:0]
	for _, raw := range record {
		dst = append(dst, c.ParseCell(raw))
	}
	return dst
}

// tryParseNumeric accepts plain decimal and scientific notation. Hex floats,
// digit separators and out-of-range values stay text.
func (c *TypeCoercer) tryParseNumeric(raw string) (float64, bool) {
	s := raw
	if c.config.TrimNumbers {
		s = strings.TrimSpace(s)
	}
	if s == "" {
		return 0, false
	}

	unsigned := strings.TrimLeft(s, "+-")
	if len(unsigned) > 1 && unsigned[0] == '0' && (unsigned[1] == 'x' || unsigned[1] == 'X') {
		return 0, false
	}
	if strings.ContainsRune(s, '_') {
		return 0, false
	}

	val, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(val) {
		return 0, false
	}
	return val, true
}

// isNaNLiteral matches any signed, any-case spelling of not-a-number
func isNaNLiteral(raw string) bool {
	s := strings.TrimLeft(strings.TrimSpace(raw), "+-")
	return strings.EqualFold(s, "nan")
}

// ClassifyColumn assigns one chunk's cells of a column to a type bucket:
// numeric when every non-null cell is a number or every non-null cell is a
// boolean literal, other when numbers and booleans are mixed, unresolved when
// all cells are null, and text as soon as one cell is text.
func ClassifyColumn(cells []profile.Cell) profile.ColumnType {
	var numbers, bools, texts int
	for _, cell := range cells {
		switch cell.Kind {
		case profile.CellNumber:
			numbers++
		case profile.CellBool:
			bools++
		case profile.CellText:
			texts++
		}
	}

	switch {
	case numbers+bools+texts == 0:
		return profile.TypeUnresolved
	case texts > 0:
		return profile.TypeText
	case numbers > 0 && bools > 0:
		return profile.TypeOther
	default:
		return profile.TypeNumeric
	}
}
