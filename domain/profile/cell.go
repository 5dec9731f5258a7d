package profile

// CellKind is the parsed kind of a single cell
type CellKind uint8

const (
	CellNull CellKind = iota
	CellNumber
	CellText
	CellBool
)

// String returns the kind name
func (k CellKind) String() string {
	switch k {
	case CellNull:
		return "null"
	case CellNumber:
		return "number"
	case CellText:
		return "text"
	case CellBool:
		return "bool"
	}
	return "unknown"
}

// Cell is one typed value of a chunk. Raw keeps the source text so a numeric
// looking value can still be measured as text.
type Cell struct {
	Kind CellKind
	Raw  string
	Num  float64
}

// NullCell returns an absent value
func NullCell() Cell {
	return Cell{Kind: CellNull}
}

// NumberCell returns a numeric cell
func NumberCell(raw string, n float64) Cell {
	return Cell{Kind: CellNumber, Raw: raw, Num: n}
}

// TextCell returns a text cell
func TextCell(raw string) Cell {
	return Cell{Kind: CellText, Raw: raw}
}

// BoolCell returns a boolean literal cell; Num holds 1 for true and 0 for false
func BoolCell(raw string, v bool) Cell {
	c := Cell{Kind: CellBool, Raw: raw}
	if v {
		c.Num = 1
	}
	return c
}

// IsNull reports whether the cell is absent
func (c Cell) IsNull() bool {
	return c.Kind == CellNull
}
