package profile

// Chunk is a bounded batch of consecutive rows from one file, stored column
// major: Cells[i] holds every value of Columns[i] in row order.
type Chunk struct {
	Index   int
	Columns []string
	Cells   [][]Cell
}

// NewChunk allocates an empty chunk with room for capacity rows per column
func NewChunk(index int, columns []string, capacity int) *Chunk {
	cells := make([][]Cell, len(columns))
	for i := range cells {
		cells[i] = make([]Cell, 0, capacity)
	}
	return &Chunk{Index: index, Columns: columns, Cells: cells}
}

// AppendRow adds one row. Missing trailing values are stored as nulls.
func (c *Chunk) AppendRow(row []Cell) {
	for i := range c.Columns {
		if i < len(row) {
			c.Cells[i] = append(c.Cells[i], row[i])
		} else {
			c.Cells[i] = append(c.Cells[i], NullCell())
		}
	}
}

// Len returns the number of rows in the chunk
func (c *Chunk) Len() int {
	if len(c.Cells) == 0 {
		return 0
	}
	return len(c.Cells[0])
}

// Column returns the cells for a column name
func (c *Chunk) Column(name string) ([]Cell, bool) {
	for i, col := range c.Columns {
		if col == name {
			return c.Cells[i], true
		}
	}
	return nil, false
}
