package mdtable

// Grid is a parsed Markdown table.
//
// Every row in Rows has exactly len(Header) cells when a header is present;
// short rows are padded at parse time. When LoadError is set the source file
// could not be read and Rows is empty.
type Grid struct {
	Header []string
	Rows   [][]string

	// Lines holds the 1-based source line of each data row, parallel to Rows.
	// Zero when the grid was not parsed from text.
	Lines []int

	SourcePath string
	LoadError  bool
}

// RowCount returns the number of data rows.
func (g *Grid) RowCount() int {
	if g == nil {
		return 0
	}
	return len(g.Rows)
}

// Columns returns the column count shared by all rows.
func (g *Grid) Columns() int {
	if g == nil {
		return 0
	}
	if len(g.Header) > 0 {
		return len(g.Header)
	}
	if len(g.Rows) > 0 {
		return len(g.Rows[0])
	}
	return 0
}

// Cell returns the content at (row, col), or "" when out of range.
func (g *Grid) Cell(row, col int) string {
	if g == nil || row < 0 || row >= len(g.Rows) {
		return ""
	}
	cells := g.Rows[row]
	if col < 0 || col >= len(cells) {
		return ""
	}
	return cells[col]
}

// Line returns the source line of a data row, or 0 if unknown.
func (g *Grid) Line(row int) int {
	if g == nil || row < 0 || row >= len(g.Lines) {
		return 0
	}
	return g.Lines[row]
}

// Equal reports whether two grids hold the same header and cells.
// Source metadata (path, line numbers) is not compared.
func (g *Grid) Equal(other *Grid) bool {
	if g == nil || other == nil {
		return g == other
	}
	if g.LoadError != other.LoadError {
		return false
	}
	if !equalRow(g.Header, other.Header) {
		return false
	}
	if len(g.Rows) != len(other.Rows) {
		return false
	}
	for i := range g.Rows {
		if !equalRow(g.Rows[i], other.Rows[i]) {
			return false
		}
	}
	return true
}

func equalRow(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
