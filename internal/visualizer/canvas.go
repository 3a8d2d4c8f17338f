package visualizer

import "strings"

// Grid is an in-memory Surface. Writes outside the grid are dropped.
type Grid struct {
	rows  int
	cols  int
	cells [][]rune
}

// NewGrid creates a blank grid.
func NewGrid(rows, cols int) *Grid {
	g := &Grid{}
	g.Resize(rows, cols)
	return g
}

func (g *Grid) Size() (int, int) { return g.rows, g.cols }

// Resize changes the grid dimensions and blanks every cell.
func (g *Grid) Resize(rows, cols int) {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}
	g.rows, g.cols = rows, cols
	g.cells = make([][]rune, rows)
	for i := range g.cells {
		g.cells[i] = make([]rune, cols)
	}
	g.Clear()
}

func (g *Grid) SetCell(row, col int, r rune) {
	if row < 0 || row >= g.rows || col < 0 || col >= g.cols {
		return
	}
	g.cells[row][col] = r
}

// At returns the rune at (row, col), or a space outside the grid.
func (g *Grid) At(row, col int) rune {
	if row < 0 || row >= g.rows || col < 0 || col >= g.cols {
		return ' '
	}
	return g.cells[row][col]
}

// Clear blanks every cell.
func (g *Grid) Clear() {
	for _, line := range g.cells {
		for i := range line {
			line[i] = ' '
		}
	}
}

// Line returns row as a string with trailing blanks removed.
func (g *Grid) Line(row int) string {
	if row < 0 || row >= g.rows {
		return ""
	}
	return strings.TrimRight(string(g.cells[row]), " ")
}

// String joins all rows with newlines.
func (g *Grid) String() string {
	var sb strings.Builder
	for row := range g.rows {
		if row > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(g.Line(row))
	}
	return sb.String()
}
