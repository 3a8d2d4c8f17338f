package visualizer

import (
	"fmt"
	"strings"
)

// Surface is a cell-addressable drawing target. Row 0, column 0 is the top
// left cell.
type Surface interface {
	Size() (rows, cols int)
	SetCell(row, col int, r rune)
}

// Renderer draws one frame of band levels, each in [0,1].
type Renderer interface {
	Name() string
	Render(s Surface, values []float64)
}

// Modes returns all available renderers.
func Modes() []Renderer {
	return []Renderer{
		NewSquare(),
		NewRow(),
	}
}

// ByName returns the renderer called name.
func ByName(name string) (Renderer, error) {
	var names []string
	for _, r := range Modes() {
		if strings.EqualFold(r.Name(), name) {
			return r, nil
		}
		names = append(names, r.Name())
	}
	return nil, fmt.Errorf("unknown style %q (want one of %s)", name, strings.Join(names, ", "))
}

// put writes r when (row, col) lies inside the surface. Terminals can shrink
// between a size query and the write, so every draw goes through here.
func put(s Surface, rows, cols, row, col int, r rune) {
	if row < 0 || row >= rows || col < 0 || col >= cols {
		return
	}
	s.SetCell(row, col, r)
}

// putString writes text left to right starting at (row, col), clipping at the
// surface edges.
func putString(s Surface, rows, cols, row, col int, text string) {
	for _, r := range text {
		put(s, rows, cols, row, col, r)
		col++
	}
}
