package visualizer

import "math"

// Layout is the geometry of the square bar display.
type Layout struct {
	Rows      int
	Cols      int
	Bands     int
	Side      int // edge of the square drawing area
	BarHeight int // cells available to each bar
	BarWidth  int // columns per band
	UsedWidth int // BarWidth * Bands
	OriginX   int // first bar column
	OriginY   int // top row of the bar area
}

// ComputeLayout fits bands bars into the largest square the terminal allows
// and centers it. Bars narrow to one column rather than overflow when there
// are more bands than the square is wide.
func ComputeLayout(rows, cols, bands int) Layout {
	side := max(4, min(rows-2, cols-2))
	barW := max(1, side/max(1, bands))
	barH := side - 1
	used := barW * bands

	return Layout{
		Rows:      rows,
		Cols:      cols,
		Bands:     bands,
		Side:      side,
		BarHeight: barH,
		BarWidth:  barW,
		UsedWidth: used,
		OriginX:   (cols - used) / 2,
		OriginY:   (rows - barH) / 2,
	}
}

// BaselineRow is the row holding the underscore rule below the bars.
func (l Layout) BaselineRow() int {
	return l.OriginY + l.BarHeight
}

// CaptionRow is the row of the status caption, or -1 when there is no room
// above the bars.
func (l Layout) CaptionRow() int {
	if l.OriginY < 1 {
		return -1
	}
	return l.OriginY - 1
}

// BarCells converts a level to a bar height in whole cells.
func (l Layout) BarCells(v float64) int {
	h := int(math.Round(v * float64(l.BarHeight)))
	return max(0, min(h, l.BarHeight))
}
