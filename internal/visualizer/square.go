package visualizer

import "fmt"

const (
	barGlyph      = '█'
	baselineGlyph = '_'
)

// Square draws vertical bars inside a centered, roughly square area with a
// baseline rule underneath and a one-line caption above.
type Square struct{}

// NewSquare creates the square bar renderer.
func NewSquare() *Square {
	return &Square{}
}

func (q *Square) Name() string { return "square" }

func (q *Square) Render(s Surface, values []float64) {
	rows, cols := s.Size()
	l := ComputeLayout(rows, cols, len(values))

	if row := l.CaptionRow(); row >= 0 {
		putString(s, rows, cols, row, max(0, l.OriginX), Caption(len(values)))
	}

	base := l.BaselineRow()
	for x := range l.UsedWidth {
		put(s, rows, cols, base, l.OriginX+x, baselineGlyph)
	}

	for i, v := range values {
		h := l.BarCells(v)
		x0 := l.OriginX + i*l.BarWidth
		for y := range l.BarHeight {
			ch := ' '
			if y < h {
				ch = barGlyph
			}
			for dx := range l.BarWidth {
				put(s, rows, cols, base-1-y, x0+dx, ch)
			}
		}
	}
}

// Caption is the status line drawn above the square display.
func Caption(bands int) string {
	return fmt.Sprintf("UDP EQ (square TUI)  bands=%d  q:quit", bands)
}
