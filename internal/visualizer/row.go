package visualizer

import "strings"

// rowGlyphs is the eight-step ramp used by the single-row display.
var rowGlyphs = []rune("▁▂▃▄▅▆▇█")

// Row draws every band as one glyph on a single centered line.
type Row struct{}

// NewRow creates the single-row renderer.
func NewRow() *Row {
	return &Row{}
}

func (r *Row) Name() string { return "row" }

func (r *Row) Render(s Surface, values []float64) {
	rows, cols := s.Size()
	text := RowString(values)
	width := len([]rune(text))
	putString(s, rows, cols, rows/2, max(0, (cols-width)/2), text)
}

// RowGlyph maps a level in [0,1] to one of eight glyphs.
func RowGlyph(v float64) rune {
	idx := int(v * float64(len(rowGlyphs)))
	idx = max(0, min(idx, len(rowGlyphs)-1))
	return rowGlyphs[idx]
}

// RowString renders values as glyphs separated by single spaces.
func RowString(values []float64) string {
	var sb strings.Builder
	for i, v := range values {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteRune(RowGlyph(v))
	}
	return sb.String()
}
