package visualizer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSquareRenderGeometry(t *testing.T) {
	g := NewGrid(24, 80)
	values := []float64{0, 1, 0.5, 0, 0, 0, 0, 1}
	NewSquare().Render(g, values)

	l := ComputeLayout(24, 80, len(values))
	require.Equal(t, 32, l.OriginX)

	assert.Equal(t, strings.Repeat(" ", 32)+Caption(8), g.Line(0))
	assert.Equal(t, strings.Repeat(" ", 32)+strings.Repeat("_", 16), g.Line(l.BaselineRow()))

	// Band 0 is empty, band 1 full height, band 2 half height.
	for y := range l.BarHeight {
		row := l.BaselineRow() - 1 - y
		assert.Equal(t, ' ', g.At(row, 32), "band 0 row %d", row)
		assert.Equal(t, '█', g.At(row, 34), "band 1 row %d", row)
		assert.Equal(t, '█', g.At(row, 35), "band 1 row %d", row)
		if y < 11 {
			assert.Equal(t, '█', g.At(row, 36), "band 2 row %d", row)
		} else {
			assert.Equal(t, ' ', g.At(row, 36), "band 2 row %d", row)
		}
	}

	// Nothing outside the used width.
	assert.Equal(t, ' ', g.At(10, 31))
	assert.Equal(t, ' ', g.At(10, 48))
	assert.Equal(t, '█', g.At(10, 47))
}

func TestSquareOverwritesPreviousBars(t *testing.T) {
	g := NewGrid(24, 80)
	sq := NewSquare()

	sq.Render(g, []float64{1, 1})
	sq.Render(g, []float64{0, 0})

	l := ComputeLayout(24, 80, 2)
	for y := range l.BarHeight {
		row := l.BaselineRow() - 1 - y
		assert.Equal(t, ' ', g.At(row, l.OriginX))
	}
}

func TestSquareBandCountChangeRelayouts(t *testing.T) {
	g := NewGrid(24, 80)
	sq := NewSquare()

	sq.Render(g, make([]float64, 4))
	g.Clear()
	sq.Render(g, make([]float64, 11))

	l := ComputeLayout(24, 80, 11)
	base := g.Line(l.BaselineRow())
	assert.Equal(t, strings.Repeat(" ", l.OriginX)+strings.Repeat("_", l.UsedWidth), base)
	assert.Contains(t, g.Line(l.CaptionRow()), "bands=11")
}

func TestSquareCaptionSkippedWithoutRoom(t *testing.T) {
	g := NewGrid(4, 40)
	NewSquare().Render(g, []float64{1, 1})
	assert.NotContains(t, g.String(), "UDP EQ")
}
