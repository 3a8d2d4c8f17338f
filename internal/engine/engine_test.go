package engine

import (
	"net"
	"syscall"
	"testing"
	"time"

	"github.com/olivier-w/eqviz/internal/bands"
	"github.com/olivier-w/eqviz/internal/listener"
	"github.com/olivier-w/eqviz/internal/logger"
	"github.com/olivier-w/eqviz/internal/visualizer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

func newTestEngine(src *tickSource) (*Engine, *logger.Buffer) {
	log := logger.NewBuffer()
	e := New(src, Options{
		Addr:     "0.0.0.0:31337",
		FPS:      30,
		Smoother: bands.NewExponential(bands.DefaultAttack, bands.DefaultDecay),
		Renderer: visualizer.NewSquare(),
		Logger:   log,
	})
	return e, log
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "waiting", Waiting.String())
	assert.Equal(t, "running", Running.String())
	assert.Equal(t, "terminated", Terminated.String())
	assert.Equal(t, "unknown", State(9).String())
}

func TestNewFillsDefaults(t *testing.T) {
	e := New(&tickSource{}, Options{})
	assert.Equal(t, 30, e.FPS())
	assert.Equal(t, Waiting, e.State())
	assert.Equal(t, 0, e.BandCount())
	assert.Nil(t, e.levels())
}

func TestStepStaysWaitingWithoutFrames(t *testing.T) {
	src := &tickSource{batches: [][][]byte{{[]byte("junk")}}}
	e, _ := newTestEngine(src)

	require.NoError(t, e.Step(t0))
	require.NoError(t, e.Step(t0.Add(time.Second)))
	assert.Equal(t, Waiting, e.State())
	assert.Equal(t, 0, e.BandCount())

	g := visualizer.NewGrid(5, 80)
	e.Draw(g)
	assert.Equal(t, visualizer.WaitingText("0.0.0.0:31337"), g.Line(0))
	assert.Equal(t, "", g.Line(1))
}

func TestWaitingReminderRepeats(t *testing.T) {
	e, log := newTestEngine(&tickSource{})

	require.NoError(t, e.Step(t0))
	require.NoError(t, e.Step(t0.Add(1900*time.Millisecond)))
	assert.False(t, e.Reminding())

	require.NoError(t, e.Step(t0.Add(2*time.Second)))
	assert.True(t, e.Reminding())
	assert.Equal(t, 1, log.Count("debug"))

	require.NoError(t, e.Step(t0.Add(3*time.Second)))
	assert.Equal(t, 1, log.Count("debug"), "timer restarts after each reminder")
	require.NoError(t, e.Step(t0.Add(4*time.Second)))
	assert.Equal(t, 2, log.Count("debug"))

	g := visualizer.NewGrid(5, 80)
	e.Draw(g)
	assert.Equal(t, visualizer.ReminderText, g.Line(1))
	assert.Equal(t, Waiting, e.State())
}

func TestFirstFrameRisesFromZero(t *testing.T) {
	src := &tickSource{}
	payload := []byte{0, 64, 128, 192, 255}
	src.push(payload)
	e, log := newTestEngine(src)

	require.NoError(t, e.Step(t0))
	require.Equal(t, Running, e.State())
	require.Equal(t, 5, e.BandCount())

	for i, b := range payload {
		assert.InDelta(t, float64(b)/255*0.6, e.levels()[i], 1e-12, "band %d", i)
	}
	assert.Equal(t, 1, log.Count("info"))
	assert.Equal(t, 1, e.Stats().Frames)
	assert.Equal(t, t0, e.Stats().LastSeen)
}

func TestIdleTickKeepsLevels(t *testing.T) {
	src := &tickSource{}
	src.push([]byte{255, 128})
	src.pushEmpty()
	src.pushEmpty()
	e, _ := newTestEngine(src)

	require.NoError(t, e.Step(t0))
	before := e.levels()
	require.NoError(t, e.Step(t0.Add(time.Second)))
	require.NoError(t, e.Step(t0.Add(5*time.Second)))
	assert.Equal(t, before, e.levels())
	assert.False(t, e.Reminding(), "no reminder once running")
}

func TestBurstAppliesOnlyNewestFrame(t *testing.T) {
	src := &tickSource{}
	src.push([]byte{255, 255}, []byte{10, 10}, []byte{0, 255})
	e, _ := newTestEngine(src)

	require.NoError(t, e.Step(t0))
	assert.Equal(t, []float64{0, 0.6}, e.levels())
	assert.Equal(t, 2, e.Stats().Stale)
	assert.Equal(t, 1, e.Stats().Frames)
}

func TestBandCountChangeReinitializes(t *testing.T) {
	src := &tickSource{}
	src.push([]byte{255, 255, 255, 255})
	src.push([]byte{255, 255, 255, 255})
	src.push([]byte{255, 0})
	e, log := newTestEngine(src)

	require.NoError(t, e.Step(t0))
	require.NoError(t, e.Step(t0))
	require.InDelta(t, 0.84, e.levels()[0], 1e-9)

	require.NoError(t, e.Step(t0))
	require.Equal(t, 2, e.BandCount())
	assert.InDelta(t, 0.6, e.levels()[0], 1e-9, "old level not carried over")
	assert.Equal(t, 0.0, e.levels()[1])
	assert.Equal(t, 1, e.Stats().Reinits)
	assert.Equal(t, 2, log.Count("info"))

	g := visualizer.NewGrid(24, 80)
	e.Draw(g)
	assert.Contains(t, g.String(), "bands=2")
}

func TestStepCountsNoise(t *testing.T) {
	src := &tickSource{}
	src.batches = [][][]byte{{[]byte("x"), []byte{'E', 'Q', 9, 1}}}
	e, _ := newTestEngine(src)

	require.NoError(t, e.Step(t0))
	assert.Equal(t, 2, e.Stats().Invalid)
	assert.Equal(t, Waiting, e.State())
}

func TestStepClosedSocketTerminates(t *testing.T) {
	src := &tickSource{err: net.ErrClosed}
	e, log := newTestEngine(src)

	err := e.Step(t0)
	require.ErrorIs(t, err, net.ErrClosed)
	assert.Equal(t, Terminated, e.State())
	assert.Equal(t, 1, log.Count("error"))

	assert.NoError(t, e.Step(t0), "terminated engine ignores further ticks")
}

// flakySource fails its first read with a transient error.
type flakySource struct{ calls int }

func (f *flakySource) ReadNonBlocking([]byte) (int, error) {
	f.calls++
	if f.calls == 1 {
		return 0, syscall.ECONNREFUSED
	}
	return 0, listener.ErrWouldBlock
}

func TestStepWarnsOnTransientReceiveError(t *testing.T) {
	log := logger.NewBuffer()
	e := New(&flakySource{}, Options{Addr: "0.0.0.0:31337", FPS: 30, Logger: log})

	require.NoError(t, e.Step(t0))
	assert.Equal(t, 1, e.Stats().Errors)
	assert.Equal(t, 1, log.Count("warn"))
	assert.Equal(t, Waiting, e.State())

	require.NoError(t, e.Step(t0.Add(time.Second)))
	assert.Equal(t, 1, log.Count("warn"), "quiet ticks log nothing")
}

func TestDrawAfterQuitIsBlank(t *testing.T) {
	src := &tickSource{}
	src.push([]byte{255})
	e, _ := newTestEngine(src)
	require.NoError(t, e.Step(t0))

	e.Quit()
	g := visualizer.NewGrid(10, 10)
	e.Draw(g)
	assert.Equal(t, Terminated, e.State())
	assert.Equal(t, "", g.Line(0)+g.Line(5)+g.Line(9))
}
