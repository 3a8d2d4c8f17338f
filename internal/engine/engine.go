// Package engine runs the visualizer: it drains the socket, smooths the newest
// frame into the band state and draws it, once per tick.
package engine

import (
	"time"

	"github.com/olivier-w/eqviz/internal/bands"
	"github.com/olivier-w/eqviz/internal/listener"
	"github.com/olivier-w/eqviz/internal/logger"
	"github.com/olivier-w/eqviz/internal/packet"
	"github.com/olivier-w/eqviz/internal/visualizer"
)

// ReminderInterval is how long the waiting screen goes without a frame before
// the "still waiting" notice is shown again.
const ReminderInterval = 2 * time.Second

// State is the engine lifecycle.
type State uint8

const (
	Waiting State = iota
	Running
	Terminated
)

func (s State) String() string {
	switch s {
	case Waiting:
		return "waiting"
	case Running:
		return "running"
	case Terminated:
		return "terminated"
	}
	return "unknown"
}

// Stats accumulates datagram counts over the engine's lifetime.
type Stats struct {
	Frames   int // frames applied to the band state
	Stale    int // valid frames dropped because a newer one was in the same burst
	Invalid  int // foreign or malformed datagrams
	Errors   int // transient receive errors
	Reinits  int // band-count changes after the first frame
	LastSeen time.Time
}

// Options configures an Engine.
type Options struct {
	// Addr is shown on the waiting screen.
	Addr     string
	FPS      int
	Smoother bands.Smoother
	Renderer visualizer.Renderer
	Logger   logger.Logger
}

// Engine owns the band state and everything that mutates it. It is not safe
// for concurrent use; a single loop drives it.
type Engine struct {
	src      listener.Reader
	addr     string
	fps      int
	smoother bands.Smoother
	renderer visualizer.Renderer
	log      logger.Logger

	state     State
	buf       []byte
	bands     *bands.State
	waitSince time.Time
	reminder  bool
	stats     Stats

	now   func() time.Time
	sleep func(d time.Duration, done <-chan struct{})
}

// New creates an engine reading from src.
func New(src listener.Reader, opts Options) *Engine {
	if opts.FPS <= 0 {
		opts.FPS = 30
	}
	if opts.Smoother == nil {
		opts.Smoother = bands.NewExponential(bands.DefaultAttack, bands.DefaultDecay)
	}
	if opts.Renderer == nil {
		opts.Renderer = visualizer.NewSquare()
	}
	if opts.Logger == nil {
		opts.Logger = logger.Noop()
	}
	return &Engine{
		src:      src,
		addr:     opts.Addr,
		fps:      opts.FPS,
		smoother: opts.Smoother,
		renderer: opts.Renderer,
		log:      opts.Logger,
		buf:      make([]byte, packet.MaxLen),
		now:      time.Now,
		sleep:    sleep,
	}
}

// State returns the current lifecycle state.
func (e *Engine) State() State { return e.state }

// Stats returns the datagram counters.
func (e *Engine) Stats() Stats { return e.stats }

// FPS returns the target refresh rate.
func (e *Engine) FPS() int { return e.fps }

// BandCount returns the current number of bands, zero before the first frame.
func (e *Engine) BandCount() int {
	if e.bands == nil {
		return 0
	}
	return e.bands.Len()
}

// levels returns a copy of the current band levels.
func (e *Engine) levels() []float64 {
	if e.bands == nil {
		return nil
	}
	return append([]float64(nil), e.bands.Values()...)
}

// Reminding reports whether the waiting screen shows the "still waiting" line.
func (e *Engine) Reminding() bool { return e.reminder }

// Step drains the socket and applies the newest frame, if any. Ticks without a
// frame leave the band state untouched. The only error is a closed socket,
// after which the engine is Terminated.
func (e *Engine) Step(now time.Time) error {
	if e.state == Terminated {
		return nil
	}

	frame, ds, err := listener.Drain(e.src, e.buf)
	e.stats.Stale += ds.Stale
	e.stats.Invalid += ds.Invalid
	e.stats.Errors += ds.Errors
	if ds.Stale > 0 {
		e.log.Debug("dropped %d stale frames", ds.Stale)
	}
	if ds.Errors > 0 {
		e.log.Warn("receive error, retrying next tick (%d so far)", e.stats.Errors)
	}
	if err != nil {
		e.state = Terminated
		e.log.Error("socket closed: %v", err)
		return err
	}

	if frame == nil {
		if e.state == Waiting {
			e.tickWaiting(now)
		}
		return nil
	}

	if e.state == Waiting {
		e.bands = bands.NewState(0)
		e.state = Running
		e.log.Info("first frame: %d bands", len(frame))
	}

	prev := e.bands.Len()
	if bands.Apply(e.bands, frame, e.smoother) && prev != 0 {
		e.stats.Reinits++
		e.log.Info("band count changed from %d to %d", prev, len(frame))
	}
	e.stats.Frames++
	e.stats.LastSeen = now
	return nil
}

func (e *Engine) tickWaiting(now time.Time) {
	if e.waitSince.IsZero() {
		e.waitSince = now
		return
	}
	if now.Sub(e.waitSince) >= ReminderInterval {
		e.reminder = true
		e.waitSince = now
		e.log.Debug("still waiting for frames on %s", e.addr)
	}
}

// Draw renders the current state onto s. The caller clears s first.
func (e *Engine) Draw(s visualizer.Surface) {
	switch e.state {
	case Waiting:
		visualizer.DrawWaiting(s, e.addr, e.reminder)
	case Running:
		e.renderer.Render(s, e.bands.Values())
	}
}

// Quit moves the engine to Terminated.
func (e *Engine) Quit() {
	e.state = Terminated
}
