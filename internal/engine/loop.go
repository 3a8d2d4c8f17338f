package engine

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/olivier-w/eqviz/internal/errors"
	"github.com/olivier-w/eqviz/internal/screen"
	"github.com/olivier-w/eqviz/internal/visualizer"
)

// FrameInterval is the tick length for fps frames per second.
func FrameInterval(fps int) time.Duration {
	if fps <= 0 {
		fps = 1
	}
	return time.Second / time.Duration(fps)
}

// Pace returns how long to sleep after a tick whose work took elapsed.
func Pace(interval, elapsed time.Duration) time.Duration {
	return max(0, interval-elapsed)
}

// Run drives the engine against term until a quit key, ctx cancellation or a
// fatal I/O error. Each tick drains, draws, polls the keyboard and then sleeps
// for whatever is left of the frame interval. The caller owns term and must
// Close it.
func (e *Engine) Run(ctx context.Context, term screen.Terminal) error {
	interval := FrameInterval(e.fps)

	for {
		if ctx.Err() != nil {
			e.Quit()
			return nil
		}
		start := e.now()

		if err := e.Step(start); err != nil {
			return errors.WrapWithCode(err, errors.ErrNetwork,
				"Lost the UDP socket",
				"The listening socket was closed while running")
		}

		term.Clear()
		e.Draw(term)
		if err := term.Show(); err != nil {
			e.Quit()
			return errors.WrapWithCode(err, errors.ErrTerminal, "Lost the terminal", "")
		}

		key, err := term.PollKey()
		if err != nil {
			e.Quit()
			return errors.WrapWithCode(err, errors.ErrTerminal, "Lost the terminal", "")
		}
		if screen.IsQuit(key) {
			e.Quit()
			return nil
		}

		e.sleep(Pace(interval, e.now().Sub(start)), ctx.Done())
	}
}

// RunLine drives the engine as a plain line display: every tick rewrites one
// line of w with the row glyphs, returning to the line start instead of
// scrolling. It stops when ctx is cancelled.
func (e *Engine) RunLine(ctx context.Context, w io.Writer) error {
	interval := FrameInterval(e.fps)

	for {
		if ctx.Err() != nil {
			if e.state == Running {
				fmt.Fprintln(w)
			}
			e.Quit()
			return nil
		}
		start := e.now()

		if err := e.Step(start); err != nil {
			return errors.WrapWithCode(err, errors.ErrNetwork,
				"Lost the UDP socket",
				"The listening socket was closed while running")
		}

		if e.state == Running {
			if _, err := fmt.Fprint(w, "\r"+visualizer.RowString(e.bands.Values())); err != nil {
				e.Quit()
				return errors.WrapWithCode(err, errors.ErrTerminal, "Can't write to the terminal", "")
			}
		}

		e.sleep(Pace(interval, e.now().Sub(start)), ctx.Done())
	}
}

func sleep(d time.Duration, done <-chan struct{}) {
	if d <= 0 {
		return
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
	case <-done:
	}
}
