package engine

import (
	"time"

	"github.com/olivier-w/eqviz/internal/listener"
	"github.com/olivier-w/eqviz/internal/packet"
	"github.com/olivier-w/eqviz/internal/visualizer"
)

// tickSource delivers one batch of datagrams per drain, then an empty queue.
type tickSource struct {
	batches [][][]byte
	pending [][]byte
	inTick  bool
	err     error
}

func (s *tickSource) push(frames ...[]byte) {
	var batch [][]byte
	for _, f := range frames {
		batch = append(batch, packet.Encode(f))
	}
	s.batches = append(s.batches, batch)
}

func (s *tickSource) pushEmpty() {
	s.batches = append(s.batches, nil)
}

func (s *tickSource) ReadNonBlocking(buf []byte) (int, error) {
	if s.err != nil {
		return 0, s.err
	}
	if !s.inTick {
		s.inTick = true
		s.pending = nil
		if len(s.batches) > 0 {
			s.pending = s.batches[0]
			s.batches = s.batches[1:]
		}
	}
	if len(s.pending) == 0 {
		s.inTick = false
		return 0, listener.ErrWouldBlock
	}
	d := s.pending[0]
	s.pending = s.pending[1:]
	return copy(buf, d), nil
}

// fakeTerminal is an in-memory screen.Terminal.
type fakeTerminal struct {
	*visualizer.Grid
	keys    []string
	polls   int
	shows   int
	showErr error
	pollErr error
	onPoll  func(n int)
}

func newFakeTerminal(rows, cols int) *fakeTerminal {
	return &fakeTerminal{Grid: visualizer.NewGrid(rows, cols)}
}

func (f *fakeTerminal) Show() error {
	f.shows++
	return f.showErr
}

func (f *fakeTerminal) PollKey() (string, error) {
	f.polls++
	if f.onPoll != nil {
		f.onPoll(f.polls)
	}
	if f.pollErr != nil {
		return "", f.pollErr
	}
	if len(f.keys) == 0 {
		return "", nil
	}
	k := f.keys[0]
	f.keys = f.keys[1:]
	return k, nil
}

func (f *fakeTerminal) HideCursor()  {}
func (f *fakeTerminal) Close() error { return nil }

// fakeClock advances by work on every reading and by the slept duration on
// every sleep.
type fakeClock struct {
	t      time.Time
	work   time.Duration
	sleeps []time.Duration
}

func newFakeClock(work time.Duration) *fakeClock {
	return &fakeClock{t: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), work: work}
}

func (c *fakeClock) now() time.Time {
	now := c.t
	c.t = c.t.Add(c.work)
	return now
}

func (c *fakeClock) sleep(d time.Duration, _ <-chan struct{}) {
	c.sleeps = append(c.sleeps, d)
	c.t = c.t.Add(d)
}

func (c *fakeClock) install(e *Engine) {
	e.now = c.now
	e.sleep = c.sleep
}
