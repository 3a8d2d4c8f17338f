package screen

import (
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"
)

// Tcell is a Terminal backed by a tcell screen.
type Tcell struct {
	screen tcell.Screen
	style  tcell.Style
	once   sync.Once
}

// OpenTcell takes over the controlling terminal.
func OpenTcell() (*Tcell, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewTcell(s)
}

// NewTcell initializes s and wraps it. Simulation screens work too.
func NewTcell(s tcell.Screen) (*Tcell, error) {
	if err := s.Init(); err != nil {
		return nil, err
	}
	t := &Tcell{
		screen: s,
		style:  tcell.StyleDefault,
	}
	s.SetStyle(t.style)
	t.HideCursor()
	s.Clear()
	return t, nil
}

func (t *Tcell) Size() (int, int) {
	w, h := t.screen.Size()
	return h, w
}

func (t *Tcell) SetCell(row, col int, r rune) {
	rows, cols := t.Size()
	if row < 0 || row >= rows || col < 0 || col >= cols {
		return
	}
	t.screen.SetContent(col, row, r, nil, t.style)
}

func (t *Tcell) Clear() {
	t.screen.Clear()
}

func (t *Tcell) Show() error {
	t.screen.Show()
	return nil
}

func (t *Tcell) HideCursor() {
	t.screen.HideCursor()
}

func (t *Tcell) PollKey() (string, error) {
	for t.screen.HasPendingEvent() {
		switch ev := t.screen.PollEvent().(type) {
		case nil:
			return "", ErrClosed
		case *tcell.EventError:
			return "", ev
		case *tcell.EventResize:
			t.screen.Sync()
		case *tcell.EventKey:
			return keyName(ev), nil
		}
	}
	return "", nil
}

// Close restores the terminal.
func (t *Tcell) Close() error {
	t.once.Do(t.screen.Fini)
	return nil
}

func keyName(ev *tcell.EventKey) string {
	switch ev.Key() {
	case tcell.KeyRune:
		return string(ev.Rune())
	case tcell.KeyEscape:
		return "esc"
	case tcell.KeyCtrlC:
		return "ctrl+c"
	default:
		return strings.ToLower(ev.Name())
	}
}
