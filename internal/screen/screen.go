// Package screen provides the terminal the visualizer draws on.
package screen

import "errors"

// ErrClosed is returned once the terminal has stopped delivering events.
var ErrClosed = errors.New("screen: terminal closed")

// Terminal is a cell-addressable screen in raw mode. Close restores the
// terminal and is safe to call more than once.
type Terminal interface {
	// Size returns the current dimensions. They may change between calls.
	Size() (rows, cols int)
	// SetCell writes r at (row, col). Writes outside the screen are ignored.
	SetCell(row, col int, r rune)
	// Clear blanks the drawable area.
	Clear()
	// Show flushes pending writes to the display.
	Show() error
	// PollKey returns the next queued key press without waiting, or "" when
	// none is queued. Keys are named like "q", "esc" and "ctrl+c".
	PollKey() (string, error)
	HideCursor()
	Close() error
}

// IsQuit reports whether key asks the visualizer to exit.
func IsQuit(key string) bool {
	switch key {
	case "q", "Q", "esc", "ctrl+c":
		return true
	}
	return false
}
