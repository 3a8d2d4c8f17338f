package visualizer

import "fmt"

// WaitingText is the first line shown before any frame has arrived.
func WaitingText(addr string) string {
	return fmt.Sprintf("Listening on %s ... waiting EQ packets (q to quit)", addr)
}

// ReminderText is shown once the wait has gone on for a while.
const ReminderText = "Still waiting... ensure sender is broadcasting to this subnet/port."

// DrawWaiting draws the waiting screen in the top left corner.
func DrawWaiting(s Surface, addr string, reminder bool) {
	rows, cols := s.Size()
	putString(s, rows, cols, 0, 0, WaitingText(addr))
	if reminder {
		putString(s, rows, cols, 1, 0, ReminderText)
	}
}
