//go:build !unix

package listener

import (
	"errors"
	"os"
	"time"
)

// pollWindow is the longest a read may wait on platforms without MSG_DONTWAIT.
const pollWindow = time.Millisecond

// ReadNonBlocking emulates a non-blocking receive with a very short read
// deadline.
func (c *Conn) ReadNonBlocking(buf []byte) (int, error) {
	if err := c.udp.SetReadDeadline(time.Now().Add(pollWindow)); err != nil {
		return 0, err
	}
	n, _, err := c.udp.ReadFrom(buf)
	if errors.Is(err, os.ErrDeadlineExceeded) {
		return 0, ErrWouldBlock
	}
	return n, err
}
