//go:build unix

package listener

import (
	"errors"
	"os"

	"golang.org/x/sys/unix"
)

// ReadNonBlocking receives one datagram with MSG_DONTWAIT so an empty queue
// returns immediately instead of parking the caller in the netpoller.
func (c *Conn) ReadNonBlocking(buf []byte) (int, error) {
	var (
		n    int
		rerr error
	)
	err := c.raw.Read(func(fd uintptr) bool {
		n, _, rerr = unix.Recvfrom(int(fd), buf, unix.MSG_DONTWAIT)
		return true
	})
	if err != nil {
		return 0, err
	}

	switch {
	case rerr == nil:
		return n, nil
	case errors.Is(rerr, unix.EAGAIN), errors.Is(rerr, unix.EWOULDBLOCK), errors.Is(rerr, unix.EINTR):
		return 0, ErrWouldBlock
	default:
		return 0, os.NewSyscallError("recvfrom", rerr)
	}
}
