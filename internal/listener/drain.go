// Package listener receives EQ datagrams from a UDP socket.
package listener

import (
	"errors"
	"net"

	"github.com/olivier-w/eqviz/internal/packet"
)

// ErrWouldBlock is returned by a Reader when no datagram is queued.
var ErrWouldBlock = errors.New("listener: no datagram ready")

// Reader is a datagram source whose reads never wait for data.
type Reader interface {
	// ReadNonBlocking copies one queued datagram into buf. It returns
	// ErrWouldBlock when the receive queue is empty.
	ReadNonBlocking(buf []byte) (int, error)
}

// Stats describes the datagrams consumed by one Drain call.
type Stats struct {
	Valid   int // well-formed EQ frames, including the one returned
	Stale   int // valid frames superseded by a later one in the same burst
	Invalid int // foreign or malformed datagrams
	Errors  int // transient receive errors that ended the drain early
}

// Drain empties the receive queue and returns the band payload of the last
// valid frame read, or nil when none arrived. buf is scratch space for the
// reads and should hold packet.MaxLen bytes; callers keep one per socket. The
// returned payload is a fresh copy and never aliases buf.
//
// Only a closed socket is reported as an error. Other receive failures end the
// drain for this call and show up in Stats.Errors.
func Drain(r Reader, buf []byte) ([]byte, Stats, error) {
	var (
		stats  Stats
		latest []byte
	)

	for {
		n, err := r.ReadNonBlocking(buf)
		if err != nil {
			if errors.Is(err, ErrWouldBlock) {
				break
			}
			if errors.Is(err, net.ErrClosed) {
				return nil, stats, err
			}
			stats.Errors++
			break
		}

		bands, ok := packet.Parse(buf[:n])
		if !ok {
			stats.Invalid++
			continue
		}
		if latest != nil {
			stats.Stale++
		}
		stats.Valid++
		latest = append(latest[:0], bands...)
	}

	return latest, stats, nil
}
