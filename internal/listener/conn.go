package listener

import (
	"net"
	"strconv"
	"syscall"
)

// Conn is a bound UDP socket.
type Conn struct {
	udp *net.UDPConn
	raw syscall.RawConn
}

// Listen binds a UDP socket on host:port. An empty host or "0.0.0.0" listens
// on all interfaces, which also receives subnet broadcasts.
func Listen(host string, port int) (*Conn, error) {
	addr, err := net.ResolveUDPAddr("udp", net.JoinHostPort(host, strconv.Itoa(port)))
	if err != nil {
		return nil, err
	}

	udp, err := net.ListenUDP("udp", addr)
	if err != nil {
		return nil, err
	}

	raw, err := udp.SyscallConn()
	if err != nil {
		udp.Close()
		return nil, err
	}

	return &Conn{udp: udp, raw: raw}, nil
}

// ReadFrom blocks until a datagram arrives.
func (c *Conn) ReadFrom(buf []byte) (int, net.Addr, error) {
	return c.udp.ReadFrom(buf)
}

// LocalAddr returns the bound address, including the port picked by the
// kernel when Listen was given port 0.
func (c *Conn) LocalAddr() net.Addr {
	return c.udp.LocalAddr()
}

// Close releases the socket. Blocked and later reads fail with net.ErrClosed.
func (c *Conn) Close() error {
	return c.udp.Close()
}
