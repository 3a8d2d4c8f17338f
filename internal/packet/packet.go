// Package packet implements the EQ datagram wire format.
//
//	offset 0  2 bytes  marker  'E' 'Q'
//	offset 2  1 byte   version 1
//	offset 3  N bytes  one uint8 amplitude per band
package packet

const (
	// Version is the only protocol version understood by the receiver.
	Version byte = 1

	// HeaderLen is the marker plus version byte.
	HeaderLen = 3

	// MinLen is a header followed by at least one band.
	MinLen = HeaderLen + 1

	// MaxLen bounds the datagrams the receiver reads. Anything longer is truncated
	// by the socket and still parsed.
	MaxLen = 4096
)

var marker = [2]byte{'E', 'Q'}

// Parse validates a datagram and returns its band payload. The returned slice
// aliases data. ok is false for anything that is not an EQ frame.
func Parse(data []byte) (bands []byte, ok bool) {
	if len(data) < MinLen {
		return nil, false
	}
	if data[0] != marker[0] || data[1] != marker[1] || data[2] != Version {
		return nil, false
	}
	return data[HeaderLen:], true
}

// Encode builds a datagram carrying bands.
func Encode(bands []byte) []byte {
	out := make([]byte, 0, HeaderLen+len(bands))
	out = append(out, marker[0], marker[1], Version)
	return append(out, bands...)
}
