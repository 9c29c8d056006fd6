package sysnet

import (
	"fmt"

	"golang.org/x/sys/unix"

	"github.com/open-control-systems/endpoint-resolver/components/status"
)

// ConnectionKind selects how an endpoint is going to be used by the socket layer.
type ConnectionKind int

const (
	// ConnectionKindDatagram is a connecting datagram (UDP) endpoint.
	ConnectionKindDatagram ConnectionKind = iota

	// ConnectionKindStream is a connecting stream (TCP) endpoint.
	ConnectionKindStream

	// ConnectionKindStreamListener is a passive stream (TCP) endpoint, used for bind+listen.
	ConnectionKindStreamListener
)

// ParseConnectionKind parses the string form returned by ConnectionKind.String().
func ParseConnectionKind(s string) (ConnectionKind, error) {
	for _, kind := range []ConnectionKind{
		ConnectionKindDatagram,
		ConnectionKindStream,
		ConnectionKindStreamListener,
	} {
		if kind.String() == s {
			return kind, nil
		}
	}

	return ConnectionKindStream,
		fmt.Errorf("unknown connection kind: %q: %w", s, status.StatusInvalidArgument)
}

// String returns string representation of the connection kind.
func (k ConnectionKind) String() string {
	switch k {
	case ConnectionKindDatagram:
		return "udp"
	case ConnectionKindStream:
		return "tcp"
	case ConnectionKindStreamListener:
		return "tcp-listener"
	default:
		return "<none>"
	}
}

// SocketType returns the socket type used for the connection kind.
func (k ConnectionKind) SocketType() int {
	if k == ConnectionKindDatagram {
		return unix.SOCK_DGRAM
	}

	return unix.SOCK_STREAM
}

// Passive returns true if the endpoint is used for accepting inbound connections.
func (k ConnectionKind) Passive() bool {
	return k == ConnectionKindStreamListener
}

// Proto returns the transport protocol label, e.g. "UDP".
func (k ConnectionKind) Proto() string {
	if k == ConnectionKindDatagram {
		return "UDP"
	}

	return "TCP"
}
