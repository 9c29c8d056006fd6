package syssock

import (
	"fmt"

	"golang.org/x/sys/unix"

	"github.com/open-control-systems/endpoint-resolver/components/system/sysnet"
)

// ListenBacklog is a backlog used for passive sockets.
const ListenBacklog = 16

// Probe checks that the endpoint is usable: creates a socket and connects it, or
// binds and listens on it for passive endpoints.
//
// Returns the local address of the socket.
//
// Remarks:
//   - Socket is closed before returning.
//   - Connecting a datagram socket doesn't send any packets.
func Probe(ep sysnet.Endpoint, kind sysnet.ConnectionKind) (sysnet.Sockaddr, error) {
	sa, err := ep.Addr.Unix()
	if err != nil {
		return sysnet.Sockaddr{}, fmt.Errorf("socket-probe: %w", err)
	}

	fd, err := unix.Socket(ep.Family, ep.SocketType, ep.Protocol)
	if err != nil {
		return sysnet.Sockaddr{}, fmt.Errorf("socket-probe: failed to create socket: %w", err)
	}
	defer unix.Close(fd)

	if kind.Passive() {
		if err := unix.SetsockoptInt(fd, unix.SOL_SOCKET, unix.SO_REUSEADDR, 1); err != nil {
			return sysnet.Sockaddr{}, fmt.Errorf("socket-probe: failed to set SO_REUSEADDR: %w", err)
		}

		if err := unix.Bind(fd, sa); err != nil {
			return sysnet.Sockaddr{}, fmt.Errorf("socket-probe: failed to bind: addr=%s: %w",
				ep.Addr, err)
		}

		if err := unix.Listen(fd, ListenBacklog); err != nil {
			return sysnet.Sockaddr{}, fmt.Errorf("socket-probe: failed to listen: addr=%s: %w",
				ep.Addr, err)
		}
	} else if err := unix.Connect(fd, sa); err != nil {
		return sysnet.Sockaddr{}, fmt.Errorf("socket-probe: failed to connect: addr=%s: %w",
			ep.Addr, err)
	}

	local, err := unix.Getsockname(fd)
	if err != nil {
		return sysnet.Sockaddr{}, fmt.Errorf("socket-probe: failed to get local address: %w", err)
	}

	return sysnet.NewSockaddrFromUnix(local)
}
