package sysnet

import "golang.org/x/sys/unix"

// Hints narrows down the candidates returned by a lookup mechanism.
type Hints struct {
	// Family is an address family, always unix.AF_INET.
	Family int

	// SocketType is unix.SOCK_DGRAM or unix.SOCK_STREAM.
	SocketType int

	// Protocol is a transport protocol number, 0 means any.
	Protocol int

	// Passive requests the wildcard address when host is absent.
	Passive bool
}

// NewHints builds lookup hints for the connection kind.
func NewHints(kind ConnectionKind) Hints {
	return Hints{
		Family:     unix.AF_INET,
		SocketType: kind.SocketType(),
		Protocol:   0,
		Passive:    kind.Passive(),
	}
}

// ServiceNetwork returns the network name used for the service database lookup.
func (h Hints) ServiceNetwork() string {
	if h.SocketType == unix.SOCK_DGRAM {
		return "udp"
	}

	return "tcp"
}

// CandidateProtocol returns the protocol number reported for the produced candidates.
func (h Hints) CandidateProtocol() int {
	if h.Protocol != 0 {
		return h.Protocol
	}

	if h.SocketType == unix.SOCK_DGRAM {
		return unix.IPPROTO_UDP
	}

	return unix.IPPROTO_TCP
}
