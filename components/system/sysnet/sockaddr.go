package sysnet

import (
	"encoding/binary"
	"fmt"
	"net/netip"

	"golang.org/x/sys/unix"

	"github.com/open-control-systems/endpoint-resolver/components/status"
)

// SockaddrCapacity is the capacity of the Sockaddr buffer, enough for an IPv4 socket address.
const SockaddrCapacity = unix.SizeofSockaddrInet4

// Sockaddr is a family-specific socket address stored as raw bytes.
//
// Layout for unix.AF_INET:
//   - family, 2 bytes, native byte order.
//   - port, 2 bytes, network byte order.
//   - IPv4 address, 4 bytes.
//   - zero padding, 8 bytes.
//
// Remarks:
//   - Len() never exceeds SockaddrCapacity.
//   - Only the first Len() bytes are meaningful, copies never read past them.
type Sockaddr struct {
	buf [SockaddrCapacity]byte
	n   int
}

// NewSockaddr copies b into a new socket address.
func NewSockaddr(b []byte) (Sockaddr, error) {
	if len(b) > SockaddrCapacity {
		return Sockaddr{}, fmt.Errorf("sockaddr: length=%d exceeds capacity=%d: %w",
			len(b), SockaddrCapacity, status.StatusInvalidArgument)
	}

	var sa Sockaddr
	sa.n = copy(sa.buf[:], b)

	return sa, nil
}

// NewSockaddrInet4 encodes IPv4 address and port.
func NewSockaddrInet4(ap netip.AddrPort) (Sockaddr, error) {
	addr := ap.Addr().Unmap()
	if !addr.Is4() {
		return Sockaddr{}, fmt.Errorf("sockaddr: not an IPv4 address: %s: %w",
			ap.Addr(), status.StatusInvalidArgument)
	}

	var sa Sockaddr
	binary.NativeEndian.PutUint16(sa.buf[0:2], unix.AF_INET)
	binary.BigEndian.PutUint16(sa.buf[2:4], ap.Port())

	ip := addr.As4()
	copy(sa.buf[4:8], ip[:])

	sa.n = SockaddrCapacity

	return sa, nil
}

// NewSockaddrFromUnix converts the address returned by the socket syscalls.
func NewSockaddrFromUnix(usa unix.Sockaddr) (Sockaddr, error) {
	inet4, ok := usa.(*unix.SockaddrInet4)
	if !ok {
		return Sockaddr{}, fmt.Errorf("sockaddr: unsupported address type: %T: %w",
			usa, status.StatusNotSupported)
	}

	return NewSockaddrInet4(netip.AddrPortFrom(netip.AddrFrom4(inet4.Addr), uint16(inet4.Port)))
}

// Len returns the number of occupied bytes.
func (s Sockaddr) Len() int {
	return s.n
}

// Bytes returns a copy of exactly Len() bytes.
func (s Sockaddr) Bytes() []byte {
	b := make([]byte, s.n)
	copy(b, s.buf[:s.n])

	return b
}

// Family returns the address family, unix.AF_UNSPEC if the address is too short.
func (s Sockaddr) Family() int {
	if s.n < 2 {
		return unix.AF_UNSPEC
	}

	return int(binary.NativeEndian.Uint16(s.buf[0:2]))
}

// AddrPort converts the socket address to the numeric form.
func (s Sockaddr) AddrPort() (netip.AddrPort, error) {
	if family := s.Family(); family != unix.AF_INET {
		return netip.AddrPort{}, fmt.Errorf("sockaddr: unsupported family=%d: %w",
			family, status.StatusNumericConversionFailed)
	}

	if s.n < SockaddrCapacity {
		return netip.AddrPort{}, fmt.Errorf("sockaddr: short address: len=%d: %w",
			s.n, status.StatusNumericConversionFailed)
	}

	addr := netip.AddrFrom4([4]byte(s.buf[4:8]))
	port := binary.BigEndian.Uint16(s.buf[2:4])

	return netip.AddrPortFrom(addr, port), nil
}

// Unix converts the socket address to the form accepted by the socket syscalls.
func (s Sockaddr) Unix() (unix.Sockaddr, error) {
	ap, err := s.AddrPort()
	if err != nil {
		return nil, err
	}

	return &unix.SockaddrInet4{Port: int(ap.Port()), Addr: ap.Addr().As4()}, nil
}

// String returns "ip:port", or "<invalid>" if the address can't be converted.
func (s Sockaddr) String() string {
	ap, err := s.AddrPort()
	if err != nil {
		return "<invalid>"
	}

	return ap.String()
}
