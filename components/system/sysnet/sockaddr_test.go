package sysnet

import (
	"errors"
	"net/netip"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"

	"github.com/open-control-systems/endpoint-resolver/components/status"
)

func TestSockaddrInet4(t *testing.T) {
	ap := netip.MustParseAddrPort("192.0.2.1:8080")

	sa, err := NewSockaddrInet4(ap)
	require.Nil(t, err)
	require.Equal(t, SockaddrCapacity, sa.Len())
	require.Equal(t, 16, sa.Len())
	require.Equal(t, unix.AF_INET, sa.Family())
	require.Equal(t, "192.0.2.1:8080", sa.String())

	b := sa.Bytes()
	require.Len(t, b, 16)
	require.Equal(t, []byte{0x1f, 0x90}, b[2:4])
	require.Equal(t, []byte{192, 0, 2, 1}, b[4:8])
	require.Equal(t, make([]byte, 8), b[8:16])

	got, err := sa.AddrPort()
	require.Nil(t, err)
	require.Equal(t, ap, got)

	usa, err := sa.Unix()
	require.Nil(t, err)
	require.Equal(t, &unix.SockaddrInet4{Port: 8080, Addr: [4]byte{192, 0, 2, 1}}, usa)

	back, err := NewSockaddrFromUnix(usa)
	require.Nil(t, err)
	require.Equal(t, sa.Bytes(), back.Bytes())
}

func TestSockaddrInet4Mapped(t *testing.T) {
	sa, err := NewSockaddrInet4(netip.MustParseAddrPort("[::ffff:127.0.0.1]:80"))
	require.Nil(t, err)
	require.Equal(t, "127.0.0.1:80", sa.String())
}

func TestSockaddrInet4RejectIPv6(t *testing.T) {
	sa, err := NewSockaddrInet4(netip.MustParseAddrPort("[::1]:80"))
	require.True(t, errors.Is(err, status.StatusInvalidArgument))
	require.Equal(t, 0, sa.Len())

	_, err = NewSockaddrFromUnix(&unix.SockaddrInet6{Port: 80})
	require.True(t, errors.Is(err, status.StatusNotSupported))
}

func TestSockaddrCapacityExceeded(t *testing.T) {
	sa, err := NewSockaddr(make([]byte, SockaddrCapacity+1))
	require.True(t, errors.Is(err, status.StatusInvalidArgument))
	require.Equal(t, 0, sa.Len())

	sa, err = NewSockaddr(make([]byte, SockaddrCapacity))
	require.Nil(t, err)
	require.Equal(t, SockaddrCapacity, sa.Len())
}

func TestSockaddrShort(t *testing.T) {
	sa, err := NewSockaddr([]byte{1, 2, 3})
	require.Nil(t, err)
	require.Equal(t, 3, sa.Len())
	require.Equal(t, []byte{1, 2, 3}, sa.Bytes())
	require.Equal(t, "<invalid>", sa.String())

	_, err = sa.AddrPort()
	require.True(t, errors.Is(err, status.StatusNumericConversionFailed))

	_, err = sa.Unix()
	require.True(t, errors.Is(err, status.StatusNumericConversionFailed))

	empty := Sockaddr{}
	require.Equal(t, unix.AF_UNSPEC, empty.Family())
	require.Empty(t, empty.Bytes())
}

func TestEndpointClone(t *testing.T) {
	short, err := NewSockaddr([]byte{9, 8, 7})
	require.Nil(t, err)

	ep := Endpoint{
		Family:     unix.AF_INET,
		SocketType: unix.SOCK_DGRAM,
		Protocol:   unix.IPPROTO_UDP,
		Addr:       short,
	}

	c := ep.Clone()
	require.Equal(t, ep, c)
	require.Equal(t, 3, c.Addr.Len())
	require.Equal(t, []byte{9, 8, 7}, c.Addr.Bytes())

	full := newTestEndpoint(t, "192.0.2.1:53", ConnectionKindDatagram)
	require.Equal(t, full, full.Clone())
}
