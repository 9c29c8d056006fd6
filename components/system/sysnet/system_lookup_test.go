package sysnet

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"

	"github.com/open-control-systems/endpoint-resolver/components/status"
)

func TestSystemLookupLiteral(t *testing.T) {
	lookup := NewSystemLookup(nil)

	list, err := lookup.Lookup(context.Background(), "192.0.2.1", "53",
		NewHints(ConnectionKindDatagram))
	require.Nil(t, err)
	defer list.Close()

	candidates := list.Candidates()
	require.Len(t, candidates, 1)
	require.Equal(t, unix.AF_INET, candidates[0].Family)
	require.Equal(t, unix.SOCK_DGRAM, candidates[0].SocketType)
	require.Equal(t, unix.IPPROTO_UDP, candidates[0].Protocol)
	require.Equal(t, "192.0.2.1:53", candidates[0].Addr.String())

	require.Nil(t, list.Close())
	require.Nil(t, list.Candidates())
}

func TestSystemLookupServiceName(t *testing.T) {
	list, err := NewSystemLookup(nil).Lookup(context.Background(), "127.0.0.1", "http",
		NewHints(ConnectionKindStream))
	require.Nil(t, err)
	defer list.Close()

	require.Len(t, list.Candidates(), 1)
	require.Equal(t, "127.0.0.1:80", list.Candidates()[0].Addr.String())
}

func TestSystemLookupWildcard(t *testing.T) {
	list, err := NewSystemLookup(nil).Lookup(context.Background(), "", "0",
		NewHints(ConnectionKindStreamListener))
	require.Nil(t, err)
	defer list.Close()

	require.Len(t, list.Candidates(), 1)
	require.Equal(t, "0.0.0.0:0", list.Candidates()[0].Addr.String())
}

func TestSystemLookupErrors(t *testing.T) {
	tests := []struct {
		name    string
		host    string
		service string
		kind    ConnectionKind
		err     error
	}{
		{"host-required", "", "80", ConnectionKindStream, status.StatusInvalidArgument},
		{"ipv6-literal", "::1", "80", ConnectionKindStream, status.StatusNotSupported},
		{"ipv4-mapped-literal", "::ffff:127.0.0.1", "80", ConnectionKindStream,
			status.StatusNotSupported},
		{"empty-service", "127.0.0.1", "", ConnectionKindStream, status.StatusInvalidArgument},
		{"port-out-of-range", "127.0.0.1", "65536", ConnectionKindDatagram, nil},
		{"unknown-service", "127.0.0.1", "no-such-service-xyz", ConnectionKindStream, nil},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			list, err := NewSystemLookup(nil).Lookup(context.Background(), test.host,
				test.service, NewHints(test.kind))
			require.NotNil(t, err)
			require.Nil(t, list)

			if test.err != nil {
				require.True(t, errors.Is(err, test.err))
			}
		})
	}
}
