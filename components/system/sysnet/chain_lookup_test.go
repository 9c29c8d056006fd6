package sysnet

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/open-control-systems/endpoint-resolver/components/status"
)

func TestChainLookup(t *testing.T) {
	mdns := &testLookup{list: &testCandidateList{}}
	fallback := &testLookup{list: &testCandidateList{}}

	lookup := NewChainLookup(mdns, fallback)

	for _, host := range []string{"device.local", "device.local."} {
		_, err := lookup.Lookup(context.Background(), host, "80", NewHints(ConnectionKindStream))
		require.Nil(t, err)
	}

	for _, host := range []string{"", "127.0.0.1", "example.com", "local", "localhost"} {
		_, err := lookup.Lookup(context.Background(), host, "80", NewHints(ConnectionKindStream))
		require.Nil(t, err)
	}

	require.Equal(t, 2, mdns.callCount)
	require.Equal(t, 5, fallback.callCount)
}

func TestMdnsLookupUnsupportedHost(t *testing.T) {
	lookup := NewMdnsLookup(MdnsLookupParams{})
	defer lookup.Close()

	list, err := lookup.Lookup(context.Background(), "example.com", "80",
		NewHints(ConnectionKindStream))
	require.NotNil(t, err)
	require.Nil(t, list)
}

func TestMdnsLookupClosed(t *testing.T) {
	lookup := NewMdnsLookup(MdnsLookupParams{})
	require.Nil(t, lookup.Close())

	list, err := lookup.Lookup(context.Background(), "device.local", "80",
		NewHints(ConnectionKindStream))
	require.NotNil(t, err)
	require.Nil(t, list)
}

func TestMdnsLookupMissingHostTimeout(t *testing.T) {
	lookup := NewMdnsLookup(MdnsLookupParams{Timeout: time.Millisecond * 200})
	defer lookup.Close()

	resolver := newTestResolver(lookup, nil, NoopReporter{})

	errCh := make(chan error, 1)
	go func() {
		_, err := resolver.Resolve(context.Background(), Query{
			Host:    "missing-host-7f3a1c.local",
			Service: "80",
			Kind:    ConnectionKindStream,
		})
		errCh <- err
	}()

	select {
	case err := <-errCh:
		require.True(t, errors.Is(err, status.StatusResolutionFailed))
		require.True(t, errors.Is(err, status.StatusTimeout))

	case <-time.After(time.Second * 5):
		t.Fatal("mDNS lookup isn't limited by the timeout")
	}
}
