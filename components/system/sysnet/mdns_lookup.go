package sysnet

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/netip"
	"strings"
	"sync"
	"time"

	"github.com/pion/mdns"
	"golang.org/x/net/ipv4"

	"github.com/open-control-systems/endpoint-resolver/components/status"
)

// DefaultMdnsTimeout is used when MdnsLookupParams.Timeout isn't set.
const DefaultMdnsTimeout = time.Second * 5

// MdnsLookupParams provides various configuration options for MdnsLookup.
type MdnsLookupParams struct {
	// Timeout - how long to wait for the mDNS answer, DefaultMdnsTimeout if zero.
	Timeout time.Duration
}

// MdnsLookup resolves ".local" hosts with multicast DNS.
//
// It was decided to use the pure Go library for mDNS resolution, since the internal
// Go resolver behaves differently depending on the environment it's running in.
// For example, it can properly resolve mDNS addresses when running on the host machine,
// but fails to do so when running in the container.
type MdnsLookup struct {
	services *net.Resolver
	timeout  time.Duration

	mu     sync.Mutex
	conn   *mdns.Conn
	closed bool
}

// NewMdnsLookup is an initialization of MdnsLookup.
//
// Remarks:
//   - mDNS connection is created on the first lookup.
func NewMdnsLookup(params MdnsLookupParams) *MdnsLookup {
	if params.Timeout <= 0 {
		params.Timeout = DefaultMdnsTimeout
	}

	return &MdnsLookup{
		services: net.DefaultResolver,
		timeout:  params.Timeout,
	}
}

// IsMdnsHost returns true if host belongs to the mDNS domain.
func IsMdnsHost(host string) bool {
	return strings.HasSuffix(strings.TrimSuffix(host, "."), ".local")
}

// Lookup queries the local network for the host address.
//
// Remarks:
//   - Can be used from multiple goroutines.
//   - mDNS query yields at most one candidate.
//   - Query without an answer fails with status.StatusTimeout after the configured timeout.
func (l *MdnsLookup) Lookup(
	ctx context.Context,
	host, service string,
	hints Hints,
) (CandidateList, error) {
	if !IsMdnsHost(host) {
		return nil, fmt.Errorf("mdns-lookup: unsupported host: %s: %w",
			host, status.StatusNotSupported)
	}

	port, err := resolveService(ctx, l.services, service, hints)
	if err != nil {
		return nil, fmt.Errorf("mdns-lookup: %w", err)
	}

	conn, err := l.getConn()
	if err != nil {
		return nil, err
	}

	queryCtx, cancel := context.WithTimeout(ctx, l.timeout)
	defer cancel()

	_, addr, err := conn.Query(queryCtx, strings.TrimSuffix(host, "."))
	if err != nil {
		if errors.Is(queryCtx.Err(), context.DeadlineExceeded) && ctx.Err() == nil {
			return nil, fmt.Errorf("mdns-lookup: no answer: host=%s timeout=%s: %w",
				host, l.timeout, status.StatusTimeout)
		}

		return nil, fmt.Errorf("mdns-lookup: query failed: host=%s: %w", host, err)
	}

	ipAddr, ok := addr.(*net.IPAddr)
	if !ok {
		return nil, fmt.Errorf("mdns-lookup: unexpected address type: %T", addr)
	}

	ip, ok := netip.AddrFromSlice(ipAddr.IP.To4())
	if !ok {
		return NewSliceCandidateList(nil), nil
	}

	return newCandidateList([]netip.Addr{ip}, port, hints)
}

// Close the underlying mDNS connection.
func (l *MdnsLookup) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.closed = true

	if l.conn != nil {
		return l.conn.Close()
	}

	return nil
}

func (l *MdnsLookup) getConn() (*mdns.Conn, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return nil, fmt.Errorf("mdns-lookup: closed: %w", status.StatusInvalidState)
	}

	if l.conn != nil {
		return l.conn, nil
	}

	// UDP Connection is closed when the mDNS connection is closed.
	udpConn, err := net.ListenUDP("udp4", nil)
	if err != nil {
		return nil, fmt.Errorf("mdns-lookup: failed to create UDP connection: %w", err)
	}

	mdnsConn, err := mdns.Server(ipv4.NewPacketConn(udpConn), &mdns.Config{})
	if err != nil {
		_ = udpConn.Close()

		return nil, fmt.Errorf("mdns-lookup: failed to create mDNS connection: %w", err)
	}

	l.conn = mdnsConn

	return mdnsConn, nil
}
