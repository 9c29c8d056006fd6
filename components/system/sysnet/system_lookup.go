package sysnet

import (
	"context"
	"fmt"
	"net"
	"net/netip"
	"strings"

	"github.com/open-control-systems/endpoint-resolver/components/status"
)

// SystemLookup resolves names with the Go resolver: hosts file, DNS, service database.
type SystemLookup struct {
	resolver *net.Resolver
}

// NewSystemLookup is an initialization of SystemLookup.
//
// Parameters:
//   - resolver to perform the actual lookups, net.DefaultResolver is used if nil.
func NewSystemLookup(resolver *net.Resolver) *SystemLookup {
	if resolver == nil {
		resolver = net.DefaultResolver
	}

	return &SystemLookup{resolver: resolver}
}

// Lookup resolves IPv4 addresses of host and port of service.
func (l *SystemLookup) Lookup(
	ctx context.Context,
	host, service string,
	hints Hints,
) (CandidateList, error) {
	port, err := resolveService(ctx, l.resolver, service, hints)
	if err != nil {
		return nil, fmt.Errorf("system-lookup: %w", err)
	}

	addr, ok, err := literalHost(host, hints)
	if err != nil {
		return nil, fmt.Errorf("system-lookup: %w", err)
	}
	if ok {
		return newCandidateList([]netip.Addr{addr}, port, hints)
	}

	addrs, err := l.resolver.LookupNetIP(ctx, "ip4", host)
	if err != nil {
		return nil, fmt.Errorf("system-lookup: %w", err)
	}

	for i := range addrs {
		addrs[i] = addrs[i].Unmap()
	}

	return newCandidateList(addrs, port, hints)
}

// LookupName returns the first name associated with addr, without the trailing dot.
func (l *SystemLookup) LookupName(ctx context.Context, addr netip.Addr) (string, error) {
	names, err := l.resolver.LookupAddr(ctx, addr.String())
	if err != nil || len(names) < 1 {
		return "", fmt.Errorf("system-lookup: addr=%s: %w", addr, status.StatusNameNotFound)
	}

	return strings.TrimSuffix(names[0], "."), nil
}
