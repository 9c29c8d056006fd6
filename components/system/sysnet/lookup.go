package sysnet

import (
	"context"
	"fmt"
	"net"
	"net/netip"
	"strconv"

	"github.com/open-control-systems/endpoint-resolver/components/status"
)

// Lookup is a name resolution mechanism, e.g. the system resolver or a DNS server.
type Lookup interface {
	// Lookup returns candidates for the host and service filtered by hints.
	//
	// Remarks:
	//  - Empty host is valid only for passive hints, the wildcard address is returned.
	//  - May block on network I/O, cancellation is controlled by ctx.
	Lookup(ctx context.Context, host, service string, hints Hints) (CandidateList, error)
}

// NameLookup performs reverse name resolution.
type NameLookup interface {
	// LookupName returns the name associated with addr.
	//
	// Remarks:
	//  - Implementation should return status.StatusNameNotFound if there is no such name.
	LookupName(ctx context.Context, addr netip.Addr) (string, error)
}

// resolveService converts service to the port number, consulting the service
// database if service isn't numeric.
func resolveService(
	ctx context.Context,
	resolver *net.Resolver,
	service string,
	hints Hints,
) (uint16, error) {
	if port, err := strconv.ParseUint(service, 10, 16); err == nil {
		return uint16(port), nil
	}

	if service == "" {
		return 0, fmt.Errorf("service is empty: %w", status.StatusInvalidArgument)
	}

	port, err := resolver.LookupPort(ctx, hints.ServiceNetwork(), service)
	if err != nil {
		return 0, err
	}

	return uint16(port), nil
}

// literalHost handles hosts that don't require network I/O: absent host and IP literals.
//
// Returns false if host is a name and should be resolved.
func literalHost(host string, hints Hints) (netip.Addr, bool, error) {
	if host == "" {
		if !hints.Passive {
			return netip.Addr{}, false,
				fmt.Errorf("host is required for non-passive lookup: %w",
					status.StatusInvalidArgument)
		}

		return netip.IPv4Unspecified(), true, nil
	}

	addr, err := netip.ParseAddr(host)
	if err != nil {
		return netip.Addr{}, false, nil
	}

	// IPv4-mapped IPv6 literals belong to the IPv6 family.
	if !addr.Is4() {
		return netip.Addr{}, false,
			fmt.Errorf("address family for host not supported: host=%s: %w",
				host, status.StatusNotSupported)
	}

	return addr, true, nil
}

// newCandidateList builds a candidate for each IPv4 address, in order.
func newCandidateList(addrs []netip.Addr, port uint16, hints Hints) (CandidateList, error) {
	candidates := make([]Endpoint, 0, len(addrs))

	for _, addr := range addrs {
		sa, err := NewSockaddrInet4(netip.AddrPortFrom(addr, port))
		if err != nil {
			return nil, err
		}

		candidates = append(candidates, Endpoint{
			Family:     hints.Family,
			SocketType: hints.SocketType,
			Protocol:   hints.CandidateProtocol(),
			Addr:       sa,
		})
	}

	return NewSliceCandidateList(candidates), nil
}
