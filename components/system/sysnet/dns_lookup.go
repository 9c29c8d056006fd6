package sysnet

import (
	"context"
	"fmt"
	"net"
	"net/netip"
	"strings"
	"time"

	"github.com/miekg/dns"

	"github.com/open-control-systems/endpoint-resolver/components/status"
)

// DNSLookupParams represents various options for DNSLookup.
type DNSLookupParams struct {
	// Server is a DNS server address, port 53 is used if omitted.
	//
	// Examples:
	//  - "1.1.1.1", "127.0.0.1:5353".
	Server string

	// Timeout is a single DNS exchange timeout, zero means the library default.
	Timeout time.Duration
}

// DNSLookup resolves names by querying the configured DNS server directly,
// bypassing the hosts file and the system resolver configuration.
//
// Remarks:
//   - Service names are resolved with the service database.
//
// References:
//   - https://github.com/miekg/dns
type DNSLookup struct {
	server   string
	client   *dns.Client
	services *net.Resolver
}

// NewDNSLookup is an initialization of DNSLookup.
func NewDNSLookup(params DNSLookupParams) *DNSLookup {
	server := params.Server
	if _, _, err := net.SplitHostPort(server); err != nil {
		server = net.JoinHostPort(server, "53")
	}

	return &DNSLookup{
		server: server,
		client: &dns.Client{
			Net:     "udp",
			Timeout: params.Timeout,
		},
		services: net.DefaultResolver,
	}
}

// Lookup resolves A records of host and port of service.
func (l *DNSLookup) Lookup(
	ctx context.Context,
	host, service string,
	hints Hints,
) (CandidateList, error) {
	port, err := resolveService(ctx, l.services, service, hints)
	if err != nil {
		return nil, fmt.Errorf("dns-lookup: %w", err)
	}

	addr, ok, err := literalHost(host, hints)
	if err != nil {
		return nil, fmt.Errorf("dns-lookup: %w", err)
	}
	if ok {
		return newCandidateList([]netip.Addr{addr}, port, hints)
	}

	resp, err := l.exchange(ctx, dns.Fqdn(host), dns.TypeA)
	if err != nil {
		return nil, err
	}

	var addrs []netip.Addr
	for _, rr := range resp.Answer {
		a, ok := rr.(*dns.A)
		if !ok {
			continue
		}

		addr, ok := netip.AddrFromSlice(a.A.To4())
		if !ok {
			continue
		}

		addrs = append(addrs, addr)
	}

	return newCandidateList(addrs, port, hints)
}

// LookupName resolves PTR record of addr.
func (l *DNSLookup) LookupName(ctx context.Context, addr netip.Addr) (string, error) {
	name, err := dns.ReverseAddr(addr.String())
	if err != nil {
		return "", fmt.Errorf("dns-lookup: %w: %w", status.StatusNameNotFound, err)
	}

	resp, err := l.exchange(ctx, name, dns.TypePTR)
	if err != nil {
		return "", fmt.Errorf("%w: %w", status.StatusNameNotFound, err)
	}

	for _, rr := range resp.Answer {
		if ptr, ok := rr.(*dns.PTR); ok {
			return strings.TrimSuffix(ptr.Ptr, "."), nil
		}
	}

	return "", fmt.Errorf("dns-lookup: addr=%s: %w", addr, status.StatusNameNotFound)
}

func (l *DNSLookup) exchange(ctx context.Context, name string, qtype uint16) (*dns.Msg, error) {
	req := new(dns.Msg)
	req.SetQuestion(name, qtype)
	req.RecursionDesired = true

	resp, _, err := l.client.ExchangeContext(ctx, req, l.server)
	if err != nil {
		return nil, fmt.Errorf("dns-lookup: exchange failed: server=%s name=%s: %w",
			l.server, name, err)
	}

	if resp.Rcode != dns.RcodeSuccess {
		return nil, fmt.Errorf("dns-lookup: query failed: server=%s name=%s rcode=%s",
			l.server, name, dns.RcodeToString[resp.Rcode])
	}

	return resp, nil
}
