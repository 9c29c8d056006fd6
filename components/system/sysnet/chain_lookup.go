package sysnet

import "context"

// ChainLookup dispatches ".local" hosts to the mDNS lookup and everything else
// to the fallback lookup.
type ChainLookup struct {
	mdns     Lookup
	fallback Lookup
}

// NewChainLookup is an initialization of ChainLookup.
//
// Parameters:
//   - mdns to resolve ".local" hosts.
//   - fallback to resolve all other hosts, including the absent host.
func NewChainLookup(mdns Lookup, fallback Lookup) *ChainLookup {
	return &ChainLookup{
		mdns:     mdns,
		fallback: fallback,
	}
}

// Lookup selects the lookup mechanism by host.
func (l *ChainLookup) Lookup(
	ctx context.Context,
	host, service string,
	hints Hints,
) (CandidateList, error) {
	if IsMdnsHost(host) {
		return l.mdns.Lookup(ctx, host, service, hints)
	}

	return l.fallback.Lookup(ctx, host, service, hints)
}
