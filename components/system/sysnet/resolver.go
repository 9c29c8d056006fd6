package sysnet

import (
	"context"
	"fmt"

	"github.com/open-control-systems/endpoint-resolver/components/status"
)

// Query is a single resolution request.
type Query struct {
	// Host is an IPv4 literal or a name, empty means absent.
	//
	// Remarks:
	//  - Absent host is valid only for ConnectionKindStreamListener.
	Host string

	// Service is a port number or a service name, e.g. "80", "http".
	Service string

	// Kind selects the socket type and the wildcard behavior.
	Kind ConnectionKind
}

// Resolver resolves host and service to the endpoint suitable for socket creation.
type Resolver struct {
	lookup    Lookup
	formatter *Formatter
	reporter  Reporter
}

// NewResolver is an initialization of Resolver.
//
// Parameters:
//   - lookup to resolve names.
//   - formatter to render the candidates for diagnostics.
//   - reporter to report candidates and errors.
func NewResolver(lookup Lookup, formatter *Formatter, reporter Reporter) *Resolver {
	return &Resolver{
		lookup:    lookup,
		formatter: formatter,
		reporter:  reporter,
	}
}

// Resolve resolves the query and returns the first candidate.
//
// Remarks:
//   - Lookup is performed once, there are no retries and no extra timeout.
//   - All candidates are reported, only the first one is returned.
//   - Returns error wrapping status.StatusResolutionFailed if the lookup fails.
//   - Returns status.StatusNoAddressesFound if the lookup returns no candidates.
//   - Can be used from multiple goroutines if the lookup allows it.
func (r *Resolver) Resolve(ctx context.Context, q Query) (Endpoint, error) {
	ep, count, err := r.resolve(ctx, q)
	if err != nil {
		r.reporter.ReportError(err)
	}

	r.reporter.ReportOutcome(q, ep, count, err)

	return ep, err
}

func (r *Resolver) resolve(ctx context.Context, q Query) (Endpoint, int, error) {
	list, err := r.lookup.Lookup(ctx, q.Host, q.Service, NewHints(q.Kind))
	if list != nil {
		defer func() {
			if err := list.Close(); err != nil {
				r.reporter.ReportError(fmt.Errorf("resolver: failed to release candidates: %w", err))
			}
		}()
	}
	if err != nil {
		return Endpoint{}, 0, fmt.Errorf("%w: %w", status.StatusResolutionFailed, err)
	}

	var candidates []Endpoint
	if list != nil {
		candidates = list.Candidates()
	}

	r.reporter.ReportHeader(q)

	for _, candidate := range candidates {
		if desc, ok := r.formatter.Format(ctx, candidate.Addr, q.Kind); ok {
			r.reporter.ReportCandidate(q, desc)
		}
	}

	if len(candidates) < 1 {
		return Endpoint{}, 0, status.StatusNoAddressesFound
	}

	return candidates[0].Clone(), len(candidates), nil
}
