package sysnet

import (
	"context"
	"errors"
	"strconv"

	"github.com/open-control-systems/endpoint-resolver/components/status"
)

// OverrideLookup substitutes host and service with the configured overrides
// and passes the query to the underlying lookup.
type OverrideLookup struct {
	store  *OverrideStore
	lookup Lookup
}

// NewOverrideLookup is an initialization of OverrideLookup.
func NewOverrideLookup(store *OverrideStore, lookup Lookup) *OverrideLookup {
	return &OverrideLookup{
		store:  store,
		lookup: lookup,
	}
}

// Lookup applies overrides and performs the lookup.
func (l *OverrideLookup) Lookup(
	ctx context.Context,
	host, service string,
	hints Hints,
) (CandidateList, error) {
	if host != "" {
		addr, err := l.store.Host(host)
		if err == nil {
			host = addr.String()
		} else if !errors.Is(err, status.StatusNoData) {
			return nil, err
		}
	}

	port, err := l.store.Service(service)
	if err == nil {
		service = strconv.FormatUint(uint64(port), 10)
	} else if !errors.Is(err, status.StatusNoData) {
		return nil, err
	}

	return l.lookup.Lookup(ctx, host, service, hints)
}
