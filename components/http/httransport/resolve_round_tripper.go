package httransport

import (
	"fmt"
	"net/http"

	"github.com/open-control-systems/endpoint-resolver/components/system/sysnet"
)

// ResolveRoundTripper replaces the URL host with the endpoint selected by the resolver.
type ResolveRoundTripper struct {
	resolver *sysnet.Resolver
	rt       http.RoundTripper
}

// NewResolveRoundTripper is an initialization of ResolveRoundTripper.
//
// Parameters:
//   - resolver to resolve HTTP host and port.
//   - rt to perform an actual HTTP transaction.
func NewResolveRoundTripper(resolver *sysnet.Resolver, rt http.RoundTripper) *ResolveRoundTripper {
	return &ResolveRoundTripper{
		resolver: resolver,
		rt:       rt,
	}
}

// RoundTrip resolves HTTP address and performs HTTP transaction.
//
// Remarks:
//   - URL scheme is used as a service if the port isn't set.
//   - Host header keeps the original name.
func (r *ResolveRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	service := req.URL.Port()
	if service == "" {
		service = req.URL.Scheme
	}

	ep, err := r.resolver.Resolve(req.Context(), sysnet.Query{
		Host:    req.URL.Hostname(),
		Service: service,
		Kind:    sysnet.ConnectionKindStream,
	})
	if err != nil {
		return nil, fmt.Errorf(
			"resolve-round-tripper: failed to resolve HTTP address: hostname=%s: %w",
			req.URL.Hostname(), err)
	}

	ap, err := ep.Addr.AddrPort()
	if err != nil {
		return nil, fmt.Errorf("resolve-round-tripper: invalid endpoint: %w", err)
	}

	clone := req.Clone(req.Context())
	if clone.Host == "" {
		clone.Host = req.URL.Host
	}
	clone.URL.Host = ap.String()

	return r.rt.RoundTrip(clone)
}
