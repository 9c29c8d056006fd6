package pipeline

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/open-control-systems/endpoint-resolver/components/core"
	"github.com/open-control-systems/endpoint-resolver/components/storage/stcore"
	"github.com/open-control-systems/endpoint-resolver/components/storage/stinfluxdb"
	"github.com/open-control-systems/endpoint-resolver/components/system/sysnet"
)

// ResolvePipeline wires lookup mechanisms, reporters, formatter and resolver together.
type ResolvePipeline struct {
	resolver  *sysnet.Resolver
	formatter *sysnet.Formatter
	overrides *sysnet.OverrideStore
}

// ResolvePipelineParams provides various configuration options for ResolvePipeline.
type ResolvePipelineParams struct {
	// DNSServer - DNS server to query directly, the system resolver is used if empty.
	DNSServer string

	// DNSTimeout - single DNS exchange timeout.
	DNSTimeout time.Duration

	// MdnsTimeout - how long to wait for the mDNS answer for ".local" hosts.
	MdnsTimeout time.Duration

	// OverridesDBPath - bbolt database with host and service overrides, disabled if empty.
	OverridesDBPath string

	// InfluxDB - resolution outcomes are stored in influxDB if URL isn't empty.
	InfluxDB stinfluxdb.DBParams

	// Out - resolution results are printed to Out, the process log is used if nil.
	Out io.Writer

	// ErrOut - errors are printed to ErrOut if Out isn't nil.
	ErrOut io.Writer
}

// NewResolvePipeline initializes resolve pipeline.
//
// Parameters:
//   - ctx - parent context.
//   - closer - to register all resources that should be closed.
//   - params - various pipeline parameters.
func NewResolvePipeline(
	ctx context.Context,
	closer *core.FanoutCloser,
	params ResolvePipelineParams,
) (*ResolvePipeline, error) {
	reporter := &sysnet.FanoutReporter{}

	if params.Out != nil {
		reporter.Add(sysnet.NewWriterReporter(params.Out, params.ErrOut))
	} else {
		reporter.Add(sysnet.LogReporter{})
	}

	if params.InfluxDB.URL != "" {
		reporter.Add(stinfluxdb.NewResolveReporter(ctx, closer, params.InfluxDB))
	}

	var (
		fallback sysnet.Lookup
		names    sysnet.NameLookup
	)

	if params.DNSServer != "" {
		dnsLookup := sysnet.NewDNSLookup(sysnet.DNSLookupParams{
			Server:  params.DNSServer,
			Timeout: params.DNSTimeout,
		})

		fallback, names = dnsLookup, dnsLookup
	} else {
		systemLookup := sysnet.NewSystemLookup(nil)

		fallback, names = systemLookup, systemLookup
	}

	mdnsLookup := sysnet.NewMdnsLookup(sysnet.MdnsLookupParams{
		Timeout: params.MdnsTimeout,
	})
	closer.Add("mdns-lookup", mdnsLookup)

	var lookup sysnet.Lookup = sysnet.NewChainLookup(mdnsLookup, fallback)

	var overrides *sysnet.OverrideStore

	if params.OverridesDBPath != "" {
		db, err := stcore.NewBboltDB(params.OverridesDBPath)
		if err != nil {
			return nil, fmt.Errorf("resolve-pipeline: failed to open overrides DB: path=%s: %w",
				params.OverridesDBPath, err)
		}
		closer.Add("overrides-db", db)

		overrides = sysnet.NewOverrideStore(stcore.NewBboltDBBucket(db, "overrides"))
		lookup = sysnet.NewOverrideLookup(overrides, lookup)
	}

	formatter := sysnet.NewFormatter(names, reporter)

	return &ResolvePipeline{
		resolver:  sysnet.NewResolver(lookup, formatter, reporter),
		formatter: formatter,
		overrides: overrides,
	}, nil
}

// Resolver returns the configured resolver.
func (p *ResolvePipeline) Resolver() *sysnet.Resolver {
	return p.resolver
}

// Formatter returns the configured formatter.
func (p *ResolvePipeline) Formatter() *sysnet.Formatter {
	return p.formatter
}

// Overrides returns the override store, nil if overrides are disabled.
func (p *ResolvePipeline) Overrides() *sysnet.OverrideStore {
	return p.overrides
}
