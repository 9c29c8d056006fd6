package stinfluxdb

import (
	"context"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"

	"github.com/open-control-systems/endpoint-resolver/components/core"
	"github.com/open-control-systems/endpoint-resolver/components/system/sysnet"
)

// ResolveReporter stores resolution outcomes in influxDB.
//
// Remarks:
//   - Write failures are logged and never affect the resolution.
//
// References:
//   - https://docs.influxdata.com/influxdb/cloud/api-guide/client-libraries/go/
type ResolveReporter struct {
	ctx         context.Context
	dbClient    influxdb2.Client
	writeClient api.WriteAPIBlocking
}

// NewResolveReporter initializes influxDB reporter.
//
// Parameters:
//   - ctx - parent context.
//   - closer - to register the reporter for the underlying resource deallocation.
//   - params - various influxDB configuration parameters.
func NewResolveReporter(
	ctx context.Context,
	closer *core.FanoutCloser,
	params DBParams,
) *ResolveReporter {
	dbClient := influxdb2.NewClient(params.URL, params.Token)
	writeClient := dbClient.WriteAPIBlocking(params.Org, params.Bucket)

	reporter := &ResolveReporter{
		ctx:         ctx,
		dbClient:    dbClient,
		writeClient: writeClient,
	}

	closer.Add("influxdb-resolve-reporter", reporter)

	return reporter
}

// ReportHeader is non-operational.
func (*ResolveReporter) ReportHeader(sysnet.Query) {}

// ReportCandidate is non-operational.
func (*ResolveReporter) ReportCandidate(sysnet.Query, string) {}

// ReportError is non-operational, the outcome carries the resolution error.
func (*ResolveReporter) ReportError(error) {}

// ReportOutcome writes a "resolution" point.
func (r *ResolveReporter) ReportOutcome(
	q sysnet.Query,
	ep sysnet.Endpoint,
	count int,
	err error,
) {
	fields := map[string]any{
		"candidates": count,
		"success":    err == nil,
	}
	if err == nil {
		fields["address"] = ep.Addr.String()
	} else {
		fields["error"] = err.Error()
	}

	point := influxdb2.NewPoint("resolution",
		map[string]string{
			"host":    q.Host,
			"service": q.Service,
			"kind":    q.Kind.String(),
		},
		fields,
		time.Now())

	if err := r.writeClient.WritePoint(r.ctx, point); err != nil {
		core.LogErr.Printf("influxdb-resolve-reporter: failed to write to DB: %v\n", err)
	}
}

// Close stops writing data to the DB.
func (r *ResolveReporter) Close() error {
	r.dbClient.Close()

	return nil
}
