package sysnet

// Reporter receives diagnostics emitted during resolution and formatting.
//
// Remarks:
//   - Reporting has no effect on resolution results.
type Reporter interface {
	// ReportHeader is called once before the candidates of a successful lookup.
	ReportHeader(q Query)

	// ReportCandidate is called for every candidate that could be formatted, in order.
	ReportCandidate(q Query, desc string)

	// ReportError reports resolution and formatting failures.
	ReportError(err error)

	// ReportOutcome is called once per resolution.
	//
	// Parameters:
	//  - ep - selected endpoint, zero value on failure.
	//  - count - number of candidates returned by the lookup.
	//  - err - resolution error, nil on success.
	ReportOutcome(q Query, ep Endpoint, count int, err error)
}

// NoopReporter drops all diagnostics.
type NoopReporter struct{}

// ReportHeader is non-operational.
func (NoopReporter) ReportHeader(Query) {}

// ReportCandidate is non-operational.
func (NoopReporter) ReportCandidate(Query, string) {}

// ReportError is non-operational.
func (NoopReporter) ReportError(error) {}

// ReportOutcome is non-operational.
func (NoopReporter) ReportOutcome(Query, Endpoint, int, error) {}
