package sysnet

// FanoutReporter forwards diagnostics to the registered reporters.
type FanoutReporter struct {
	reporters []Reporter
}

// Add adds reporter to be notified about diagnostics.
func (r *FanoutReporter) Add(reporter Reporter) {
	r.reporters = append(r.reporters, reporter)
}

// ReportHeader forwards the call.
func (r *FanoutReporter) ReportHeader(q Query) {
	for _, reporter := range r.reporters {
		reporter.ReportHeader(q)
	}
}

// ReportCandidate forwards the call.
func (r *FanoutReporter) ReportCandidate(q Query, desc string) {
	for _, reporter := range r.reporters {
		reporter.ReportCandidate(q, desc)
	}
}

// ReportError forwards the call.
func (r *FanoutReporter) ReportError(err error) {
	for _, reporter := range r.reporters {
		reporter.ReportError(err)
	}
}

// ReportOutcome forwards the call.
func (r *FanoutReporter) ReportOutcome(q Query, ep Endpoint, count int, err error) {
	for _, reporter := range r.reporters {
		reporter.ReportOutcome(q, ep, count, err)
	}
}
