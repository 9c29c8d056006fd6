package sysnet

import "github.com/open-control-systems/endpoint-resolver/components/core"

// LogReporter writes diagnostics to the process log.
type LogReporter struct{}

// ReportHeader logs the query.
func (LogReporter) ReportHeader(q Query) {
	core.LogInf.Printf("resolver: name resolution results: host=%s service=%s kind=%s\n",
		q.Host, q.Service, q.Kind)
}

// ReportCandidate logs the candidate.
func (LogReporter) ReportCandidate(_ Query, desc string) {
	core.LogInf.Printf("resolver: -> %s\n", desc)
}

// ReportError logs the error.
func (LogReporter) ReportError(err error) {
	core.LogErr.Printf("resolver: %v\n", err)
}

// ReportOutcome is non-operational, errors are logged with ReportError().
func (LogReporter) ReportOutcome(Query, Endpoint, int, error) {}
