package sysnet

import (
	"fmt"
	"io"
)

// WriterReporter prints diagnostics as plain text lines.
type WriterReporter struct {
	out    io.Writer
	errOut io.Writer
}

// NewWriterReporter is an initialization of WriterReporter.
//
// Parameters:
//   - out to print resolution results, typically stdout.
//   - errOut to print errors, typically stderr.
func NewWriterReporter(out, errOut io.Writer) *WriterReporter {
	return &WriterReporter{
		out:    out,
		errOut: errOut,
	}
}

// ReportHeader prints the header line.
func (r *WriterReporter) ReportHeader(Query) {
	fmt.Fprintln(r.out, "Name resolution results:")
}

// ReportCandidate prints "-> desc".
func (r *WriterReporter) ReportCandidate(_ Query, desc string) {
	fmt.Fprintf(r.out, "-> %s\n", desc)
}

// ReportError prints err to the error writer.
func (r *WriterReporter) ReportError(err error) {
	fmt.Fprintln(r.errOut, err)
}

// ReportOutcome is non-operational, candidates are already printed.
func (*WriterReporter) ReportOutcome(Query, Endpoint, int, error) {}
