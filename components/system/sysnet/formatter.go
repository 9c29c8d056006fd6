package sysnet

import (
	"context"
	"fmt"
)

const (
	// ListeningLabel replaces the host name for passive endpoints.
	ListeningLabel = "Listening on"

	// UnknownHostLabel replaces the host name when no name is associated with the address.
	UnknownHostLabel = "Host=(unknown)"
)

// Formatter renders endpoints in the human-readable form.
//
// Examples:
//   - "Host=localhost (127.0.0.1), Port=80 TCP"
//   - "Host=(unknown) (192.0.2.1), Port=53 UDP"
//   - "Listening on (0.0.0.0), Port=8080 TCP"
type Formatter struct {
	names    NameLookup
	reporter Reporter
}

// NewFormatter is an initialization of Formatter.
//
// Parameters:
//   - names to resolve host names of non-passive endpoints, may be nil.
//   - reporter to report numeric conversion failures.
func NewFormatter(names NameLookup, reporter Reporter) *Formatter {
	return &Formatter{
		names:    names,
		reporter: reporter,
	}
}

// Format renders addr, returns false if addr can't be converted to the numeric form.
//
// Remarks:
//   - Missing host name isn't an error, UnknownHostLabel is used instead.
func (f *Formatter) Format(ctx context.Context, addr Sockaddr, kind ConnectionKind) (string, bool) {
	flags := NameInfoNumericHost | NameInfoNumericService
	if kind == ConnectionKindDatagram {
		flags |= NameInfoDatagram
	}

	host, service, err := NameInfo(ctx, nil, addr, flags)
	if err != nil {
		f.reporter.ReportError(fmt.Errorf("formatter: %w", err))

		return "", false
	}

	label := ListeningLabel
	if !kind.Passive() {
		if name, ok := f.FormatHostname(ctx, addr, kind); ok {
			label = "Host=" + name
		} else {
			label = UnknownHostLabel
		}
	}

	return fmt.Sprintf("%s (%s), Port=%s %s", label, host, service, kind.Proto()), true
}

// FormatHostname returns the name associated with addr.
//
// Remarks:
//   - Passive endpoints are never looked up.
func (f *Formatter) FormatHostname(
	ctx context.Context,
	addr Sockaddr,
	kind ConnectionKind,
) (string, bool) {
	if kind.Passive() || f.names == nil {
		return "", false
	}

	name, _, err := NameInfo(ctx, f.names, addr, NameInfoNameRequired)
	if err != nil {
		return "", false
	}

	return name, true
}
