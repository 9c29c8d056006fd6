package sysnet

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriterReporter(t *testing.T) {
	var out, errOut bytes.Buffer

	reporter := &FanoutReporter{}
	reporter.Add(NewWriterReporter(&out, &errOut))
	reporter.Add(NoopReporter{})

	query := Query{Host: "127.0.0.1", Service: "80", Kind: ConnectionKindStream}

	reporter.ReportHeader(query)
	reporter.ReportCandidate(query, "Host=(unknown) (127.0.0.1), Port=80 TCP")
	reporter.ReportError(errors.New("no addresses found"))
	reporter.ReportOutcome(query, Endpoint{}, 1, nil)

	require.Equal(t,
		"Name resolution results:\n-> Host=(unknown) (127.0.0.1), Port=80 TCP\n",
		out.String())
	require.Equal(t, "no addresses found\n", errOut.String())
}
