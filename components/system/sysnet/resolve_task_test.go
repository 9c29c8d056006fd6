package sysnet

import (
	"bytes"
	"context"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/open-control-systems/endpoint-resolver/components/core"
	"github.com/open-control-systems/endpoint-resolver/components/status"
)

func TestResolveTaskRun(t *testing.T) {
	lookup := &testLookup{
		list: &testCandidateList{
			candidates: []Endpoint{newTestEndpoint(t, "192.0.2.1:80", ConnectionKindStream)},
		},
	}

	task := NewResolveTask(context.Background(), newTestResolver(lookup, nil, NoopReporter{}),
		Query{Host: "device.example", Service: "80", Kind: ConnectionKindStream})

	require.Nil(t, task.Run())
	require.Equal(t, "192.0.2.1:80", task.last.Addr.String())

	lookup.list = &testCandidateList{
		candidates: []Endpoint{newTestEndpoint(t, "192.0.2.2:80", ConnectionKindStream)},
	}
	require.Nil(t, task.Run())
	require.Equal(t, "192.0.2.2:80", task.last.Addr.String())

	lookup.list = nil
	lookup.err = errors.New("lookup failed")

	err := task.Run()
	require.True(t, errors.Is(err, status.StatusResolutionFailed))
	require.Equal(t, "192.0.2.2:80", task.last.Addr.String())

	task.HandleError(err)
	require.Equal(t, 3, lookup.callCount)
}

func TestResolveTaskRunLog(t *testing.T) {
	var buf bytes.Buffer

	core.LogInf.SetOutput(&buf)
	defer core.LogInf.SetOutput(os.Stderr)

	lookup := &testLookup{
		list: &testCandidateList{
			candidates: []Endpoint{newTestEndpoint(t, "192.0.2.1:80", ConnectionKindStream)},
		},
	}

	task := NewResolveTask(context.Background(), newTestResolver(lookup, nil, NoopReporter{}),
		Query{Host: "device.example", Service: "80", Kind: ConnectionKindStream})

	require.Nil(t, task.Run())
	require.Contains(t, buf.String(), "resolve-task: addr resolved:")
	require.Contains(t, buf.String(), "addr=192.0.2.1:80")
	require.NotContains(t, buf.String(), "<invalid>")

	buf.Reset()
	require.Nil(t, task.Run())
	require.Empty(t, buf.String())

	lookup.list = &testCandidateList{
		candidates: []Endpoint{newTestEndpoint(t, "192.0.2.2:80", ConnectionKindStream)},
	}

	require.Nil(t, task.Run())
	require.Contains(t, buf.String(), "cur=192.0.2.1:80 new=192.0.2.2:80")
}
