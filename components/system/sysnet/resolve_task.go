package sysnet

import (
	"context"

	"github.com/open-control-systems/endpoint-resolver/components/core"
)

// ResolveTask resolves the same query on every run.
type ResolveTask struct {
	ctx      context.Context
	resolver *Resolver
	query    Query
	last     Endpoint
	resolved bool
}

// NewResolveTask is an initialization of ResolveTask.
func NewResolveTask(ctx context.Context, resolver *Resolver, query Query) *ResolveTask {
	return &ResolveTask{
		ctx:      ctx,
		resolver: resolver,
		query:    query,
	}
}

// Run performs a single resolution and logs when the selected address changes.
func (t *ResolveTask) Run() error {
	ep, err := t.resolver.Resolve(t.ctx, t.query)
	if err != nil {
		return err
	}

	if !t.resolved {
		core.LogInf.Printf("resolve-task: addr resolved: host=%s service=%s kind=%s addr=%s\n",
			t.query.Host, t.query.Service, t.query.Kind, ep.Addr)

		t.last = ep
		t.resolved = true

		return nil
	}

	if ep.Addr.String() != t.last.Addr.String() {
		core.LogInf.Printf("resolve-task: addr changed: host=%s service=%s kind=%s"+
			" cur=%s new=%s\n",
			t.query.Host, t.query.Service, t.query.Kind, t.last.Addr, ep.Addr)

		t.last = ep
	}

	return nil
}

// HandleError handles errors from the Run() call.
func (t *ResolveTask) HandleError(err error) {
	core.LogErr.Printf("resolve-task: resolution failed: host=%s service=%s: %v\n",
		t.query.Host, t.query.Service, err)
}
