package sysnet

import (
	"context"
	"errors"
	"net"
	"net/netip"
	"testing"
	"time"

	"github.com/miekg/dns"
	"github.com/stretchr/testify/require"

	"github.com/open-control-systems/endpoint-resolver/components/status"
)

func startTestDNSServer(t *testing.T, records map[string][]dns.RR) string {
	pc, err := net.ListenPacket("udp", "127.0.0.1:0")
	require.Nil(t, err)

	handler := dns.HandlerFunc(func(w dns.ResponseWriter, req *dns.Msg) {
		resp := new(dns.Msg)
		resp.SetReply(req)

		answers, ok := records[req.Question[0].Name]
		if !ok {
			resp.Rcode = dns.RcodeNameError
		}
		for _, rr := range answers {
			if rr.Header().Rrtype == req.Question[0].Qtype {
				resp.Answer = append(resp.Answer, rr)
			}
		}

		_ = w.WriteMsg(resp)
	})

	startedCh := make(chan struct{})
	server := &dns.Server{
		PacketConn:        pc,
		Handler:           handler,
		NotifyStartedFunc: func() { close(startedCh) },
	}

	go func() {
		_ = server.ActivateAndServe()
	}()
	<-startedCh

	t.Cleanup(func() {
		_ = server.Shutdown()
	})

	return pc.LocalAddr().String()
}

func newTestRR(t *testing.T, s string) dns.RR {
	rr, err := dns.NewRR(s)
	require.Nil(t, err)

	return rr
}

func TestDNSLookupLookup(t *testing.T) {
	server := startTestDNSServer(t, map[string][]dns.RR{
		"multi.example.": {
			newTestRR(t, "multi.example. 60 IN A 192.0.2.1"),
			newTestRR(t, "multi.example. 60 IN A 192.0.2.2"),
			newTestRR(t, "multi.example. 60 IN TXT \"ignored\""),
		},
		"empty.example.": {},
	})

	lookup := NewDNSLookup(DNSLookupParams{Server: server, Timeout: time.Second})

	list, err := lookup.Lookup(context.Background(), "multi.example", "80",
		NewHints(ConnectionKindStream))
	require.Nil(t, err)
	defer list.Close()

	candidates := list.Candidates()
	require.Len(t, candidates, 2)
	require.Equal(t, "192.0.2.1:80", candidates[0].Addr.String())
	require.Equal(t, "192.0.2.2:80", candidates[1].Addr.String())

	list, err = lookup.Lookup(context.Background(), "empty.example", "80",
		NewHints(ConnectionKindStream))
	require.Nil(t, err)
	require.Empty(t, list.Candidates())

	list, err = lookup.Lookup(context.Background(), "missing.example", "80",
		NewHints(ConnectionKindStream))
	require.NotNil(t, err)
	require.Nil(t, list)
	require.Contains(t, err.Error(), "NXDOMAIN")
}

func TestDNSLookupLiteralNoQuery(t *testing.T) {
	lookup := NewDNSLookup(DNSLookupParams{Server: "192.0.2.53", Timeout: time.Millisecond})

	list, err := lookup.Lookup(context.Background(), "127.0.0.1", "80",
		NewHints(ConnectionKindStream))
	require.Nil(t, err)
	require.Len(t, list.Candidates(), 1)
	require.Equal(t, "127.0.0.1:80", list.Candidates()[0].Addr.String())
}

func TestDNSLookupLookupName(t *testing.T) {
	server := startTestDNSServer(t, map[string][]dns.RR{
		"1.2.0.192.in-addr.arpa.": {
			newTestRR(t, "1.2.0.192.in-addr.arpa. 60 IN PTR one.example."),
		},
		"2.2.0.192.in-addr.arpa.": {},
	})

	lookup := NewDNSLookup(DNSLookupParams{Server: server, Timeout: time.Second})

	name, err := lookup.LookupName(context.Background(), netip.MustParseAddr("192.0.2.1"))
	require.Nil(t, err)
	require.Equal(t, "one.example", name)

	for _, addr := range []string{"192.0.2.2", "192.0.2.3"} {
		_, err = lookup.LookupName(context.Background(), netip.MustParseAddr(addr))
		require.True(t, errors.Is(err, status.StatusNameNotFound), addr)
	}
}

func TestDNSLookupResolverFormat(t *testing.T) {
	server := startTestDNSServer(t, map[string][]dns.RR{
		"one.example.": {
			newTestRR(t, "one.example. 60 IN A 192.0.2.1"),
		},
		"1.2.0.192.in-addr.arpa.": {
			newTestRR(t, "1.2.0.192.in-addr.arpa. 60 IN PTR one.example."),
		},
	})

	lookup := NewDNSLookup(DNSLookupParams{Server: server, Timeout: time.Second})
	reporter := &testReporter{}

	ep, err := newTestResolver(lookup, lookup, reporter).Resolve(context.Background(), Query{
		Host:    "one.example",
		Service: "53",
		Kind:    ConnectionKindDatagram,
	})
	require.Nil(t, err)
	require.Equal(t, "192.0.2.1:53", ep.Addr.String())
	require.Equal(t, []string{"Host=one.example (192.0.2.1), Port=53 UDP"}, reporter.candidates)
}
