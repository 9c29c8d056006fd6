package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/open-control-systems/endpoint-resolver/components/core"
	"github.com/open-control-systems/endpoint-resolver/components/pipeline"
	"github.com/open-control-systems/endpoint-resolver/components/storage/stinfluxdb"
	"github.com/open-control-systems/endpoint-resolver/components/system/sysnet"
)

type rootParams struct {
	logPath     string
	dnsServer   string
	dnsTimeout  time.Duration
	mdnsTimeout time.Duration
	overridesDB string
	influxDB    stinfluxdb.DBParams
}

func newRootCmd() *cobra.Command {
	params := &rootParams{}

	cmd := &cobra.Command{
		Use:   "endpoint-resolver",
		Short: "Resolve host and service names to socket endpoints",
		Long: `endpoint-resolver resolves a host/service pair into an IPv4 endpoint
suitable for connect or bind+listen, and renders endpoints back into
a human-readable form.

Use "-" as a host to request the wildcard address for listeners.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			if err := core.SetLogFile(params.logPath); err != nil {
				return fmt.Errorf("failed to setup log file: %w", err)
			}

			return nil
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&params.logPath, "log-path", os.Getenv("ENDPOINT_RESOLVER_LOG_PATH"),
		"log file path, stderr is used if empty")
	flags.StringVar(&params.dnsServer, "dns-server", os.Getenv("ENDPOINT_RESOLVER_DNS_SERVER"),
		"DNS server to query directly, the system resolver is used if empty")
	flags.DurationVar(&params.dnsTimeout, "dns-timeout", time.Second*2,
		"DNS exchange timeout, used with --dns-server")
	flags.DurationVar(&params.mdnsTimeout, "mdns-timeout", sysnet.DefaultMdnsTimeout,
		"how long to wait for the mDNS answer for .local hosts")
	flags.StringVar(&params.overridesDB, "overrides-db",
		os.Getenv("ENDPOINT_RESOLVER_OVERRIDES_DB"),
		"bbolt database with host and service overrides, disabled if empty")

	params.influxDB = stinfluxdb.DBParams{
		URL:    os.Getenv("INFLUXDB_URL"),
		Org:    os.Getenv("INFLUXDB_ORG"),
		Bucket: os.Getenv("INFLUXDB_BUCKET"),
		Token:  os.Getenv("INFLUXDB_API_TOKEN"),
	}

	cmd.AddCommand(
		newResolveCmd(params),
		newFormatCmd(params),
		newProbeCmd(params),
		newWatchCmd(params),
		newOverrideCmd(params),
	)

	return cmd
}

// newPipeline builds the resolve pipeline, results are printed to the command
// output if printResults is set, to the process log otherwise.
func (p *rootParams) newPipeline(
	cmd *cobra.Command,
	closer *core.FanoutCloser,
	printResults bool,
) (*pipeline.ResolvePipeline, error) {
	params := pipeline.ResolvePipelineParams{
		DNSServer:       p.dnsServer,
		DNSTimeout:      p.dnsTimeout,
		MdnsTimeout:     p.mdnsTimeout,
		OverridesDBPath: p.overridesDB,
		InfluxDB:        p.influxDB,
	}

	if printResults {
		params.Out = cmd.OutOrStdout()
		params.ErrOut = cmd.ErrOrStderr()
	}

	return pipeline.NewResolvePipeline(cmd.Context(), closer, params)
}

func addKindFlag(cmd *cobra.Command, kind *string) {
	cmd.Flags().StringVarP(kind, "kind", "k", sysnet.ConnectionKindStream.String(),
		"connection kind: udp, tcp, tcp-listener")
}

func newQuery(args []string, kindStr string) (sysnet.Query, error) {
	kind, err := sysnet.ParseConnectionKind(kindStr)
	if err != nil {
		return sysnet.Query{}, err
	}

	host := args[0]
	if host == "-" {
		host = ""
	}

	return sysnet.Query{
		Host:    host,
		Service: args[1],
		Kind:    kind,
	}, nil
}
