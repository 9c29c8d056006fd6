package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/open-control-systems/endpoint-resolver/components/core"
	"github.com/open-control-systems/endpoint-resolver/components/system/syssock"
)

func newProbeCmd(params *rootParams) *cobra.Command {
	var kind string

	cmd := &cobra.Command{
		Use:   "probe <host|-> <service>",
		Short: "Resolve host and service, then connect or bind+listen to the endpoint",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			query, err := newQuery(args, kind)
			if err != nil {
				return err
			}

			closer := &core.FanoutCloser{}
			defer closer.Close()

			pipeline, err := params.newPipeline(cmd, closer, true)
			if err != nil {
				return err
			}

			ep, err := pipeline.Resolver().Resolve(cmd.Context(), query)
			if err != nil {
				return err
			}

			local, err := syssock.Probe(ep, query.Kind)
			if err != nil {
				return err
			}

			desc, ok := pipeline.Formatter().Format(cmd.Context(), local, query.Kind)
			if !ok {
				desc = local.String()
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Local endpoint: %s\n", desc)

			return nil
		},
	}

	addKindFlag(cmd, &kind)

	return cmd
}
