package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/open-control-systems/endpoint-resolver/components/core"
)

func newResolveCmd(params *rootParams) *cobra.Command {
	var kind string

	cmd := &cobra.Command{
		Use:   "resolve <host|-> <service>",
		Short: "Resolve host and service, print all candidates and the selected endpoint",
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

			fmt.Fprintf(cmd.OutOrStdout(),
				"Selected: family=%d socktype=%d protocol=%d addr=%s len=%d\n",
				ep.Family, ep.SocketType, ep.Protocol, ep.Addr, ep.Addr.Len())

			return nil
		},
	}

	addKindFlag(cmd, &kind)

	return cmd
}
