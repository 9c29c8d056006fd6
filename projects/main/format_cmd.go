package main

import (
	"fmt"
	"net/netip"

	"github.com/spf13/cobra"

	"github.com/open-control-systems/endpoint-resolver/components/core"
	"github.com/open-control-systems/endpoint-resolver/components/status"
	"github.com/open-control-systems/endpoint-resolver/components/system/sysnet"
)

func newFormatCmd(params *rootParams) *cobra.Command {
	var kindStr string

	cmd := &cobra.Command{
		Use:   "format <ip:port>",
		Short: "Render IPv4 endpoint in the human-readable form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := sysnet.ParseConnectionKind(kindStr)
			if err != nil {
				return err
			}

			ap, err := netip.ParseAddrPort(args[0])
			if err != nil {
				return fmt.Errorf("invalid endpoint: %w", err)
			}

			addr, err := sysnet.NewSockaddrInet4(ap)
			if err != nil {
				return err
			}

			closer := &core.FanoutCloser{}
			defer closer.Close()

			pipeline, err := params.newPipeline(cmd, closer, true)
			if err != nil {
				return err
			}

			desc, ok := pipeline.Formatter().Format(cmd.Context(), addr, kind)
			if !ok {
				return fmt.Errorf("failed to format endpoint=%s: %w",
					args[0], status.StatusNumericConversionFailed)
			}

			fmt.Fprintln(cmd.OutOrStdout(), desc)

			return nil
		},
	}

	addKindFlag(cmd, &kindStr)

	return cmd
}
