package main

import (
	"fmt"
	"net/netip"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/open-control-systems/endpoint-resolver/components/core"
	"github.com/open-control-systems/endpoint-resolver/components/status"
	"github.com/open-control-systems/endpoint-resolver/components/system/sysnet"
)

func newOverrideCmd(params *rootParams) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "override",
		Short: "Manage host and service overrides, requires --overrides-db",
	}

	withStore := func(fn func(cmd *cobra.Command, store *sysnet.OverrideStore, args []string) error) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, args []string) error {
			if params.overridesDB == "" {
				return fmt.Errorf("overrides DB isn't configured: %w", status.StatusInvalidState)
			}

			closer := &core.FanoutCloser{}
			defer closer.Close()

			pipeline, err := params.newPipeline(cmd, closer, true)
			if err != nil {
				return err
			}

			return fn(cmd, pipeline.Overrides(), args)
		}
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "set-host <host> <ipv4>",
			Short: "Resolve host to the given address",
			Args:  cobra.ExactArgs(2),
			RunE: withStore(func(_ *cobra.Command, store *sysnet.OverrideStore, args []string) error {
				addr, err := netip.ParseAddr(args[1])
				if err != nil {
					return fmt.Errorf("invalid address: %w", err)
				}

				return store.SetHost(args[0], addr)
			}),
		},
		&cobra.Command{
			Use:   "set-service <service> <port>",
			Short: "Resolve service to the given port",
			Args:  cobra.ExactArgs(2),
			RunE: withStore(func(_ *cobra.Command, store *sysnet.OverrideStore, args []string) error {
				port, err := strconv.ParseUint(args[1], 10, 16)
				if err != nil {
					return fmt.Errorf("invalid port: %w", err)
				}

				return store.SetService(args[0], uint16(port))
			}),
		},
		&cobra.Command{
			Use:   "remove-host <host>",
			Short: "Remove the host override",
			Args:  cobra.ExactArgs(1),
			RunE: withStore(func(_ *cobra.Command, store *sysnet.OverrideStore, args []string) error {
				return store.RemoveHost(args[0])
			}),
		},
		&cobra.Command{
			Use:   "remove-service <service>",
			Short: "Remove the service override",
			Args:  cobra.ExactArgs(1),
			RunE: withStore(func(_ *cobra.Command, store *sysnet.OverrideStore, args []string) error {
				return store.RemoveService(args[0])
			}),
		},
		&cobra.Command{
			Use:   "list",
			Short: "Print all overrides",
			Args:  cobra.NoArgs,
			RunE: withStore(func(cmd *cobra.Command, store *sysnet.OverrideStore, _ []string) error {
				return store.ForEach(func(kind, name, value string) error {
					_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", kind, name, value)
					return err
				})
			}),
		},
	)

	return cmd
}
