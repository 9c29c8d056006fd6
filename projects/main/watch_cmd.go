package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/open-control-systems/endpoint-resolver/components/core"
	"github.com/open-control-systems/endpoint-resolver/components/system/sysnet"
	"github.com/open-control-systems/endpoint-resolver/components/system/syssched"
)

func newWatchCmd(params *rootParams) *cobra.Command {
	var (
		kind          string
		interval      time.Duration
		untilResolved bool
	)

	cmd := &cobra.Command{
		Use:   "watch <host|-> <service>",
		Short: "Periodically resolve host and service, log address changes",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			query, err := newQuery(args, kind)
			if err != nil {
				return err
			}

			closer := &core.FanoutCloser{}
			defer closer.Close()

			pipeline, err := params.newPipeline(cmd, closer, false)
			if err != nil {
				return err
			}

			task := sysnet.NewResolveTask(cmd.Context(), pipeline.Resolver(), query)

			runner := syssched.NewAsyncTaskRunner(cmd.Context(), task, task,
				syssched.AsyncTaskRunnerParams{
					UpdateInterval: interval,
					ExitOnSuccess:  untilResolved,
				})
			if err := runner.Start(); err != nil {
				return err
			}
			closer.Add("watch-runner", core.FuncCloser(runner.Stop))

			select {
			case <-runner.Done():
			case <-cmd.Context().Done():
			}

			return nil
		},
	}

	addKindFlag(cmd, &kind)
	cmd.Flags().DurationVar(&interval, "interval", time.Second*5, "resolution interval")
	cmd.Flags().BoolVar(&untilResolved, "until-resolved", false,
		"retry until the first successful resolution, then exit")

	return cmd
}
