package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"duomux/internal/logging"
	"duomux/internal/pipeline"
)

func newRunCommand(configFlag *string) *cobra.Command {
	o := &overrides{}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Process every matching pair in the source folder",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(*configFlag, o, cmd.Flags())
			if err != nil {
				return err
			}

			logger, err := logging.New(os.Stderr, logging.Options{
				Level:  cfg.Log.Level,
				Format: cfg.Log.Format,
			})
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			outcomes, err := pipeline.NewRunner(cfg, logger).Run(ctx)
			if err != nil {
				return err
			}

			printSummary(os.Stdout, outcomes)

			stats := pipeline.Summarize(outcomes)
			if stats.Failed > 0 {
				return fmt.Errorf("%d of %d pairs failed (see %s)",
					stats.Failed, stats.Total, pipeline.ErrorLogName)
			}
			return nil
		},
	}

	o.register(cmd)
	return cmd
}
