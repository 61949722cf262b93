package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"sentsplit/internal/logger"
)

func newRootCmd() *cobra.Command {
	var logLevel string

	root := &cobra.Command{
		Use:           "sentsplit",
		Short:         "Split text files into sentences",
		Long:          `sentsplit splits text files into sentences, optionally keeping only sentences tagged with <math>.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			// Logs go to stderr so stdout stays machine-readable.
			slog.SetDefault(logger.New(cmd.ErrOrStderr(), logLevel, "text"))
		},
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")

	root.AddCommand(newSplitCmd())
	return root
}
