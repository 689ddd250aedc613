package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "1.0.0"

func main() {
	var logger *zerolog.Logger
	{
		l := zerolog.New(os.Stdout).
			Level(zerolog.DebugLevel).
			Output(zerolog.ConsoleWriter{
				Out:          os.Stdout,
				PartsExclude: []string{zerolog.TimestampFieldName},
			})
		logger = &l
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCommand(logger).ExecuteContext(ctx); err != nil {
		logger.Error().Msgf("%v", err)
		stop()
		os.Exit(1)
	}
}

func newRootCommand(logger *zerolog.Logger) *cobra.Command {
	var quiet bool
	root := &cobra.Command{
		Use:           "serverready",
		Short:         "Build tooling for the ServerReady plugin",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if quiet {
				l := logger.Level(zerolog.InfoLevel)
				*logger = l
			}
		},
	}
	root.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Only log informational messages and errors.")
	root.AddCommand(
		newGenerateCommand(logger),
		newInspectCommand(),
		&cobra.Command{
			Use:   "version",
			Short: "Print the version of this program",
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprintln(cmd.OutOrStdout(), version)
			},
		},
	)
	return root
}
