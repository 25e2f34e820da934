// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Command dpsim drives the datapath simulator: it runs small programs and
// prints the truth tables and traces of the basic building blocks.
//
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var level string
	root := &cobra.Command{
		Use:           "dpsim",
		Short:         "Clocked datapath simulator",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.PersistentFlags().StringVar(&level, "log-level", "", "log level (debug, info, warn, error); overrides the config file")

	root.AddCommand(
		newRunCmd(&level),
		newAddersCmd(),
		newDFFCmd(),
	)
	return root
}

func newLogger(level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
