package main

import (
	"os"

	"github.com/spf13/cobra"
)

var logLevel string

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "fenwick",
		Short:         "Drive Fenwick tree prefix-sum indexes from scripts, fuzzers or a TUI",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "debug, info, warn or error (overrides the config file)")

	root.AddCommand(newRunCmd(), newFuzzCmd(), newTUICmd())
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
