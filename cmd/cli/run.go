package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/tinnguyenhuuletrong/my-small-app-playground/tiny-fenwick-go/internal/config"
	"github.com/tinnguyenhuuletrong/my-small-app-playground/tiny-fenwick-go/internal/session"
	"github.com/tinnguyenhuuletrong/my-small-app-playground/tiny-fenwick-go/internal/utils"
)

// newLogger prefers the --log-level flag over the config value.
func newLogger(cfgLevel string, w io.Writer) (*slog.Logger, error) {
	name := cfgLevel
	if logLevel != "" {
		name = logLevel
	}
	level, err := utils.ParseLogLevel(name)
	if err != nil {
		return nil, err
	}
	return utils.NewDefaultUtils(level, w).GetLogger(), nil
}

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run <scenario.yaml|scenario.json>",
		Short: "Run the scripted steps of a scenario file and check their expectations",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(args[0])
			if err != nil {
				return err
			}
			logger, err := newLogger(cfg.LogLevel, os.Stderr)
			if err != nil {
				return err
			}

			s, err := session.New(cfg, logger)
			if err != nil {
				return err
			}
			if err := s.RunSteps(cfg.Steps); err != nil {
				return err
			}

			logger.Info("scenario passed", "file", args[0], "steps", len(cfg.Steps))
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d steps ok\n", args[0], len(cfg.Steps))
			return nil
		},
	}
}
