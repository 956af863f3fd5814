package main

import (
	bubbletea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/tinnguyenhuuletrong/my-small-app-playground/tiny-fenwick-go/cmd/cli/tui"
	"github.com/tinnguyenhuuletrong/my-small-app-playground/tiny-fenwick-go/internal/config"
	"github.com/tinnguyenhuuletrong/my-small-app-playground/tiny-fenwick-go/internal/processing"
	"github.com/tinnguyenhuuletrong/my-small-app-playground/tiny-fenwick-go/internal/session"
)

func newTUICmd() *cobra.Command {
	var configPath string
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Inspect an index interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Config{Size: 16}
			if configPath != "" {
				var err error
				if cfg, err = config.Load(configPath); err != nil {
					return err
				}
			}
			cfg.ApplyDefaults()

			logCh := make(chan string, 100)
			logger, err := newLogger(cfg.LogLevel, &tui.ChannelWriter{Ch: logCh})
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

			proc := processing.NewProcessor(s, logger, nil)
			defer proc.Stop()

			_, err = bubbletea.NewProgram(tui.NewModel(proc, cfg, logCh)).Run()
			return err
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "", "scenario file to load before starting")
	return cmd
}
