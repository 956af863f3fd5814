package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/tinnguyenhuuletrong/my-small-app-playground/tiny-fenwick-go/internal/config"
	"github.com/tinnguyenhuuletrong/my-small-app-playground/tiny-fenwick-go/internal/session"
	"github.com/tinnguyenhuuletrong/my-small-app-playground/tiny-fenwick-go/internal/types"
	"github.com/tinnguyenhuuletrong/my-small-app-playground/tiny-fenwick-go/internal/workload"
)

type fuzzOptions struct {
	kind    string
	mode    string
	modulus uint64
	size    int
	steps   int
	seed    int64
}

func newFuzzCmd() *cobra.Command {
	opts := fuzzOptions{}
	cmd := &cobra.Command{
		Use:   "fuzz",
		Short: "Apply random mutations and compare the index with a plain array after each one",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.seed == 0 {
				opts.seed = time.Now().UnixNano()
			}
			n, err := runFuzz(opts)
			if err != nil {
				return fmt.Errorf("seed %d: %w", opts.seed, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "seed %d: %d mutations ok\n", opts.seed, n)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.kind, "kind", string(types.KindInt), "value kind: int, float, decimal or mod")
	f.StringVar(&opts.mode, "mode", string(types.ModePoint), "point or range")
	f.Uint64Var(&opts.modulus, "modulus", 1_000_000_007, "modulus for --kind mod")
	f.IntVar(&opts.size, "size", 64, "number of elements")
	f.IntVar(&opts.steps, "steps", 1000, "number of mutations")
	f.Int64Var(&opts.seed, "seed", 0, "workload seed (0 picks one)")
	return cmd
}

// runFuzz returns the number of mutations applied before the first
// divergence or error.
func runFuzz(opts fuzzOptions) (int, error) {
	kind, err := types.ParseKind(opts.kind)
	if err != nil {
		return 0, err
	}
	mode, err := types.ParseMode(opts.mode)
	if err != nil {
		return 0, err
	}
	cfg := config.Config{Size: opts.size, Kind: kind, Mode: mode, Modulus: opts.modulus}

	logger, err := newLogger("warn", os.Stderr)
	if err != nil {
		return 0, err
	}
	s, err := session.New(cfg, logger)
	if err != nil {
		return 0, err
	}

	gen := workload.New(opts.size, mode, opts.seed)
	for i := 0; i < opts.steps; i++ {
		line := gen.Next()
		if _, err := s.Exec(line); err != nil {
			return i, fmt.Errorf("mutation %d %q: %w", i+1, line, err)
		}
		if _, err := s.Exec("check"); err != nil {
			return i, fmt.Errorf("after mutation %d %q: %w", i+1, line, err)
		}

		// Reads may legitimately fail, e.g. find below the first element.
		probe := gen.Probe()
		if _, err := s.Exec(probe); err != nil && session.IsUserError(err) {
			return i, fmt.Errorf("probe %q: %w", probe, err)
		}
	}
	logger.Info("fuzz finished", "seed", opts.seed, "mutations", opts.steps)
	return opts.steps, nil
}
