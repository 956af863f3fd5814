// Package session interprets text commands against a prefix-sum index.
//
// A session owns one index, built from a config.Config, and a naive array
// that receives the same mutations. The "check" command compares the two.
// Mutations reach the shadow only after the index accepted them.
package session

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/tinnguyenhuuletrong/my-small-app-playground/tiny-fenwick-go/internal/config"
	"github.com/tinnguyenhuuletrong/my-small-app-playground/tiny-fenwick-go/internal/types"
)

// Session is not safe for concurrent use; see processing.Processor.
type Session struct {
	cfg    config.Config
	logger *slog.Logger
	eng    executor
}

// New builds the index described by cfg.
func New(cfg config.Config, logger *slog.Logger) (*Session, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var eng executor
	var err error
	switch cfg.Kind {
	case types.KindInt:
		eng, err = newEngine(intCodec(), cfg.Size, cfg.Mode)
	case types.KindFloat:
		eng, err = newEngine(floatCodec(), cfg.Size, cfg.Mode)
	case types.KindDecimal:
		eng, err = newEngine(decimalCodec(), cfg.Size, cfg.Mode)
	case types.KindMod:
		var c codec[uint64]
		if c, err = modCodec(cfg.Modulus); err == nil {
			eng, err = newEngine(c, cfg.Size, cfg.Mode)
		}
	default:
		err = fmt.Errorf("%w: unknown kind %q", types.ErrBadArgument, cfg.Kind)
	}
	if err != nil {
		return nil, err
	}

	if logger == nil {
		logger = slog.Default()
	}
	return &Session{
		cfg:    cfg,
		logger: logger.With("kind", cfg.Kind, "mode", cfg.Mode, "size", cfg.Size),
		eng:    eng,
	}, nil
}

// Config returns the config the session was built from, with defaults applied.
func (s *Session) Config() config.Config {
	return s.cfg
}

// Values returns the current elements A[1..n] as text.
func (s *Session) Values() []string {
	return s.eng.values()
}

// Exec runs one command line such as "update 3 5" and returns its output.
// A leading slash is ignored.
func (s *Session) Exec(line string) (string, error) {
	fields := strings.Fields(strings.TrimPrefix(strings.TrimSpace(line), "/"))
	if len(fields) == 0 {
		return "", fmt.Errorf("%w: empty command", types.ErrBadArgument)
	}

	out, err := s.eng.exec(strings.ToLower(fields[0]), fields[1:])
	if err != nil {
		s.logger.Debug("command failed", "cmd", line, "err", err)
		return "", err
	}
	s.logger.Debug("command", "cmd", line)
	return out, nil
}

// RunSteps executes steps in order and stops at the first failure.
func (s *Session) RunSteps(steps []types.Step) error {
	for i, step := range steps {
		if err := s.runStep(step); err != nil {
			s.logger.Warn("step failed", "step", i+1, "cmd", step.Run, "err", err)
			return fmt.Errorf("step %d (%s): %w", i+1, step.Run, err)
		}
	}
	return nil
}

func (s *Session) runStep(step types.Step) error {
	out, err := s.Exec(step.Run)

	if step.ExpectErr != "" {
		if err == nil {
			return fmt.Errorf("%w: got %q, want error %q", types.ErrExpectationFailed, out, step.ExpectErr)
		}
		if !strings.Contains(err.Error(), step.ExpectErr) {
			return fmt.Errorf("%w: got error %q, want error %q", types.ErrExpectationFailed, err, step.ExpectErr)
		}
		return nil
	}
	if err != nil {
		return err
	}

	if step.Expect != nil {
		if want := strings.TrimSpace(*step.Expect); out != want {
			return fmt.Errorf("%w: got %q, want %q", types.ErrExpectationFailed, out, want)
		}
	}
	return nil
}

// IsUserError reports whether err came from a bad command rather than a
// failed check.
func IsUserError(err error) bool {
	return errors.Is(err, types.ErrBadArgument) ||
		errors.Is(err, types.ErrUnknownCommand) ||
		errors.Is(err, types.ErrUnsupported)
}
