package types

import (
	"fmt"
	"log/slog"
)

// Kind selects the value group an index is built over.
type Kind string

const (
	KindInt     Kind = "int"
	KindFloat   Kind = "float"
	KindDecimal Kind = "decimal"
	KindMod     Kind = "mod"
)

// Mode selects between point updates and range updates.
type Mode string

const (
	ModePoint Mode = "point"
	ModeRange Mode = "range"
)

// ParseKind validates a kind name.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(s); k {
	case KindInt, KindFloat, KindDecimal, KindMod:
		return k, nil
	}
	return "", fmt.Errorf("%w: unknown kind %q", ErrBadArgument, s)
}

// ParseMode validates a mode name.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(s); m {
	case ModePoint, ModeRange:
		return m, nil
	}
	return "", fmt.Errorf("%w: unknown mode %q", ErrBadArgument, s)
}

// Step is one scripted command. When Expect is set the command output must
// match it exactly. When ExpectErr is set the command must fail with an
// error containing it.
type Step struct {
	Run       string  `json:"run" yaml:"run"`
	Expect    *string `json:"expect,omitempty" yaml:"expect,omitempty"`
	ExpectErr string  `json:"expect_err,omitempty" yaml:"expect_err,omitempty"`
}

// Utils interface for shared helpers
type Utils interface {
	GetLogger() *slog.Logger
}

// Error
type errString string

func (e errString) Error() string {
	return string(e)
}

const ErrUnknownCommand = errString("unknown command")
const ErrUnsupported = errString("command not supported in this mode")
const ErrBadArgument = errString("bad argument")
const ErrExpectationFailed = errString("expectation failed")
const ErrShuttingDown = errString("request cancelled: processor shutting down")
