package session

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tinnguyenhuuletrong/my-small-app-playground/tiny-fenwick-go/internal/dump"
	"github.com/tinnguyenhuuletrong/my-small-app-playground/tiny-fenwick-go/internal/fenwick"
	"github.com/tinnguyenhuuletrong/my-small-app-playground/tiny-fenwick-go/internal/naive"
	"github.com/tinnguyenhuuletrong/my-small-app-playground/tiny-fenwick-go/internal/types"
)

const ok = "ok"

type executor interface {
	exec(name string, args []string) (string, error)
	values() []string
}

// engine runs commands against one index, point or range, and keeps a naive
// shadow in step with it. Exactly one of point and rng is set.
type engine[T any] struct {
	c      codec[T]
	point  *fenwick.Tree[T]
	rng    *fenwick.RangeTree[T]
	shadow *naive.Array[T]
}

func newEngine[T any](c codec[T], size int, mode types.Mode) (*engine[T], error) {
	e := &engine[T]{c: c}
	var err error
	switch mode {
	case types.ModePoint:
		e.point, err = fenwick.New(size, c.g)
	case types.ModeRange:
		e.rng, err = fenwick.NewRange(size, c.g)
	default:
		err = fmt.Errorf("%w: unknown mode %q", types.ErrBadArgument, mode)
	}
	if err != nil {
		return nil, err
	}
	e.shadow = naive.New(size, c.g)
	return e, nil
}

func wantArgs(name string, args []string, n int) error {
	if len(args) != n {
		return fmt.Errorf("%w: %s takes %d arguments, got %d", types.ErrBadArgument, name, n, len(args))
	}
	return nil
}

func parseIndex(s string) (int, error) {
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: index %q", types.ErrBadArgument, s)
	}
	return i, nil
}

func parseIndexes(args []string) ([]int, error) {
	out := make([]int, len(args))
	for i, a := range args {
		v, err := parseIndex(a)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func unsupported(name string, mode types.Mode) error {
	return fmt.Errorf("%w: %s in %s mode", types.ErrUnsupported, name, mode)
}

func (e *engine[T]) mode() types.Mode {
	if e.point != nil {
		return types.ModePoint
	}
	return types.ModeRange
}

func (e *engine[T]) exec(name string, args []string) (string, error) {
	switch name {
	case "update":
		return e.update(args)
	case "range":
		return e.updateRange(args)
	case "set":
		return e.set(args)
	case "scale":
		return e.scale(args)
	case "query":
		return e.query(args)
	case "single":
		return e.single(args)
	case "sum":
		return e.sum(args)
	case "find":
		return e.find(args)
	case "dump":
		return e.dump(args)
	case "check":
		return e.check(args)
	}
	return "", fmt.Errorf("%w: %s", types.ErrUnknownCommand, name)
}

func (e *engine[T]) update(args []string) (string, error) {
	if err := wantArgs("update", args, 2); err != nil {
		return "", err
	}
	idx, err := parseIndex(args[0])
	if err != nil {
		return "", err
	}
	val, err := e.c.parse(args[1])
	if err != nil {
		return "", err
	}
	if e.point != nil {
		err = e.point.Update(idx, val)
	} else {
		err = e.rng.Update(idx, val)
	}
	if err != nil {
		return "", err
	}
	e.shadow.Update(idx, val)
	return ok, nil
}

func (e *engine[T]) updateRange(args []string) (string, error) {
	if e.rng == nil {
		return "", unsupported("range", e.mode())
	}
	if err := wantArgs("range", args, 3); err != nil {
		return "", err
	}
	idx, err := parseIndexes(args[:2])
	if err != nil {
		return "", err
	}
	val, err := e.c.parse(args[2])
	if err != nil {
		return "", err
	}
	if err := e.rng.UpdateRange(idx[0], idx[1], val); err != nil {
		return "", err
	}
	e.shadow.UpdateRange(idx[0], idx[1], val)
	return ok, nil
}

func (e *engine[T]) set(args []string) (string, error) {
	if e.point == nil {
		return "", unsupported("set", e.mode())
	}
	if err := wantArgs("set", args, 2); err != nil {
		return "", err
	}
	idx, err := parseIndex(args[0])
	if err != nil {
		return "", err
	}
	val, err := e.c.parse(args[1])
	if err != nil {
		return "", err
	}
	if err := e.point.Set(idx, val); err != nil {
		return "", err
	}
	e.shadow.Set(idx, val)
	return ok, nil
}

func (e *engine[T]) scale(args []string) (string, error) {
	if e.point == nil {
		return "", unsupported("scale", e.mode())
	}
	if err := wantArgs("scale", args, 1); err != nil {
		return "", err
	}
	k, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return "", fmt.Errorf("%w: factor %q", types.ErrBadArgument, args[0])
	}
	e.point.Scale(k)
	e.shadow.Scale(k)
	return ok, nil
}

func (e *engine[T]) query(args []string) (string, error) {
	if err := wantArgs("query", args, 1); err != nil {
		return "", err
	}
	idx, err := parseIndex(args[0])
	if err != nil {
		return "", err
	}
	var v T
	if e.point != nil {
		v, err = e.point.Query(idx)
	} else {
		v, err = e.rng.Query(idx)
	}
	if err != nil {
		return "", err
	}
	return e.c.format(v), nil
}

func (e *engine[T]) single(args []string) (string, error) {
	if err := wantArgs("single", args, 1); err != nil {
		return "", err
	}
	idx, err := parseIndex(args[0])
	if err != nil {
		return "", err
	}
	var v T
	if e.point != nil {
		v, err = e.point.ReadSingle(idx)
	} else {
		v, err = e.rng.ReadSingle(idx)
	}
	if err != nil {
		return "", err
	}
	return e.c.format(v), nil
}

func (e *engine[T]) sum(args []string) (string, error) {
	if err := wantArgs("sum", args, 2); err != nil {
		return "", err
	}
	idx, err := parseIndexes(args)
	if err != nil {
		return "", err
	}
	var v T
	if e.point != nil {
		v, err = e.point.RangeSum(idx[0], idx[1])
	} else {
		v, err = e.rng.RangeSum(idx[0], idx[1])
	}
	if err != nil {
		return "", err
	}
	return e.c.format(v), nil
}

func (e *engine[T]) find(args []string) (string, error) {
	if e.point == nil {
		return "", unsupported("find", e.mode())
	}
	if err := wantArgs("find", args, 1); err != nil {
		return "", err
	}
	c, err := e.c.parse(args[0])
	if err != nil {
		return "", err
	}
	idx, err := e.point.GetIndex(c)
	if err != nil {
		return "", err
	}
	return strconv.Itoa(idx), nil
}

func (e *engine[T]) report() (dump.Report[T], error) {
	if e.point != nil {
		return dump.FromTree(e.point)
	}
	return dump.FromRange(e.rng)
}

func (e *engine[T]) dump(args []string) (string, error) {
	if err := wantArgs("dump", args, 0); err != nil {
		return "", err
	}
	r, err := e.report()
	if err != nil {
		return "", err
	}
	return r.Render(e.c.format), nil
}

func (e *engine[T]) check(args []string) (string, error) {
	if err := wantArgs("check", args, 0); err != nil {
		return "", err
	}
	r, err := e.report()
	if err != nil {
		return "", err
	}
	want := e.shadow.Values()
	bad := r.Mismatches(want, e.c.equal)
	if len(bad) == 0 {
		return ok, nil
	}

	diffs := make([]string, 0, len(bad))
	for _, i := range bad {
		diffs = append(diffs, fmt.Sprintf("A[%d]=%s want %s", i, e.c.format(r.Values[i-1]), e.c.format(want[i-1])))
	}
	return "", fmt.Errorf("%w: index diverged from reference: %s", types.ErrExpectationFailed, strings.Join(diffs, ", "))
}

// values returns the shadow's elements as text.
func (e *engine[T]) values() []string {
	vals := e.shadow.Values()
	out := make([]string, len(vals))
	for i, v := range vals {
		out[i] = e.c.format(v)
	}
	return out
}
