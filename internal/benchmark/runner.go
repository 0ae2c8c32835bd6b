package benchmark

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"seqbench/internal/search"
)

// DefaultIterations is the repetition count used when none is configured.
const DefaultIterations = 1000

var (
	ErrInvalidIterations = errors.New("iterations must be at least 1")
	ErrStrategyMismatch  = errors.New("recursive and iterative search disagree")
)

// Runner times search strategies.
type Runner struct {
	now func() time.Time
}

// Option configures a Runner.
type Option func(*Runner)

// WithClock replaces the wall clock, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(r *Runner) {
		r.now = now
	}
}

func NewRunner(opts ...Option) *Runner {
	r := &Runner{now: time.Now}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Measure calls fn k times against the same list and target and returns the
// mean wall-clock duration per call. An empty list is timed like any other.
func (r *Runner) Measure(ctx context.Context, name string, fn search.Strategy, list search.List, target string, k int) (Result, error) {
	if k < 1 {
		return Result{}, fmt.Errorf("%w, got %d", ErrInvalidIterations, k)
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	pos := search.NotFound
	start := r.now()
	for i := 0; i < k; i++ {
		pos = fn(list, target)
	}
	elapsed := r.now().Sub(start)
	if elapsed < 0 {
		elapsed = 0
	}

	return Result{
		Strategy:   name,
		Iterations: k,
		Mean:       elapsed.Seconds() / float64(k),
		Position:   pos,
	}, nil
}

// Compare times every registered strategy, recursive first, with the same k.
func (r *Runner) Compare(ctx context.Context, list search.List, target string, k int) (Comparison, error) {
	c := Comparison{Target: target, ListSize: list.Len()}

	for _, s := range search.All() {
		res, err := r.Measure(ctx, s.Name, s.Fn, list, target, k)
		if err != nil {
			return Comparison{}, fmt.Errorf("%s: %w", strings.ToLower(s.Label), err)
		}
		switch s.Name {
		case search.NameRecursive:
			c.Recursive = res
		case search.NameIterative:
			c.Iterative = res
		}
	}

	if c.Recursive.Position != c.Iterative.Position {
		return Comparison{}, fmt.Errorf("%w: recursive=%d iterative=%d", ErrStrategyMismatch, c.Recursive.Position, c.Iterative.Position)
	}
	return c, nil
}
