package benchmark

import (
	"context"
	"math"
	"testing"
	"time"

	"seqbench/internal/search"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stepClock advances by step on every call.
func stepClock(step time.Duration) func() time.Time {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return func() time.Time {
		t := now
		now = now.Add(step)
		return t
	}
}

func TestMeasure_Mean(t *testing.T) {
	r := NewRunner(WithClock(stepClock(2 * time.Second)))
	calls := 0
	fn := func(items search.List, target string) int {
		calls++
		return search.Iterative(items, target)
	}

	res, err := r.Measure(context.Background(), "counted", fn, search.BrandList{"a", "b"}, "b", 4)
	require.NoError(t, err)

	assert.Equal(t, 4, calls)
	assert.Equal(t, "counted", res.Strategy)
	assert.Equal(t, 4, res.Iterations)
	assert.InDelta(t, 0.5, res.Mean, 1e-9)
	assert.Equal(t, 1, res.Position)
}

func TestMeasure_SingleIterationIsFinite(t *testing.T) {
	r := NewRunner()
	res, err := r.Measure(context.Background(), search.NameIterative, search.Iterative, search.BrandList{"Nissin"}, "Nissin", 1)
	require.NoError(t, err)

	assert.GreaterOrEqual(t, res.Mean, 0.0)
	assert.False(t, math.IsInf(res.Mean, 0))
	assert.False(t, math.IsNaN(res.Mean))
	assert.Equal(t, 0, res.Position)
}

func TestMeasure_EmptyListStillRuns(t *testing.T) {
	r := NewRunner()
	calls := 0
	fn := func(items search.List, target string) int {
		calls++
		return search.Recursive(items, target)
	}

	res, err := r.Measure(context.Background(), "empty", fn, search.BrandList{}, "Indomie", 10)
	require.NoError(t, err)
	assert.Equal(t, 10, calls)
	assert.Equal(t, search.NotFound, res.Position)
	assert.GreaterOrEqual(t, res.Mean, 0.0)
}

func TestMeasure_InvalidIterations(t *testing.T) {
	r := NewRunner()
	for _, k := range []int{0, -3} {
		_, err := r.Measure(context.Background(), "x", search.Iterative, search.BrandList{"a"}, "a", k)
		assert.ErrorIs(t, err, ErrInvalidIterations)
	}
}

func TestMeasure_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewRunner().Measure(ctx, "x", search.Iterative, search.BrandList{"a"}, "a", 1)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMeasure_ClockGoingBackwards(t *testing.T) {
	r := NewRunner(WithClock(stepClock(-time.Second)))
	res, err := r.Measure(context.Background(), "x", search.Iterative, search.BrandList{"a"}, "a", 3)
	require.NoError(t, err)
	assert.Equal(t, 0.0, res.Mean)
}

func TestCompare(t *testing.T) {
	r := NewRunner(WithClock(stepClock(time.Second)))
	brands := search.BrandList{"Nissin", "Maruchan", "Indomie"}

	c, err := r.Compare(context.Background(), brands, "Indomie", 100)
	require.NoError(t, err)

	assert.Equal(t, "Indomie", c.Target)
	assert.Equal(t, 3, c.ListSize)
	assert.Equal(t, search.NameRecursive, c.Recursive.Strategy)
	assert.Equal(t, search.NameIterative, c.Iterative.Strategy)
	assert.Equal(t, 2, c.Recursive.Position)
	assert.Equal(t, 2, c.Iterative.Position)
	assert.Equal(t, 100, c.Recursive.Iterations)
	assert.Equal(t, 100, c.Iterative.Iterations)
	assert.InDelta(t, 0.01, c.Recursive.Mean, 1e-9)
	assert.InDelta(t, 0.01, c.Iterative.Mean, 1e-9)
}

func TestCompare_RealClock(t *testing.T) {
	brands := search.BrandList{"Nissin", "Maruchan", "Indomie"}

	c, err := NewRunner().Compare(context.Background(), brands, "Indomie", 100)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, c.Recursive.Mean, 0.0)
	assert.GreaterOrEqual(t, c.Iterative.Mean, 0.0)
}

func TestCompare_NotFound(t *testing.T) {
	c, err := NewRunner().Compare(context.Background(), search.BrandList{}, "Indomie", 5)
	require.NoError(t, err)
	assert.Equal(t, search.NotFound, c.Recursive.Position)
	assert.Equal(t, search.NotFound, c.Iterative.Position)
}

func TestCompare_InvalidIterations(t *testing.T) {
	_, err := NewRunner().Compare(context.Background(), search.BrandList{"a"}, "a", 0)
	assert.ErrorIs(t, err, ErrInvalidIterations)
	assert.Contains(t, err.Error(), "recursive search")
}

func TestCompare_UsesEveryStrategy(t *testing.T) {
	c, err := NewRunner().Compare(context.Background(), search.BrandList{"a", "b"}, "b", 3)
	require.NoError(t, err)

	rec := NewRecord(c, time.Now())
	for _, s := range search.All() {
		assert.GreaterOrEqual(t, rec.Mean(s.Name), 0.0, s.Name)
	}
	assert.Equal(t, search.NameRecursive, c.Recursive.Strategy)
	assert.Equal(t, search.NameIterative, c.Iterative.Strategy)
	assert.Equal(t, 1, c.Recursive.Position)
}

func TestNewRecord(t *testing.T) {
	at := time.Now()
	c := Comparison{
		Target:    "Indomie",
		ListSize:  3,
		Recursive: Result{Strategy: search.NameRecursive, Iterations: 10, Mean: 0.2, Position: 2},
		Iterative: Result{Strategy: search.NameIterative, Iterations: 10, Mean: 0.1, Position: 2},
	}

	rec := NewRecord(c, at)
	assert.Equal(t, 0, rec.Index)
	assert.Equal(t, "Indomie", rec.Brand)
	assert.Equal(t, 0.2, rec.Recursive)
	assert.Equal(t, 0.1, rec.Iterative)
	assert.Equal(t, 2, rec.Position)
	assert.Equal(t, 3, rec.ListSize)
	assert.Equal(t, 10, rec.Iterations)
	assert.Equal(t, at, rec.CreatedAt)
}
