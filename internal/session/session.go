package session

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"seqbench/internal/benchmark"
	"seqbench/internal/db"
	apperrors "seqbench/internal/errors"
	"seqbench/internal/metrics"
	"seqbench/internal/search"
)

// Session is the application state for one running process: the brand
// source, the benchmark runner, the result log and the last output line.
// Requests are processed one at a time.
type Session struct {
	source     db.Source
	runner     *benchmark.Runner
	log        *benchmark.Log
	iterations int
	metrics    *metrics.Metrics
	logger     *slog.Logger
	now        func() time.Time

	mu sync.Mutex // serializes requests

	outputMu sync.RWMutex
	output   string
}

// Option configures a Session.
type Option func(*Session)

func WithRunner(r *benchmark.Runner) Option {
	return func(s *Session) { s.runner = r }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Session) { s.metrics = m }
}

func WithLogger(l *slog.Logger) Option {
	return func(s *Session) { s.logger = l }
}

func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

// New creates a session that benchmarks each strategy iterations times per
// request.
func New(source db.Source, iterations int, opts ...Option) (*Session, error) {
	if source == nil {
		return nil, fmt.Errorf("brand source is required")
	}
	if iterations < 1 {
		return nil, fmt.Errorf("%w, got %d", benchmark.ErrInvalidIterations, iterations)
	}
	s := &Session{
		source:     source,
		runner:     benchmark.NewRunner(),
		log:        benchmark.NewLog(),
		iterations: iterations,
		logger:     slog.Default(),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Search validates target, fetches the brand list, times both strategies and
// appends a record to the log. On any error the log is left unchanged.
func (s *Session) Search(ctx context.Context, target string) (benchmark.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, err := s.search(ctx, target)
	if err != nil {
		if s.metrics != nil {
			s.metrics.ObserveError(string(apperrors.KindOf(err)))
		}
		s.logger.Error("search rejected", "brand", target, "kind", apperrors.KindOf(err), "error", err)
		return benchmark.Record{}, err
	}

	if s.metrics != nil {
		s.metrics.ObserveSearch(rec.Position != search.NotFound, rec.Recursive, rec.Iterative, rec.Index)
	}
	s.logger.Info("search completed",
		"index", rec.Index,
		"brand", rec.Brand,
		"list_size", rec.ListSize,
		"iterations", rec.Iterations,
		"position", rec.Position,
		"recursive_seconds", rec.Recursive,
		"iterative_seconds", rec.Iterative,
		"recursive_overhead_pct", rec.RecursiveOverhead(),
	)
	return rec, nil
}

func (s *Session) search(ctx context.Context, target string) (benchmark.Record, error) {
	if target == "" {
		return benchmark.Record{}, apperrors.NewInputError("Please enter a brand name.")
	}

	brands, err := s.fetch(ctx)
	if err != nil {
		return benchmark.Record{}, apperrors.NewSourceError(sourceName(s.source), err)
	}
	if len(brands) == 0 {
		return benchmark.Record{}, apperrors.NewDataError("No brands found in the database.")
	}

	cmp, err := s.runner.Compare(ctx, search.BrandList(brands), target, s.iterations)
	if err != nil {
		return benchmark.Record{}, fmt.Errorf("benchmark failed: %w", err)
	}

	rec := benchmark.NewRecord(cmp, s.now())
	rec.Index = s.log.Append(rec)
	s.outputMu.Lock()
	s.output = FormatOutput(rec)
	s.outputMu.Unlock()
	return rec, nil
}

func (s *Session) fetch(ctx context.Context) ([]string, error) {
	start := time.Now()
	brands, err := s.source.FetchBrands(ctx)
	if err != nil {
		return nil, err
	}
	if s.metrics != nil {
		s.metrics.ObserveFetch(len(brands), time.Since(start).Seconds())
	}
	return brands, nil
}

func sourceName(src db.Source) string {
	if named, ok := src.(fmt.Stringer); ok {
		return named.String()
	}
	return "source"
}

// Log exposes the result log for rendering.
func (s *Session) Log() *benchmark.Log {
	return s.log
}

// Records is a snapshot of the result log.
func (s *Session) Records() []benchmark.Record {
	return s.log.All()
}

// Output is the read-only running-time line for the last successful search.
func (s *Session) Output() string {
	s.outputMu.RLock()
	defer s.outputMu.RUnlock()
	return s.output
}

func (s *Session) Iterations() int {
	return s.iterations
}

// FormatOutput renders both means of rec with six decimal places.
func FormatOutput(rec benchmark.Record) string {
	return fmt.Sprintf("Recursive: %s seconds | Iterative: %s seconds",
		benchmark.FormatSeconds(rec.Recursive), benchmark.FormatSeconds(rec.Iterative))
}

// CompletionMessages returns one notice per strategy for rec.
func CompletionMessages(rec benchmark.Record) []string {
	var msgs []string
	for _, s := range search.All() {
		msgs = append(msgs, fmt.Sprintf("%s completed for '%s'. Average Time: %ss",
			s.Label, rec.Brand, benchmark.FormatSeconds(rec.Mean(s.Name))))
	}
	return msgs
}
