package main

import (
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"seqbench/internal/config"
	"seqbench/internal/db"
	"seqbench/internal/metrics"
	"seqbench/internal/session"
)

// newSourceFunc allows mocking in tests.
var newSourceFunc = db.NewSource

// sourceFor returns a static source when brands are given on the command
// line and the configured database source otherwise.
func sourceFor(cfg config.Config, brands []string) (db.Source, error) {
	if len(brands) > 0 {
		return db.NewStaticSource(brands...), nil
	}
	return newSourceFunc(cfg.Source)
}

// newSession wires a session to a fresh metrics registry. The registry is
// returned so long-running commands can serve it.
func newSession(cfg config.Config, brands []string) (*session.Session, *prometheus.Registry, error) {
	src, err := sourceFor(cfg, brands)
	if err != nil {
		return nil, nil, err
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.NewMetrics(registry)

	sess, err := session.New(src, cfg.Iterations, session.WithMetrics(m), session.WithLogger(slog.Default()))
	if err != nil {
		return nil, nil, err
	}
	return sess, registry, nil
}
