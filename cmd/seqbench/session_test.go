package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seqbench/internal/config"
	"seqbench/internal/db"
)

func TestNewSession_Registry(t *testing.T) {
	resetConfig(t)

	cfg := config.FromViper()
	sess, registry, err := newSession(cfg, []string{"Nissin", "Mama"})
	require.NoError(t, err)

	_, err = sess.Search(context.Background(), "Mama")
	require.NoError(t, err)

	families, err := registry.Gather()
	require.NoError(t, err)
	names := map[string]bool{}
	for _, f := range families {
		names[f.GetName()] = true
	}
	assert.True(t, names["seqbench_searches_total"])
	assert.True(t, names["go_goroutines"])
}

func TestNewSession_UsesConfiguredSource(t *testing.T) {
	resetConfig(t)

	var got db.SourceConfig
	newSourceFunc = func(c db.SourceConfig) (db.Source, error) {
		got = c
		return db.NewStaticSource("Nissin"), nil
	}

	cfg := config.FromViper()
	_, _, err := newSession(cfg, nil)
	require.NoError(t, err)
	assert.Equal(t, "ramen", got.Table)
	assert.Equal(t, "Brand", got.Column)
}
