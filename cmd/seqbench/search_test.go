package main

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/AlecAivazis/survey/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seqbench/internal/benchmark"
	"seqbench/internal/db"
	apperrors "seqbench/internal/errors"
)

type failingSource struct{}

func (failingSource) FetchBrands(ctx context.Context) ([]string, error) {
	return nil, fmt.Errorf("connection refused")
}

func TestSearchCmd_StaticBrands(t *testing.T) {
	resetConfig(t)

	output, err := executeCmd(newSearchCmd(), "Maruchan", "--brands", "Nissin,Maruchan,Indomie", "--repeat", "2")
	require.NoError(t, err)

	assert.Contains(t, output, "Recursive Search completed for 'Maruchan'. Average Time:")
	assert.Contains(t, output, "Iterative Search completed for 'Maruchan'. Average Time:")
	assert.Contains(t, output, "Running Time: Recursive:")
	assert.Contains(t, output, "Position: 1")
	assert.Contains(t, output, "Recursive vs Iterative Search Time")
	assert.Contains(t, output, "Iterative Search")
}

func TestSearchCmd_NotFound(t *testing.T) {
	resetConfig(t)

	output, err := executeCmd(newSearchCmd(), "Samyang", "--brands", "Nissin,Maruchan", "--chart=false")
	require.NoError(t, err)
	assert.Contains(t, output, "Position: Not Found")
	assert.NotContains(t, output, "Recursive vs Iterative Search Time")
}

func TestSearchCmd_JSON(t *testing.T) {
	resetConfig(t)

	output, err := executeCmd(newSearchCmd(), "Indomie", "--brands", "Nissin,Maruchan,Indomie", "--repeat", "3", "--json")
	require.NoError(t, err)
	assert.NotContains(t, output, "completed for")

	var records []benchmark.Record
	require.NoError(t, json.Unmarshal([]byte(output), &records))
	require.Len(t, records, 3)
	for i, rec := range records {
		assert.Equal(t, i+1, rec.Index)
		assert.Equal(t, "Indomie", rec.Brand)
		assert.Equal(t, 2, rec.Position)
		assert.Equal(t, 3, rec.ListSize)
		assert.Equal(t, 5, rec.Iterations)
		assert.GreaterOrEqual(t, rec.Recursive, 0.0)
		assert.GreaterOrEqual(t, rec.Iterative, 0.0)
	}
}

func TestSearchCmd_Prompt(t *testing.T) {
	resetConfig(t)

	var asked string
	askOne = func(p survey.Prompt, response interface{}, opts ...survey.AskOpt) error {
		asked = p.(*survey.Input).Message
		*(response.(*string)) = "Nissin"
		return nil
	}

	output, err := executeCmd(newSearchCmd(), "--brands", "Nissin,Maruchan", "--chart=false")
	require.NoError(t, err)
	assert.Equal(t, "Brand name:", asked)
	assert.Contains(t, output, "Position: 0")
}

func TestSearchCmd_PromptError(t *testing.T) {
	resetConfig(t)

	askOne = func(p survey.Prompt, response interface{}, opts ...survey.AskOpt) error {
		return fmt.Errorf("interrupt")
	}

	_, err := executeCmd(newSearchCmd(), "--brands", "Nissin")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read brand name")
}

func TestSearchCmd_EmptyTarget(t *testing.T) {
	resetConfig(t)

	_, err := executeCmd(newSearchCmd(), "", "--brands", "Nissin")
	require.Error(t, err)
	assert.True(t, apperrors.IsInput(err))
	assert.Equal(t, "Input Error", apperrors.Title(err))
}

func TestSearchCmd_WhitespaceBrand(t *testing.T) {
	resetConfig(t)

	output, err := executeCmd(newSearchCmd(), "  ", "--brands", "Nissin,  ", "--chart=false")
	require.NoError(t, err)
	assert.Contains(t, output, "Position: 1")
}

func TestSearchCmd_InvalidRepeat(t *testing.T) {
	resetConfig(t)

	_, err := executeCmd(newSearchCmd(), "Nissin", "--brands", "Nissin", "--repeat", "0")
	require.Error(t, err)
	assert.True(t, apperrors.IsInput(err))
}

func TestSearchCmd_SourceError(t *testing.T) {
	resetConfig(t)
	newSourceFunc = func(config db.SourceConfig) (db.Source, error) {
		return failingSource{}, nil
	}

	_, err := executeCmd(newSearchCmd(), "Nissin")
	require.Error(t, err)
	assert.True(t, apperrors.IsSource(err))
	assert.Contains(t, err.Error(), "connection refused")
}

func TestSearchCmd_EmptyDatabase(t *testing.T) {
	resetConfig(t)
	newSourceFunc = func(config db.SourceConfig) (db.Source, error) {
		return db.NewStaticSource(), nil
	}

	_, err := executeCmd(newSearchCmd(), "Nissin")
	require.Error(t, err)
	assert.True(t, apperrors.IsData(err))
}

func TestSearchCmd_Report(t *testing.T) {
	resetConfig(t)

	output, err := executeCmd(newSearchCmd(), "Paldo", "--brands", "Nissin,Paldo", "--chart=false", "--report")
	require.NoError(t, err)
	assert.Contains(t, output, "Paldo")
	assert.Contains(t, output, "Searches")
}

func TestSearchCmd_TooManyArgs(t *testing.T) {
	resetConfig(t)

	_, err := executeCmd(newSearchCmd(), "Nissin", "Maruchan")
	assert.Error(t, err)
}
