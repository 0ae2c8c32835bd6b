package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticSource(t *testing.T) {
	src := NewStaticSource("Nissin", "Maruchan")

	brands, err := src.FetchBrands(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Nissin", "Maruchan"}, brands)

	brands[0] = "changed"
	again, _ := src.FetchBrands(context.Background())
	assert.Equal(t, "Nissin", again[0])
	assert.Equal(t, "static", src.String())
}

func TestStaticSource_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewStaticSource("a").FetchBrands(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
