package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"swastik/internal/catalog"
	"swastik/internal/config"
)

func TestInsertStarterCatalog(t *testing.T) {
	ctx := context.Background()
	repo := catalog.NewRepository(catalog.NewMemoryStore())

	require.NoError(t, insert(ctx, repo, zap.NewNop()))

	items, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "Modern 3-Seater Sofa", items[0].Name)
	assert.Equal(t, "Bedroom", items[1].Category)
	for _, p := range items {
		assert.True(t, p.Available)
		assert.False(t, p.Bestseller)
	}
}

func TestSeedRequiresDatabase(t *testing.T) {
	err := seed(context.Background(), config.Database{Driver: config.DriverMongo}, zap.NewNop())
	assert.EqualError(t, err, "database credentials not configured")

	err = insert(context.Background(), catalog.NewRepository(catalog.Unavailable{}), zap.NewNop())
	assert.ErrorIs(t, err, catalog.ErrNotConnected)
}
