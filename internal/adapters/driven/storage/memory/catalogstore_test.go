package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pablo751/dientes/internal/core/domain"
)

func TestCatalogStore_ReplaceAndAll(t *testing.T) {
	store := NewCatalogStore()
	ctx := context.Background()

	err := store.Replace(ctx, []domain.Product{
		{Name: "Floss X"},
		{Name: "Brush Y"},
	})
	require.NoError(t, err)

	products, err := store.All(ctx)
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "Floss X", products[0].Name)
	assert.Equal(t, "Brush Y", products[1].Name)
	assert.Equal(t, 2, store.Count(ctx))
}

func TestCatalogStore_ReplaceIsWholesale(t *testing.T) {
	store := NewCatalogStore()
	ctx := context.Background()

	require.NoError(t, store.Replace(ctx, []domain.Product{{Name: "Old"}}))
	require.NoError(t, store.Replace(ctx, []domain.Product{{Name: "New A"}, {Name: "New B"}}))

	products, err := store.All(ctx)
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "New A", products[0].Name)
}

func TestCatalogStore_AllReturnsCopy(t *testing.T) {
	store := NewCatalogStore()
	ctx := context.Background()

	require.NoError(t, store.Replace(ctx, []domain.Product{{Name: "Floss X"}}))

	products, _ := store.All(ctx)
	products[0].Name = "mutated"

	fresh, _ := store.All(ctx)
	assert.Equal(t, "Floss X", fresh[0].Name)
}

func TestCatalogStore_Empty(t *testing.T) {
	store := NewCatalogStore()
	ctx := context.Background()

	products, err := store.All(ctx)
	require.NoError(t, err)
	assert.Empty(t, products)
	assert.Equal(t, 0, store.Count(ctx))
}
