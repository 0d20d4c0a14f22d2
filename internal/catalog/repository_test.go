package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"swastik/internal/models"
)

func seed(t *testing.T, repo *Repository, items ...models.ProductFields) []string {
	t.Helper()
	ids := make([]string, 0, len(items))
	for _, f := range items {
		id, err := repo.Create(context.Background(), f)
		require.NoError(t, err)
		require.NotEmpty(t, id)
		ids = append(ids, id)
	}
	return ids
}

func names(items []models.Product) []string {
	out := make([]string, 0, len(items))
	for _, p := range items {
		out = append(out, p.Name)
	}
	return out
}

func TestListAllUntilDeleted(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(NewMemoryStore())
	ids := seed(t, repo,
		models.ProductFields{Name: "Sofa", Available: true},
		models.ProductFields{Name: "Bed", Available: true},
		models.ProductFields{Name: "Table", Available: true},
	)

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Sofa", "Bed", "Table"}, names(all))

	require.NoError(t, repo.Delete(ctx, ids[1]))

	all, err = repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Sofa", "Table"}, names(all))

	_, err = repo.Get(ctx, ids[1])
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, ids[1]), ErrNotFound)
}

func TestListBestsellersSkipsUnavailable(t *testing.T) {
	repo := NewRepository(NewMemoryStore())
	seed(t, repo,
		models.ProductFields{Name: "Sofa", Bestseller: true, Available: true},
		models.ProductFields{Name: "Bed", Bestseller: true, Available: false},
		models.ProductFields{Name: "Table", Bestseller: false, Available: true},
		models.ProductFields{Name: "Chair", Bestseller: true, Available: true},
	)

	got, err := repo.ListBestsellers(context.Background(), BestsellersFetchLimit)
	require.NoError(t, err)
	assert.Equal(t, []string{"Sofa", "Chair"}, names(got))

	// The limit applies before filtering.
	got, err = repo.ListBestsellers(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"Sofa"}, names(got))
}

func TestBrowse(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(NewMemoryStore())
	seed(t, repo,
		models.ProductFields{Name: "Sofa", Category: "Living Room", Bestseller: true, Available: false},
		models.ProductFields{Name: "Bed", Category: "Bedroom"},
		models.ProductFields{Name: "Recliner", Category: "Living Room"},
	)

	got, err := repo.Browse(ctx, "", KindBestsellers)
	require.NoError(t, err)
	assert.Equal(t, []string{"Sofa"}, names(got), "unavailable bestsellers stay in the listing")

	got, err = repo.Browse(ctx, "Living Room", "")
	require.NoError(t, err)
	assert.Equal(t, []string{"Sofa", "Recliner"}, names(got))

	got, err = repo.Browse(ctx, "Bedroom", KindBestsellers)
	require.NoError(t, err)
	assert.Equal(t, []string{"Sofa"}, names(got), "type wins over category")

	got, err = repo.Browse(ctx, "", "")
	require.NoError(t, err)
	assert.Len(t, got, 3)
}

func TestSearch(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(NewMemoryStore())
	seed(t, repo,
		models.ProductFields{Name: "Modern 3-Seater Sofa", Available: true},
		models.ProductFields{Name: "Wooden Dining Table Set", Available: true},
		models.ProductFields{Name: "Sofa Cum Bed", Available: false},
		models.ProductFields{Name: "Corner SOFA", Available: true},
	)

	got, err := repo.Search(ctx, "sofa", 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"Modern 3-Seater Sofa", "Sofa Cum Bed", "Corner SOFA"}, names(got))

	got, err = repo.Search(ctx, "SoFa", 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"Modern 3-Seater Sofa", "Sofa Cum Bed"}, names(got))

	got, err = repo.Search(ctx, "wardrobe", 0)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestUpdateOverwritesAllFields(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(NewMemoryStore())
	ids := seed(t, repo, models.ProductFields{
		Name: "Sofa", Price: "22,500", Material: "Fabric", Bestseller: true, Available: true,
	})

	require.NoError(t, repo.Update(ctx, ids[0], models.ProductFields{Name: "Sofa", Price: "20,000"}))

	got, err := repo.Get(ctx, ids[0])
	require.NoError(t, err)
	assert.Equal(t, models.Product{ID: ids[0], Name: "Sofa", Price: "20,000"}, got)

	assert.ErrorIs(t, repo.Update(ctx, "missing", models.ProductFields{}), ErrNotFound)
}

type brokenStore struct{ Unavailable }

func (brokenStore) Find(context.Context, Filter) ([]models.Product, error) {
	return nil, errors.New("deadline exceeded")
}

func TestErrors(t *testing.T) {
	ctx := context.Background()

	_, err := NewRepository(Unavailable{}).ListAll(ctx)
	assert.Equal(t, ErrNotConnected, err)

	_, err = NewRepository(brokenStore{}).Search(ctx, "x", 0)
	require.Error(t, err)
	assert.EqualError(t, err, "find products: deadline exceeded")
}
