package favorite

import (
	"context"
	"database/sql"
	"os"
	"testing"

	"github.com/alicebob/miniredis/v2"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/georgemunganga/printa-storefront/internal/modules/catalog"
)

func item(id int, title string) catalog.Product {
	return catalog.Product{ID: id, Title: title, Category: "Electronics", Price: float64(id) * 10, Rate: 4}
}

// exerciseStore runs the behaviour every favorites backend shares.
func exerciseStore(t *testing.T, store Store) {
	ctx := context.Background()

	empty, err := store.GetFavorites(ctx)
	require.NoError(t, err)
	assert.Empty(t, empty)

	sale := 85.0
	onSale := item(12, "Laptop X200")
	onSale.SaleState = catalog.SaleStateActive
	onSale.SalePrice = &sale
	require.NoError(t, store.AddToFavorites(ctx, onSale))
	require.NoError(t, store.AddToFavorites(ctx, item(3, "Headphones")))
	require.NoError(t, store.AddToFavorites(ctx, item(101, "Blender")))

	got, err := store.GetFavorites(ctx)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, []int{3, 12, 101}, []int{got[0].ID, got[1].ID, got[2].ID})
	for _, p := range got {
		assert.True(t, p.IsFavorite, p.Title)
	}
	require.NotNil(t, got[1].SalePrice)
	assert.Equal(t, 85.0, *got[1].SalePrice)
	assert.Nil(t, got[0].SalePrice)

	names, err := store.GetFavoritesNamesList(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Headphones", "Laptop X200", "Blender"}, names)

	renamed := item(3, "Headphones Pro")
	require.NoError(t, store.AddToFavorites(ctx, renamed))
	names, err = store.GetFavoritesNamesList(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Headphones Pro", "Laptop X200", "Blender"}, names, "add upserts by id")

	require.NoError(t, store.DeleteFromFavorites(ctx, 12))
	require.NoError(t, store.DeleteFromFavorites(ctx, 999), "deleting an unknown id is not an error")
	names, err = store.GetFavoritesNamesList(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Headphones Pro", "Blender"}, names)

	require.NoError(t, store.ClearFavorites(ctx))
	names, err = store.GetFavoritesNamesList(ctx)
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestPebbleStore(t *testing.T) {
	store, err := NewPebbleStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	exerciseStore(t, store)
}

func TestPebbleStoreSurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	store, err := NewPebbleStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.AddToFavorites(context.Background(), item(7, "Kettle")))
	require.NoError(t, store.Close())

	reopened, err := NewPebbleStore(dir)
	require.NoError(t, err)
	t.Cleanup(func() { _ = reopened.Close() })

	names, err := reopened.GetFavoritesNamesList(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Kettle"}, names)
}

func TestRedisStore(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	exerciseStore(t, NewRedisStore(client, "printa"))
}

func TestRedisStoreNamespacesByStore(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	ctx := context.Background()

	require.NoError(t, NewRedisStore(client, "a").AddToFavorites(ctx, item(1, "Only in a")))

	names, err := NewRedisStore(client, "b").GetFavoritesNamesList(ctx)
	require.NoError(t, err)
	assert.Empty(t, names)
	assert.True(t, mr.Exists("storefront:a:favorites"))
}

func TestPostgresStore(t *testing.T) {
	dsn := os.Getenv("STOREFRONT_TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("STOREFRONT_TEST_DATABASE_URL not set")
	}
	db, err := sql.Open("postgres", dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	store := NewPostgresStore(db)
	require.NoError(t, store.Migrate(context.Background()))
	require.NoError(t, store.ClearFavorites(context.Background()))

	exerciseStore(t, store)
}
