package favorite

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/cockroachdb/pebble"

	"github.com/georgemunganga/printa-storefront/internal/modules/catalog"
)

var (
	pebblePrefix = []byte("fav/")
	pebbleUpper  = []byte("fav0") // '0' follows '/'
)

// PebbleStore keeps favorites in an embedded Pebble database. Keys are
// fav/<zero padded id> so iteration yields products ordered by id.
type PebbleStore struct {
	db *pebble.DB
}

func NewPebbleStore(dir string) (*PebbleStore, error) {
	db, err := pebble.Open(filepath.Clean(dir), &pebble.Options{})
	if err != nil {
		return nil, fmt.Errorf("favorite: pebble open: %w", err)
	}
	return &PebbleStore{db: db}, nil
}

func (s *PebbleStore) Close() error { return s.db.Close() }

func pebbleKey(id int) []byte {
	return []byte(fmt.Sprintf("fav/%010d", id))
}

func (s *PebbleStore) GetFavorites(ctx context.Context) ([]catalog.Product, error) {
	it, err := s.db.NewIter(&pebble.IterOptions{LowerBound: pebblePrefix, UpperBound: pebbleUpper})
	if err != nil {
		return nil, err
	}
	defer it.Close()

	products := []catalog.Product{}
	for it.First(); it.Valid(); it.Next() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		var p catalog.Product
		if err := json.Unmarshal(it.Value(), &p); err != nil {
			return nil, fmt.Errorf("favorite: decode %s: %w", it.Key(), err)
		}
		products = append(products, p)
	}
	return products, it.Error()
}

func (s *PebbleStore) GetFavoritesNamesList(ctx context.Context) ([]string, error) {
	products, err := s.GetFavorites(ctx)
	if err != nil {
		return nil, err
	}
	return titles(products), nil
}

func (s *PebbleStore) AddToFavorites(ctx context.Context, p catalog.Product) error {
	raw, err := json.Marshal(stored(p))
	if err != nil {
		return err
	}
	return s.db.Set(pebbleKey(p.ID), raw, pebble.Sync)
}

func (s *PebbleStore) DeleteFromFavorites(ctx context.Context, id int) error {
	return s.db.Delete(pebbleKey(id), pebble.Sync)
}

func (s *PebbleStore) ClearFavorites(ctx context.Context) error {
	return s.db.DeleteRange(pebblePrefix, pebbleUpper, pebble.Sync)
}
