package favorite

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/georgemunganga/printa-storefront/internal/modules/catalog"
)

// RedisStore keeps favorites in one hash per store, field = product id.
type RedisStore struct {
	client *redis.Client
	key    string
}

func NewRedisStore(client *redis.Client, store string) *RedisStore {
	if store == "" {
		store = "default"
	}
	return &RedisStore{client: client, key: "storefront:" + store + ":favorites"}
}

// Close is a no-op; the client belongs to the caller.
func (s *RedisStore) Close() error { return nil }

func (s *RedisStore) GetFavorites(ctx context.Context) ([]catalog.Product, error) {
	fields, err := s.client.HGetAll(ctx, s.key).Result()
	if err != nil {
		return nil, err
	}
	products := make([]catalog.Product, 0, len(fields))
	for field, raw := range fields {
		var p catalog.Product
		if err := json.Unmarshal([]byte(raw), &p); err != nil {
			return nil, fmt.Errorf("favorite: decode %s: %w", field, err)
		}
		products = append(products, p)
	}
	sortByID(products)
	return products, nil
}

func (s *RedisStore) GetFavoritesNamesList(ctx context.Context) ([]string, error) {
	products, err := s.GetFavorites(ctx)
	if err != nil {
		return nil, err
	}
	return titles(products), nil
}

func (s *RedisStore) AddToFavorites(ctx context.Context, p catalog.Product) error {
	raw, err := json.Marshal(stored(p))
	if err != nil {
		return err
	}
	return s.client.HSet(ctx, s.key, strconv.Itoa(p.ID), raw).Err()
}

func (s *RedisStore) DeleteFromFavorites(ctx context.Context, id int) error {
	return s.client.HDel(ctx, s.key, strconv.Itoa(id)).Err()
}

func (s *RedisStore) ClearFavorites(ctx context.Context) error {
	return s.client.Del(ctx, s.key).Err()
}
