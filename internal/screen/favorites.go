package screen

import (
	"context"
	"log/slog"

	"github.com/georgemunganga/printa-storefront/internal/modules/catalog"
	"github.com/georgemunganga/printa-storefront/internal/modules/favorite"
	"github.com/georgemunganga/printa-storefront/internal/resource"
)

// Favorites lists the saved products. Removing entries reloads the list.
type Favorites struct {
	*scope
	favorites favorite.Service

	Products *Live[resource.Resource[[]catalog.Product]]
}

func NewFavorites(ctx context.Context, logger *slog.Logger, f favorite.Service) *Favorites {
	return &Favorites{
		scope:     newScope(ctx, logger, "favorites"),
		favorites: f,
		Products:  NewLive(resource.Loading[[]catalog.Product]()),
	}
}

func (s *Favorites) GetFavorites() {
	run(s.scope, s.Products, "get_favorites", s.favorites.GetFavorites)
}

func (s *Favorites) DeleteFromFavorites(id int) {
	s.mutate("delete_from_favorites", func(ctx context.Context) error { return s.favorites.DeleteFromFavorites(ctx, id) })
}

func (s *Favorites) ClearFavorites() {
	s.mutate("clear_favorites", s.favorites.ClearFavorites)
}

func (s *Favorites) mutate(action string, fn func(ctx context.Context) error) {
	run(s.scope, s.Products, action, func(ctx context.Context) resource.Resource[[]catalog.Product] {
		if err := fn(ctx); err != nil {
			return resource.Fail[[]catalog.Product](err)
		}
		return s.favorites.GetFavorites(ctx)
	})
}
