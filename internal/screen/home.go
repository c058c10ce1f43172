package screen

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/georgemunganga/printa-storefront/internal/modules/account"
	"github.com/georgemunganga/printa-storefront/internal/modules/bag"
	"github.com/georgemunganga/printa-storefront/internal/modules/catalog"
	"github.com/georgemunganga/printa-storefront/internal/modules/favorite"
	"github.com/georgemunganga/printa-storefront/internal/resource"
)

// Home is the landing screen: greeting, sale carousel, bag badge and the
// category strip.
type Home struct {
	*scope
	catalog   catalog.Service
	bag       bag.Service
	favorites favorite.Service
	account   account.Service

	User         *Live[resource.Resource[account.User]]
	SaleProducts *Live[resource.Resource[[]catalog.Product]]
	BagCount     *Live[resource.Resource[int]]
	Categories   *Live[resource.Resource[[]string]]
}

// NewHome starts loading the four sections concurrently.
func NewHome(ctx context.Context, logger *slog.Logger, c catalog.Service, b bag.Service, f favorite.Service, a account.Service) *Home {
	h := &Home{
		scope:        newScope(ctx, logger, "home"),
		catalog:      c,
		bag:          b,
		favorites:    f,
		account:      a,
		User:         NewLive(resource.Loading[account.User]()),
		SaleProducts: NewLive(resource.Loading[[]catalog.Product]()),
		BagCount:     NewLive(resource.Loading[int]()),
		Categories:   NewLive(resource.Loading[[]string]()),
	}
	h.load()
	return h
}

func (h *Home) load() {
	h.launch(func(ctx context.Context) {
		var g errgroup.Group
		g.Go(func() error {
			h.User.Post(h.account.GetCurrentUser(ctx))
			return nil
		})
		g.Go(func() error {
			h.SaleProducts.Post(h.catalog.GetSaleProducts(ctx))
			return nil
		})
		g.Go(func() error {
			h.BagCount.Post(h.bag.GetBagProductsCount(ctx))
			return nil
		})
		g.Go(func() error {
			h.Categories.Post(h.catalog.GetCategories(ctx))
			return nil
		})
		_ = g.Wait()
		h.logger.Debug("home loaded",
			slog.Bool("user", h.User.Value().IsSuccess()),
			slog.Bool("sale_products", h.SaleProducts.Value().IsSuccess()),
			slog.Bool("bag_count", h.BagCount.Value().IsSuccess()),
			slog.Bool("categories", h.Categories.Value().IsSuccess()))
	})
}

func (h *Home) AddToFavorite(p catalog.Product) {
	h.fire("add_to_favorites", func(ctx context.Context) error { return h.favorites.AddToFavorites(ctx, p) })
}

func (h *Home) DeleteFromFavorites(id int) {
	h.fire("delete_from_favorites", func(ctx context.Context) error { return h.favorites.DeleteFromFavorites(ctx, id) })
}
