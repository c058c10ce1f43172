package screen

import (
	"context"
	"log/slog"
	"sync"

	"github.com/georgemunganga/printa-storefront/internal/modules/bag"
	"github.com/georgemunganga/printa-storefront/internal/modules/catalog"
	"github.com/georgemunganga/printa-storefront/internal/modules/favorite"
	"github.com/georgemunganga/printa-storefront/internal/resource"
)

// Detail shows the product the shopper navigated to.
type Detail struct {
	*scope
	bag       bag.Service
	favorites favorite.Service

	mu      sync.Mutex
	product catalog.Product

	Product      *Live[catalog.Product]
	IsFavorite   *Live[bool]
	CRUDResponse *Live[resource.Resource[catalog.CRUDResponse]]
}

// NewDetail opens the screen for product, the navigation argument.
func NewDetail(ctx context.Context, logger *slog.Logger, product catalog.Product, b bag.Service, f favorite.Service) *Detail {
	return &Detail{
		scope:        newScope(ctx, logger, "detail"),
		bag:          b,
		favorites:    f,
		product:      product,
		Product:      NewLive(product),
		IsFavorite:   NewLive(product.IsFavorite),
		CRUDResponse: NewLive(resource.Loading[catalog.CRUDResponse]()),
	}
}

// GetProduct republishes the navigation argument.
func (d *Detail) GetProduct() {
	d.mu.Lock()
	p := d.product
	d.mu.Unlock()
	d.Product.Post(p)
}

func (d *Detail) AddToBag() {
	d.mu.Lock()
	p := d.product
	d.mu.Unlock()
	run(d.scope, d.CRUDResponse, "add_to_bag", func(ctx context.Context) resource.Resource[catalog.CRUDResponse] {
		return d.bag.AddToBag(ctx, p)
	})
}

// SetFavoriteState flips the favorite flag and persists the change: a
// product that was not a favorite is added, otherwise it is removed.
func (d *Detail) SetFavoriteState() {
	d.mu.Lock()
	before := d.product
	d.product.IsFavorite = !before.IsFavorite
	after := d.product
	d.mu.Unlock()

	d.IsFavorite.Post(after.IsFavorite)
	d.Product.Post(after)
	if before.IsFavorite {
		d.fire("delete_from_favorites", func(ctx context.Context) error {
			return d.favorites.DeleteFromFavorites(ctx, before.ID)
		})
		return
	}
	d.fire("add_to_favorites", func(ctx context.Context) error {
		return d.favorites.AddToFavorites(ctx, before)
	})
}
