package catalog

import "context"

// RemoteDataSource is the shop API.
type RemoteDataSource interface {
	GetProducts(ctx context.Context) ([]Product, error)
	GetSaleProducts(ctx context.Context) ([]Product, error)
	GetProductsByCategory(ctx context.Context, category string) ([]Product, error)
	SearchProduct(ctx context.Context, query string) ([]Product, error)
	GetCategories(ctx context.Context) ([]string, error)

	AddToBag(ctx context.Context, p Product) (CRUDResponse, error)
	DeleteFromBag(ctx context.Context, id int) (CRUDResponse, error)
	ClearBag(ctx context.Context) (CRUDResponse, error)
	GetBagProductsCount(ctx context.Context) (int, error)
	GetBagProducts(ctx context.Context) ([]Product, error)
}

// LocalDataSource is the device-local favorites store.
type LocalDataSource interface {
	// GetFavoritesNamesList returns the titles of all favorites.
	GetFavoritesNamesList(ctx context.Context) ([]string, error)
	GetFavorites(ctx context.Context) ([]Product, error)
	AddToFavorites(ctx context.Context, p Product) error
	DeleteFromFavorites(ctx context.Context, id int) error
	ClearFavorites(ctx context.Context) error
}

// Repository is the single entry point the use cases talk to.
type Repository interface {
	GetProducts(ctx context.Context) ([]Product, error)
	GetSaleProducts(ctx context.Context) ([]Product, error)
	GetProductsByCategory(ctx context.Context, category string) ([]Product, error)
	SearchProduct(ctx context.Context, query string) ([]Product, error)
	GetCategories(ctx context.Context) ([]string, error)

	AddToBag(ctx context.Context, p Product) (CRUDResponse, error)
	DeleteFromBag(ctx context.Context, id int) (CRUDResponse, error)
	ClearBag(ctx context.Context) (CRUDResponse, error)
	GetBagProductsCount(ctx context.Context) (int, error)
	GetBagProducts(ctx context.Context) ([]Product, error)

	GetFavorites(ctx context.Context) ([]Product, error)
	AddToFavorites(ctx context.Context, p Product) error
	DeleteFromFavorites(ctx context.Context, id int) error
	ClearFavorites(ctx context.Context) error
}

type repository struct {
	remote  RemoteDataSource
	local   LocalDataSource
	pricing Pricing
}

// NewRepository combines the shop API with the local favorites store.
func NewRepository(remote RemoteDataSource, local LocalDataSource, pricing Pricing) Repository {
	return &repository{remote: remote, local: local, pricing: pricing}
}

// enrich reads the favorite titles and derives sale price and favorite flag.
func (r *repository) enrich(ctx context.Context, products []Product, err error) ([]Product, error) {
	if err != nil {
		return nil, err
	}
	titles, err := r.local.GetFavoritesNamesList(ctx)
	if err != nil {
		return nil, err
	}
	return r.pricing.Enrich(products, titles), nil
}

func (r *repository) GetProducts(ctx context.Context) ([]Product, error) {
	products, err := r.remote.GetProducts(ctx)
	return r.enrich(ctx, products, err)
}

func (r *repository) GetSaleProducts(ctx context.Context) ([]Product, error) {
	products, err := r.remote.GetSaleProducts(ctx)
	return r.enrich(ctx, products, err)
}

// GetProductsByCategory returns the shop API's list as is.
func (r *repository) GetProductsByCategory(ctx context.Context, category string) ([]Product, error) {
	return r.remote.GetProductsByCategory(ctx, category)
}

func (r *repository) SearchProduct(ctx context.Context, query string) ([]Product, error) {
	products, err := r.remote.SearchProduct(ctx, query)
	return r.enrich(ctx, products, err)
}

func (r *repository) GetCategories(ctx context.Context) ([]string, error) {
	return r.remote.GetCategories(ctx)
}

func (r *repository) AddToBag(ctx context.Context, p Product) (CRUDResponse, error) {
	return r.remote.AddToBag(ctx, p)
}

func (r *repository) DeleteFromBag(ctx context.Context, id int) (CRUDResponse, error) {
	return r.remote.DeleteFromBag(ctx, id)
}

func (r *repository) ClearBag(ctx context.Context) (CRUDResponse, error) {
	return r.remote.ClearBag(ctx)
}

func (r *repository) GetBagProductsCount(ctx context.Context) (int, error) {
	return r.remote.GetBagProductsCount(ctx)
}

func (r *repository) GetBagProducts(ctx context.Context) ([]Product, error) {
	return r.remote.GetBagProducts(ctx)
}

func (r *repository) GetFavorites(ctx context.Context) ([]Product, error) {
	return r.local.GetFavorites(ctx)
}

func (r *repository) AddToFavorites(ctx context.Context, p Product) error {
	return r.local.AddToFavorites(ctx, p)
}

func (r *repository) DeleteFromFavorites(ctx context.Context, id int) error {
	return r.local.DeleteFromFavorites(ctx, id)
}

func (r *repository) ClearFavorites(ctx context.Context) error {
	return r.local.ClearFavorites(ctx)
}
