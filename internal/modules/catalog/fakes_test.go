package catalog

import (
	"context"
	"sync"
)

type fakeRemote struct {
	mu    sync.Mutex
	calls map[string][]any

	products     []Product
	categories   []string
	bagCount     int
	crud         CRUDResponse
	err          error
	lastCategory string
	lastQuery    string
}

func newFakeRemote() *fakeRemote { return &fakeRemote{calls: map[string][]any{}} }

func (f *fakeRemote) record(op string, args ...any) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[op] = append(f.calls[op], args)
}

func (f *fakeRemote) callCount(op string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls[op])
}

func (f *fakeRemote) GetProducts(ctx context.Context) ([]Product, error) {
	f.record("GetProducts")
	return f.products, f.err
}

func (f *fakeRemote) GetSaleProducts(ctx context.Context) ([]Product, error) {
	f.record("GetSaleProducts")
	return f.products, f.err
}

func (f *fakeRemote) GetProductsByCategory(ctx context.Context, category string) ([]Product, error) {
	f.record("GetProductsByCategory", category)
	f.lastCategory = category
	return f.products, f.err
}

func (f *fakeRemote) SearchProduct(ctx context.Context, query string) ([]Product, error) {
	f.record("SearchProduct", query)
	f.lastQuery = query
	return f.products, f.err
}

func (f *fakeRemote) GetCategories(ctx context.Context) ([]string, error) {
	f.record("GetCategories")
	return f.categories, f.err
}

func (f *fakeRemote) AddToBag(ctx context.Context, p Product) (CRUDResponse, error) {
	f.record("AddToBag", p)
	return f.crud, f.err
}

func (f *fakeRemote) DeleteFromBag(ctx context.Context, id int) (CRUDResponse, error) {
	f.record("DeleteFromBag", id)
	return f.crud, f.err
}

func (f *fakeRemote) ClearBag(ctx context.Context) (CRUDResponse, error) {
	f.record("ClearBag")
	return f.crud, f.err
}

func (f *fakeRemote) GetBagProductsCount(ctx context.Context) (int, error) {
	f.record("GetBagProductsCount")
	return f.bagCount, f.err
}

func (f *fakeRemote) GetBagProducts(ctx context.Context) ([]Product, error) {
	f.record("GetBagProducts")
	return f.products, f.err
}

type fakeLocal struct {
	titles    []string
	favorites []Product
	err       error

	namesCalls int
	added      []Product
	deleted    []int
	cleared    int
}

func (f *fakeLocal) GetFavoritesNamesList(ctx context.Context) ([]string, error) {
	f.namesCalls++
	return f.titles, f.err
}

func (f *fakeLocal) GetFavorites(ctx context.Context) ([]Product, error) {
	return f.favorites, f.err
}

func (f *fakeLocal) AddToFavorites(ctx context.Context, p Product) error {
	f.added = append(f.added, p)
	return f.err
}

func (f *fakeLocal) DeleteFromFavorites(ctx context.Context, id int) error {
	f.deleted = append(f.deleted, id)
	return f.err
}

func (f *fakeLocal) ClearFavorites(ctx context.Context) error {
	f.cleared++
	return f.err
}
