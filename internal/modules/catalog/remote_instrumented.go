package catalog

import (
	"context"
	"time"
)

// CallRecorder receives one observation per shop API call.
type CallRecorder interface {
	ObserveRemoteCall(op string, elapsed time.Duration, err error)
}

type instrumentedRemote struct {
	next     RemoteDataSource
	recorder CallRecorder
}

// InstrumentRemote wraps next so every call is reported to recorder.
// Results and errors pass through untouched.
func InstrumentRemote(next RemoteDataSource, recorder CallRecorder) RemoteDataSource {
	return &instrumentedRemote{next: next, recorder: recorder}
}

func (r *instrumentedRemote) track(op string) func(error) {
	start := time.Now()
	return func(err error) { r.recorder.ObserveRemoteCall(op, time.Since(start), err) }
}

func (r *instrumentedRemote) GetProducts(ctx context.Context) ([]Product, error) {
	done := r.track("get_products")
	products, err := r.next.GetProducts(ctx)
	done(err)
	return products, err
}

func (r *instrumentedRemote) GetSaleProducts(ctx context.Context) ([]Product, error) {
	done := r.track("get_sale_products")
	products, err := r.next.GetSaleProducts(ctx)
	done(err)
	return products, err
}

func (r *instrumentedRemote) GetProductsByCategory(ctx context.Context, category string) ([]Product, error) {
	done := r.track("get_products_by_category")
	products, err := r.next.GetProductsByCategory(ctx, category)
	done(err)
	return products, err
}

func (r *instrumentedRemote) SearchProduct(ctx context.Context, query string) ([]Product, error) {
	done := r.track("search_product")
	products, err := r.next.SearchProduct(ctx, query)
	done(err)
	return products, err
}

func (r *instrumentedRemote) GetCategories(ctx context.Context) ([]string, error) {
	done := r.track("get_categories")
	categories, err := r.next.GetCategories(ctx)
	done(err)
	return categories, err
}

func (r *instrumentedRemote) AddToBag(ctx context.Context, p Product) (CRUDResponse, error) {
	done := r.track("add_to_bag")
	resp, err := r.next.AddToBag(ctx, p)
	done(err)
	return resp, err
}

func (r *instrumentedRemote) DeleteFromBag(ctx context.Context, id int) (CRUDResponse, error) {
	done := r.track("delete_from_bag")
	resp, err := r.next.DeleteFromBag(ctx, id)
	done(err)
	return resp, err
}

func (r *instrumentedRemote) ClearBag(ctx context.Context) (CRUDResponse, error) {
	done := r.track("clear_bag")
	resp, err := r.next.ClearBag(ctx)
	done(err)
	return resp, err
}

func (r *instrumentedRemote) GetBagProductsCount(ctx context.Context) (int, error) {
	done := r.track("get_bag_products_count")
	count, err := r.next.GetBagProductsCount(ctx)
	done(err)
	return count, err
}

func (r *instrumentedRemote) GetBagProducts(ctx context.Context) ([]Product, error) {
	done := r.track("get_bag_products")
	products, err := r.next.GetBagProducts(ctx)
	done(err)
	return products, err
}
