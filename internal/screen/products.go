package screen

import (
	"context"
	"log/slog"

	"github.com/georgemunganga/printa-storefront/internal/modules/catalog"
	"github.com/georgemunganga/printa-storefront/internal/resource"
)

// CategoryProducts lists either every product or one category.
type CategoryProducts struct {
	*scope
	catalog catalog.Service

	Products *Live[resource.Resource[[]catalog.Product]]
}

func NewCategoryProducts(ctx context.Context, logger *slog.Logger, c catalog.Service) *CategoryProducts {
	return &CategoryProducts{
		scope:    newScope(ctx, logger, "category_products"),
		catalog:  c,
		Products: NewLive(resource.Loading[[]catalog.Product]()),
	}
}

func (s *CategoryProducts) GetProducts() {
	run(s.scope, s.Products, "get_products", s.catalog.GetProducts)
}

func (s *CategoryProducts) GetProductsByCategory(category string) {
	run(s.scope, s.Products, "get_products_by_category", func(ctx context.Context) resource.Resource[[]catalog.Product] {
		return s.catalog.GetProductsByCategory(ctx, category)
	})
}

// Search runs product searches.
type Search struct {
	*scope
	catalog catalog.Service

	Results *Live[resource.Resource[[]catalog.Product]]
}

func NewSearch(ctx context.Context, logger *slog.Logger, c catalog.Service) *Search {
	return &Search{
		scope:   newScope(ctx, logger, "search"),
		catalog: c,
		Results: NewLive(resource.Loading[[]catalog.Product]()),
	}
}

func (s *Search) SearchProduct(query string) {
	run(s.scope, s.Results, "search_product", func(ctx context.Context) resource.Resource[[]catalog.Product] {
		return s.catalog.SearchProduct(ctx, query)
	})
}
