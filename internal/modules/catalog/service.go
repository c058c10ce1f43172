package catalog

import (
	"context"

	"github.com/georgemunganga/printa-storefront/internal/resource"
)

// Service exposes the product and category use cases. Each call reaches the
// repository exactly once and reports a terminal Resource.
type Service interface {
	GetProducts(ctx context.Context) resource.Resource[[]Product]
	GetSaleProducts(ctx context.Context) resource.Resource[[]Product]
	GetProductsByCategory(ctx context.Context, category string) resource.Resource[[]Product]
	SearchProduct(ctx context.Context, query string) resource.Resource[[]Product]
	GetCategories(ctx context.Context) resource.Resource[[]string]
}

type service struct{ repo Repository }

func NewService(repo Repository) Service { return &service{repo: repo} }

func (s *service) GetProducts(ctx context.Context) resource.Resource[[]Product] {
	return resource.Of(s.repo.GetProducts(ctx))
}

func (s *service) GetSaleProducts(ctx context.Context) resource.Resource[[]Product] {
	return resource.Of(s.repo.GetSaleProducts(ctx))
}

func (s *service) GetProductsByCategory(ctx context.Context, category string) resource.Resource[[]Product] {
	return resource.Of(s.repo.GetProductsByCategory(ctx, category))
}

func (s *service) SearchProduct(ctx context.Context, query string) resource.Resource[[]Product] {
	return resource.Of(s.repo.SearchProduct(ctx, query))
}

func (s *service) GetCategories(ctx context.Context) resource.Resource[[]string] {
	return resource.Of(s.repo.GetCategories(ctx))
}
