// Package bag holds the shopping bag use cases. Every call is scoped to the
// signed-in shopper.
package bag

import (
	"context"

	"github.com/georgemunganga/printa-storefront/internal/modules/catalog"
	"github.com/georgemunganga/printa-storefront/internal/resource"
)

// Shopper resolves the signed-in user's id.
type Shopper interface {
	UserUID(ctx context.Context) (string, error)
}

type Service interface {
	AddToBag(ctx context.Context, p catalog.Product) resource.Resource[catalog.CRUDResponse]
	DeleteFromBag(ctx context.Context, id int) resource.Resource[catalog.CRUDResponse]
	ClearBag(ctx context.Context) resource.Resource[catalog.CRUDResponse]
	GetBagProductsCount(ctx context.Context) resource.Resource[int]
	GetBagProducts(ctx context.Context) resource.Resource[[]catalog.Product]
}

type service struct {
	repo    catalog.Repository
	shopper Shopper
}

func NewService(repo catalog.Repository, shopper Shopper) Service {
	return &service{repo: repo, shopper: shopper}
}

// scoped attaches the shopper id to ctx. The repository is not called when
// no shopper is signed in.
func (s *service) scoped(ctx context.Context) (context.Context, error) {
	uid, err := s.shopper.UserUID(ctx)
	if err != nil {
		return nil, err
	}
	return catalog.WithUserID(ctx, uid), nil
}

func (s *service) AddToBag(ctx context.Context, p catalog.Product) resource.Resource[catalog.CRUDResponse] {
	ctx, err := s.scoped(ctx)
	if err != nil {
		return resource.Fail[catalog.CRUDResponse](err)
	}
	return resource.Of(s.repo.AddToBag(ctx, p))
}

func (s *service) DeleteFromBag(ctx context.Context, id int) resource.Resource[catalog.CRUDResponse] {
	ctx, err := s.scoped(ctx)
	if err != nil {
		return resource.Fail[catalog.CRUDResponse](err)
	}
	return resource.Of(s.repo.DeleteFromBag(ctx, id))
}

func (s *service) ClearBag(ctx context.Context) resource.Resource[catalog.CRUDResponse] {
	ctx, err := s.scoped(ctx)
	if err != nil {
		return resource.Fail[catalog.CRUDResponse](err)
	}
	return resource.Of(s.repo.ClearBag(ctx))
}

func (s *service) GetBagProductsCount(ctx context.Context) resource.Resource[int] {
	ctx, err := s.scoped(ctx)
	if err != nil {
		return resource.Fail[int](err)
	}
	return resource.Of(s.repo.GetBagProductsCount(ctx))
}

func (s *service) GetBagProducts(ctx context.Context) resource.Resource[[]catalog.Product] {
	ctx, err := s.scoped(ctx)
	if err != nil {
		return resource.Fail[[]catalog.Product](err)
	}
	return resource.Of(s.repo.GetBagProducts(ctx))
}
