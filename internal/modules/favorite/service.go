package favorite

import (
	"context"

	"github.com/georgemunganga/printa-storefront/internal/modules/catalog"
	"github.com/georgemunganga/printa-storefront/internal/resource"
)

// Service is the favorites use cases. Mutations pass collaborator errors
// through unchanged.
type Service interface {
	GetFavorites(ctx context.Context) resource.Resource[[]catalog.Product]
	AddToFavorites(ctx context.Context, p catalog.Product) error
	DeleteFromFavorites(ctx context.Context, id int) error
	ClearFavorites(ctx context.Context) error
}

type service struct{ repo catalog.Repository }

func NewService(repo catalog.Repository) Service { return &service{repo: repo} }

func (s *service) GetFavorites(ctx context.Context) resource.Resource[[]catalog.Product] {
	return resource.Of(s.repo.GetFavorites(ctx))
}

func (s *service) AddToFavorites(ctx context.Context, p catalog.Product) error {
	return s.repo.AddToFavorites(ctx, p)
}

func (s *service) DeleteFromFavorites(ctx context.Context, id int) error {
	return s.repo.DeleteFromFavorites(ctx, id)
}

func (s *service) ClearFavorites(ctx context.Context) error {
	return s.repo.ClearFavorites(ctx)
}
