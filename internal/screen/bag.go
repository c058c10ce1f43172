package screen

import (
	"context"
	"log/slog"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/georgemunganga/printa-storefront/internal/modules/bag"
	"github.com/georgemunganga/printa-storefront/internal/modules/catalog"
	"github.com/georgemunganga/printa-storefront/internal/resource"
)

// Bag lists the bag and keeps the running checkout total.
type Bag struct {
	*scope
	bag bag.Service

	mu    sync.Mutex
	total decimal.Decimal

	Products     *Live[resource.Resource[[]catalog.Product]]
	CRUDResponse *Live[resource.Resource[catalog.CRUDResponse]]
	TotalAmount  *Live[float64]
}

func NewBag(ctx context.Context, logger *slog.Logger, b bag.Service) *Bag {
	return &Bag{
		scope:        newScope(ctx, logger, "bag"),
		bag:          b,
		Products:     NewLive(resource.Loading[[]catalog.Product]()),
		CRUDResponse: NewLive(resource.Loading[catalog.CRUDResponse]()),
		TotalAmount:  NewLive(0.0),
	}
}

func (s *Bag) GetBagProducts() {
	run(s.scope, s.Products, "get_bag_products", s.bag.GetBagProducts)
}

func (s *Bag) DeleteFromBag(id int) {
	run(s.scope, s.CRUDResponse, "delete_from_bag", func(ctx context.Context) resource.Resource[catalog.CRUDResponse] {
		return s.bag.DeleteFromBag(ctx, id)
	})
}

// Increase adds amount to the total. Totals are not clamped.
func (s *Bag) Increase(amount float64) {
	s.adjust(func(total decimal.Decimal) decimal.Decimal { return total.Add(decimal.NewFromFloat(amount)) })
}

func (s *Bag) Decrease(amount float64) {
	s.adjust(func(total decimal.Decimal) decimal.Decimal { return total.Sub(decimal.NewFromFloat(amount)) })
}

func (s *Bag) ResetTotalAmount() {
	s.adjust(func(decimal.Decimal) decimal.Decimal { return decimal.Zero })
}

func (s *Bag) adjust(fn func(decimal.Decimal) decimal.Decimal) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.total = fn(s.total)
	s.TotalAmount.Post(s.total.InexactFloat64())
}
