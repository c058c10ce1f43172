package catalog

import (
	"fmt"
	"strconv"

	"github.com/georgemunganga/printa-storefront/internal/platform/httpx"
)

// Product is a product as served by the shop API, plus the two fields the
// storefront derives locally: IsFavorite and SalePrice.
type Product struct {
	ID          int      `json:"id"`
	Category    string   `json:"category"`
	Count       int      `json:"count"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	ImageTwo    string   `json:"imageTwo"`
	ImageThree  string   `json:"imageThree"`
	Price       float64  `json:"price"`
	Rate        float64  `json:"rate"`
	Title       string   `json:"title"`
	SaleState   int      `json:"saleState"`
	IsFavorite  bool     `json:"isFavorite"`
	SalePrice   *float64 `json:"salePrice,omitempty"`
}

// Sale states reported by the shop API.
const (
	SaleStateNone   = 0
	SaleStateActive = 1
)

// OnSale reports whether the product carries promotional pricing.
func (p Product) OnSale() bool { return p.SaleState == SaleStateActive }

// CRUDResponse is the acknowledgement the shop API returns for bag mutations.
type CRUDResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// ParseProductID converts a path parameter into a product id.
func ParseProductID(raw string) (int, error) {
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: invalid product id %q", httpx.ErrValidation, raw)
	}
	return id, nil
}
