package catalog

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// DefaultSaleDiscount is the price multiplier applied to products on sale.
const DefaultSaleDiscount = "0.85"

// Pricing computes sale prices. The zero value uses DefaultSaleDiscount.
type Pricing struct {
	factor decimal.Decimal
	set    bool
}

// NewPricing parses a discount multiplier such as "0.85". It must lie in (0, 1].
func NewPricing(factor string) (Pricing, error) {
	d, err := decimal.NewFromString(factor)
	if err != nil {
		return Pricing{}, fmt.Errorf("catalog: sale discount %q: %w", factor, err)
	}
	if !d.IsPositive() || d.GreaterThan(decimal.NewFromInt(1)) {
		return Pricing{}, fmt.Errorf("catalog: sale discount %s out of range (0, 1]", d)
	}
	return Pricing{factor: d, set: true}, nil
}

// Factor returns the multiplier in use.
func (p Pricing) Factor() decimal.Decimal {
	if !p.set {
		return decimal.RequireFromString(DefaultSaleDiscount)
	}
	return p.factor
}

// SalePrice returns price multiplied by the discount factor.
func (p Pricing) SalePrice(price float64) float64 {
	v, _ := decimal.NewFromFloat(price).Mul(p.Factor()).Float64()
	return v
}

// Enrich returns a copy of products with SalePrice and IsFavorite derived.
// SalePrice is set only for products on sale. IsFavorite is true when the
// title appears, with exact case, in favoriteTitles. The input slice is not
// modified; order and length are preserved.
func (p Pricing) Enrich(products []Product, favoriteTitles []string) []Product {
	favorites := make(map[string]struct{}, len(favoriteTitles))
	for _, title := range favoriteTitles {
		favorites[title] = struct{}{}
	}

	out := make([]Product, len(products))
	for i, product := range products {
		product.SalePrice = nil
		if product.OnSale() {
			sale := p.SalePrice(product.Price)
			product.SalePrice = &sale
		}
		_, product.IsFavorite = favorites[product.Title]
		out[i] = product
	}
	return out
}

// Enrich applies the default pricing.
func Enrich(products []Product, favoriteTitles []string) []Product {
	return Pricing{}.Enrich(products, favoriteTitles)
}
