// Package favorite persists the shopper's favorite products on the device
// and exposes the favorites use cases.
package favorite

import (
	"sort"

	"github.com/georgemunganga/printa-storefront/internal/modules/catalog"
)

// Store is a catalog.LocalDataSource that owns resources needing release.
type Store interface {
	catalog.LocalDataSource
	Close() error
}

// stored is the form a product takes once saved as a favorite.
func stored(p catalog.Product) catalog.Product {
	p.IsFavorite = true
	return p
}

func sortByID(products []catalog.Product) {
	sort.Slice(products, func(i, j int) bool { return products[i].ID < products[j].ID })
}

func titles(products []catalog.Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.Title)
	}
	return out
}
