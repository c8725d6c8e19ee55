// Package catalog holds the pure filter/sort pipeline used by the shop
// listing. It has no state and no dependencies beyond the product model.
package catalog

import (
	"sort"

	"fashionworld/internal/models"
)

// SortKey selects the ordering applied after filtering.
type SortKey string

const (
	SortFeatured  SortKey = "featured"
	SortPriceLow  SortKey = "price-low"
	SortPriceHigh SortKey = "price-high"
	SortDiscount  SortKey = "discount"
)

// Filter describes one shop-listing query. An empty Categories, Fabrics
// or Sizes slice means "no filter" for that dimension. Price bounds are
// inclusive on both ends; a PriceMax of zero means no upper bound, so
// the zero value of Filter matches every in-stock product.
type Filter struct {
	Categories []string
	Fabrics    []string
	Sizes      []string
	PriceMin   int
	PriceMax   int
	Sort       SortKey
}

// Apply returns the products passing the filter, ordered by the sort
// key. Out-of-stock products are excluded unconditionally. All sorts are
// stable: products that compare equal keep their original relative
// order. The input slice is never modified.
func Apply(products []models.Product, f Filter) []models.Product {
	filtered := make([]models.Product, 0, len(products))
	for _, p := range products {
		if !p.InStock {
			continue
		}
		if len(f.Categories) > 0 && !contains(f.Categories, p.Category) {
			continue
		}
		if len(f.Fabrics) > 0 && !contains(f.Fabrics, p.Fabric) {
			continue
		}
		if len(f.Sizes) > 0 && !anySizeMatches(p.Sizes, f.Sizes) {
			continue
		}
		if p.Price < f.PriceMin || (f.PriceMax > 0 && p.Price > f.PriceMax) {
			continue
		}
		filtered = append(filtered, p)
	}

	switch f.Sort {
	case SortPriceLow:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Price < filtered[j].Price
		})
	case SortPriceHigh:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Price > filtered[j].Price
		})
	case SortDiscount:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Discount > filtered[j].Discount
		})
	case SortFeatured:
		fallthrough
	default:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Featured && !filtered[j].Featured
		})
	}

	return filtered
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

// anySizeMatches reports whether any declared size is in the selected set.
func anySizeMatches(declared, selected []string) bool {
	for _, s := range declared {
		if contains(selected, s) {
			return true
		}
	}
	return false
}
