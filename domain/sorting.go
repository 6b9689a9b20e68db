package domain

import (
	"cmp"
	"slices"
	"strings"
)

// SortStrategy orders a catalog snapshot for display. Strategies never
// mutate their input.
type SortStrategy func(products []*Product) []*Product

func sortedBy(products []*Product, compare func(a, b *Product) int) []*Product {
	out := slices.Clone(products)
	slices.SortStableFunc(out, compare)
	return out
}

var (
	ByPriceAscending SortStrategy = func(products []*Product) []*Product {
		return sortedBy(products, func(a, b *Product) int { return cmp.Compare(a.price, b.price) })
	}

	ByPriceDescending SortStrategy = func(products []*Product) []*Product {
		return sortedBy(products, func(a, b *Product) int { return cmp.Compare(b.price, a.price) })
	}

	// ByNewest puts the most recently published products first.
	ByNewest SortStrategy = func(products []*Product) []*Product {
		return sortedBy(products, func(a, b *Product) int { return b.publishedAt.Compare(a.publishedAt) })
	}

	ByTitle SortStrategy = func(products []*Product) []*Product {
		return sortedBy(products, func(a, b *Product) int {
			return strings.Compare(strings.ToLower(a.title), strings.ToLower(b.title))
		})
	}
)
