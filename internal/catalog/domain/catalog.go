package domain

import "sort"

// CategoryAll is the synthetic "all products" category. It is never part
// of the fetched category list; the filter layer adds it on top.
const CategoryAll = "Todos"

// Product represents a catalog product. Products are immutable once
// fetched; identity is ID.
type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Price       float64  `json:"price"`
	OldPrice    *float64 `json:"oldPrice,omitempty"`
	Image       string   `json:"image"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	Rating      float64  `json:"rating"`
}

// Category represents a product category
type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image"`
}

// SortKey selects the ordering applied by FilterAndSort
type SortKey string

const (
	SortNewest    SortKey = "newest"
	SortPriceAsc  SortKey = "price_asc"
	SortPriceDesc SortKey = "price_desc"
	SortRating    SortKey = "rating"
)

// FilterAndSort narrows products to the given category and price ceiling,
// then orders the result. The input slice is never mutated.
//
// CategoryAll bypasses the category filter. Price and rating sorts are
// stable, so ties keep their fetched order. SortNewest reverses the
// filtered slice: the upstream has no timestamp field, so position in the
// fetched list stands in for recency.
func FilterAndSort(products []Product, category string, priceMax float64, key SortKey) []Product {
	result := make([]Product, 0, len(products))
	for _, p := range products {
		if category != CategoryAll && p.Category != category {
			continue
		}
		if p.Price < 0 || p.Price > priceMax {
			continue
		}
		result = append(result, p)
	}

	switch key {
	case SortPriceAsc:
		sort.SliceStable(result, func(i, j int) bool { return result[i].Price < result[j].Price })
	case SortPriceDesc:
		sort.SliceStable(result, func(i, j int) bool { return result[i].Price > result[j].Price })
	case SortRating:
		sort.SliceStable(result, func(i, j int) bool { return result[i].Rating > result[j].Rating })
	case SortNewest:
		for i, j := 0, len(result)-1; i < j; i, j = i+1, j-1 {
			result[i], result[j] = result[j], result[i]
		}
	}

	return result
}
