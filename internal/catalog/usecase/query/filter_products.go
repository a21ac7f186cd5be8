package query

import (
	"math"

	"github.com/lina-design/storefront/internal/catalog/domain"
)

// FilterProductsQuery represents the query to filter and sort a product list
type FilterProductsQuery struct {
	Products []domain.Product
	Category string
	PriceMax float64
	Sort     domain.SortKey
}

// FilterProductsHandler handles product filtering queries
type FilterProductsHandler struct{}

// NewFilterProductsHandler creates a new filter products handler
func NewFilterProductsHandler() *FilterProductsHandler {
	return &FilterProductsHandler{}
}

// Handle executes the filter query. Zero values mean "no restriction":
// an empty category behaves as CategoryAll and a zero price ceiling as
// unbounded.
func (h *FilterProductsHandler) Handle(q FilterProductsQuery) []domain.Product {
	category := q.Category
	if category == "" {
		category = domain.CategoryAll
	}
	priceMax := q.PriceMax
	if priceMax <= 0 {
		priceMax = math.Inf(1)
	}
	return domain.FilterAndSort(q.Products, category, priceMax, q.Sort)
}
