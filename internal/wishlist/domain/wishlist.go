package domain

import catalog "github.com/lina-design/storefront/internal/catalog/domain"

// Toggle flips a product's wishlist membership and returns a new list;
// the input is never mutated. At most one entry exists per product id,
// so toggling twice restores the original list.
func Toggle(list []catalog.Product, product catalog.Product) []catalog.Product {
	if Contains(list, product.ID) {
		result := make([]catalog.Product, 0, len(list))
		for _, p := range list {
			if p.ID != product.ID {
				result = append(result, p)
			}
		}
		return result
	}

	result := make([]catalog.Product, 0, len(list)+1)
	result = append(result, list...)
	return append(result, product)
}

// Contains reports whether the product id is wishlisted.
func Contains(list []catalog.Product, id string) bool {
	for _, p := range list {
		if p.ID == id {
			return true
		}
	}
	return false
}
