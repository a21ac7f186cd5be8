package order

import (
	cartdomain "github.com/lina-design/storefront/internal/cart/domain"
	"github.com/lina-design/storefront/internal/catalog/mock"
)

// MockOrders returns the bundled order history.
func MockOrders() []Order {
	products := mock.Products()

	return []Order{
		{
			ID:     "#LI-10293",
			Date:   "12/10/2023",
			Status: StatusDelivered,
			Total:  399.80,
			Items: []cartdomain.Entry{
				{Product: products[0], Quantity: 1},
				{Product: products[3], Quantity: 1},
			},
		},
		{
			ID:     "#LI-10344",
			Date:   "05/11/2023",
			Status: StatusShipping,
			Total:  2599.00,
			Items: []cartdomain.Entry{
				{Product: products[2], Quantity: 1},
			},
		},
		{
			ID:     "#LI-10401",
			Date:   "10/11/2023",
			Status: StatusPending,
			Total:  89.90,
			Items: []cartdomain.Entry{
				{Product: products[4], Quantity: 1},
			},
		},
	}
}
