// Package order models the storefront's order history. Real orders live
// in the upstream store; the app only renders a mocked history, so this
// package ships the bundled list alongside the model.
package order

import cartdomain "github.com/lina-design/storefront/internal/cart/domain"

// Status is an order's fulfillment state
type Status string

const (
	StatusPending   Status = "pending"
	StatusPaid      Status = "paid"
	StatusShipping  Status = "shipping"
	StatusDelivered Status = "delivered"
	StatusCancelled Status = "cancelled"
)

// Order is one entry in the order history
type Order struct {
	ID     string             `json:"id"`
	Date   string             `json:"date"`
	Status Status             `json:"status"`
	Total  float64            `json:"total"`
	Items  []cartdomain.Entry `json:"items"`
}
