package events

import "time"

// HandoffItem is one cart line inside a checkout handoff event
type HandoffItem struct {
	ProductID string  `json:"product_id"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

// CheckoutHandoffEvent records that a visitor was handed off to the
// upstream store's web checkout
type CheckoutHandoffEvent struct {
	EventID     string        `json:"event_id"`
	EventType   string        `json:"event_type"`
	Items       []HandoffItem `json:"items"`
	Total       float64       `json:"total"`
	CheckoutURL string        `json:"checkout_url"`
	Timestamp   time.Time     `json:"timestamp"`
}

// Event types
const (
	EventTypeCheckoutHandoff = "checkout.handoff"
)

// Kafka topics
const (
	TopicCheckoutHandoff = "checkout-handoff"
)
