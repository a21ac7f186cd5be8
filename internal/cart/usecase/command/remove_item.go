package command

import (
	"context"
	"fmt"

	"github.com/lina-design/storefront/internal/cart"
	cartdomain "github.com/lina-design/storefront/internal/cart/domain"
)

// RemoveItemCommand represents the command to drop a product from the cart
type RemoveItemCommand struct {
	ProductID string
}

// RemoveItemHandler handles cart item removal
type RemoveItemHandler struct {
	store *cart.Store
}

// NewRemoveItemHandler creates a new remove item handler
func NewRemoveItemHandler(store *cart.Store) *RemoveItemHandler {
	return &RemoveItemHandler{store: store}
}

// Handle executes the removal; removing an absent id is a no-op
func (h *RemoveItemHandler) Handle(ctx context.Context, cmd RemoveItemCommand) ([]cartdomain.Entry, error) {
	if cmd.ProductID == "" {
		return nil, fmt.Errorf("product id is required")
	}

	entries, err := h.store.Remove(ctx, cmd.ProductID)
	if err != nil {
		return entries, fmt.Errorf("failed to persist cart: %w", err)
	}
	return entries, nil
}
