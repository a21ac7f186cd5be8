package command

import (
	"context"
	"fmt"

	"github.com/lina-design/storefront/internal/cart"
	cartdomain "github.com/lina-design/storefront/internal/cart/domain"
	catalog "github.com/lina-design/storefront/internal/catalog/domain"
)

// UpdateQuantityCommand represents the command to change a cart quantity
type UpdateQuantityCommand struct {
	Product catalog.Product
	Delta   int
}

// UpdateQuantityHandler handles cart quantity changes
type UpdateQuantityHandler struct {
	store *cart.Store
}

// NewUpdateQuantityHandler creates a new update quantity handler
func NewUpdateQuantityHandler(store *cart.Store) *UpdateQuantityHandler {
	return &UpdateQuantityHandler{store: store}
}

// Handle executes the quantity change
func (h *UpdateQuantityHandler) Handle(ctx context.Context, cmd UpdateQuantityCommand) ([]cartdomain.Entry, error) {
	if cmd.Product.ID == "" {
		return nil, fmt.Errorf("product id is required")
	}

	entries, err := h.store.UpdateQuantity(ctx, cmd.Product, cmd.Delta)
	if err != nil {
		return entries, fmt.Errorf("failed to persist cart: %w", err)
	}
	return entries, nil
}
