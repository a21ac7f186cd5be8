package command

import (
	"context"
	"fmt"

	catalog "github.com/lina-design/storefront/internal/catalog/domain"
	"github.com/lina-design/storefront/internal/wishlist"
)

// ToggleCommand represents the command to flip a product's wishlist membership
type ToggleCommand struct {
	Product catalog.Product
}

// ToggleHandler handles wishlist toggles
type ToggleHandler struct {
	store *wishlist.Store
}

// NewToggleHandler creates a new toggle handler
func NewToggleHandler(store *wishlist.Store) *ToggleHandler {
	return &ToggleHandler{store: store}
}

// Handle executes the toggle
func (h *ToggleHandler) Handle(ctx context.Context, cmd ToggleCommand) ([]catalog.Product, error) {
	if cmd.Product.ID == "" {
		return nil, fmt.Errorf("product id is required")
	}

	products, err := h.store.Toggle(ctx, cmd.Product)
	if err != nil {
		return products, fmt.Errorf("failed to persist wishlist: %w", err)
	}
	return products, nil
}
