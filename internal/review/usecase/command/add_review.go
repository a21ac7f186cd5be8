package command

import (
	"context"
	"fmt"

	"github.com/lina-design/storefront/internal/review"
	"github.com/lina-design/storefront/internal/user/domain"
)

// AddReviewCommand represents the command to append a product review
type AddReviewCommand struct {
	ProductID string
	Author    domain.User
	Rating    int
	Comment   string
}

// AddReviewHandler handles review creation
type AddReviewHandler struct {
	store *review.Store
}

// NewAddReviewHandler creates a new add review handler
func NewAddReviewHandler(store *review.Store) *AddReviewHandler {
	return &AddReviewHandler{store: store}
}

// Handle executes the append. A blank comment is not an error: the log
// is simply left unchanged and Added reports false.
func (h *AddReviewHandler) Handle(ctx context.Context, cmd AddReviewCommand) (added bool, err error) {
	if cmd.ProductID == "" {
		return false, fmt.Errorf("product id is required")
	}
	if cmd.Rating < 1 || cmd.Rating > 5 {
		return false, fmt.Errorf("rating must be between 1 and 5")
	}

	added, err = h.store.Append(ctx, cmd.ProductID, cmd.Author.DisplayName(), cmd.Rating, cmd.Comment)
	if err != nil {
		return added, fmt.Errorf("failed to persist reviews: %w", err)
	}
	return added, nil
}
