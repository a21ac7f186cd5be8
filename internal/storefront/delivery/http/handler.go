// Package http is the storefront BFF delivery layer. It exposes the
// catalog, cart, wishlist, review, order and checkout endpoints the
// mobile shell consumes. Upstream or storage trouble never surfaces as
// an error here: the catalog degrades to mock data and the stores
// degrade to empty collections, so the client always has something to
// render.
package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	cartcommand "github.com/lina-design/storefront/internal/cart/usecase/command"
	cartquery "github.com/lina-design/storefront/internal/cart/usecase/query"
	catalogdomain "github.com/lina-design/storefront/internal/catalog/domain"
	"github.com/lina-design/storefront/internal/catalog/mock"
	catalogquery "github.com/lina-design/storefront/internal/catalog/usecase/query"
	"github.com/lina-design/storefront/internal/checkout"
	"github.com/lina-design/storefront/internal/events"
	"github.com/lina-design/storefront/internal/order"
	reviewcommand "github.com/lina-design/storefront/internal/review/usecase/command"
	reviewquery "github.com/lina-design/storefront/internal/review/usecase/query"
	userdomain "github.com/lina-design/storefront/internal/user/domain"
	wishcommand "github.com/lina-design/storefront/internal/wishlist/usecase/command"
	wishquery "github.com/lina-design/storefront/internal/wishlist/usecase/query"
	"github.com/lina-design/storefront/pkg/kv"
	"github.com/lina-design/storefront/pkg/logger"
)

// OnboardingKey is the storage key of the one-time onboarding flag.
const OnboardingKey = "seen_onboarding"

// Response is the BFF's envelope
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// StorefrontHandler handles all BFF routes
type StorefrontHandler struct {
	fetchCatalog   *catalogquery.FetchCatalogHandler
	filterProducts *catalogquery.FilterProductsHandler

	updateQuantity *cartcommand.UpdateQuantityHandler
	removeItem     *cartcommand.RemoveItemHandler
	getCart        *cartquery.GetCartHandler

	toggleWishlist *wishcommand.ToggleHandler
	listWishlist   *wishquery.ListWishlistHandler

	addReview   *reviewcommand.AddReviewHandler
	listReviews *reviewquery.ListReviewsHandler

	checkout  *checkout.Builder
	publisher *events.Publisher // nil when no broker is configured
	storage   kv.Store
}

// NewStorefrontHandler creates the BFF handler
func NewStorefrontHandler(
	fetchCatalog *catalogquery.FetchCatalogHandler,
	updateQuantity *cartcommand.UpdateQuantityHandler,
	removeItem *cartcommand.RemoveItemHandler,
	getCart *cartquery.GetCartHandler,
	toggleWishlist *wishcommand.ToggleHandler,
	listWishlist *wishquery.ListWishlistHandler,
	addReview *reviewcommand.AddReviewHandler,
	listReviews *reviewquery.ListReviewsHandler,
	checkoutBuilder *checkout.Builder,
	publisher *events.Publisher,
	storage kv.Store,
) *StorefrontHandler {
	return &StorefrontHandler{
		fetchCatalog:   fetchCatalog,
		filterProducts: catalogquery.NewFilterProductsHandler(),
		updateQuantity: updateQuantity,
		removeItem:     removeItem,
		getCart:        getCart,
		toggleWishlist: toggleWishlist,
		listWishlist:   listWishlist,
		addReview:      addReview,
		listReviews:    listReviews,
		checkout:       checkoutBuilder,
		publisher:      publisher,
		storage:        storage,
	}
}

// RegisterRoutes registers all BFF routes
func (h *StorefrontHandler) RegisterRoutes(app *fiber.App) {
	app.Get("/health", h.Health)

	api := app.Group("/api")
	api.Get("/catalog", h.GetCatalog)
	api.Get("/banners", h.GetBanners)
	api.Get("/orders", h.GetOrders)

	api.Get("/cart", h.GetCart)
	api.Post("/cart/items", h.UpdateCartItem)
	api.Delete("/cart/items/:id", h.RemoveCartItem)
	api.Post("/cart/checkout", h.Checkout)

	api.Get("/wishlist", h.GetWishlist)
	api.Post("/wishlist/toggle", h.ToggleWishlist)

	api.Get("/products/:id/reviews", h.ListProductReviews)
	api.Post("/products/:id/reviews", h.AddProductReview)
	api.Post("/products/:id/buy", h.BuyNow)

	api.Get("/onboarding", h.GetOnboarding)
	api.Post("/onboarding", h.MarkOnboardingSeen)
}

// Health reports liveness
func (h *StorefrontHandler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// GetCatalog returns products and categories, optionally filtered and
// sorted via query parameters (category, price_max, sort).
func (h *StorefrontHandler) GetCatalog(c *fiber.Ctx) error {
	result := h.fetchCatalog.Handle(c.UserContext(), catalogquery.FetchCatalogQuery{})

	result.Products = h.filterProducts.Handle(catalogquery.FilterProductsQuery{
		Products: result.Products,
		Category: c.Query("category"),
		PriceMax: c.QueryFloat("price_max"),
		Sort:     catalogdomain.SortKey(c.Query("sort")),
	})

	return c.JSON(Response{Success: true, Data: result})
}

// GetBanners returns the promotional banners
func (h *StorefrontHandler) GetBanners(c *fiber.Ctx) error {
	return c.JSON(Response{Success: true, Data: mock.Banners()})
}

// GetOrders returns the mocked order history
func (h *StorefrontHandler) GetOrders(c *fiber.Ctx) error {
	return c.JSON(Response{Success: true, Data: order.MockOrders()})
}

// GetCart returns the current ledger with total and badge count
func (h *StorefrontHandler) GetCart(c *fiber.Ctx) error {
	return c.JSON(Response{Success: true, Data: h.getCart.Handle()})
}

type updateCartRequest struct {
	Product catalogdomain.Product `json:"product"`
	Delta   int                   `json:"delta"`
}

// UpdateCartItem applies a quantity delta for a product
func (h *StorefrontHandler) UpdateCartItem(c *fiber.Ctx) error {
	var req updateCartRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(Response{
			Success: false, Error: "invalid request body",
		})
	}

	entries, err := h.updateQuantity.Handle(c.UserContext(), cartcommand.UpdateQuantityCommand{
		Product: req.Product,
		Delta:   req.Delta,
	})
	if err != nil {
		if entries == nil {
			return c.Status(fiber.StatusBadRequest).JSON(Response{
				Success: false, Error: err.Error(),
			})
		}
		// The ledger mutated but its mirror write failed; the client
		// still gets the new state.
		logger.Error(c.UserContext()).Err(err).Msg("Cart persistence failed")
	}

	return c.JSON(Response{Success: true, Data: h.getCart.Handle()})
}

// RemoveCartItem unconditionally drops a product from the ledger
func (h *StorefrontHandler) RemoveCartItem(c *fiber.Ctx) error {
	entries, err := h.removeItem.Handle(c.UserContext(), cartcommand.RemoveItemCommand{
		ProductID: c.Params("id"),
	})
	if err != nil {
		if entries == nil {
			return c.Status(fiber.StatusBadRequest).JSON(Response{
				Success: false, Error: err.Error(),
			})
		}
		logger.Error(c.UserContext()).Err(err).Msg("Cart persistence failed")
	}

	return c.JSON(Response{Success: true, Data: h.getCart.Handle()})
}

// Checkout hands the whole ledger off to the upstream store's web cart
func (h *StorefrontHandler) Checkout(c *fiber.Ctx) error {
	view := h.getCart.Handle()
	if len(view.Entries) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(Response{
			Success: false, Error: "cart is empty",
		})
	}

	url := h.checkout.CartURL(view.Entries)
	h.publishHandoff(view, url)

	return c.JSON(Response{
		Success: true,
		Message: "redirect to the store checkout",
		Data:    fiber.Map{"url": url},
	})
}

type buyNowRequest struct {
	Quantity int `json:"quantity"`
}

// BuyNow hands a single product off to the upstream store's web cart
func (h *StorefrontHandler) BuyNow(c *fiber.Ctx) error {
	// The body is optional; quantity defaults to one.
	var req buyNowRequest
	_ = c.BodyParser(&req)
	if req.Quantity < 1 {
		req.Quantity = 1
	}

	url := h.checkout.BuyNowURL(c.Params("id"), req.Quantity)
	return c.JSON(Response{
		Success: true,
		Message: "redirect to the store checkout",
		Data:    fiber.Map{"url": url},
	})
}

// GetWishlist returns the current wishlist
func (h *StorefrontHandler) GetWishlist(c *fiber.Ctx) error {
	return c.JSON(Response{Success: true, Data: h.listWishlist.Handle()})
}

type toggleWishlistRequest struct {
	Product catalogdomain.Product `json:"product"`
}

// ToggleWishlist flips a product's wishlist membership
func (h *StorefrontHandler) ToggleWishlist(c *fiber.Ctx) error {
	var req toggleWishlistRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(Response{
			Success: false, Error: "invalid request body",
		})
	}

	products, err := h.toggleWishlist.Handle(c.UserContext(), wishcommand.ToggleCommand{
		Product: req.Product,
	})
	if err != nil {
		if products == nil {
			return c.Status(fiber.StatusBadRequest).JSON(Response{
				Success: false, Error: err.Error(),
			})
		}
		logger.Error(c.UserContext()).Err(err).Msg("Wishlist persistence failed")
	}

	return c.JSON(Response{Success: true, Data: products})
}

// ListProductReviews returns one product's reviews, most recent first
func (h *StorefrontHandler) ListProductReviews(c *fiber.Ctx) error {
	reviews := h.listReviews.Handle(reviewquery.ListReviewsQuery{
		ProductID: c.Params("id"),
	})
	return c.JSON(Response{Success: true, Data: reviews})
}

type addReviewRequest struct {
	Rating  int             `json:"rating"`
	Comment string          `json:"comment"`
	User    userdomain.User `json:"user"`
}

// AddProductReview appends a review. A blank comment is a silent no-op,
// reported through the "added" flag rather than an error status.
func (h *StorefrontHandler) AddProductReview(c *fiber.Ctx) error {
	var req addReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(Response{
			Success: false, Error: "invalid request body",
		})
	}

	added, err := h.addReview.Handle(c.UserContext(), reviewcommand.AddReviewCommand{
		ProductID: c.Params("id"),
		Author:    req.User,
		Rating:    req.Rating,
		Comment:   req.Comment,
	})
	if err != nil {
		if !added {
			return c.Status(fiber.StatusBadRequest).JSON(Response{
				Success: false, Error: err.Error(),
			})
		}
		logger.Error(c.UserContext()).Err(err).Msg("Review persistence failed")
	}

	return c.JSON(Response{Success: true, Data: fiber.Map{"added": added}})
}

// GetOnboarding reports whether the onboarding flow was already seen
func (h *StorefrontHandler) GetOnboarding(c *fiber.Ctx) error {
	seen := false
	if value, err := h.storage.Get(c.UserContext(), OnboardingKey); err == nil && string(value) == "true" {
		seen = true
	}
	return c.JSON(Response{Success: true, Data: fiber.Map{"seen": seen}})
}

// MarkOnboardingSeen records the one-time onboarding flag
func (h *StorefrontHandler) MarkOnboardingSeen(c *fiber.Ctx) error {
	if err := h.storage.Set(c.UserContext(), OnboardingKey, []byte("true")); err != nil {
		logger.Error(c.UserContext()).Err(err).Msg("Onboarding flag persistence failed")
	}
	return c.JSON(Response{Success: true, Data: fiber.Map{"seen": true}})
}

// publishHandoff emits the checkout event without ever delaying the
// response; a dead broker only costs a log line.
func (h *StorefrontHandler) publishHandoff(view cartquery.CartView, url string) {
	if h.publisher == nil {
		return
	}

	items := make([]events.HandoffItem, 0, len(view.Entries))
	for _, entry := range view.Entries {
		items = append(items, events.HandoffItem{
			ProductID: entry.ID,
			Quantity:  entry.Quantity,
			Price:     entry.Price,
		})
	}

	event := events.CheckoutHandoffEvent{
		Items:       items,
		Total:       view.Total,
		CheckoutURL: url,
	}

	go func() {
		publishCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := h.publisher.PublishCheckoutHandoff(publishCtx, event); err != nil {
			logger.Logger.Warn().Err(err).Msg("Checkout handoff event not published")
		}
	}()
}
