package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lina-design/storefront/internal/cart"
	cartcommand "github.com/lina-design/storefront/internal/cart/usecase/command"
	cartquery "github.com/lina-design/storefront/internal/cart/usecase/query"
	"github.com/lina-design/storefront/internal/catalog/gateway"
	catalogquery "github.com/lina-design/storefront/internal/catalog/usecase/query"
	"github.com/lina-design/storefront/internal/checkout"
	"github.com/lina-design/storefront/internal/events"
	"github.com/lina-design/storefront/internal/review"
	reviewcommand "github.com/lina-design/storefront/internal/review/usecase/command"
	reviewquery "github.com/lina-design/storefront/internal/review/usecase/query"
	"github.com/lina-design/storefront/internal/wishlist"
	wishcommand "github.com/lina-design/storefront/internal/wishlist/usecase/command"
	wishquery "github.com/lina-design/storefront/internal/wishlist/usecase/query"
	"github.com/lina-design/storefront/pkg/kv"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	return newTestAppWithPublisher(t, nil)
}

func newTestAppWithPublisher(t *testing.T, publisher *events.Publisher) *fiber.App {
	t.Helper()

	ctx := context.Background()
	storage := kv.NewMemoryStore()

	cartStore := cart.NewStore(ctx, storage)
	wishStore := wishlist.NewStore(ctx, storage)
	reviewStore := review.NewStore(ctx, storage)

	handler := NewStorefrontHandler(
		catalogquery.NewFetchCatalogHandler(gateway.New("", gateway.WithMockMode(0))),
		cartcommand.NewUpdateQuantityHandler(cartStore),
		cartcommand.NewRemoveItemHandler(cartStore),
		cartquery.NewGetCartHandler(cartStore),
		wishcommand.NewToggleHandler(wishStore),
		wishquery.NewListWishlistHandler(wishStore),
		reviewcommand.NewAddReviewHandler(reviewStore),
		reviewquery.NewListReviewsHandler(reviewStore),
		checkout.NewBuilder("https://loja.linadesign.com.br"),
		publisher,
		storage,
	)

	app := fiber.New()
	handler.RegisterRoutes(app)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}) (int, Response) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var envelope Response
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	return resp.StatusCode, envelope
}

func TestHealth(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestGetCatalogMockMode(t *testing.T) {
	app := newTestApp(t)

	code, envelope := doJSON(t, app, http.MethodGet, "/api/catalog", nil)

	require.Equal(t, http.StatusOK, code)
	require.True(t, envelope.Success)

	data := envelope.Data.(map[string]interface{})
	assert.Len(t, data["products"], 6)
	assert.Len(t, data["categories"], 5)
	assert.Equal(t, false, data["productsFallback"])
	assert.Equal(t, false, data["categoriesFallback"])
}

func TestGetCatalogFiltered(t *testing.T) {
	app := newTestApp(t)

	code, envelope := doJSON(t, app, http.MethodGet,
		"/api/catalog?category=Ilumina%C3%A7%C3%A3o&sort=price_asc", nil)

	require.Equal(t, http.StatusOK, code)
	data := envelope.Data.(map[string]interface{})
	products := data["products"].([]interface{})

	require.NotEmpty(t, products)
	for _, raw := range products {
		product := raw.(map[string]interface{})
		assert.Equal(t, "Iluminação", product["category"])
	}
}

func TestGetBanners(t *testing.T) {
	app := newTestApp(t)

	code, envelope := doJSON(t, app, http.MethodGet, "/api/banners", nil)

	require.Equal(t, http.StatusOK, code)
	assert.Len(t, envelope.Data, 2)
}

func TestGetOrders(t *testing.T) {
	app := newTestApp(t)

	code, envelope := doJSON(t, app, http.MethodGet, "/api/orders", nil)

	require.Equal(t, http.StatusOK, code)
	assert.NotEmpty(t, envelope.Data)
}

func TestCartFlow(t *testing.T) {
	app := newTestApp(t)

	code, envelope := doJSON(t, app, http.MethodGet, "/api/cart", nil)
	require.Equal(t, http.StatusOK, code)
	cartData := envelope.Data.(map[string]interface{})
	assert.Empty(t, cartData["entries"])

	code, envelope = doJSON(t, app, http.MethodPost, "/api/cart/items", fiber.Map{
		"product": fiber.Map{"id": "101", "name": "Cadeira Oslo", "price": 749.90},
		"delta":   2,
	})
	require.Equal(t, http.StatusOK, code)
	cartData = envelope.Data.(map[string]interface{})
	entries := cartData["entries"].([]interface{})
	require.Len(t, entries, 1)
	entry := entries[0].(map[string]interface{})
	assert.Equal(t, "101", entry["id"])
	assert.Equal(t, float64(2), entry["quantity"])
	assert.InDelta(t, 1499.80, cartData["total"].(float64), 0.001)
	assert.Equal(t, float64(2), cartData["count"])

	code, envelope = doJSON(t, app, http.MethodPost, "/api/cart/items", fiber.Map{
		"product": fiber.Map{"id": "101"},
		"delta":   -2,
	})
	require.Equal(t, http.StatusOK, code)
	cartData = envelope.Data.(map[string]interface{})
	assert.Empty(t, cartData["entries"])
}

func TestUpdateCartItemWithoutProductID(t *testing.T) {
	app := newTestApp(t)

	code, envelope := doJSON(t, app, http.MethodPost, "/api/cart/items", fiber.Map{
		"delta": 1,
	})

	assert.Equal(t, http.StatusBadRequest, code)
	assert.False(t, envelope.Success)
}

func TestRemoveCartItem(t *testing.T) {
	app := newTestApp(t)

	_, _ = doJSON(t, app, http.MethodPost, "/api/cart/items", fiber.Map{
		"product": fiber.Map{"id": "104", "name": "Luminária", "price": 189.90},
		"delta":   1,
	})

	code, envelope := doJSON(t, app, http.MethodDelete, "/api/cart/items/104", nil)

	require.Equal(t, http.StatusOK, code)
	cartData := envelope.Data.(map[string]interface{})
	assert.Empty(t, cartData["entries"])
}

func TestCheckoutEmptyCart(t *testing.T) {
	app := newTestApp(t)

	code, envelope := doJSON(t, app, http.MethodPost, "/api/cart/checkout", nil)

	assert.Equal(t, http.StatusBadRequest, code)
	assert.False(t, envelope.Success)
	assert.Equal(t, "cart is empty", envelope.Error)
}

func TestCheckoutBuildsCartURL(t *testing.T) {
	app := newTestApp(t)

	_, _ = doJSON(t, app, http.MethodPost, "/api/cart/items", fiber.Map{
		"product": fiber.Map{"id": "101", "price": 749.90},
		"delta":   2,
	})

	code, envelope := doJSON(t, app, http.MethodPost, "/api/cart/checkout", nil)

	require.Equal(t, http.StatusOK, code)
	data := envelope.Data.(map[string]interface{})
	assert.Equal(t, "https://loja.linadesign.com.br/carrinho?itens=101%3A2", data["url"])
}

func TestCheckoutSucceedsWhenPublishFails(t *testing.T) {
	attempted := make(chan struct{})
	producer := mocks.NewSyncProducer(t, nil)
	producer.ExpectSendMessageWithMessageCheckerFunctionAndFail(func(*sarama.ProducerMessage) error {
		close(attempted)
		return nil
	}, sarama.ErrOutOfBrokers)

	app := newTestAppWithPublisher(t, events.NewPublisherWithProducer(producer))

	_, _ = doJSON(t, app, http.MethodPost, "/api/cart/items", fiber.Map{
		"product": fiber.Map{"id": "101", "price": 749.90},
		"delta":   1,
	})

	code, envelope := doJSON(t, app, http.MethodPost, "/api/cart/checkout", nil)

	require.Equal(t, http.StatusOK, code)
	require.True(t, envelope.Success)
	data := envelope.Data.(map[string]interface{})
	assert.Equal(t, "https://loja.linadesign.com.br/carrinho?itens=101%3A1", data["url"])

	// The handoff is fire-and-forget; the broker failure happens after
	// the response is already written.
	select {
	case <-attempted:
	case <-time.After(2 * time.Second):
		t.Fatal("checkout handoff was never attempted")
	}
}

func TestBuyNowDefaultsQuantity(t *testing.T) {
	app := newTestApp(t)

	code, envelope := doJSON(t, app, http.MethodPost, "/api/products/103/buy", nil)

	require.Equal(t, http.StatusOK, code)
	data := envelope.Data.(map[string]interface{})
	assert.Equal(t, "https://loja.linadesign.com.br/carrinho/produto/103/quantidade/1", data["url"])
}

func TestBuyNowWithQuantity(t *testing.T) {
	app := newTestApp(t)

	code, envelope := doJSON(t, app, http.MethodPost, "/api/products/103/buy", fiber.Map{
		"quantity": 3,
	})

	require.Equal(t, http.StatusOK, code)
	data := envelope.Data.(map[string]interface{})
	assert.Equal(t, "https://loja.linadesign.com.br/carrinho/produto/103/quantidade/3", data["url"])
}

func TestWishlistToggle(t *testing.T) {
	app := newTestApp(t)

	body := fiber.Map{"product": fiber.Map{"id": "102", "name": "Mesa Lateral"}}

	code, envelope := doJSON(t, app, http.MethodPost, "/api/wishlist/toggle", body)
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, envelope.Data, 1)

	code, envelope = doJSON(t, app, http.MethodPost, "/api/wishlist/toggle", body)
	require.Equal(t, http.StatusOK, code)
	assert.Empty(t, envelope.Data)

	code, envelope = doJSON(t, app, http.MethodGet, "/api/wishlist", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Empty(t, envelope.Data)
}

func TestAddReviewBlankCommentIsSilent(t *testing.T) {
	app := newTestApp(t)

	code, envelope := doJSON(t, app, http.MethodPost, "/api/products/101/reviews", fiber.Map{
		"rating":  5,
		"comment": "   ",
		"user":    fiber.Map{"authenticated": false},
	})

	require.Equal(t, http.StatusOK, code)
	require.True(t, envelope.Success)
	data := envelope.Data.(map[string]interface{})
	assert.Equal(t, false, data["added"])

	_, envelope = doJSON(t, app, http.MethodGet, "/api/products/101/reviews", nil)
	assert.Empty(t, envelope.Data)
}

func TestAddReviewAndList(t *testing.T) {
	app := newTestApp(t)

	code, envelope := doJSON(t, app, http.MethodPost, "/api/products/101/reviews", fiber.Map{
		"rating":  4,
		"comment": "Muito confortável",
		"user":    fiber.Map{"authenticated": true, "name": "Lina"},
	})

	require.Equal(t, http.StatusOK, code)
	data := envelope.Data.(map[string]interface{})
	assert.Equal(t, true, data["added"])

	code, envelope = doJSON(t, app, http.MethodGet, "/api/products/101/reviews", nil)
	require.Equal(t, http.StatusOK, code)
	reviews := envelope.Data.([]interface{})
	require.Len(t, reviews, 1)
	first := reviews[0].(map[string]interface{})
	assert.Equal(t, "Lina", first["userName"])
	assert.Equal(t, "Muito confortável", first["comment"])
	assert.Equal(t, float64(4), first["rating"])
}

func TestAddReviewGuestAuthor(t *testing.T) {
	app := newTestApp(t)

	_, _ = doJSON(t, app, http.MethodPost, "/api/products/102/reviews", fiber.Map{
		"rating":  3,
		"comment": "Bom custo-benefício",
		"user":    fiber.Map{"authenticated": false},
	})

	_, envelope := doJSON(t, app, http.MethodGet, "/api/products/102/reviews", nil)
	reviews := envelope.Data.([]interface{})
	require.Len(t, reviews, 1)
	assert.Equal(t, "Visitante", reviews[0].(map[string]interface{})["userName"])
}

func TestAddReviewInvalidRating(t *testing.T) {
	app := newTestApp(t)

	code, envelope := doJSON(t, app, http.MethodPost, "/api/products/101/reviews", fiber.Map{
		"rating":  9,
		"comment": "nota fora da escala",
	})

	assert.Equal(t, http.StatusBadRequest, code)
	assert.False(t, envelope.Success)
}

func TestOnboardingFlag(t *testing.T) {
	app := newTestApp(t)

	code, envelope := doJSON(t, app, http.MethodGet, "/api/onboarding", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, false, envelope.Data.(map[string]interface{})["seen"])

	code, _ = doJSON(t, app, http.MethodPost, "/api/onboarding", nil)
	require.Equal(t, http.StatusOK, code)

	code, envelope = doJSON(t, app, http.MethodGet, "/api/onboarding", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, envelope.Data.(map[string]interface{})["seen"])
}
