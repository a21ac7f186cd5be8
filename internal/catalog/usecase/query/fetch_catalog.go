package query

import (
	"context"

	"github.com/lina-design/storefront/internal/catalog/gateway"
)

// FetchCatalogQuery represents the query for the full catalog
type FetchCatalogQuery struct{}

// FetchCatalogHandler handles catalog fetch queries
type FetchCatalogHandler struct {
	gateway *gateway.Gateway
}

// NewFetchCatalogHandler creates a new fetch catalog handler
func NewFetchCatalogHandler(gw *gateway.Gateway) *FetchCatalogHandler {
	return &FetchCatalogHandler{gateway: gw}
}

// Handle executes the catalog fetch. It cannot fail: the gateway
// substitutes mock data for any resource it cannot retrieve.
func (h *FetchCatalogHandler) Handle(ctx context.Context, _ FetchCatalogQuery) gateway.Result {
	return h.gateway.FetchCatalog(ctx)
}
