// Package gateway retrieves the catalog for the storefront. It is the
// client half of the fetch contract: it talks to the adapter endpoints
// and degrades to the bundled mock data per resource on any failure, so
// the storefront always has a catalog to render.
package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"mime"
	"net/http"
	"sync"
	"time"

	"github.com/lina-design/storefront/internal/catalog/domain"
	"github.com/lina-design/storefront/internal/catalog/mock"
	"github.com/lina-design/storefront/pkg/logger"
)

// Result is a fetched catalog. The fallback flags report, per resource,
// whether the bundled mock list was substituted for a live one.
type Result struct {
	Products           []domain.Product  `json:"products"`
	Categories         []domain.Category `json:"categories"`
	ProductsFallback   bool              `json:"productsFallback"`
	CategoriesFallback bool              `json:"categoriesFallback"`
}

// Gateway fetches products and categories from the adapter
type Gateway struct {
	baseURL    string
	httpClient *http.Client
	mockMode   bool
	mockDelay  time.Duration
}

// Option configures a Gateway
type Option func(*Gateway)

// WithMockMode short-circuits every fetch to the bundled mock data,
// after an optional simulated network delay.
func WithMockMode(delay time.Duration) Option {
	return func(g *Gateway) {
		g.mockMode = true
		g.mockDelay = delay
	}
}

// WithHTTPClient overrides the HTTP client used for live fetches.
func WithHTTPClient(client *http.Client) Option {
	return func(g *Gateway) {
		g.httpClient = client
	}
}

// New creates a Gateway pointed at the adapter base URL.
func New(baseURL string, opts ...Option) *Gateway {
	g := &Gateway{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// FetchCatalog retrieves products and categories. The two retrievals run
// concurrently and fail independently: a dead categories endpoint never
// costs the caller its live product list, and vice versa.
func (g *Gateway) FetchCatalog(ctx context.Context) Result {
	if g.mockMode {
		if g.mockDelay > 0 {
			select {
			case <-time.After(g.mockDelay):
			case <-ctx.Done():
			}
		}
		return Result{Products: mock.Products(), Categories: mock.Categories()}
	}

	var (
		wg     sync.WaitGroup
		result Result
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		if err := g.fetchJSON(ctx, "/products", &result.Products); err != nil {
			logger.Warn(ctx).Err(err).Msg("Products fetch failed, serving mock data")
			result.Products = mock.Products()
			result.ProductsFallback = true
		}
	}()
	go func() {
		defer wg.Done()
		if err := g.fetchJSON(ctx, "/categories", &result.Categories); err != nil {
			logger.Warn(ctx).Err(err).Msg("Categories fetch failed, serving mock data")
			result.Categories = mock.Categories()
			result.CategoriesFallback = true
		}
	}()
	wg.Wait()

	return result
}

// fetchJSON performs one retrieval. Non-2xx statuses, non-JSON content
// types, decode failures and transport errors are all equal here: the
// caller falls back.
func (g *Gateway) fetchJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to build request for %s: %w", path, err)
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request to %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("unexpected status %d from %s", resp.StatusCode, path)
	}

	mediaType, _, err := mime.ParseMediaType(resp.Header.Get("Content-Type"))
	if err != nil || mediaType != "application/json" {
		return fmt.Errorf("non-JSON response from %s (content type %q)", path, resp.Header.Get("Content-Type"))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", path, err)
	}
	return nil
}
