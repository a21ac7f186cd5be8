// Package upstream implements the client for the Loja Integrada REST
// API, the system of record for products and categories. It injects the
// API credential, bounds every call, and reshapes the upstream's
// Portuguese field names into the storefront schema.
package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/lina-design/storefront/internal/catalog/domain"
)

// DefaultCategory is assigned to products the upstream returns without
// any category.
const DefaultCategory = "Geral"

var (
	// ErrMissingCredential means the API key is not configured at all.
	// Callers must surface this as a configuration error, never as a
	// fallback, or a misconfigured deployment would silently serve mock
	// data forever.
	ErrMissingCredential = errors.New("upstream: API key not configured")

	// ErrUnauthorized means the upstream explicitly rejected the
	// credential (HTTP 401). Also surfaced, never masked.
	ErrUnauthorized = errors.New("upstream: API key rejected")

	// ErrUnavailable covers every recoverable failure: timeouts, 5xx,
	// malformed bodies, transport errors. Callers substitute mock data.
	ErrUnavailable = errors.New("upstream: unavailable")
)

// Client calls the Loja Integrada API
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates an upstream client. The timeout bounds the whole
// outbound call; expiry is treated as an ordinary upstream failure.
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 8 * time.Second
	}

	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

// upstreamPage is the paginated envelope every Loja Integrada list
// endpoint returns.
type upstreamPage struct {
	Objects []json.RawMessage `json:"objects"`
}

type upstreamProduct struct {
	ID           int64       `json:"id"`
	Nome         string      `json:"nome"`
	PrecoVenda   flexNumber  `json:"preco_venda"`
	PrecoCheio   *flexNumber `json:"preco_cheio"`
	Categorias   []struct {
		Nome string `json:"nome"`
	} `json:"categorias"`
	DescricaoCompleta string `json:"descricao_completa"`
	ImagemPrincipal   *struct {
		Grande string `json:"grande"`
	} `json:"imagem_principal"`
}

type upstreamCategory struct {
	ID   int64  `json:"id"`
	Nome string `json:"nome"`
}

// flexNumber decodes the upstream's price fields, which arrive either as
// JSON strings ("249.90") or as bare numbers.
type flexNumber float64

func (f *flexNumber) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || string(data) == "null" {
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if s == "" {
			return nil
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("invalid numeric string %q: %w", s, err)
		}
		*f = flexNumber(v)
		return nil
	}

	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*f = flexNumber(v)
	return nil
}

// FetchProducts retrieves and reshapes the upstream product list
func (c *Client) FetchProducts(ctx context.Context) ([]domain.Product, error) {
	page, err := c.fetchPage(ctx, "/v1/produto?limit=20&format=json")
	if err != nil {
		return nil, err
	}

	products := make([]domain.Product, 0, len(page.Objects))
	for _, raw := range page.Objects {
		var item upstreamProduct
		if err := json.Unmarshal(raw, &item); err != nil {
			return nil, fmt.Errorf("%w: malformed product entry: %v", ErrUnavailable, err)
		}
		products = append(products, mapProduct(item))
	}
	return products, nil
}

// FetchCategories retrieves and reshapes the upstream category list
func (c *Client) FetchCategories(ctx context.Context) ([]domain.Category, error) {
	page, err := c.fetchPage(ctx, "/v1/categoria?limit=20&format=json")
	if err != nil {
		return nil, err
	}

	categories := make([]domain.Category, 0, len(page.Objects))
	for _, raw := range page.Objects {
		var item upstreamCategory
		if err := json.Unmarshal(raw, &item); err != nil {
			return nil, fmt.Errorf("%w: malformed category entry: %v", ErrUnavailable, err)
		}
		categories = append(categories, domain.Category{
			ID:   strconv.FormatInt(item.ID, 10),
			Name: item.Nome,
			// The upstream category payload carries no usable image, so
			// one is synthesized deterministically from the numeric id.
			Image: fmt.Sprintf("https://picsum.photos/seed/%d/100/100", item.ID),
		})
	}
	return categories, nil
}

func (c *Client) fetchPage(ctx context.Context, path string) (*upstreamPage, error) {
	if c.apiKey == "" {
		return nil, ErrMissingCredential
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	req.Header.Set("Authorization", "chave_api "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, ErrUnauthorized
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}

	var page upstreamPage
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, fmt.Errorf("%w: malformed body: %v", ErrUnavailable, err)
	}
	return &page, nil
}

func mapProduct(item upstreamProduct) domain.Product {
	product := domain.Product{
		ID:          strconv.FormatInt(item.ID, 10),
		Name:        item.Nome,
		Price:       float64(item.PrecoVenda),
		Description: item.DescricaoCompleta,
		Category:    DefaultCategory,
		// The upstream does not expose ratings; the source app pins the
		// maximum so every product renders five stars.
		Rating: 5.0,
	}

	if item.PrecoCheio != nil {
		old := float64(*item.PrecoCheio)
		product.OldPrice = &old
	}
	if len(item.Categorias) > 0 && item.Categorias[0].Nome != "" {
		product.Category = item.Categorias[0].Nome
	}
	// Unlike categories, products keep the upstream image URL even when
	// it is absent (empty string, no placeholder).
	if item.ImagemPrincipal != nil {
		product.Image = item.ImagemPrincipal.Grande
	}
	if product.Description == "" {
		product.Description = item.Nome
	}

	return product
}
