package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lina-design/storefront/internal/catalog/domain"
	"github.com/lina-design/storefront/internal/catalog/mock"
	"github.com/lina-design/storefront/internal/catalog/upstream"
)

// switchFetcher lets each test choose the upstream outcome. The handler
// registers its metrics in the global prometheus registry, so one
// handler instance is shared across the package's tests.
type switchFetcher struct {
	products   []domain.Product
	categories []domain.Category
	err        error
}

func (f *switchFetcher) FetchProducts(context.Context) ([]domain.Product, error) {
	return f.products, f.err
}

func (f *switchFetcher) FetchCategories(context.Context) ([]domain.Category, error) {
	return f.categories, f.err
}

var (
	setupOnce  sync.Once
	testRouter *mux.Router
	fetcher    *switchFetcher
)

func newTestRouter() (*mux.Router, *switchFetcher) {
	setupOnce.Do(func() {
		fetcher = &switchFetcher{}
		testRouter = mux.NewRouter()
		NewAdapterHandler(fetcher).RegisterRoutes(testRouter)
	})
	return testRouter, fetcher
}

func doRequest(t *testing.T, method, path string) *httptest.ResponseRecorder {
	t.Helper()

	router, _ := newTestRouter()
	req := httptest.NewRequest(method, path, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestStatusEndpoint(t *testing.T) {
	router, _ := newTestRouter()
	fetcher.err = nil

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var status StatusResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	assert.Equal(t, "online", status.Status)
	assert.Equal(t, []string{"/products", "/categories"}, status.Endpoints)
}

func TestListProductsLive(t *testing.T) {
	_, f := newTestRouter()
	f.err = nil
	f.products = []domain.Product{{ID: "1", Name: "Cadeira", Price: 100, Rating: 5}}

	rec := doRequest(t, http.MethodGet, "/products")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "s-maxage=60, stale-while-revalidate", rec.Header().Get("Cache-Control"))
	assert.Empty(t, rec.Header().Get(FallbackHeader))

	var products []domain.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &products))
	require.Len(t, products, 1)
	assert.Equal(t, "1", products[0].ID)
}

func TestListCategoriesLive(t *testing.T) {
	_, f := newTestRouter()
	f.err = nil
	f.categories = []domain.Category{{ID: "9", Name: "Mesas"}}

	rec := doRequest(t, http.MethodGet, "/categories")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "s-maxage=300, stale-while-revalidate", rec.Header().Get("Cache-Control"))
}

func TestMissingCredentialIsConfigurationError(t *testing.T) {
	_, f := newTestRouter()
	f.err = upstream.ErrMissingCredential

	rec := doRequest(t, http.MethodGet, "/products")

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var errResp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
	assert.Equal(t, "CONFIGURATION_ERROR", errResp.Error)
	assert.Empty(t, rec.Header().Get(FallbackHeader), "configuration errors never fall back")
}

func TestUpstreamRejectionSurfacesAsUnauthorized(t *testing.T) {
	_, f := newTestRouter()
	f.err = upstream.ErrUnauthorized

	rec := doRequest(t, http.MethodGet, "/products")

	require.Equal(t, http.StatusUnauthorized, rec.Code)

	var errResp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
	assert.Equal(t, "UNAUTHORIZED", errResp.Error)
}

func TestUnavailableUpstreamServesExactMockProducts(t *testing.T) {
	_, f := newTestRouter()
	f.err = upstream.ErrUnavailable

	rec := doRequest(t, http.MethodGet, "/products")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "true", rec.Header().Get(FallbackHeader))
	assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))

	var products []domain.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &products))
	assert.Equal(t, mock.Products(), products)
}

func TestPreflightAnswersOK(t *testing.T) {
	router, _ := newTestRouter()
	handler := WrapCORS(router)

	req := httptest.NewRequest(http.MethodOptions, "/products", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestCrossOriginGetIsAllowed(t *testing.T) {
	router, f := newTestRouter()
	f.err = nil
	f.products = []domain.Product{{ID: "1", Name: "Cadeira", Price: 100}}
	handler := WrapCORS(router)

	req := httptest.NewRequest(http.MethodGet, "/products", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestUnavailableUpstreamServesMockCategories(t *testing.T) {
	_, f := newTestRouter()
	f.err = upstream.ErrUnavailable

	rec := doRequest(t, http.MethodGet, "/categories")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "true", rec.Header().Get(FallbackHeader))

	var categories []domain.Category
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &categories))
	assert.Equal(t, mock.Categories(), categories)
}
