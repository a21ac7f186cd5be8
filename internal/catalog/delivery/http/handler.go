package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/cors"

	"github.com/lina-design/storefront/internal/catalog/domain"
	"github.com/lina-design/storefront/internal/catalog/mock"
	"github.com/lina-design/storefront/internal/catalog/upstream"
	"github.com/lina-design/storefront/pkg/logger"
)

// FallbackHeader flags responses whose payload is the bundled mock data
// instead of a live upstream result.
const FallbackHeader = "X-Fallback-Data"

// Fetcher is the slice of the upstream client the adapter needs.
type Fetcher interface {
	FetchProducts(ctx context.Context) ([]domain.Product, error)
	FetchCategories(ctx context.Context) ([]domain.Category, error)
}

// ErrorResponse is the adapter's error payload
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// StatusResponse is the liveness payload served at the root
type StatusResponse struct {
	Status    string   `json:"status"`
	Message   string   `json:"message"`
	Endpoints []string `json:"endpoints"`
}

// AdapterHandler serves the catalog proxy endpoints
type AdapterHandler struct {
	fetcher Fetcher

	requestCounter  *prometheus.CounterVec
	requestLatency  *prometheus.HistogramVec
	fallbackCounter *prometheus.CounterVec
}

// NewAdapterHandler creates a new adapter handler
func NewAdapterHandler(fetcher Fetcher) *AdapterHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_adapter_requests_total",
			Help: "Total number of requests to the catalog adapter",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "catalog_adapter_request_duration_seconds",
			Help:    "Duration of catalog adapter requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	fallbackCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_adapter_fallback_total",
			Help: "Responses served from bundled mock data instead of the upstream",
		},
		[]string{"endpoint"},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)
	prometheus.MustRegister(fallbackCounter)

	return &AdapterHandler{
		fetcher:         fetcher,
		requestCounter:  requestCounter,
		requestLatency:  requestLatency,
		fallbackCounter: fallbackCounter,
	}
}

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// metricsMiddleware wraps handlers with Prometheus metrics
func (h *AdapterHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
	}
}

// Status serves the liveness payload
func (h *AdapterHandler) Status(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, StatusResponse{
		Status:    "online",
		Message:   "Lina storefront adapter is running",
		Endpoints: []string{"/products", "/categories"},
	})
}

// ListProducts proxies the upstream product list
func (h *AdapterHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.fetcher.FetchProducts(r.Context())
	if err != nil {
		h.handleFetchError(w, r, "/products", err, func(w http.ResponseWriter) {
			h.writeFallback(w, r, "/products", mock.Products())
		})
		return
	}

	// Live result: cacheable briefly, revalidation while stale allowed
	w.Header().Set("Cache-Control", "s-maxage=60, stale-while-revalidate")
	writeJSON(w, http.StatusOK, products)
}

// ListCategories proxies the upstream category list
func (h *AdapterHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.fetcher.FetchCategories(r.Context())
	if err != nil {
		h.handleFetchError(w, r, "/categories", err, func(w http.ResponseWriter) {
			h.writeFallback(w, r, "/categories", mock.Categories())
		})
		return
	}

	w.Header().Set("Cache-Control", "s-maxage=300, stale-while-revalidate")
	writeJSON(w, http.StatusOK, categories)
}

// handleFetchError applies the error taxonomy: configuration errors and
// credential rejections surface explicitly, everything else degrades to
// the bundled mock data.
func (h *AdapterHandler) handleFetchError(w http.ResponseWriter, r *http.Request, endpoint string, err error, fallback func(http.ResponseWriter)) {
	switch {
	case errors.Is(err, upstream.ErrMissingCredential):
		logger.Error(r.Context()).Err(err).Str("endpoint", endpoint).Msg("API key not configured")
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{
			Error:   "CONFIGURATION_ERROR",
			Message: "LI_API_KEY is not configured",
		})
	case errors.Is(err, upstream.ErrUnauthorized):
		logger.Error(r.Context()).Err(err).Str("endpoint", endpoint).Msg("Upstream rejected API key")
		writeJSON(w, http.StatusUnauthorized, ErrorResponse{
			Error:   "UNAUTHORIZED",
			Message: "the upstream rejected the configured API key",
		})
	default:
		logger.Warn(r.Context()).Err(err).Str("endpoint", endpoint).Msg("Upstream unavailable, serving mock data")
		fallback(w)
	}
}

func (h *AdapterHandler) writeFallback(w http.ResponseWriter, r *http.Request, endpoint string, payload any) {
	h.fallbackCounter.WithLabelValues(endpoint).Inc()
	w.Header().Set(FallbackHeader, "true")
	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, http.StatusOK, payload)
}

// RegisterRoutes registers all adapter routes
func (h *AdapterHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/", h.metricsMiddleware("/", h.Status)).Methods("GET")
	router.HandleFunc("/products", h.metricsMiddleware("/products", h.ListProducts)).Methods("GET")
	router.HandleFunc("/categories", h.metricsMiddleware("/categories", h.ListCategories)).Methods("GET")
}

// WrapCORS applies the adapter's cross-origin policy. The storefront
// runs on devices and local hosts, so GET is open to any origin and
// preflights answer 200.
func WrapCORS(next http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins:       []string{"*"},
		AllowedMethods:       []string{"GET", "OPTIONS"},
		AllowedHeaders:       []string{"*"},
		OptionsSuccessStatus: http.StatusOK,
	})
	return c.Handler(next)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to encode response")
	}
}
