package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/katana-forge/storefront/internal/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// gatherPathLabels collects the path label values recorded for the given
// method on the request counter.
func gatherPathLabels(t *testing.T, method string) []string {
	t.Helper()

	families, err := prometheus.DefaultGatherer.Gather()
	require.NoError(t, err)

	var paths []string

	for _, family := range families {
		if family.GetName() != "storefront_http_requests_total" {
			continue
		}

		for _, metric := range family.GetMetric() {
			var methodMatches bool
			var path string

			for _, label := range metric.GetLabel() {
				switch label.GetName() {
				case "method":
					methodMatches = label.GetValue() == method
				case "path":
					path = label.GetValue()
				}
			}

			if methodMatches {
				paths = append(paths, path)
			}
		}
	}

	return paths
}

func TestMiddleware(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("DELETE /api/v1/cart/items/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("GET /api/v1/products", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	handler := metrics.Middleware(mux)

	t.Run("Parameterized Route Records Single Path Label", func(t *testing.T) {
		// Arrange + Act
		for _, id := range []string{"prod-111", "prod-222", "prod-333"} {
			rr := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodDelete, "/api/v1/cart/items/"+id, nil)

			handler.ServeHTTP(rr, req)
			require.Equal(t, http.StatusOK, rr.Code)
		}

		// Assert
		paths := gatherPathLabels(t, http.MethodDelete)
		assert.Contains(t, paths, "/api/v1/cart/items/{id}")
		assert.NotContains(t, paths, "/api/v1/cart/items/prod-111")
		assert.NotContains(t, paths, "/api/v1/cart/items/prod-222")
		assert.NotContains(t, paths, "/api/v1/cart/items/prod-333")
	})

	t.Run("Static Route Records Raw Path", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/products", nil)

		handler.ServeHTTP(rr, req)
		require.Equal(t, http.StatusOK, rr.Code)

		paths := gatherPathLabels(t, http.MethodGet)
		assert.Contains(t, paths, "/api/v1/products")
	})
}
