package handlers

import (
	"log/slog"
	"net/http"

	"github.com/katana-forge/storefront/internal/api/middleware"
	"github.com/katana-forge/storefront/internal/errors"
	"github.com/katana-forge/storefront/internal/models"
	service "github.com/katana-forge/storefront/internal/services"
	"github.com/katana-forge/storefront/internal/utils/response"
)

type CatalogHandler struct {
	catalogService service.CatalogService
}

func NewCatalogHandler(catalogService service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

type listingResponse struct {
	Items  []*models.Product `json:"items"`
	Notice string            `json:"notice,omitempty"`
}

func (h *CatalogHandler) ListProducts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		query := r.URL.Query().Get("q")

		products, err := h.catalogService.ListProducts(r.Context(), query)
		if err != nil {
			logger.Error("Product listing failed", slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		logger.Info("Product listing served",
			slog.String("query", query),
			slog.Int("count", len(products)))

		response.Success(w, http.StatusOK, listingResponse{Items: products})

	}
}

// SeedProducts loads the sample catalog. Partial seed failure still returns
// the refreshed listing, with a notice instead of an error.
func (h *CatalogHandler) SeedProducts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		products, err := h.catalogService.SeedSamples(r.Context())
		if err != nil {

			if appErr, ok := errors.IsAppError(err); ok && appErr.Code == errors.ErrCodeSeed && products != nil {
				logger.Warn("Sample seeding partially failed", slog.String("detail", appErr.Detail))
				response.Success(w, http.StatusOK, listingResponse{
					Items:  products,
					Notice: appErr.Message,
				})

				return
			}

			logger.Error("Sample seeding failed", slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		logger.Info("Sample products seeded", slog.Int("count", len(products)))

		response.Success(w, http.StatusOK, listingResponse{Items: products})

	}
}
