package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/katana-forge/storefront/internal/api/middleware"
	"github.com/katana-forge/storefront/internal/cart"
	"github.com/katana-forge/storefront/internal/errors"
	"github.com/katana-forge/storefront/internal/models"
	service "github.com/katana-forge/storefront/internal/services"
	"github.com/katana-forge/storefront/internal/utils"
	"github.com/katana-forge/storefront/internal/utils/response"
)

type CartHandler struct {
	carts          *cart.Registry
	catalogService service.CatalogService
	validator      *validator.Validate
}

func NewCartHandler(carts *cart.Registry, catalogService service.CatalogService) *CartHandler {
	return &CartHandler{
		carts:          carts,
		catalogService: catalogService,
		validator:      validator.New(),
	}
}

func (h *CartHandler) sessionCart(r *http.Request) *cart.Cart {
	return h.carts.Get(middleware.SessionFromContext(r.Context()))
}

func (h *CartHandler) GetCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		response.Success(w, http.StatusOK, h.sessionCart(r).View())

	}
}

// AddItem resolves the product snapshot from the catalog and merges it into
// the session cart. The snapshot keeps the price as it was at add time.
func (h *CartHandler) AddItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.AddItemRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		product, err := h.catalogService.GetProduct(r.Context(), req.ProductID)
		if err != nil {
			logger.Warn("Add to cart failed", slog.String("product_id", req.ProductID), slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		userCart := h.sessionCart(r)

		if err := userCart.Add(*product, req.Quantity); err != nil {
			response.Error(w, err)

			return
		}

		logger.Info("Item added to cart",
			slog.String("product_id", req.ProductID),
			slog.Int("quantity", req.Quantity))

		response.Success(w, http.StatusOK, userCart.View())

	}
}

// RemoveItem deletes the entry for the path id. Removing an absent id
// succeeds and returns the unchanged cart.
func (h *CartHandler) RemoveItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		productID := r.PathValue("id")

		if productID == "" {
			response.Error(w, errors.AddValidationError("id", "must not be empty"))

			return
		}

		userCart := h.sessionCart(r)
		userCart.Remove(productID)

		response.Success(w, http.StatusOK, userCart.View())

	}
}
