package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/katana-forge/storefront/internal/api/middleware"
	"github.com/katana-forge/storefront/internal/cart"
	"github.com/katana-forge/storefront/internal/models"
	service "github.com/katana-forge/storefront/internal/services"
	"github.com/katana-forge/storefront/internal/utils"
	"github.com/katana-forge/storefront/internal/utils/response"
)

type CheckoutHandler struct {
	carts           *cart.Registry
	checkoutService service.CheckoutService
	validator       *validator.Validate
}

func NewCheckoutHandler(carts *cart.Registry, checkoutService service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{
		carts:           carts,
		checkoutService: checkoutService,
		validator:       validator.New(),
	}
}

func (h *CheckoutHandler) Checkout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var form models.ContactForm
		if !utils.ParseAndValidate(r, w, &form, h.validator) {
			return
		}

		userCart := h.carts.Get(middleware.SessionFromContext(r.Context()))

		result, err := h.checkoutService.Submit(r.Context(), userCart, &form)
		if err != nil {
			logger.Warn("Checkout failed", slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		logger.Info("Order placed",
			slog.String("order_id", result.OrderID),
			slog.Float64("total", result.Total))

		response.Success(w, http.StatusOK, result)

	}
}
