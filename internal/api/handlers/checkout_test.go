package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/katana-forge/storefront/internal/api/handlers"
	"github.com/katana-forge/storefront/internal/cart"
	appErrors "github.com/katana-forge/storefront/internal/errors"
	"github.com/katana-forge/storefront/internal/models"
	"github.com/katana-forge/storefront/internal/services/mocks"
	"github.com/katana-forge/storefront/internal/testutils"
	"github.com/katana-forge/storefront/internal/utils/response"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func formBody(t *testing.T, form models.ContactForm) []byte {
	t.Helper()

	body, err := json.Marshal(form)
	require.NoError(t, err)

	return body
}

func TestCheckout(t *testing.T) {
	form := models.ContactForm{
		Name:    "Miyamoto Musashi",
		Email:   "musashi@example.com",
		Address: "1 Dojo Lane, Kyoto",
	}

	t.Run("Success - Result Returned", func(t *testing.T) {
		// Arrange
		registry := cart.NewRegistry()
		mockCheckout := new(mocks.CheckoutService)
		handler := handlers.NewCheckoutHandler(registry, mockCheckout)

		mockCheckout.On("Submit", mock.Anything, registry.Get("s1"), &form).
			Return(&models.CheckoutResult{OK: true, OrderID: "X1", Total: 45}, nil).Once()

		rr := httptest.NewRecorder()
		req := testutils.CreateTestRequest(http.MethodPost, "/api/v1/checkout", bytes.NewReader(formBody(t, form)), "s1", nil)

		// Act
		handler.Checkout().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)

		var envelope struct {
			Success bool                  `json:"success"`
			Data    models.CheckoutResult `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &envelope))
		assert.True(t, envelope.Success)
		assert.Equal(t, "X1", envelope.Data.OrderID)
		assert.InDelta(t, 45.0, envelope.Data.Total, 1e-9)
		mockCheckout.AssertExpectations(t)
	})

	t.Run("Failure - Empty Cart Maps To 400", func(t *testing.T) {
		registry := cart.NewRegistry()
		mockCheckout := new(mocks.CheckoutService)
		handler := handlers.NewCheckoutHandler(registry, mockCheckout)

		mockCheckout.On("Submit", mock.Anything, mock.Anything, mock.Anything).
			Return(nil, appErrors.EmptyCartError("Your cart is empty")).Once()

		rr := httptest.NewRecorder()
		req := testutils.CreateTestRequest(http.MethodPost, "/api/v1/checkout", bytes.NewReader(formBody(t, form)), "s1", nil)

		handler.Checkout().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Failure - Pending Checkout Maps To 409", func(t *testing.T) {
		registry := cart.NewRegistry()
		mockCheckout := new(mocks.CheckoutService)
		handler := handlers.NewCheckoutHandler(registry, mockCheckout)

		mockCheckout.On("Submit", mock.Anything, mock.Anything, mock.Anything).
			Return(nil, appErrors.CheckoutPendingError("A checkout is already in progress")).Once()

		rr := httptest.NewRecorder()
		req := testutils.CreateTestRequest(http.MethodPost, "/api/v1/checkout", bytes.NewReader(formBody(t, form)), "s1", nil)

		handler.Checkout().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusConflict, rr.Code)
	})

	t.Run("Failure - Upstream Rejection Carries Detail Message", func(t *testing.T) {
		registry := cart.NewRegistry()
		mockCheckout := new(mocks.CheckoutService)
		handler := handlers.NewCheckoutHandler(registry, mockCheckout)

		mockCheckout.On("Submit", mock.Anything, mock.Anything, mock.Anything).
			Return(nil, appErrors.CheckoutError("out of stock")).Once()

		rr := httptest.NewRecorder()
		req := testutils.CreateTestRequest(http.MethodPost, "/api/v1/checkout", bytes.NewReader(formBody(t, form)), "s1", nil)

		handler.Checkout().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadGateway, rr.Code)

		var envelope struct {
			Success bool                    `json:"success"`
			Error   *response.ErrorResponse `json:"error"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &envelope))
		require.NotNil(t, envelope.Error)
		assert.Equal(t, "out of stock", envelope.Error.Message)
	})

	t.Run("Failure - Invalid Email Rejected Before Submit", func(t *testing.T) {
		registry := cart.NewRegistry()
		mockCheckout := new(mocks.CheckoutService)
		handler := handlers.NewCheckoutHandler(registry, mockCheckout)

		badForm := form
		badForm.Email = "not-an-email"

		rr := httptest.NewRecorder()
		req := testutils.CreateTestRequest(http.MethodPost, "/api/v1/checkout", bytes.NewReader(formBody(t, badForm)), "s1", nil)

		handler.Checkout().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockCheckout.AssertNotCalled(t, "Submit", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Failure - Missing Fields Rejected", func(t *testing.T) {
		registry := cart.NewRegistry()
		mockCheckout := new(mocks.CheckoutService)
		handler := handlers.NewCheckoutHandler(registry, mockCheckout)

		rr := httptest.NewRecorder()
		req := testutils.CreateTestRequest(http.MethodPost, "/api/v1/checkout", bytes.NewReader([]byte(`{"name":"x"}`)), "s1", nil)

		handler.Checkout().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockCheckout.AssertNotCalled(t, "Submit", mock.Anything, mock.Anything, mock.Anything)
	})
}
