package service

import (
	"context"
	"log/slog"

	"github.com/katana-forge/storefront/internal/cart"
	"github.com/katana-forge/storefront/internal/errors"
	"github.com/katana-forge/storefront/internal/models"
	"github.com/katana-forge/storefront/pkg/catalog"
	"github.com/katana-forge/storefront/pkg/sendgrid"
	"github.com/microcosm-cc/bluemonday"
)

type CheckoutService interface {
	Submit(ctx context.Context, userCart *cart.Cart, form *models.ContactForm) (*models.CheckoutResult, error)
}

type checkoutService struct {
	client    catalog.Client
	email     sendgrid.EmailService
	sanitizer *bluemonday.Policy
}

// NewCheckoutService builds the checkout submitter. email may be nil, in
// which case no confirmation is sent.
func NewCheckoutService(client catalog.Client, email sendgrid.EmailService) CheckoutService {
	return &checkoutService{
		client:    client,
		email:     email,
		sanitizer: bluemonday.StrictPolicy(),
	}
}

// Submit turns the cart plus contact form into one checkout request.
//
// An empty cart is rejected locally, before any network call. At most one
// submission is in flight per cart; a re-entrant submit is rejected. On
// success the cart is cleared; on failure it is left untouched so the user
// can retry.
func (s *checkoutService) Submit(ctx context.Context, userCart *cart.Cart, form *models.ContactForm) (*models.CheckoutResult, error) {

	entries := userCart.Items()
	if len(entries) == 0 {
		return nil, errors.EmptyCartError("Your cart is empty")
	}

	if !userCart.BeginCheckout() {
		return nil, errors.CheckoutPendingError("A checkout is already in progress")
	}
	defer userCart.EndCheckout()

	items := make([]models.CheckoutItem, 0, len(entries))
	for _, entry := range entries {
		items = append(items, models.CheckoutItem{
			ProductID: entry.Product.ID,
			Quantity:  entry.Quantity,
		})
	}

	req := &models.CheckoutRequest{
		CustomerName:  s.sanitizer.Sanitize(form.Name),
		CustomerEmail: form.Email,
		Address:       s.sanitizer.Sanitize(form.Address),
		Items:         items,
	}

	resp, err := s.client.SubmitCheckout(ctx, req)
	if err != nil {
		// cart preserved for retry
		return nil, err
	}

	userCart.Clear()

	if s.email != nil {
		if err := s.email.SendOrderConfirmation(ctx, req.CustomerEmail, req.CustomerName, resp.OrderID, resp.Total); err != nil {
			slog.Warn("Order confirmation email failed",
				slog.String("order_id", resp.OrderID),
				slog.String("error", err.Error()))
		}
	}

	return &models.CheckoutResult{
		OK:      true,
		OrderID: resp.OrderID,
		Total:   resp.Total,
	}, nil
}
