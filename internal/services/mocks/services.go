package mocks

import (
	"context"

	"github.com/katana-forge/storefront/internal/cart"
	"github.com/katana-forge/storefront/internal/models"
	"github.com/stretchr/testify/mock"
)

// CatalogService is a testify mock of service.CatalogService.
type CatalogService struct {
	mock.Mock
}

func (m *CatalogService) ListProducts(ctx context.Context, query string) ([]*models.Product, error) {
	args := m.Called(ctx, query)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*models.Product), args.Error(1)
}

func (m *CatalogService) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	args := m.Called(ctx, id)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *CatalogService) SeedSamples(ctx context.Context) ([]*models.Product, error) {
	args := m.Called(ctx)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*models.Product), args.Error(1)
}

// CheckoutService is a testify mock of service.CheckoutService.
type CheckoutService struct {
	mock.Mock
}

func (m *CheckoutService) Submit(ctx context.Context, userCart *cart.Cart, form *models.ContactForm) (*models.CheckoutResult, error) {
	args := m.Called(ctx, userCart, form)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.CheckoutResult), args.Error(1)
}
