package mocks

import (
	"context"

	"github.com/katana-forge/storefront/internal/models"
	"github.com/stretchr/testify/mock"
)

// CatalogClient is a testify mock of catalog.Client.
type CatalogClient struct {
	mock.Mock
}

func (m *CatalogClient) FetchProducts(ctx context.Context, query string) ([]*models.Product, error) {
	args := m.Called(ctx, query)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*models.Product), args.Error(1)
}

func (m *CatalogClient) CreateProduct(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error) {
	args := m.Called(ctx, req)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *CatalogClient) SubmitCheckout(ctx context.Context, req *models.CheckoutRequest) (*models.CheckoutResponse, error) {
	args := m.Called(ctx, req)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.CheckoutResponse), args.Error(1)
}
