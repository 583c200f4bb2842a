package service_test

import (
	"errors"
	"testing"

	"github.com/katana-forge/storefront/internal/cache"
	appErrors "github.com/katana-forge/storefront/internal/errors"
	"github.com/katana-forge/storefront/internal/models"
	service "github.com/katana-forge/storefront/internal/services"
	"github.com/katana-forge/storefront/internal/services/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestListProducts(t *testing.T) {
	ctx := t.Context()
	listing := []*models.Product{
		{ID: "p1", Name: "Hattori Classic", Price: 499},
		{ID: "p2", Name: "Kage Shadow", Price: 629},
	}

	t.Run("Success - No Cache Configured", func(t *testing.T) {
		// Arrange
		mockClient := new(mocks.CatalogClient)
		catalogService := service.NewCatalogService(mockClient, nil)

		mockClient.On("FetchProducts", ctx, "").Return(listing, nil).Once()

		// Act
		products, err := catalogService.ListProducts(ctx, "")

		// Assert
		require.NoError(t, err)
		assert.Equal(t, listing, products)
		mockClient.AssertExpectations(t)
	})

	t.Run("Success - Cache Hit Skips Backend", func(t *testing.T) {
		mockClient := new(mocks.CatalogClient)
		mockCache := new(mocks.Cache)
		catalogService := service.NewCatalogService(mockClient, mockCache)

		mockCache.On("Get", ctx, cache.CatalogKey, mock.Anything).
			Run(func(args mock.Arguments) {
				dest := args.Get(2).(*[]*models.Product)
				*dest = listing
			}).
			Return(true, nil).Once()

		products, err := catalogService.ListProducts(ctx, "")

		require.NoError(t, err)
		assert.Equal(t, listing, products)
		mockClient.AssertNotCalled(t, "FetchProducts", mock.Anything, mock.Anything)
		mockCache.AssertExpectations(t)
	})

	t.Run("Success - Cache Miss Populates Cache", func(t *testing.T) {
		mockClient := new(mocks.CatalogClient)
		mockCache := new(mocks.Cache)
		catalogService := service.NewCatalogService(mockClient, mockCache)

		mockCache.On("Get", ctx, cache.CatalogKey, mock.Anything).Return(false, nil).Once()
		mockClient.On("FetchProducts", ctx, "").Return(listing, nil).Once()
		mockCache.On("Set", ctx, cache.CatalogKey, listing, mock.Anything).Return(nil).Once()

		products, err := catalogService.ListProducts(ctx, "")

		require.NoError(t, err)
		assert.Equal(t, listing, products)
		mockClient.AssertExpectations(t)
		mockCache.AssertExpectations(t)
	})

	t.Run("Success - Filtered Query Bypasses Cache", func(t *testing.T) {
		mockClient := new(mocks.CatalogClient)
		mockCache := new(mocks.Cache)
		catalogService := service.NewCatalogService(mockClient, mockCache)

		mockClient.On("FetchProducts", ctx, "damascus").Return(listing[1:], nil).Once()

		products, err := catalogService.ListProducts(ctx, "damascus")

		require.NoError(t, err)
		assert.Len(t, products, 1)
		mockCache.AssertNotCalled(t, "Get", mock.Anything, mock.Anything, mock.Anything)
		mockCache.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Failure - Fetch Error Propagates", func(t *testing.T) {
		mockClient := new(mocks.CatalogClient)
		catalogService := service.NewCatalogService(mockClient, nil)

		mockClient.On("FetchProducts", ctx, "").
			Return(nil, appErrors.FetchError("Failed to load products")).Once()

		products, err := catalogService.ListProducts(ctx, "")

		require.Error(t, err)
		assert.Nil(t, products)
		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeFetch, appErr.Code)
	})
}

func TestGetProduct(t *testing.T) {
	ctx := t.Context()
	listing := []*models.Product{
		{ID: "p1", Name: "Hattori Classic", Price: 499},
		{ID: "p2", Name: "Kage Shadow", Price: 629},
	}

	t.Run("Success - Found In Listing", func(t *testing.T) {
		mockClient := new(mocks.CatalogClient)
		catalogService := service.NewCatalogService(mockClient, nil)

		mockClient.On("FetchProducts", ctx, "").Return(listing, nil).Once()

		product, err := catalogService.GetProduct(ctx, "p2")

		require.NoError(t, err)
		assert.Equal(t, "Kage Shadow", product.Name)
	})

	t.Run("Failure - Unknown ID", func(t *testing.T) {
		mockClient := new(mocks.CatalogClient)
		catalogService := service.NewCatalogService(mockClient, nil)

		mockClient.On("FetchProducts", ctx, "").Return(listing, nil).Once()

		product, err := catalogService.GetProduct(ctx, "missing")

		require.Error(t, err)
		assert.Nil(t, product)
		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeNotFound, appErr.Code)
	})
}

func TestSeedSamples(t *testing.T) {
	ctx := t.Context()
	refreshed := []*models.Product{
		{ID: "p1", Name: "Hattori Classic"},
		{ID: "p2", Name: "Kage Shadow"},
		{ID: "p3", Name: "Tsuru Crane"},
	}

	t.Run("Success - All Samples Created And Listing Refreshed", func(t *testing.T) {
		// Arrange
		mockClient := new(mocks.CatalogClient)
		catalogService := service.NewCatalogService(mockClient, nil)

		mockClient.On("CreateProduct", ctx, mock.AnythingOfType("*models.CreateProductRequest")).
			Return(&models.Product{ID: "created"}, nil).Times(3)
		mockClient.On("FetchProducts", ctx, "").Return(refreshed, nil).Once()

		// Act
		products, err := catalogService.SeedSamples(ctx)

		// Assert
		require.NoError(t, err)
		assert.Len(t, products, 3)
		mockClient.AssertExpectations(t)
	})

	t.Run("Partial Failure - Refreshes Anyway And Reports SeedError", func(t *testing.T) {
		mockClient := new(mocks.CatalogClient)
		catalogService := service.NewCatalogService(mockClient, nil)

		mockClient.On("CreateProduct", ctx, mock.AnythingOfType("*models.CreateProductRequest")).
			Return(nil, errors.New("backend down")).Once()
		mockClient.On("CreateProduct", ctx, mock.AnythingOfType("*models.CreateProductRequest")).
			Return(&models.Product{ID: "created"}, nil).Times(2)
		mockClient.On("FetchProducts", ctx, "").Return(refreshed, nil).Once()

		products, err := catalogService.SeedSamples(ctx)

		require.Error(t, err)
		assert.Len(t, products, 3, "partial failure still returns the refreshed listing")
		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeSeed, appErr.Code)
		mockClient.AssertExpectations(t)
	})

	t.Run("Success - Cache Invalidated Before Refresh", func(t *testing.T) {
		mockClient := new(mocks.CatalogClient)
		mockCache := new(mocks.Cache)
		catalogService := service.NewCatalogService(mockClient, mockCache)

		mockClient.On("CreateProduct", ctx, mock.AnythingOfType("*models.CreateProductRequest")).
			Return(&models.Product{ID: "created"}, nil).Times(3)
		mockCache.On("Delete", ctx, cache.CatalogKey).Return(nil).Once()
		mockCache.On("Get", ctx, cache.CatalogKey, mock.Anything).Return(false, nil).Once()
		mockClient.On("FetchProducts", ctx, "").Return(refreshed, nil).Once()
		mockCache.On("Set", ctx, cache.CatalogKey, refreshed, mock.Anything).Return(nil).Once()

		_, err := catalogService.SeedSamples(ctx)

		require.NoError(t, err)
		mockCache.AssertExpectations(t)
	})

	t.Run("Failure - Refresh Fetch Fails", func(t *testing.T) {
		mockClient := new(mocks.CatalogClient)
		catalogService := service.NewCatalogService(mockClient, nil)

		mockClient.On("CreateProduct", ctx, mock.AnythingOfType("*models.CreateProductRequest")).
			Return(&models.Product{ID: "created"}, nil).Times(3)
		mockClient.On("FetchProducts", ctx, "").
			Return(nil, appErrors.FetchError("Failed to load products")).Once()

		products, err := catalogService.SeedSamples(ctx)

		require.Error(t, err)
		assert.Nil(t, products)
	})
}
