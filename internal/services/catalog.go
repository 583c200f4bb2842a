package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/katana-forge/storefront/internal/cache"
	"github.com/katana-forge/storefront/internal/errors"
	"github.com/katana-forge/storefront/internal/models"
	"github.com/katana-forge/storefront/pkg/catalog"
	"github.com/microcosm-cc/bluemonday"
)

type CatalogService interface {
	ListProducts(ctx context.Context, query string) ([]*models.Product, error)
	GetProduct(ctx context.Context, id string) (*models.Product, error)
	SeedSamples(ctx context.Context) ([]*models.Product, error)
}

type catalogService struct {
	client    catalog.Client
	listCache cache.Cache
	sanitizer *bluemonday.Policy
}

// NewCatalogService builds the catalog service. listCache may be nil, in
// which case every listing goes to the backend.
func NewCatalogService(client catalog.Client, listCache cache.Cache) CatalogService {
	return &catalogService{
		client:    client,
		listCache: listCache,
		sanitizer: bluemonday.StrictPolicy(),
	}
}

// ListProducts returns the catalog, optionally narrowed by a free-text query.
// Only the unfiltered listing is cached; a stale cache entry also keeps the
// last good listing available across transient backend failures.
func (s *catalogService) ListProducts(ctx context.Context, query string) ([]*models.Product, error) {

	if query == "" && s.listCache != nil {

		var cached []*models.Product

		found, err := s.listCache.Get(ctx, cache.CatalogKey, &cached)
		if err != nil {
			slog.Warn("Catalog cache lookup failed", slog.String("error", err.Error()))
		} else if found {
			return cached, nil
		}
	}

	products, err := s.client.FetchProducts(ctx, query)
	if err != nil {
		return nil, err
	}

	if query == "" && s.listCache != nil {
		if err := s.listCache.Set(ctx, cache.CatalogKey, products, 0); err != nil {
			slog.Warn("Catalog cache write failed", slog.String("error", err.Error()))
		}
	}

	return products, nil
}

// GetProduct resolves a single product from the listing. The backend exposes
// no per-product endpoint, so this scans the (possibly cached) listing.
func (s *catalogService) GetProduct(ctx context.Context, id string) (*models.Product, error) {

	products, err := s.ListProducts(ctx, "")
	if err != nil {
		return nil, err
	}

	for _, product := range products {
		if product.ID == id {
			return product, nil
		}
	}

	return nil, errors.NotFoundError("Product not found")
}

// SeedSamples creates the sample products one at a time, awaiting each before
// issuing the next. Individual failures are counted, not fatal, and the
// listing is refreshed after all attempts regardless. A partial result is
// accepted; nothing is rolled back.
func (s *catalogService) SeedSamples(ctx context.Context) ([]*models.Product, error) {

	var failed int

	for _, sample := range sampleProducts {

		req := sample
		req.Description = s.sanitizer.Sanitize(req.Description)

		if _, err := s.client.CreateProduct(ctx, &req); err != nil {
			failed++

			slog.Warn("Sample product creation failed",
				slog.String("name", sample.Name),
				slog.String("error", err.Error()))
		}
	}

	if s.listCache != nil {
		if err := s.listCache.Delete(ctx, cache.CatalogKey); err != nil {
			slog.Warn("Catalog cache invalidation failed", slog.String("error", err.Error()))
		}
	}

	products, err := s.ListProducts(ctx, "")
	if err != nil {
		return nil, err
	}

	if failed > 0 {
		return products, errors.SeedError("Failed to seed products").
			WithDetail(fmt.Sprintf("%d of %d sample creations failed", failed, len(sampleProducts)))
	}

	return products, nil
}
