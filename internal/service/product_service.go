package service

import (
	"context"
	"path"
	"time"

	"superdaily/internal/cache"
	"superdaily/internal/metrics"
	"superdaily/internal/model"
	"superdaily/internal/repository"
)

const featuredProductsCacheKey = "products:featured"

// ProductService exposes product read operations.
type ProductService interface {
	ListFeatured(ctx context.Context) ([]model.Product, error)
}

type productService struct {
	repo     repository.ProductRepository
	cache    cache.Store
	cacheTTL time.Duration
	imageURL string
}

// NewProductService builds a ProductService. Image columns are served as
// imageBaseURL followed by the stored file name. A cacheTTL of zero disables
// caching.
func NewProductService(repo repository.ProductRepository, store cache.Store, cacheTTL time.Duration, imageBaseURL string) ProductService {
	return &productService{
		repo:     repo,
		cache:    store,
		cacheTTL: cacheTTL,
		imageURL: imageBaseURL,
	}
}

// ListFeatured returns every product. There is no featured filter on the
// underlying query.
func (s *productService) ListFeatured(ctx context.Context) ([]model.Product, error) {
	if s.cacheTTL > 0 && s.cache != nil {
		var cached []model.Product
		if s.cache.GetJSON(ctx, featuredProductsCacheKey, &cached) && cached != nil {
			metrics.IncProductList("cache")
			return cached, nil
		}
	}

	products, err := s.repo.ListAll(ctx)
	if err != nil {
		metrics.IncProductList("failed")
		return nil, err
	}

	for _, p := range products {
		s.rewriteImages(p)
	}

	if s.cacheTTL > 0 && s.cache != nil {
		s.cache.SetJSON(ctx, featuredProductsCacheKey, products, s.cacheTTL)
	}
	metrics.IncProductList("db")
	return products, nil
}

func (s *productService) rewriteImages(p model.Product) {
	for _, col := range model.ProductImageColumns {
		v, ok := p.Get(col)
		if !ok || v == nil || *v == "" || *v == "0" {
			continue
		}
		p.Set(col, s.imageURL+path.Base(*v))
	}
}
