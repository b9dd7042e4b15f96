package service

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/dkotelnikov/shop-backend/internal/models"
	"github.com/dkotelnikov/shop-backend/internal/repo"
)

const (
	newCollectionSize = 8
	popularSize       = 4
)

type CatalogService struct {
	Repo *repo.GormRepo
}

func (s *CatalogService) AddProduct(ctx context.Context, p *models.Product) error {
	if p.Name == "" || p.Category == "" {
		return fmt.Errorf("name and category are required: %w", ErrValidation)
	}

	p.Rating = rand.Intn(5) + 1
	p.RatingCount = rand.Intn(9000) + 1000
	p.Available = true

	return s.Repo.CreateProduct(ctx, p)
}

func (s *CatalogService) RemoveProduct(ctx context.Context, id uint) error {
	return s.Repo.DeleteProduct(ctx, id)
}

func (s *CatalogService) AllProducts(ctx context.Context) ([]models.Product, error) {
	return s.Repo.ListProducts(ctx)
}

// NewCollections skips the very first product, then takes the last eight of
// what remains. The storefront has always sliced the list this way.
func (s *CatalogService) NewCollections(ctx context.Context) ([]models.Product, error) {
	items, err := s.Repo.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	if len(items) <= 1 {
		return []models.Product{}, nil
	}
	rest := items[1:]
	if len(rest) > newCollectionSize {
		rest = rest[len(rest)-newCollectionSize:]
	}
	return rest, nil
}

// PopularIn returns the first four products of the category in store order.
func (s *CatalogService) PopularIn(ctx context.Context, category string) ([]models.Product, error) {
	items, err := s.Repo.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	popular := make([]models.Product, 0, popularSize)
	for _, p := range items {
		if p.Category != category {
			continue
		}
		popular = append(popular, p)
		if len(popular) == popularSize {
			break
		}
	}
	return popular, nil
}
