package service

import (
	"context"
	"fmt"

	"github.com/utafrali/storefront/internal/domain"
	"github.com/utafrali/storefront/internal/repository"
)

// CatalogService reads storefront items.
type CatalogService struct {
	repo repository.ItemRepository
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(repo repository.ItemRepository) *CatalogService {
	return &CatalogService{repo: repo}
}

// ListItems returns the whole catalog.
func (s *CatalogService) ListItems(ctx context.Context) ([]domain.Item, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	return items, nil
}

// GetItem returns one catalog item.
func (s *CatalogService) GetItem(ctx context.Context, id int) (*domain.Item, error) {
	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}
	return item, nil
}
