package repository

import (
	"context"

	"github.com/utafrali/storefront/internal/domain"
)

// OrderRepository persists submitted orders.
type OrderRepository interface {
	// Create stores the customer and its order atomically, filling in both IDs.
	Create(ctx context.Context, customer *domain.Customer, order *domain.Order) error

	// GetByID retrieves an order by its identifier.
	GetByID(ctx context.Context, id int64) (*domain.Order, error)
}

// ItemRepository reads the storefront catalog.
type ItemRepository interface {
	// List returns every catalog item ordered by ID.
	List(ctx context.Context) ([]domain.Item, error)

	// GetByID retrieves one catalog item.
	GetByID(ctx context.Context, id int) (*domain.Item, error)
}
