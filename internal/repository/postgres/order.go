package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"

	"github.com/utafrali/storefront/internal/domain"
	"github.com/utafrali/storefront/pkg/database"
	apperrors "github.com/utafrali/storefront/pkg/errors"
)

// OrderRepository implements repository.OrderRepository using PostgreSQL.
type OrderRepository struct {
	pool database.DBTX
}

// NewOrderRepository creates a new PostgreSQL-backed order repository.
func NewOrderRepository(pool database.DBTX) *OrderRepository {
	return &OrderRepository{pool: pool}
}

// Create inserts the customer and then its order within one transaction.
func (r *OrderRepository) Create(ctx context.Context, c *domain.Customer, o *domain.Order) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	customerQuery := `
		INSERT INTO customers (name, address, city, state, zipstandard, phone, client, email, ordereditems, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`

	err = tx.QueryRow(ctx, customerQuery,
		c.Name,
		c.Address,
		c.City,
		c.State,
		c.ZipStandard,
		c.Phone,
		c.Client,
		c.Email,
		c.OrderedItems,
		c.CreatedAt,
	).Scan(&c.ID)
	if err != nil {
		return fmt.Errorf("insert customer: %w", err)
	}

	o.CustomerID = c.ID
	orderQuery := `
		INSERT INTO orders (customer_id, name, email, client, address, ordereditems, order_notes, order_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`

	err = tx.QueryRow(ctx, orderQuery,
		o.CustomerID,
		o.Name,
		o.Email,
		o.Client,
		o.Address,
		o.OrderedItems,
		o.OrderNotes,
		o.OrderDate,
	).Scan(&o.ID)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// GetByID retrieves an order by its ID.
func (r *OrderRepository) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	query := `
		SELECT id, customer_id, name, email, client, address, ordereditems, order_notes, order_date
		FROM orders
		WHERE id = $1`

	var o domain.Order
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&o.ID,
		&o.CustomerID,
		&o.Name,
		&o.Email,
		&o.Client,
		&o.Address,
		&o.OrderedItems,
		&o.OrderNotes,
		&o.OrderDate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFound("order", strconv.FormatInt(id, 10))
		}
		return nil, fmt.Errorf("get order by id: %w", err)
	}
	return &o, nil
}
