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

const itemColumns = `id, title_name, COALESCE(description, ''), COALESCE(image, ''), COALESCE(itemstatus, ''),
		COALESCE(title, ''), COALESCE(qty_and_amt, ''), COALESCE(container_qty, '')`

// ItemRepository implements repository.ItemRepository using PostgreSQL.
type ItemRepository struct {
	pool database.DBTX
}

// NewItemRepository creates a new PostgreSQL-backed catalog repository.
func NewItemRepository(pool database.DBTX) *ItemRepository {
	return &ItemRepository{pool: pool}
}

func scanItem(row pgx.Row, it *domain.Item) error {
	return row.Scan(
		&it.ID,
		&it.TitleName,
		&it.Description,
		&it.Image,
		&it.ItemStatus,
		&it.Title,
		&it.QtyAndAmt,
		&it.ContainerQty,
	)
}

// List returns all catalog items ordered by ID.
func (r *ItemRepository) List(ctx context.Context) ([]domain.Item, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+itemColumns+` FROM items ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	var items []domain.Item
	for rows.Next() {
		var it domain.Item
		if err := scanItem(rows, &it); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate items: %w", err)
	}
	return items, nil
}

// GetByID retrieves a catalog item by ID.
func (r *ItemRepository) GetByID(ctx context.Context, id int) (*domain.Item, error) {
	var it domain.Item
	err := scanItem(r.pool.QueryRow(ctx, `SELECT `+itemColumns+` FROM items WHERE id = $1`, id), &it)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFound("item", strconv.Itoa(id))
		}
		return nil, fmt.Errorf("get item by id: %w", err)
	}
	return &it, nil
}

// Upsert inserts it, or updates the row with the same title_name, and sets
// it.ID to the stored row's ID.
func (r *ItemRepository) Upsert(ctx context.Context, it *domain.Item) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO items (title_name, description, image, itemstatus, title, qty_and_amt, container_qty)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 ON CONFLICT (title_name) DO UPDATE SET
		     description = EXCLUDED.description,
		     image = EXCLUDED.image,
		     itemstatus = EXCLUDED.itemstatus,
		     title = EXCLUDED.title,
		     qty_and_amt = EXCLUDED.qty_and_amt,
		     container_qty = EXCLUDED.container_qty
		 RETURNING id`,
		it.TitleName, it.Description, it.Image, it.ItemStatus, it.Title, it.QtyAndAmt, it.ContainerQty,
	).Scan(&it.ID)
	if err != nil {
		return fmt.Errorf("upsert item %q: %w", it.TitleName, err)
	}
	return nil
}
