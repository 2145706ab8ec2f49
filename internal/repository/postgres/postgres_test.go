package postgres

import (
	"context"
	"errors"
	"io/fs"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/utafrali/storefront/internal/domain"
	"github.com/utafrali/storefront/pkg/database"
	apperrors "github.com/utafrali/storefront/pkg/errors"
)

// --- Test Helpers ---

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := database.NewMockPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock
}

func anyArgs(n int) []any {
	args := make([]any, n)
	for i := range args {
		args[i] = pgxmock.AnyArg()
	}
	return args
}

func sampleRecords() (*domain.Customer, *domain.Order) {
	now := time.Now().UTC().Truncate(time.Microsecond)
	req := domain.OrderRequest{
		Customer: domain.CustomerInfo{
			Name: "Ada", Email: "ada@example.com", Address: "1 Main", City: "Town", State: "TX", ZipStandard: "75001",
			Phone: "555", Client: "Acme", OrderNotes: "dock 4",
		},
		Items: []domain.OrderItem{{Title: "Widget", Quantity: 3, ContainerQty: "Default"}},
	}
	c := domain.NewCustomer(req, now)
	return c, domain.NewOrder(c, req, now)
}

// --- Migrations ---

func TestMigrations_ListsUpFiles(t *testing.T) {
	entries, err := fs.ReadDir(Migrations(), ".")
	require.NoError(t, err)

	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.Equal(t, []string{"001_create_customers.up.sql", "002_create_orders.up.sql", "003_create_items.up.sql"}, names)
}

// --- OrderRepository ---

func TestOrderRepository_Create_Success(t *testing.T) {
	mock := newMock(t)
	repo := NewOrderRepository(mock)
	c, o := sampleRecords()

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO customers").
		WithArgs(c.Name, c.Address, c.City, c.State, c.ZipStandard, c.Phone, c.Client, c.Email, c.OrderedItems, c.CreatedAt).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(7)))
	mock.ExpectQuery("INSERT INTO orders").
		WithArgs(int64(7), o.Name, o.Email, o.Client, "1 Main, Town, TX, 75001", "Widget (Qty: 3)", "dock 4", o.OrderDate).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(11)))
	mock.ExpectCommit()

	require.NoError(t, repo.Create(context.Background(), c, o))
	assert.Equal(t, int64(7), c.ID)
	assert.Equal(t, int64(7), o.CustomerID)
	assert.Equal(t, int64(11), o.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepository_Create_OrderInsertFailsRollsBack(t *testing.T) {
	mock := newMock(t)
	repo := NewOrderRepository(mock)
	c, o := sampleRecords()

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO customers").
		WithArgs(anyArgs(10)...).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(7)))
	mock.ExpectQuery("INSERT INTO orders").
		WithArgs(anyArgs(8)...).
		WillReturnError(errors.New("fk violation"))
	mock.ExpectRollback()

	err := repo.Create(context.Background(), c, o)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "insert order")
	assert.ErrorContains(t, err, "fk violation")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepository_Create_BeginFails(t *testing.T) {
	mock := newMock(t)
	repo := NewOrderRepository(mock)
	c, o := sampleRecords()

	mock.ExpectBegin().WillReturnError(errors.New("conn refused"))

	err := repo.Create(context.Background(), c, o)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "begin transaction")
}

func TestOrderRepository_GetByID_Success(t *testing.T) {
	mock := newMock(t)
	repo := NewOrderRepository(mock)
	now := time.Now().UTC()

	mock.ExpectQuery("SELECT (.+) FROM orders").WithArgs(int64(11)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "customer_id", "name", "email", "client", "address", "ordereditems", "order_notes", "order_date"}).
			AddRow(int64(11), int64(7), "Ada", "ada@example.com", "Acme", "addr", "Widget (Qty: 3)", "", now))

	o, err := repo.GetByID(context.Background(), 11)
	require.NoError(t, err)
	assert.Equal(t, int64(7), o.CustomerID)
	assert.Equal(t, "Widget (Qty: 3)", o.OrderedItems)
	assert.Equal(t, now, o.OrderDate)
}

func TestOrderRepository_GetByID_NotFound(t *testing.T) {
	mock := newMock(t)
	repo := NewOrderRepository(mock)

	mock.ExpectQuery("SELECT (.+) FROM orders").WithArgs(int64(99)).WillReturnError(pgx.ErrNoRows)

	_, err := repo.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

// --- ItemRepository ---

var itemCols = []string{"id", "title_name", "description", "image", "itemstatus", "title", "qty_and_amt", "container_qty"}

func TestItemRepository_List(t *testing.T) {
	mock := newMock(t)
	repo := NewItemRepository(mock)

	mock.ExpectQuery("SELECT (.+) FROM items ORDER BY id").
		WillReturnRows(pgxmock.NewRows(itemCols).
			AddRow(1, "widget", "A widget", "/static/w.png", "In Stock", "Widget", "1,2,3", "1 gal,5 gal").
			AddRow(2, "gadget", "", "", domain.OutOfStock, "Gadget", "", ""))

	items, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Widget", items[0].Title)
	assert.Equal(t, []string{"1 gal", "5 gal"}, items[0].ContainerOptions())
	assert.False(t, items[1].InStock())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestItemRepository_List_QueryError(t *testing.T) {
	mock := newMock(t)
	repo := NewItemRepository(mock)

	mock.ExpectQuery("SELECT (.+) FROM items").WillReturnError(errors.New("timeout"))

	_, err := repo.List(context.Background())
	assert.ErrorContains(t, err, "list items")
}

func TestItemRepository_GetByID(t *testing.T) {
	mock := newMock(t)
	repo := NewItemRepository(mock)

	mock.ExpectQuery("SELECT (.+) FROM items WHERE id").WithArgs(1).
		WillReturnRows(pgxmock.NewRows(itemCols).AddRow(1, "widget", "", "", "In Stock", "Widget", "", ""))
	mock.ExpectQuery("SELECT (.+) FROM items WHERE id").WithArgs(5).WillReturnError(pgx.ErrNoRows)

	it, err := repo.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "widget", it.TitleName)

	_, err = repo.GetByID(context.Background(), 5)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestItemRepository_Upsert(t *testing.T) {
	mock := newMock(t)
	repo := NewItemRepository(mock)

	it := &domain.Item{TitleName: "widget", Title: "Widget", ItemStatus: "In Stock", ContainerQty: "1 gal,5 gal"}
	mock.ExpectQuery("INSERT INTO items (.+) ON CONFLICT \\(title_name\\) DO UPDATE").
		WithArgs("widget", "", "", "In Stock", "Widget", "", "1 gal,5 gal").
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(4))

	require.NoError(t, repo.Upsert(context.Background(), it))
	assert.Equal(t, 4, it.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestItemRepository_Upsert_Error(t *testing.T) {
	mock := newMock(t)
	repo := NewItemRepository(mock)

	mock.ExpectQuery("INSERT INTO items").
		WithArgs(anyArgs(7)...).
		WillReturnError(errors.New("constraint"))

	err := repo.Upsert(context.Background(), &domain.Item{TitleName: "widget"})
	assert.ErrorContains(t, err, `upsert item "widget"`)
}
