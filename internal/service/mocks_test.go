package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/utafrali/storefront/internal/domain"
	"github.com/utafrali/storefront/internal/store"
	"github.com/utafrali/storefront/internal/store/memory"
)

type mockOrderRepo struct{ mock.Mock }

func (m *mockOrderRepo) Create(ctx context.Context, c *domain.Customer, o *domain.Order) error {
	return m.Called(ctx, c, o).Error(0)
}

func (m *mockOrderRepo) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*domain.Order)
	return o, args.Error(1)
}

type mockItemRepo struct{ mock.Mock }

func (m *mockItemRepo) List(ctx context.Context) ([]domain.Item, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]domain.Item)
	return items, args.Error(1)
}

func (m *mockItemRepo) GetByID(ctx context.Context, id int) (*domain.Item, error) {
	args := m.Called(ctx, id)
	it, _ := args.Get(0).(*domain.Item)
	return it, args.Error(1)
}

type mockEvents struct{ mock.Mock }

func (m *mockEvents) PublishOrderSubmitted(ctx context.Context, o *domain.Order, req domain.OrderRequest) error {
	return m.Called(ctx, o, req).Error(0)
}

func (m *mockEvents) PublishCartItemAdded(ctx context.Context, sessionID string, line domain.CartLine, total int) error {
	return m.Called(ctx, sessionID, line, total).Error(0)
}

func (m *mockEvents) PublishCartCleared(ctx context.Context, sessionID string) error {
	return m.Called(ctx, sessionID).Error(0)
}

type mockForwarder struct{ mock.Mock }

func (m *mockForwarder) Forward(ctx context.Context, req domain.OrderRequest) error {
	return m.Called(ctx, req).Error(0)
}

// memorySessions keeps one memory.KeyValue per session.
type memorySessions map[string]*memory.KeyValue

func (s memorySessions) ForSession(id string) store.KeyValue {
	kv, ok := s[id]
	if !ok {
		kv = memory.New()
		s[id] = kv
	}
	return kv
}
