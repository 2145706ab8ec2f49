// Package store persists the cart to a key-value backend under a single key.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/utafrali/storefront/internal/domain"
)

// CartKey is the key the serialized cart lives under.
const CartKey = "cart"

// KeyValue is a string key-value API such as browser localStorage.
type KeyValue interface {
	// GetItem returns the value for key and whether it was present.
	GetItem(ctx context.Context, key string) (string, bool, error)

	// SetItem stores value under key, replacing any previous value.
	SetItem(ctx context.Context, key, value string) error
}

// CartStore loads and persists a cart through a KeyValue backend.
type CartStore struct {
	kv     KeyValue
	logger *slog.Logger
}

// NewCartStore creates a store over kv.
func NewCartStore(kv KeyValue, logger *slog.Logger) *CartStore {
	return &CartStore{kv: kv, logger: logger}
}

// Load reads the persisted cart. A missing or unparsable value yields an
// empty cart; only backend failures are returned as errors.
func (s *CartStore) Load(ctx context.Context) (*domain.Cart, error) {
	raw, ok, err := s.kv.GetItem(ctx, CartKey)
	if err != nil {
		return domain.NewCart(nil), fmt.Errorf("load cart: %w", err)
	}
	if !ok || raw == "" {
		return domain.NewCart(nil), nil
	}

	var lines []domain.CartLine
	if err := json.Unmarshal([]byte(raw), &lines); err != nil {
		s.logger.DebugContext(ctx, "discarding unparsable cart",
			slog.String("error", err.Error()),
		)
		return domain.NewCart(nil), nil
	}
	return domain.NewCart(lines), nil
}

// Persist writes the whole cart under CartKey. An empty cart is written as [].
func (s *CartStore) Persist(ctx context.Context, cart *domain.Cart) error {
	lines := cart.Lines
	if lines == nil {
		lines = []domain.CartLine{}
	}
	data, err := json.Marshal(lines)
	if err != nil {
		return fmt.Errorf("marshal cart: %w", err)
	}
	if err := s.kv.SetItem(ctx, CartKey, string(data)); err != nil {
		return fmt.Errorf("persist cart: %w", err)
	}
	return nil
}

// Add merges a line into cart and persists it. It reports false without
// persisting when the item is out of stock.
func (s *CartStore) Add(ctx context.Context, cart *domain.Cart, itemID int, title, status, containerQty string, quantity int) (bool, error) {
	if !cart.Add(itemID, title, status, containerQty, quantity) {
		return false, nil
	}
	if err := s.Persist(ctx, cart); err != nil {
		return true, err
	}
	return true, nil
}

// Clear empties cart and persists the empty value.
func (s *CartStore) Clear(ctx context.Context, cart *domain.Cart) error {
	cart.Clear()
	return s.Persist(ctx, cart)
}
