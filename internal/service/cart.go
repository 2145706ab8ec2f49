package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/utafrali/storefront/internal/domain"
	"github.com/utafrali/storefront/internal/store"
	apperrors "github.com/utafrali/storefront/pkg/errors"
)

// SessionStore returns the key-value view of a browsing session.
type SessionStore interface {
	ForSession(sessionID string) store.KeyValue
}

// CartEvents publishes session cart events.
type CartEvents interface {
	PublishCartItemAdded(ctx context.Context, sessionID string, line domain.CartLine, cartTotal int) error
	PublishCartCleared(ctx context.Context, sessionID string) error
}

// ItemLookup resolves catalog items.
type ItemLookup interface {
	GetItem(ctx context.Context, id int) (*domain.Item, error)
}

// AddItemInput holds the parameters for adding to a session cart.
type AddItemInput struct {
	ItemID       int    `json:"id" validate:"required,gte=1"`
	ContainerQty string `json:"containerQty"`
	Quantity     int    `json:"quantity" validate:"omitempty,gte=1"`
}

// CartService applies the storefront cart operations to server-side
// session carts, for clients that cannot keep local storage.
type CartService struct {
	sessions SessionStore
	items    ItemLookup
	events   CartEvents
	logger   *slog.Logger
}

// NewCartService creates a new session cart service.
func NewCartService(sessions SessionStore, items ItemLookup, events CartEvents, logger *slog.Logger) *CartService {
	return &CartService{sessions: sessions, items: items, events: events, logger: logger}
}

func (s *CartService) storeFor(sessionID string) (*store.CartStore, error) {
	if sessionID == "" {
		return nil, apperrors.InvalidInput("session id is required")
	}
	return store.NewCartStore(s.sessions.ForSession(sessionID), s.logger), nil
}

// GetCart returns the session's cart.
func (s *CartService) GetCart(ctx context.Context, sessionID string) (*domain.Cart, error) {
	st, err := s.storeFor(sessionID)
	if err != nil {
		return nil, err
	}
	cart, err := st.Load(ctx)
	if err != nil {
		return nil, apperrors.Unavailable("session store", err)
	}
	return cart, nil
}

// AddItem adds a catalog item to the session cart using the item's title and
// stock status. It reports false when the item is out of stock and the cart
// was left unchanged.
func (s *CartService) AddItem(ctx context.Context, sessionID string, in AddItemInput) (*domain.Cart, bool, error) {
	st, err := s.storeFor(sessionID)
	if err != nil {
		return nil, false, err
	}

	item, err := s.items.GetItem(ctx, in.ItemID)
	if err != nil {
		return nil, false, fmt.Errorf("resolve item: %w", err)
	}

	containerQty := in.ContainerQty
	if containerQty == "" {
		containerQty = domain.DefaultContainerQty
	}
	quantity := in.Quantity
	if quantity < 1 {
		quantity = domain.DefaultQuantity
	}

	cart, err := st.Load(ctx)
	if err != nil {
		return nil, false, apperrors.Unavailable("session store", err)
	}

	added, err := st.Add(ctx, cart, item.ID, item.Title, item.ItemStatus, containerQty, quantity)
	if err != nil {
		return nil, false, apperrors.Unavailable("session store", err)
	}
	if !added {
		return cart, false, nil
	}

	line := domain.CartLine{ItemID: item.ID, Title: item.Title, ContainerQty: containerQty, Quantity: quantity}
	if err := s.events.PublishCartItemAdded(ctx, sessionID, line, cart.TotalQuantity()); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish cart.item_added event",
			slog.String("error", err.Error()),
		)
	}
	return cart, true, nil
}

// ClearCart empties the session cart.
func (s *CartService) ClearCart(ctx context.Context, sessionID string) error {
	st, err := s.storeFor(sessionID)
	if err != nil {
		return err
	}
	if err := st.Clear(ctx, domain.NewCart(nil)); err != nil {
		return apperrors.Unavailable("session store", err)
	}
	if err := s.events.PublishCartCleared(ctx, sessionID); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish cart.cleared event",
			slog.String("error", err.Error()),
		)
	}
	return nil
}
