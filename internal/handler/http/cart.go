package http

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/utafrali/storefront/internal/domain"
	"github.com/utafrali/storefront/internal/service"
	"github.com/utafrali/storefront/pkg/httputil"
	"github.com/utafrali/storefront/pkg/logger"
	"github.com/utafrali/storefront/pkg/validator"
)

// SessionCarts is the server-side cart used by CartHandler.
type SessionCarts interface {
	GetCart(ctx context.Context, sessionID string) (*domain.Cart, error)
	AddItem(ctx context.Context, sessionID string, in service.AddItemInput) (*domain.Cart, bool, error)
	ClearCart(ctx context.Context, sessionID string) error
}

// CartHandler handles the session cart API.
type CartHandler struct {
	service SessionCarts
	logger  *slog.Logger
}

// NewCartHandler creates a new cart HTTP handler.
func NewCartHandler(svc SessionCarts, logger *slog.Logger) *CartHandler {
	return &CartHandler{service: svc, logger: logger}
}

// CartResponse is the API view of a cart.
type CartResponse struct {
	Lines         []domain.CartLine `json:"lines"`
	TotalQuantity int               `json:"total_quantity"`
	Added         *bool             `json:"added,omitempty"`
}

func newCartResponse(c *domain.Cart) CartResponse {
	lines := c.Lines
	if lines == nil {
		lines = []domain.CartLine{}
	}
	return CartResponse{Lines: lines, TotalQuantity: c.TotalQuantity()}
}

// GetCart handles GET /api/v1/cart
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	cart, err := h.service.GetCart(r.Context(), logger.SessionIDFromContext(r.Context()))
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: newCartResponse(cart)})
}

// AddItem handles POST /api/v1/cart/items
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var in service.AddItemInput
	if err := validator.DecodeAndValidate(r, &in); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	cart, added, err := h.service.AddItem(r.Context(), logger.SessionIDFromContext(r.Context()), in)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	resp := newCartResponse(cart)
	resp.Added = &added
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: resp})
}

// ClearCart handles DELETE /api/v1/cart
func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	if err := h.service.ClearCart(r.Context(), logger.SessionIDFromContext(r.Context())); err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
