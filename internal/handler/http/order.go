package http

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/utafrali/storefront/internal/domain"
	apperrors "github.com/utafrali/storefront/pkg/errors"
	"github.com/utafrali/storefront/pkg/httputil"
	"github.com/utafrali/storefront/pkg/validator"
)

// MsgOrderSaved is the body message of a successful order submission.
const MsgOrderSaved = "Order submitted and saved successfully!"

// OrderSubmitter is the order intake used by OrderHandler.
type OrderSubmitter interface {
	SubmitOrder(ctx context.Context, req domain.OrderRequest) (*domain.Order, error)
	GetOrder(ctx context.Context, id int64) (*domain.Order, error)
}

// OrderHandler handles the order intake endpoints.
type OrderHandler struct {
	service OrderSubmitter
	logger  *slog.Logger
}

// NewOrderHandler creates a new order HTTP handler.
func NewOrderHandler(svc OrderSubmitter, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{service: svc, logger: logger}
}

// SubmitOrderResponse is the body returned by POST /submit_order.
type SubmitOrderResponse struct {
	Message string `json:"message"`
	OrderID int64  `json:"order_id,omitempty"`
}

// OrderResponse is the API view of a stored order.
type OrderResponse struct {
	ID           int64  `json:"id"`
	CustomerID   int64  `json:"customer_id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Client       string `json:"client"`
	Address      string `json:"address"`
	OrderedItems string `json:"ordered_items"`
	OrderNotes   string `json:"order_notes,omitempty"`
	OrderDate    string `json:"order_date"`
}

// SubmitOrder handles POST /submit_order
func (h *OrderHandler) SubmitOrder(w http.ResponseWriter, r *http.Request) {
	var req domain.OrderRequest
	if err := validator.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	order, err := h.service.SubmitOrder(r.Context(), req)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, SubmitOrderResponse{Message: MsgOrderSaved, OrderID: order.ID})
}

// GetOrder handles GET /api/v1/orders/{id}
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id < 1 {
		httputil.WriteError(w, r, apperrors.InvalidInput("order id must be a positive integer"), h.logger)
		return
	}

	o, err := h.service.GetOrder(r.Context(), id)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: OrderResponse{
		ID:           o.ID,
		CustomerID:   o.CustomerID,
		Name:         o.Name,
		Email:        o.Email,
		Client:       o.Client,
		Address:      o.Address,
		OrderedItems: o.OrderedItems,
		OrderNotes:   o.OrderNotes,
		OrderDate:    o.OrderDate.Format(time.RFC3339),
	}})
}
