package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/utafrali/storefront/internal/domain"
	"github.com/utafrali/storefront/internal/repository"
	apperrors "github.com/utafrali/storefront/pkg/errors"
)

var (
	ordersSubmitted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "storefront_orders_submitted_total",
		Help: "Orders stored through the order intake",
	})

	orderSideEffectFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "storefront_order_side_effect_failures_total",
		Help: "Failed order event publications and webhook deliveries",
	}, []string{"kind"})
)

// OrderEvents publishes order domain events.
type OrderEvents interface {
	PublishOrderSubmitted(ctx context.Context, order *domain.Order, req domain.OrderRequest) error
}

// OrderForwarder delivers an order to the confirmation webhook.
type OrderForwarder interface {
	Forward(ctx context.Context, req domain.OrderRequest) error
}

// OrderService implements the order intake.
type OrderService struct {
	repo      repository.OrderRepository
	events    OrderEvents
	forwarder OrderForwarder
	logger    *slog.Logger
	now       func() time.Time
}

// NewOrderService creates a new order service.
func NewOrderService(repo repository.OrderRepository, events OrderEvents, forwarder OrderForwarder, logger *slog.Logger) *OrderService {
	return &OrderService{
		repo:      repo,
		events:    events,
		forwarder: forwarder,
		logger:    logger,
		now:       time.Now,
	}
}

// SubmitOrder stores the customer and order, then publishes the order event
// and forwards the order to the webhook. Only storage failures fail the call.
func (s *OrderService) SubmitOrder(ctx context.Context, req domain.OrderRequest) (*domain.Order, error) {
	if len(req.Items) == 0 {
		return nil, apperrors.InvalidInput("order must contain at least one item")
	}

	now := s.now().UTC()
	customer := domain.NewCustomer(req, now)
	order := domain.NewOrder(customer, req, now)

	if err := s.repo.Create(ctx, customer, order); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}
	ordersSubmitted.Inc()

	// The forwarded payload carries the intake time, not the client's clock.
	forwarded := req
	forwarded.OrderDate = now.Format(time.RFC3339Nano)

	if err := s.events.PublishOrderSubmitted(ctx, order, forwarded); err != nil {
		orderSideEffectFailures.WithLabelValues("event").Inc()
		s.logger.ErrorContext(ctx, "failed to publish order.submitted event",
			slog.Int64("order_id", order.ID),
			slog.String("error", err.Error()),
		)
	}

	if err := s.forwarder.Forward(ctx, forwarded); err != nil {
		orderSideEffectFailures.WithLabelValues("webhook").Inc()
		s.logger.ErrorContext(ctx, "failed to send order confirmation webhook",
			slog.Int64("order_id", order.ID),
			slog.String("error", err.Error()),
		)
	}

	s.logger.InfoContext(ctx, "order submitted",
		slog.Int64("order_id", order.ID),
		slog.Int64("customer_id", customer.ID),
		slog.Int("items", len(req.Items)),
	)
	return order, nil
}

// GetOrder retrieves a stored order.
func (s *OrderService) GetOrder(ctx context.Context, id int64) (*domain.Order, error) {
	order, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get order by id: %w", err)
	}
	return order, nil
}
