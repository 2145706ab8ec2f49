package event

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/utafrali/storefront/internal/domain"
	pkgkafka "github.com/utafrali/storefront/pkg/kafka"
	"github.com/utafrali/storefront/pkg/logger"
)

// Kafka topics for storefront events.
const (
	TopicOrderSubmitted = "storefront.order.submitted"
	TopicCartItemAdded  = "storefront.cart.item_added"
	TopicCartCleared    = "storefront.cart.cleared"
)

// Aggregate types.
const (
	AggregateTypeOrder = "order"
	AggregateTypeCart  = "cart"
)

// SourceStorefront identifies events published by this service.
const SourceStorefront = "storefront"

// OrderSubmittedData is the payload of an order.submitted event.
type OrderSubmittedData struct {
	OrderID    int64               `json:"order_id"`
	CustomerID int64               `json:"customer_id"`
	Customer   domain.CustomerInfo `json:"customer"`
	Items      []domain.OrderItem  `json:"items"`
	OrderDate  string              `json:"order_date"`
}

// CartItemAddedData is the payload of a cart.item_added event.
type CartItemAddedData struct {
	SessionID    string `json:"session_id"`
	ItemID       int    `json:"item_id"`
	ContainerQty string `json:"container_qty"`
	Quantity     int    `json:"quantity"`
	CartTotal    int    `json:"cart_total"`
}

// CartClearedData is the payload of a cart.cleared event.
type CartClearedData struct {
	SessionID string `json:"session_id"`
}

// Publisher writes an event to a topic. *pkgkafka.Producer implements it.
type Publisher interface {
	Publish(ctx context.Context, topic string, event *pkgkafka.Event) error
}

// Producer publishes storefront domain events.
type Producer struct {
	publisher Publisher
	logger    *slog.Logger
}

// NewProducer creates a new event producer.
func NewProducer(publisher Publisher, logger *slog.Logger) *Producer {
	return &Producer{publisher: publisher, logger: logger}
}

func (p *Producer) publish(ctx context.Context, topic, aggregateID, aggregateType string, data any) error {
	event, err := pkgkafka.NewEvent(topic, aggregateID, aggregateType, SourceStorefront, data)
	if err != nil {
		return fmt.Errorf("create %s event: %w", topic, err)
	}
	if id := logger.CorrelationIDFromContext(ctx); id != "" {
		event.WithCorrelationID(id)
	}
	event.WithMetadata(pkgkafka.MetadataSessionID, logger.SessionIDFromContext(ctx))
	if err := p.publisher.Publish(ctx, topic, event); err != nil {
		return fmt.Errorf("publish %s event: %w", topic, err)
	}
	p.logger.DebugContext(ctx, "published event",
		slog.String("topic", topic),
		slog.String("aggregate_id", aggregateID),
	)
	return nil
}

// PublishOrderSubmitted publishes the stored order with the submitted payload.
func (p *Producer) PublishOrderSubmitted(ctx context.Context, order *domain.Order, req domain.OrderRequest) error {
	data := OrderSubmittedData{
		OrderID:    order.ID,
		CustomerID: order.CustomerID,
		Customer:   req.Customer,
		Items:      req.Items,
		OrderDate:  req.OrderDate,
	}
	return p.publish(ctx, TopicOrderSubmitted, strconv.FormatInt(order.ID, 10), AggregateTypeOrder, data)
}

// PublishCartItemAdded publishes a line added to a session cart.
func (p *Producer) PublishCartItemAdded(ctx context.Context, sessionID string, line domain.CartLine, cartTotal int) error {
	data := CartItemAddedData{
		SessionID:    sessionID,
		ItemID:       line.ItemID,
		ContainerQty: line.ContainerQty,
		Quantity:     line.Quantity,
		CartTotal:    cartTotal,
	}
	return p.publish(logger.WithSessionID(ctx, sessionID), TopicCartItemAdded, sessionID, AggregateTypeCart, data)
}

// PublishCartCleared publishes that a session cart was emptied.
func (p *Producer) PublishCartCleared(ctx context.Context, sessionID string) error {
	return p.publish(logger.WithSessionID(ctx, sessionID), TopicCartCleared, sessionID, AggregateTypeCart, CartClearedData{SessionID: sessionID})
}
