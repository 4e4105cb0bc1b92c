package services

import (
	"context"
	"encoding/json"
	"time"

	"afiyazone/internal/logger"
	"afiyazone/internal/models"

	"go.uber.org/zap"
)

// Routing keys of order events.
const (
	EventOrderCreated       = "order.created"
	EventOrderStatusChanged = "order.status_changed"
)

// EventPublisher sends a domain event to the message broker.
type EventPublisher interface {
	Publish(routingKey string, body []byte) error
}

// OrderEvent is the payload published after an order write commits.
type OrderEvent struct {
	Event          string    `json:"event"`
	OrderID        string    `json:"orderId"`
	OrderNumber    string    `json:"orderNumber"`
	UserID         string    `json:"userId"`
	Status         string    `json:"status"`
	PreviousStatus string    `json:"previousStatus,omitempty"`
	Total          float64   `json:"total"`
	OccurredAt     time.Time `json:"occurredAt"`
}

// publishOrderEvent is best effort: the order is already committed, so a
// broker failure is logged and swallowed.
func publishOrderEvent(ctx context.Context, pub EventPublisher, routingKey string, order *models.Order, previous string) {
	log := logger.FromCtx(ctx)
	if pub == nil {
		log.Debug("event publishing disabled", zap.String("event", routingKey))
		return
	}
	body, err := json.Marshal(OrderEvent{
		Event:          routingKey,
		OrderID:        order.ID,
		OrderNumber:    order.OrderNumber,
		UserID:         order.UserID,
		Status:         order.Status,
		PreviousStatus: previous,
		Total:          order.Total,
		OccurredAt:     time.Now().UTC(),
	})
	if err != nil {
		log.Error("failed to encode order event", zap.String("event", routingKey), zap.Error(err))
		return
	}
	if err := pub.Publish(routingKey, body); err != nil {
		log.Warn("failed to publish order event",
			zap.String("event", routingKey),
			zap.String("order_number", order.OrderNumber),
			zap.Error(err))
	}
}
