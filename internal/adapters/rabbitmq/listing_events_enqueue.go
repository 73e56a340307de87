package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/nasser0p/realestate/internal/contextkeys"
	"github.com/nasser0p/realestate/internal/core/port"
	"github.com/nasser0p/realestate/pkg/rabbitmq"
)

// RabbitMQListingEventsAdapter publishes listing lifecycle events to a topic
// exchange. The event name doubles as the routing key.
type RabbitMQListingEventsAdapter struct {
	producer *rabbitmq.Publisher
}

func NewRabbitMQListingEventsAdapter(producer *rabbitmq.Publisher) (*RabbitMQListingEventsAdapter, error) {
	if producer == nil {
		return nil, fmt.Errorf("rabbitmq adapter: producer cannot be nil")
	}
	return &RabbitMQListingEventsAdapter{producer: producer}, nil
}

type listingEventMessage struct {
	Event      string    `json:"event"`
	PropertyID uuid.UUID `json:"property_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

func (a *RabbitMQListingEventsAdapter) Publish(ctx context.Context, event string, propertyID uuid.UUID) error {
	logger := contextkeys.LoggerFromContext(ctx)
	adapterLogger := logger.WithFields(port.Fields{
		"component":   "RabbitMQListingEventsAdapter",
		"event":       event,
		"property_id": propertyID,
	})

	body, err := json.Marshal(listingEventMessage{
		Event:      event,
		PropertyID: propertyID,
		OccurredAt: time.Now().UTC(),
	})
	if err != nil {
		adapterLogger.Error("Failed to marshal listing event", err, nil)
		return fmt.Errorf("rabbitmq adapter: failed to marshal event %s: %w", event, err)
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		Body:         body,
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now(),
		Headers:      make(amqp.Table),
	}
	if traceID := contextkeys.TraceIDFromContext(ctx); traceID != "" {
		msg.Headers["x-trace-id"] = traceID
	}

	publishCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := a.producer.Publish(publishCtx, event, msg); err != nil {
		adapterLogger.Error("Failed to publish listing event", err, nil)
		return fmt.Errorf("rabbitmq adapter: failed to publish event %s: %w", event, err)
	}

	adapterLogger.Debug("Listing event published", nil)
	return nil
}

// NoopListingEventsAdapter is used when event publishing is disabled.
type NoopListingEventsAdapter struct{}

func NewNoopListingEventsAdapter() *NoopListingEventsAdapter {
	return &NoopListingEventsAdapter{}
}

func (a *NoopListingEventsAdapter) Publish(_ context.Context, _ string, _ uuid.UUID) error {
	return nil
}
