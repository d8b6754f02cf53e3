package producer

import (
	"context"
	"encoding/json"

	"go-storefront-api/internal/order"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const orderPlacedEvent = "order.placed"

// OrderPublisher announces finished orders on Kafka. Consumers (receipts,
// analytics) are outside this service; publishing is best-effort from the
// storefront's point of view.
type OrderPublisher struct {
	writer *kafka.Writer
	logger *zap.Logger
}

func NewOrderPublisher(writer *kafka.Writer, logger *zap.Logger) *OrderPublisher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OrderPublisher{writer: writer, logger: logger.Named("messaging.orders")}
}

func (p *OrderPublisher) OrderPlaced(ctx context.Context, o order.Order) error {
	payload, err := json.Marshal(o)
	if err != nil {
		return err
	}

	msg := kafka.Message{
		Key:   []byte(o.ID),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(orderPlacedEvent)},
			{Key: "order_number", Value: []byte(o.OrderNumber)},
		},
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return err
	}

	p.logger.Debug("order event published", zap.String("order_number", o.OrderNumber))
	return nil
}
