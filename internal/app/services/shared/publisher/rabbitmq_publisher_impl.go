package publisher

import (
	"context"
	"pidelocal-service/internal/app/contracts"
	"pidelocal-service/internal/app/models"
	"pidelocal-service/internal/pkg/constvars"
	"pidelocal-service/internal/pkg/exceptions"
	"sync"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

type rabbitMQPublisher struct {
	mu       sync.Mutex
	Channel  *amqp091.Channel
	Exchange string
	Log      *zap.Logger
}

func NewRabbitMQPublisher(rabbitMQConnection *amqp091.Connection, exchange string, logger *zap.Logger) (contracts.EventPublisher, error) {
	channel, err := rabbitMQConnection.Channel()
	if err != nil {
		return nil, err
	}

	err = channel.ExchangeDeclare(exchange, amqp091.ExchangeTopic, true, false, false, false, nil)
	if err != nil {
		channel.Close()
		return nil, err
	}

	return &rabbitMQPublisher{
		Channel:  channel,
		Exchange: exchange,
		Log:      logger,
	}, nil
}

func (p *rabbitMQPublisher) PublishOrderEvent(ctx context.Context, event *models.OrderEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	message := amqp091.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp091.Persistent,
		Timestamp:    event.OccurredAt,
		Headers: amqp091.Table{
			"message_type": "JSON",
			"business_id":  event.BusinessID,
		},
	}

	p.mu.Lock()
	err = p.Channel.PublishWithContext(ctx, p.Exchange, event.Type, false, false, message)
	p.mu.Unlock()
	if err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, p.Exchange)
	}

	p.Log.Debug("rabbitMQPublisher.PublishOrderEvent succeeded",
		zap.String(constvars.LoggingRoutingKey, event.Type),
		zap.String(constvars.LoggingOrderIDKey, event.OrderID),
	)
	return nil
}

type noopPublisher struct{}

// NewNoopPublisher is used when no broker is configured.
func NewNoopPublisher() contracts.EventPublisher {
	return noopPublisher{}
}

func (noopPublisher) PublishOrderEvent(ctx context.Context, event *models.OrderEvent) error {
	return nil
}
