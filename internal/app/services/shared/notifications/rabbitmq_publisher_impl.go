package notifications

import (
	"context"
	"hemolink-service/internal/app/contracts"
	"hemolink-service/internal/pkg/constvars"
	"hemolink-service/internal/pkg/exceptions"
	"time"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

type notificationEnvelope struct {
	Event      string      `json:"event"`
	OccurredAt time.Time   `json:"occurred_at"`
	Payload    interface{} `json:"payload"`
}

type rabbitMQPublisher struct {
	channel   *amqp.Channel
	queueName string
	log       *zap.Logger
}

func NewRabbitMQPublisher(channel *amqp.Channel, queueName string, log *zap.Logger) contracts.NotificationPublisher {
	return &rabbitMQPublisher{
		channel:   channel,
		queueName: queueName,
		log:       log,
	}
}

func (p *rabbitMQPublisher) Publish(ctx context.Context, event string, payload interface{}) error {
	body, err := json.Marshal(notificationEnvelope{
		Event:      event,
		OccurredAt: time.Now().UTC(),
		Payload:    payload,
	})
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	err = p.channel.PublishWithContext(ctx, "", p.queueName, false, false, amqp.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp.Persistent,
	})
	if err != nil {
		p.log.Error("failed to publish notification",
			zap.String("event", event),
			zap.Error(err),
		)
		return exceptions.ErrRabbitMQPublishMessage(err, p.queueName)
	}
	return nil
}
