package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// EmailGeneratedPayload is the notification published after a draft is
// persisted, for downstream CRM sync. The body text stays out of the event;
// consumers fetch it through the API if they need it.
type EmailGeneratedPayload struct {
	EmailID    string    `json:"email_id"`
	ProspectID string    `json:"prospect_id"`
	UserID     string    `json:"user_id"`
	Subject    string    `json:"subject"`
	CreatedAt  time.Time `json:"created_at"`
}

type RabbitMQProducer struct {
	Ch *amqp.Channel
}

func NewProducer(ch *amqp.Channel) *RabbitMQProducer {
	return &RabbitMQProducer{Ch: ch}
}

func (p *RabbitMQProducer) PublishEmailGenerated(ctx context.Context, payload EmailGeneratedPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	err = p.Ch.PublishWithContext(ctx,
		ExchangeName,
		RoutingKey,
		false, // Mandatory
		false, // Immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish to RabbitMQ: %w", err)
	}

	return nil
}
