package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// LeadSavedPayload is published for every persisted lead so downstream
// consumers (alerting, CRM sync) stay decoupled from the API.
type LeadSavedPayload struct {
	LeadID     string    `json:"lead_id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Company    string    `json:"company"`
	Need       string    `json:"need"`
	Budget     string    `json:"budget"`
	Score      int       `json:"score"`
	ScoreLabel string    `json:"score_label"`
	CreatedAt  time.Time `json:"created_at"`
}

type EventProducerInterface interface {
	PublishLeadSaved(ctx context.Context, payload LeadSavedPayload) error
}

type RabbitMQProducer struct {
	Conn *amqp.Connection
	Ch   *amqp.Channel
}

func NewProducer(conn *amqp.Connection, ch *amqp.Channel) *RabbitMQProducer {
	return &RabbitMQProducer{Conn: conn, Ch: ch}
}

func (p *RabbitMQProducer) PublishLeadSaved(ctx context.Context, payload LeadSavedPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %v", err)
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
		return fmt.Errorf("failed to publish to RabbitMQ: %v", err)
	}

	return nil
}
