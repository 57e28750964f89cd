package queue

import (
	"context"
	"encoding/json"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"
)

// AlertSender is what the worker needs to raise a sales alert for a hot
// lead. Implemented by the mail package; the worker stays decoupled from
// SMTP details.
type AlertSender interface {
	SendHotLeadAlertPayload(to string, payload LeadSavedPayload) error
}

type Worker struct {
	Channel    *amqp.Channel
	Alerts     AlertSender
	AlertEmail string
}

func NewWorker(ch *amqp.Channel, alerts AlertSender, alertEmail string) *Worker {
	return &Worker{
		Channel:    ch,
		Alerts:     alerts,
		AlertEmail: alertEmail,
	}
}

func (w *Worker) Start(queueName string) {
	msgs, err := w.Channel.Consume(
		queueName,
		"",    // consumer
		false, // manual ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		log.Fatalf("❌ [WORKER] failed to register RabbitMQ consumer: %s", err)
	}

	forever := make(chan bool)

	go func() {
		for d := range msgs {
			var payload LeadSavedPayload
			if err := json.Unmarshal(d.Body, &payload); err != nil {
				log.Printf("❌ [WORKER] malformed message: %s", err)
				// Poison message, reject without requeue so it lands in the DLQ.
				d.Nack(false, false)
				continue
			}

			if err := w.processMessage(context.Background(), payload); err != nil {
				log.Printf("❌ [WORKER] failed to process lead %s: %s", payload.LeadID, err)
				d.Nack(false, false)
			} else {
				d.Ack(false)
			}
		}
	}()

	log.Printf(" [*] Worker waiting on queue '%s'", queueName)
	<-forever
}

func (w *Worker) processMessage(_ context.Context, payload LeadSavedPayload) error {
	if payload.ScoreLabel != "hot" {
		// Only hot leads alert the sales team; everything else is just
		// acknowledged off the queue.
		return nil
	}

	if w.Alerts == nil || w.AlertEmail == "" {
		log.Printf("⚠️ [WORKER] hot lead %s received but alerting not configured", payload.LeadID)
		return nil
	}

	log.Printf("🔥 [WORKER] hot lead %s (score=%d), alerting sales", payload.LeadID, payload.Score)
	return w.Alerts.SendHotLeadAlertPayload(w.AlertEmail, payload)
}
