package queue

import (
	"encoding/json"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/avirani/leadscore/internal/entity"
	"github.com/avirani/leadscore/internal/infra/http/middleware"
)

// AlertSender delivers the notification for a captured lead.
type AlertSender interface {
	SendLeadAlert(to string, payload LeadCapturedPayload) error
}

// Worker consumes lead-captured events and alerts the sales inbox about
// High tag leads. Everything else is acknowledged and dropped.
type Worker struct {
	Channel *amqp.Channel
	Mail    AlertSender
	AlertTo string
}

func NewWorker(ch *amqp.Channel, mail AlertSender, alertTo string) *Worker {
	return &Worker{
		Channel: ch,
		Mail:    mail,
		AlertTo: alertTo,
	}
}

func (w *Worker) Start(queueName string) {
	msgs, err := w.Channel.Consume(
		queueName,
		"",    // consumer
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		log.Fatalf("❌ [WORKER] Failed to register RabbitMQ consumer: %s", err)
	}

	forever := make(chan bool)

	go func() {
		for d := range msgs {
			var payload LeadCapturedPayload
			if err := json.Unmarshal(d.Body, &payload); err != nil {
				log.Printf("❌ [WORKER] Malformed message: %s", err)
				// Reject without requeue; the message dead-letters to the DLQ.
				d.Nack(false, false)
				continue
			}

			log.Printf("📥 [WORKER] Lead captured: %s (tag: %s)", payload.LeadID, payload.ScoreTag)

			if err := w.processMessage(payload); err != nil {
				log.Printf("❌ [WORKER] Alert failed for lead %s: %s", payload.LeadID, err)
				middleware.RecordIntegrationError("mail")
				d.Nack(false, false)
			} else {
				d.Ack(false)
			}
		}
	}()

	log.Printf(" [*] Worker waiting on queue '%s'", queueName)
	<-forever
}

// processMessage sends an alert for High tag leads only.
func (w *Worker) processMessage(payload LeadCapturedPayload) error {
	if payload.ScoreTag != entity.ScoreTagHigh {
		return nil
	}

	if w.Mail == nil || w.AlertTo == "" {
		log.Printf("⚠️ [WORKER] High lead %s but mail is not configured, skipping alert", payload.LeadID)
		return nil
	}

	if err := w.Mail.SendLeadAlert(w.AlertTo, payload); err != nil {
		return err
	}

	middleware.RecordLeadAlertSent()
	return nil
}
