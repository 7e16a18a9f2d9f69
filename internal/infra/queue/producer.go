package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// LeadCapturedPayload is the event published after every successful capture.
type LeadCapturedPayload struct {
	LeadID        string    `json:"lead_id"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	InitialScore  *float64  `json:"initial_score"`
	RerankedScore *float64  `json:"reranked_score"`
	ScoreTag      string    `json:"score_tag"`
	CapturedAt    time.Time `json:"captured_at"`
}

type RabbitMQProducer struct {
	Conn *amqp.Connection
	Ch   *amqp.Channel
}

func NewProducer(conn *amqp.Connection, ch *amqp.Channel) *RabbitMQProducer {
	return &RabbitMQProducer{
		Conn: conn,
		Ch:   ch,
	}
}

func (p *RabbitMQProducer) PublishLeadCaptured(ctx context.Context, payload LeadCapturedPayload) error {
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
