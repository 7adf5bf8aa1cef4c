// Package events announces finished analyses on a RabbitMQ topic exchange.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/streadway/amqp"
	"go.uber.org/zap"
)

const Exchange = "analysis_updates"

const (
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

type Update struct {
	AnalysisID uuid.UUID `json:"analysis_id"`
	UserID     string    `json:"user_id,omitempty"`
	Status     string    `json:"status"`
	MatchScore int       `json:"match_score"`
	Timestamp  time.Time `json:"timestamp"`
}

type Publisher interface {
	Publish(ctx context.Context, u Update) error
}

// NopPublisher drops every update. It is used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, Update) error { return nil }

func RoutingKey(analysisID uuid.UUID) string {
	return fmt.Sprintf("analysis.%s", analysisID)
}

type AMQPPublisher struct {
	conn   *amqp.Connection
	logger *zap.Logger
}

// Dial connects to the broker and declares the durable topic exchange.
func Dial(url string, logger *zap.Logger) (*AMQPPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("error dialling rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("error connecting to rabbitmq channel: %w", err)
	}
	defer ch.Close()

	err = ch.ExchangeDeclare(
		Exchange,
		"topic",
		true,  // durable
		false, // auto-delete
		false, // internal
		false, // no-wait
		nil,
	)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to declare exchange: %w", err)
	}
	return &AMQPPublisher{conn: conn, logger: logger}, nil
}

func (p *AMQPPublisher) Publish(_ context.Context, u Update) error {
	msg, err := encode(u)
	if err != nil {
		return err
	}

	ch, err := p.conn.Channel()
	if err != nil {
		return fmt.Errorf("failed to open channel: %w", err)
	}
	defer ch.Close()

	if err := ch.Publish(Exchange, RoutingKey(u.AnalysisID), false, false, msg); err != nil {
		return fmt.Errorf("failed to publish update: %w", err)
	}
	p.logger.Debug("analysis update published",
		zap.String("analysis_id", u.AnalysisID.String()),
		zap.String("status", u.Status))
	return nil
}

func (p *AMQPPublisher) Close() error {
	return p.conn.Close()
}

func encode(u Update) (amqp.Publishing, error) {
	if u.Timestamp.IsZero() {
		u.Timestamp = time.Now()
	}
	body, err := json.Marshal(u)
	if err != nil {
		return amqp.Publishing{}, fmt.Errorf("failed to marshal update: %w", err)
	}
	return amqp.Publishing{
		ContentType: "application/json",
		Timestamp:   u.Timestamp,
		Body:        body,
	}, nil
}
