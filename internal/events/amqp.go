package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"geoalert/internal/domain"
)

// Channel is the slice of *amqp.Channel the sink needs.
type Channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// AMQPSink mirrors domain events onto a RabbitMQ topic exchange so UI
// collaborators outside the process can subscribe. Routing key = event type.
type AMQPSink struct {
	logger   *slog.Logger
	exchange string

	mu      sync.Mutex
	conn    *amqp.Connection
	channel Channel
}

func DialAMQPSink(url, exchange string, logger *slog.Logger) (*AMQPSink, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open a channel: %w", err)
	}

	err = ch.ExchangeDeclare(
		exchange, // name
		"topic",  // kind
		true,     // durable
		false,    // auto-deleted
		false,    // internal
		false,    // no-wait
		nil,      // arguments
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare exchange: %w", err)
	}

	sink := NewAMQPSink(ch, exchange, logger)
	sink.conn = conn
	return sink, nil
}

// NewAMQPSink wraps an already open channel.
func NewAMQPSink(ch Channel, exchange string, logger *slog.Logger) *AMQPSink {
	return &AMQPSink{logger: logger, exchange: exchange, channel: ch}
}

// Handle is a bus Handler.
func (s *AMQPSink) Handle(ctx context.Context, ev domain.Event) {
	if err := s.Publish(ctx, ev); err != nil {
		s.logger.Error("amqp publish failed",
			slog.String("event", string(ev.Type)),
			slog.String("thread_id", ev.ThreadID),
			slog.Any("error", err),
		)
	}
}

func (s *AMQPSink) Publish(ctx context.Context, ev domain.Event) error {
	body, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	s.mu.Lock()
	defer s.mu.Unlock()

	err = s.channel.PublishWithContext(ctx,
		s.exchange,      // exchange
		string(ev.Type), // routing key
		false,           // mandatory
		false,           // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			MessageId:    ev.ThreadID + "/" + string(ev.Type),
			Timestamp:    ev.OccurredAt,
			Body:         body,
		})
	if err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}
	return nil
}

func (s *AMQPSink) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.channel != nil {
		s.channel.Close()
	}
	if s.conn != nil {
		s.conn.Close()
	}
}
