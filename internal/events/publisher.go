package events

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"cavemap-backend/internal/logger"

	amqp "github.com/rabbitmq/amqp091-go"
)

//go:generate mockgen -source=publisher.go -destination=../mocks/events_mocks.go -package=mocks

// PublisherInterface is the narrow publishing contract services depend on.
// Delivery is best-effort and at-most-once per call: a failed publish is an
// error for the caller to log, never a reason to roll back the mutation
// that triggered it.
type PublisherInterface interface {
	Publish(ctx context.Context, event string, payload interface{}) error
	Close() error
}

// publishChannel abstracts the amqp channel surface the publisher uses
type publishChannel interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// Publisher sends events to a durable topic exchange. It connects lazily on
// the first publish and reconnects once per call if the channel has gone
// away; there is no application-level retry loop around publish itself.
type Publisher struct {
	url      string
	exchange string
	log      *logger.Logger

	mu      sync.Mutex
	conn    *amqp.Connection
	channel publishChannel

	// dial is swappable in tests
	dial func() (*amqp.Connection, publishChannel, error)
}

// NewPublisher creates a publisher for the given exchange
func NewPublisher(url, exchange string, log *logger.Logger) *Publisher {
	p := &Publisher{
		url:      url,
		exchange: exchange,
		log:      log.WithField("exchange", exchange),
	}
	p.dial = p.dialAMQP
	return p
}

func (p *Publisher) dialAMQP() (*amqp.Connection, publishChannel, error) {
	conn, err := amqp.Dial(p.url)
	if err != nil {
		return nil, nil, err
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, nil, err
	}
	return conn, ch, nil
}

// connect establishes the connection and declares the exchange. Callers
// must hold p.mu.
func (p *Publisher) connect() error {
	if p.channel != nil && (p.conn == nil || !p.conn.IsClosed()) {
		return nil
	}

	conn, ch, err := p.dial()
	if err != nil {
		return fmt.Errorf("connect to broker: %w", err)
	}
	if err := ch.ExchangeDeclare(p.exchange, "topic", true, false, false, false, nil); err != nil {
		ch.Close()
		if conn != nil {
			conn.Close()
		}
		return fmt.Errorf("declare exchange %s: %w", p.exchange, err)
	}

	p.conn = conn
	p.channel = ch
	p.log.Info("publisher connected")
	return nil
}

// Publish serializes the payload and sends it with the event name as the
// routing key. The payload is expected to carry its own envelope fields.
func (p *Publisher) Publish(ctx context.Context, event string, payload interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal %s event: %w", event, err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.connect(); err != nil {
		return err
	}

	err = p.channel.PublishWithContext(ctx, p.exchange, event, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Body:         body,
	})
	if err != nil {
		// Drop the broken channel so the next publish reconnects
		p.channel = nil
		p.conn = nil
		return fmt.Errorf("publish %s: %w", event, err)
	}

	p.log.WithField("event", event).Info("published event")
	return nil
}

// Close shuts the connection down
func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.channel != nil {
		_ = p.channel.Close()
		p.channel = nil
	}
	if p.conn != nil {
		err := p.conn.Close()
		p.conn = nil
		return err
	}
	return nil
}
