package events

import (
	"context"
	"sync"
	"time"

	"cavemap-backend/internal/logger"

	"github.com/cenkalti/backoff/v4"
	amqp "github.com/rabbitmq/amqp091-go"
)

// HandlerFunc processes one decoded event body. The body is the full
// message payload; handlers unmarshal their own typed event struct.
type HandlerFunc func(ctx context.Context, body []byte) error

// Consumer subscribes an exclusive queue to a durable topic exchange and
// dispatches messages to handlers registered by exact event name.
//
// Failure policy: unknown event names are logged and dropped, and a handler
// error is logged while the message is still acknowledged. A poisoned
// message is deliberately traded for an unblocked queue; there is no
// dead-letter queue, so a failed cascade is only recoverable from logs.
type Consumer struct {
	url      string
	exchange string
	log      *logger.Logger

	mu       sync.Mutex
	handlers map[string]HandlerFunc
	running  bool
	cancel   context.CancelFunc
	done     chan struct{}
}

// NewConsumer creates a consumer bound to one exchange
func NewConsumer(url, exchange string, log *logger.Logger) *Consumer {
	return &Consumer{
		url:      url,
		exchange: exchange,
		log:      log.WithField("exchange", exchange),
		handlers: make(map[string]HandlerFunc),
	}
}

// Register installs a handler for an event name. The event name is also
// used as the binding key for the queue.
func (c *Consumer) Register(event string, handler HandlerFunc) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.handlers[event] = handler
	c.log.WithField("event", event).Info("registered event handler")
}

// Start launches the consume loop in the background. It is safe to call
// once at process startup; a second call is a no-op. Broker unavailability
// never surfaces as a startup error — the loop keeps reconnecting with
// backoff so an unreachable broker does not prevent HTTP serving.
func (c *Consumer) Start(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.running {
		return
	}
	c.running = true

	runCtx, cancel := context.WithCancel(ctx)
	c.cancel = cancel
	c.done = make(chan struct{})

	go c.run(runCtx)
}

// Stop terminates the consume loop and waits for it to exit. Safe to call
// multiple times and before Start.
func (c *Consumer) Stop() {
	c.mu.Lock()
	if !c.running {
		c.mu.Unlock()
		return
	}
	c.running = false
	cancel := c.cancel
	done := c.done
	c.mu.Unlock()

	cancel()
	<-done
	c.log.Info("consumer stopped")
}

func (c *Consumer) run(ctx context.Context) {
	defer close(c.done)

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = 1 * time.Second
	policy.MaxInterval = 30 * time.Second
	policy.MaxElapsedTime = 0 // reconnect forever

	for {
		err := c.consume(ctx)
		if ctx.Err() != nil {
			return
		}
		wait := policy.NextBackOff()
		c.log.WithError(err).Warnf("consumer disconnected, reconnecting in %s", wait)
		select {
		case <-ctx.Done():
			return
		case <-time.After(wait):
		}
	}
}

// consume connects, binds and processes deliveries until the connection or
// the context dies
func (c *Consumer) consume(ctx context.Context) error {
	conn, err := amqp.Dial(c.url)
	if err != nil {
		return err
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		return err
	}
	defer ch.Close()

	if err := ch.ExchangeDeclare(c.exchange, "topic", true, false, false, false, nil); err != nil {
		return err
	}

	queue, err := ch.QueueDeclare("", false, false, true, false, nil)
	if err != nil {
		return err
	}

	c.mu.Lock()
	keys := make([]string, 0, len(c.handlers))
	for event := range c.handlers {
		keys = append(keys, event)
	}
	c.mu.Unlock()

	for _, key := range keys {
		if err := ch.QueueBind(queue.Name, key, c.exchange, false, nil); err != nil {
			return err
		}
	}

	deliveries, err := ch.Consume(queue.Name, "", false, true, false, false, nil)
	if err != nil {
		return err
	}

	c.log.Info("consumer connected and bound")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case delivery, ok := <-deliveries:
			if !ok {
				return amqp.ErrClosed
			}
			c.Dispatch(ctx, delivery.Body)
			if err := delivery.Ack(false); err != nil {
				c.log.WithError(err).Error("failed to ack message")
			}
		}
	}
}

// Dispatch routes one message body to its handler. It never propagates a
// failure: a malformed body, an unknown event name or a handler error is
// logged and the message is considered handled, so one bad message cannot
// stall the queue.
func (c *Consumer) Dispatch(ctx context.Context, body []byte) {
	env, err := DecodeEnvelope(body)
	if err != nil {
		c.log.WithError(err).Error("failed to parse message body")
		return
	}
	if env.Event == "" {
		c.log.Error("message missing 'event' field")
		return
	}

	c.mu.Lock()
	handler, ok := c.handlers[env.Event]
	c.mu.Unlock()

	if !ok {
		c.log.WithField("event", env.Event).Warn("no handler registered for event type")
		return
	}

	if err := handler(ctx, body); err != nil {
		c.log.WithField("event", env.Event).WithError(err).Error("failed to process event")
		return
	}
	c.log.WithField("event", env.Event).Info("processed event")
}
