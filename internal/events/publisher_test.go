package events

import (
	"context"
	"errors"
	"testing"

	"cavemap-backend/internal/logger"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeChannel records what the publisher does with its channel
type fakeChannel struct {
	declared   []string
	published  []amqp.Publishing
	keys       []string
	publishErr error
	closed     bool
}

func (f *fakeChannel) ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error {
	f.declared = append(f.declared, name+"/"+kind)
	return nil
}

func (f *fakeChannel) PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error {
	if f.publishErr != nil {
		return f.publishErr
	}
	f.keys = append(f.keys, key)
	f.published = append(f.published, msg)
	return nil
}

func (f *fakeChannel) Close() error {
	f.closed = true
	return nil
}

func newTestPublisher(ch publishChannel) (*Publisher, *int) {
	p := NewPublisher("amqp://unused", ExchangeCaveEvents, logger.New())
	dials := 0
	p.dial = func() (*amqp.Connection, publishChannel, error) {
		dials++
		return nil, ch, nil
	}
	return p, &dials
}

func TestPublisher_LazyConnectAndPublish(t *testing.T) {
	ch := &fakeChannel{}
	p, dials := newTestPublisher(ch)

	event := NewCaveDeleted(7, "Krubera", "owner@test.com", []uint{1, 2})
	require.NoError(t, p.Publish(context.Background(), EventCaveDeleted, event))
	require.NoError(t, p.Publish(context.Background(), EventCaveDeleted, event))

	assert.Equal(t, 1, *dials, "connection is reused across publishes")
	assert.Equal(t, []string{ExchangeCaveEvents + "/topic"}, ch.declared)
	require.Len(t, ch.published, 2)
	assert.Equal(t, EventCaveDeleted, ch.keys[0], "event name is the routing key")
	assert.Equal(t, "application/json", ch.published[0].ContentType)
	assert.Equal(t, uint8(amqp.Persistent), ch.published[0].DeliveryMode)
	assert.Contains(t, string(ch.published[0].Body), `"caveName":"Krubera"`)
}

func TestPublisher_ReconnectsAfterPublishFailure(t *testing.T) {
	ch := &fakeChannel{publishErr: errors.New("channel gone")}
	p, dials := newTestPublisher(ch)

	err := p.Publish(context.Background(), EventCaveDeleted, NewCaveDeleted(7, "Krubera", "o@test.com", nil))
	require.Error(t, err)

	// The broken channel was discarded; the next publish dials again.
	ch.publishErr = nil
	require.NoError(t, p.Publish(context.Background(), EventCaveDeleted, NewCaveDeleted(7, "Krubera", "o@test.com", nil)))
	assert.Equal(t, 2, *dials)
}

func TestPublisher_DialFailureSurfaces(t *testing.T) {
	p := NewPublisher("amqp://unused", ExchangeUserEvents, logger.New())
	p.dial = func() (*amqp.Connection, publishChannel, error) {
		return nil, nil, errors.New("broker unreachable")
	}

	err := p.Publish(context.Background(), EventUserDeleted, UserDeletedEvent{Event: EventUserDeleted, Email: "x@test.com"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connect to broker")
}

func TestPublisher_MarshalFailureDoesNotDial(t *testing.T) {
	ch := &fakeChannel{}
	p, dials := newTestPublisher(ch)

	err := p.Publish(context.Background(), EventCaveDeleted, make(chan int))
	require.Error(t, err)
	assert.Zero(t, *dials)
}

func TestPublisher_Close(t *testing.T) {
	ch := &fakeChannel{}
	p, _ := newTestPublisher(ch)
	require.NoError(t, p.Publish(context.Background(), EventCaveDeleted, NewCaveDeleted(1, "x", "o@test.com", nil)))

	require.NoError(t, p.Close())
	assert.True(t, ch.closed)
	require.NoError(t, p.Close())
}
