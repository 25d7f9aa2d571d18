package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"budget_tracker/internal/domain/entities"

	"github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type publishedMessage struct {
	exchange string
	key      string
	msg      amqp091.Publishing
}

type fakeChannel struct {
	published []publishedMessage
	err       error
}

func (f *fakeChannel) PublishWithContext(_ context.Context, exchange, key string, _, _ bool, msg amqp091.Publishing) error {
	if f.err != nil {
		return f.err
	}
	f.published = append(f.published, publishedMessage{exchange: exchange, key: key, msg: msg})
	return nil
}

func (f *fakeChannel) Close() error { return nil }

func newTestPublisher(ch *fakeChannel) *RabbitMQPublisher {
	fixed := time.Date(2025, 9, 1, 8, 0, 0, 0, time.UTC)
	return &RabbitMQPublisher{ch: ch, exchange: "budget.events", now: func() time.Time { return fixed }}
}

func TestRabbitMQPublisher_BudgetCreated(t *testing.T) {
	ch := &fakeChannel{}
	p := newTestPublisher(ch)

	err := p.BudgetCreated(context.Background(), entities.Budget{ID: 7, ProjectID: 2, ProjectName: "Bridge", CreatorID: 2, Status: entities.BudgetStatusPending, TotalAmount: 350})
	require.NoError(t, err)
	require.Len(t, ch.published, 1)

	got := ch.published[0]
	assert.Equal(t, "budget.events", got.exchange)
	assert.Equal(t, RoutingKeyBudgetCreated, got.key)
	assert.Equal(t, "application/json", got.msg.ContentType)
	assert.Equal(t, amqp091.Persistent, got.msg.DeliveryMode)

	var event BudgetEvent
	require.NoError(t, json.Unmarshal(got.msg.Body, &event))
	assert.Equal(t, int64(7), event.BudgetID)
	assert.Equal(t, "pending", event.Status)
	assert.Equal(t, 350.0, event.TotalAmount)
	assert.Empty(t, event.PreviousStatus)
}

func TestRabbitMQPublisher_BudgetStatusChanged(t *testing.T) {
	ch := &fakeChannel{}
	p := newTestPublisher(ch)

	b := entities.Budget{ID: 7, Status: entities.BudgetStatusApproved, ApproverName: "admin"}
	require.NoError(t, p.BudgetStatusChanged(context.Background(), b, entities.BudgetStatusPending))

	var event BudgetEvent
	require.NoError(t, json.Unmarshal(ch.published[0].msg.Body, &event))
	assert.Equal(t, RoutingKeyBudgetStatusChanged, ch.published[0].key)
	assert.Equal(t, "pending", event.PreviousStatus)
	assert.Equal(t, "approved", event.Status)
	assert.Equal(t, "admin", event.ApproverName)
}

func TestRabbitMQPublisher_WrapsPublishError(t *testing.T) {
	boom := errors.New("channel closed")
	p := newTestPublisher(&fakeChannel{err: boom})

	err := p.BudgetCreated(context.Background(), entities.Budget{ID: 1})
	assert.ErrorIs(t, err, boom)
}
