package messaging

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"budget_tracker/internal/domain/entities"
	"budget_tracker/internal/usecase/interfaces"

	"github.com/rabbitmq/amqp091-go"
)

// channel is the part of *amqp091.Channel the publisher uses.
type channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
	Close() error
}

// RabbitMQPublisher sends budget events to a durable topic exchange.
type RabbitMQPublisher struct {
	conn     *amqp091.Connection
	mu       sync.Mutex
	ch       channel
	exchange string
	now      func() time.Time
}

var _ interfaces.IBudgetEventPublisher = (*RabbitMQPublisher)(nil)

func NewRabbitMQPublisher(url, exchange string) (*RabbitMQPublisher, error) {
	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial AMQP: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	err = ch.ExchangeDeclare(
		exchange, // name
		"topic",  // type
		true,     // durable
		false,    // auto-deleted
		false,    // internal
		false,    // no-wait
		nil,      // arguments
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	log.Printf("[messaging][rabbitmq] connected exchange=%s", exchange)
	return &RabbitMQPublisher{conn: conn, ch: ch, exchange: exchange, now: time.Now}, nil
}

func (p *RabbitMQPublisher) BudgetCreated(ctx context.Context, b entities.Budget) error {
	return p.publish(ctx, RoutingKeyBudgetCreated, newBudgetEvent(RoutingKeyBudgetCreated, b, p.now()))
}

func (p *RabbitMQPublisher) BudgetStatusChanged(ctx context.Context, b entities.Budget, previous entities.BudgetStatus) error {
	event := newBudgetEvent(RoutingKeyBudgetStatusChanged, b, p.now())
	event.PreviousStatus = string(previous)
	return p.publish(ctx, RoutingKeyBudgetStatusChanged, event)
}

func (p *RabbitMQPublisher) publish(ctx context.Context, key string, event BudgetEvent) error {
	body, err := event.ToJSON()
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	p.mu.Lock()
	defer p.mu.Unlock()
	err = p.ch.PublishWithContext(
		ctx,
		p.exchange, // exchange
		key,        // routing key
		false,      // mandatory
		false,      // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			Timestamp:    event.OccurredAt,
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("publish %s: %w", key, err)
	}

	log.Printf("[messaging][rabbitmq] published key=%s budget_id=%d status=%s", key, event.BudgetID, event.Status)
	return nil
}

func (p *RabbitMQPublisher) Close() error {
	if p.ch != nil {
		p.ch.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}
