package mq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rabbitmq/amqp091-go"

	"sitedesk/internal/retry"
)

const (
	// ExchangeName is the topic exchange shared with the external
	// analysis pipeline.
	ExchangeName = "sitedesk.events"

	// RouteInsightCreated announces one freshly generated AI insight.
	RouteInsightCreated = "insight.created"
)

type MessageHandler func(ctx context.Context, data json.RawMessage) error

// Consumer binds one routing key to its own durable queue
// ("insight.created" -> "insight.created.q") and dispatches messages to
// a handler.
type Consumer struct {
	conn       *amqp091.Connection
	channel    *amqp091.Channel
	queue      amqp091.Queue
	routingKey string
	handler    MessageHandler
}

var dialPolicy = retry.Policy{MaxAttempts: 5, Delay: 2 * time.Second, Retryable: retry.IsTransient}

func NewConsumer(url, routingKey string) (*Consumer, error) {
	var conn *amqp091.Connection
	err := dialPolicy.Do(context.Background(), func() error {
		var dialErr error
		conn, dialErr = amqp091.Dial(url)
		return dialErr
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	err = ch.ExchangeDeclare(ExchangeName, "topic", true, false, false, false, nil)
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to declare exchange: %w", err)
	}

	q, err := ch.QueueDeclare(routingKey+".q", true, false, false, false, nil)
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to declare queue: %w", err)
	}

	if err := ch.QueueBind(q.Name, routingKey, ExchangeName, false, nil); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to bind queue: %w", err)
	}

	return &Consumer{
		conn:       conn,
		channel:    ch,
		queue:      q,
		routingKey: routingKey,
	}, nil
}

func (c *Consumer) SetHandler(h MessageHandler) {
	c.handler = h
}

func (c *Consumer) Close() {
	if c.channel != nil {
		_ = c.channel.Close()
	}
	if c.conn != nil {
		_ = c.conn.Close()
	}
}

// StartConsuming blocks; run it in a goroutine. A handler error nacks
// without requeue so a poison message cannot loop forever.
func (c *Consumer) StartConsuming(ctx context.Context) error {
	if c.handler == nil {
		return fmt.Errorf("consumer handler not set")
	}

	msgs, err := c.channel.Consume(c.queue.Name, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("failed to register consumer: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-msgs:
			if !ok {
				return fmt.Errorf("consumer channel closed")
			}
			if err := c.handler(ctx, msg.Body); err != nil {
				_ = msg.Nack(false, false)
				continue
			}
			_ = msg.Ack(false)
		}
	}
}
