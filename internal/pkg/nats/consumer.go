package nats

import (
	"fmt"

	"github.com/nats-io/nats.go"
	"github.com/tecodan/sharetribe/internal/pkg/logger"
)

// MessageHandler is a function that processes NATS messages
type MessageHandler func(message []byte) error

// Consumer handles consuming messages from a NATS subject
type Consumer struct {
	client       *Client
	subscription *nats.Subscription
}

// NewConsumer subscribes to a subject with an optional queue group. Queue
// groups let multiple worker instances share a subject without duplicate
// delivery across instances.
func NewConsumer(client *Client, subject, queueGroup string, handler MessageHandler) (*Consumer, error) {
	cb := func(msg *nats.Msg) {
		if err := handler(msg.Data); err != nil {
			logger.Error("Error processing message",
				logger.String("subject", subject),
				logger.String("queue_group", queueGroup),
				logger.Err(err))
		}
	}

	var (
		subscription *nats.Subscription
		err          error
	)
	if queueGroup != "" {
		subscription, err = client.GetConn().QueueSubscribe(subject, queueGroup, cb)
	} else {
		subscription, err = client.GetConn().Subscribe(subject, cb)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to subscribe to subject: %w", err)
	}

	return &Consumer{client: client, subscription: subscription}, nil
}

// Stop unsubscribes the consumer
func (c *Consumer) Stop() {
	if c.subscription != nil {
		if err := c.subscription.Unsubscribe(); err != nil {
			logger.Error("Failed to unsubscribe", logger.Err(err))
		}
		c.subscription = nil
	}
}

// IsActive reports whether the consumer is actively subscribed
func (c *Consumer) IsActive() bool {
	return c.subscription != nil && c.subscription.IsValid()
}
