package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"sekor-bkc/pkg/config"
	"sekor-bkc/pkg/logger"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	ContentExchange       = "content_events"
	NotificationQueueName = "notification_queue"
)

// Routing keys for domain events.
const (
	EventStorySubmitted = "story.submitted"
	EventStoryReviewed  = "story.reviewed"
	EventStoryPublished = "story.published"
	EventAuthorFollowed = "author.followed"
)

// Event is the JSON body of every published message.
type Event struct {
	Type       string                 `json:"type"`
	OccurredAt time.Time              `json:"occurred_at"`
	Priority   int                    `json:"priority"`
	Data       map[string]interface{} `json:"data"`
}

// Publisher emits domain events. Implementations must be safe for concurrent use.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

type Client struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	logger  *logger.Logger
	mu      sync.Mutex
}

func NewRabbitMQClient(cfg *config.Config, log *logger.Logger) (*Client, error) {
	conn, err := amqp.Dial(cfg.RabbitMQURL())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	err = channel.ExchangeDeclare(
		ContentExchange, // name
		"topic",         // type
		true,            // durable
		false,           // auto-deleted
		false,           // internal
		false,           // no-wait
		nil,             // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare exchange: %w", err)
	}

	// Priority queue so editor-facing events jump ahead of social ones
	_, err = channel.QueueDeclare(
		NotificationQueueName, // name
		true,                  // durable
		false,                 // delete when unused
		false,                 // exclusive
		false,                 // no-wait
		amqp.Table{"x-max-priority": 10},
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare queue: %w", err)
	}

	for _, key := range []string{"story.*", "author.*"} {
		if err := channel.QueueBind(NotificationQueueName, key, ContentExchange, false, nil); err != nil {
			channel.Close()
			conn.Close()
			return nil, fmt.Errorf("failed to bind queue: %w", err)
		}
	}

	log.Info("Connected to RabbitMQ at %s:%s", cfg.RabbitMQHost, cfg.RabbitMQPort)

	return &Client{
		conn:    conn,
		channel: channel,
		logger:  log,
	}, nil
}

func (c *Client) Close() error {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}

// Publish sends event to the content exchange using its type as routing key.
func (c *Client) Publish(ctx context.Context, event Event) error {
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	err = c.channel.PublishWithContext(ctx,
		ContentExchange, // exchange
		event.Type,      // routing key
		false,           // mandatory
		false,           // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			Priority:     clampPriority(event.Priority),
			DeliveryMode: amqp.Persistent,
			Timestamp:    event.OccurredAt,
		},
	)
	if err != nil {
		c.logger.Error("[RABBITMQ] Failed to publish %s: %v", event.Type, err)
		return fmt.Errorf("failed to publish message: %w", err)
	}

	c.logger.Debug("[RABBITMQ] Published %s to exchange=%s", event.Type, ContentExchange)
	return nil
}

// NopPublisher drops events. Used when messaging is disabled.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, Event) error { return nil }

func clampPriority(p int) uint8 {
	if p < 0 {
		return 0
	}
	if p > 10 {
		return 10
	}
	return uint8(p)
}
