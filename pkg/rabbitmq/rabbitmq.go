package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"apiproducts/internal/models"

	amqp "github.com/streadway/amqp"
	"go.uber.org/zap"
)

// Product events are published to a fanout exchange. Each subscriber binds its
// own queue, so the service's audit consumer never competes with other readers.
const (
	DefaultExchange = "product_events"
	DefaultQueue    = DefaultExchange + ".audit"
)

// Client holds the RabbitMQ connection and channel.
type Client struct {
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
	queue    string
	logger   *zap.Logger
	mu       sync.Mutex
}

// Config holds RabbitMQ connection details.
type Config struct {
	URL      string
	Exchange string
	// Queue is the audit consumer's queue, bound to Exchange.
	Queue string
}

func (cfg Config) withDefaults() Config {
	if cfg.Exchange == "" {
		cfg.Exchange = DefaultExchange
	}
	if cfg.Queue == "" {
		cfg.Queue = DefaultQueue
	}
	return cfg
}

// NewClient connects to RabbitMQ, opens a channel and declares the event
// exchange together with the audit queue bound to it.
func NewClient(cfg Config, logger *zap.Logger) (*Client, error) {
	cfg = cfg.withDefaults()
	if cfg.Queue == cfg.Exchange {
		return nil, fmt.Errorf("audit queue must not share the exchange name %q", cfg.Exchange)
	}

	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	if err := declareTopology(ch, cfg.Exchange, cfg.Queue); err != nil {
		ch.Close()
		conn.Close()
		return nil, err
	}

	logger.Info("rabbitmq client connected",
		zap.String("exchange", cfg.Exchange),
		zap.String("queue", cfg.Queue))

	return &Client{
		conn:     conn,
		channel:  ch,
		exchange: cfg.Exchange,
		queue:    cfg.Queue,
		logger:   logger,
	}, nil
}

func declareTopology(ch *amqp.Channel, exchange, queue string) error {
	err := ch.ExchangeDeclare(
		exchange,
		amqp.ExchangeFanout,
		true,  // durable
		false, // auto-deleted
		false, // internal
		false, // no-wait
		nil,
	)
	if err != nil {
		return fmt.Errorf("failed to declare exchange %s: %w", exchange, err)
	}

	_, err = ch.QueueDeclare(
		queue,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,
	)
	if err != nil {
		return fmt.Errorf("failed to declare %s: %w", queue, err)
	}

	if err := ch.QueueBind(queue, "", exchange, false, nil); err != nil {
		return fmt.Errorf("failed to bind %s to %s: %w", queue, exchange, err)
	}
	return nil
}

// Close closes the RabbitMQ channel and connection.
func (c *Client) Close() error {
	var errs []error
	if c.channel != nil {
		if err := c.channel.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close channel: %w", err))
		}
	}
	if c.conn != nil {
		if err := c.conn.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close connection: %w", err))
		}
	}
	return errors.Join(errs...)
}

// Publish sends event to the event exchange as a persistent JSON message.
func (c *Client) Publish(ctx context.Context, event models.ProductEvent) error {
	if c.channel == nil {
		return errors.New("rabbitmq channel is not available")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal product event: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	err = c.channel.Publish(
		c.exchange,
		event.Type, // routing key, ignored by fanout
		false,      // mandatory
		false,      // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Type:         event.Type,
			Body:         body,
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now(),
		})
	if err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}
	return nil
}

// Consume delivers every event on the audit queue to handler from a background goroutine.
// Messages are acked when handler returns nil and requeued otherwise. Undecodable
// messages are rejected without requeue.
func (c *Client) Consume(handler func(models.ProductEvent) error) error {
	if c.channel == nil {
		return errors.New("rabbitmq channel is not available for consumption")
	}

	msgs, err := c.channel.Consume(
		c.queue,
		"",    // consumer tag
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,
	)
	if err != nil {
		return fmt.Errorf("failed to register consumer: %w", err)
	}

	go func() {
		for msg := range msgs {
			c.handleDelivery(msg, handler)
		}
	}()
	return nil
}

func (c *Client) handleDelivery(msg amqp.Delivery, handler func(models.ProductEvent) error) {
	event, err := DecodeProductEvent(msg.Body)
	if err != nil {
		c.logger.Warn("dropping malformed product event", zap.Uint64("delivery_tag", msg.DeliveryTag), zap.Error(err))
		if nackErr := msg.Nack(false, false); nackErr != nil {
			c.logger.Error("failed to nack message", zap.Uint64("delivery_tag", msg.DeliveryTag), zap.Error(nackErr))
		}
		return
	}

	if err := handler(event); err != nil {
		c.logger.Error("failed to process product event", zap.Uint64("delivery_tag", msg.DeliveryTag), zap.Error(err))
		if nackErr := msg.Nack(false, true); nackErr != nil {
			c.logger.Error("failed to nack message", zap.Uint64("delivery_tag", msg.DeliveryTag), zap.Error(nackErr))
		}
		return
	}

	if ackErr := msg.Ack(false); ackErr != nil {
		c.logger.Error("failed to ack message", zap.Uint64("delivery_tag", msg.DeliveryTag), zap.Error(ackErr))
	}
}

// DecodeProductEvent parses a message body produced by Publish.
func DecodeProductEvent(body []byte) (models.ProductEvent, error) {
	var event models.ProductEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return models.ProductEvent{}, fmt.Errorf("failed to decode product event: %w", err)
	}
	if event.Type == "" || event.ProductID == "" {
		return models.ProductEvent{}, errors.New("product event is missing type or product_id")
	}
	return event, nil
}
