package notify

import (
	"context"
	"fmt"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"
)

type ConsumerConfig struct {
	RabbitURL   string
	Exchange    string
	Queue       string
	Prefetch    int
	ServiceName string
}

// Consumer drains booking events from RabbitMQ and hands them to Staff.
type Consumer struct {
	cfg   ConsumerConfig
	staff *Staff

	conn *amqp.Connection
	ch   *amqp.Channel
}

func NewConsumer(cfg ConsumerConfig, staff *Staff) *Consumer {
	if cfg.Prefetch <= 0 {
		cfg.Prefetch = 8
	}

	return &Consumer{cfg: cfg, staff: staff}
}

func (c *Consumer) Connect() error {
	conn, err := amqp.Dial(c.cfg.RabbitURL)
	if err != nil {
		return fmt.Errorf("rabbit dial failed: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return fmt.Errorf("open channel failed: %w", err)
	}

	fail := func(err error) error {
		_ = ch.Close()
		_ = conn.Close()
		return err
	}

	if err := ch.ExchangeDeclare(c.cfg.Exchange, "topic", true, false, false, false, nil); err != nil {
		return fail(fmt.Errorf("declare exchange %s failed: %w", c.cfg.Exchange, err))
	}

	q, err := ch.QueueDeclare(c.cfg.Queue, true, false, false, false, nil)
	if err != nil {
		return fail(fmt.Errorf("declare queue failed: %w", err))
	}

	if err := ch.QueueBind(q.Name, RKBookingRequested, c.cfg.Exchange, false, nil); err != nil {
		return fail(fmt.Errorf("bind queue to exchange=%s key=%s failed: %w", c.cfg.Exchange, RKBookingRequested, err))
	}

	if err := ch.Qos(c.cfg.Prefetch, 0, false); err != nil {
		return fail(fmt.Errorf("set qos failed: %w", err))
	}

	c.conn = conn
	c.ch = ch
	return nil
}

func (c *Consumer) Close() {
	if c.ch != nil {
		_ = c.ch.Close()
	}
	if c.conn != nil {
		_ = c.conn.Close()
	}
}

func (c *Consumer) Run(ctx context.Context) error {
	msgs, err := c.ch.ConsumeWithContext(ctx, c.cfg.Queue, c.cfg.ServiceName, false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("consume failed: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case d, ok := <-msgs:
			if !ok {
				return nil
			}
			if err := c.handleDelivery(ctx, d); err != nil {
				log.Printf("[notify] handle error key=%s err=%v -> Nack&requeue", d.RoutingKey, err)
				_ = d.Nack(false, true)
				continue
			}
			_ = d.Ack(false)
		}
	}
}

func (c *Consumer) handleDelivery(ctx context.Context, d amqp.Delivery) error {
	switch d.RoutingKey {
	case RKBookingRequested:
		ev, err := decode[BookingRequested](d.Body)
		if err != nil {
			log.Printf("[notify] drop malformed %s: %v", d.RoutingKey, err)
			return nil
		}
		return c.staff.Deliver(ctx, ev)

	default:
		log.Printf("[notify] skip unknown key=%s", d.RoutingKey)
	}

	return nil
}
