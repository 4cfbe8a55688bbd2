package notify

import (
	"context"

	amqp "github.com/rabbitmq/amqp091-go"
)

type Channel = channel

func NewPublisherWithChannel(ch Channel, exchange string) *Publisher {
	return &Publisher{ch: ch, exchange: exchange}
}

func (c *Consumer) HandleDelivery(ctx context.Context, d amqp.Delivery) error {
	return c.handleDelivery(ctx, d)
}

func NewTelegramWithSender(s Sender, chatID int64) *Telegram {
	return &Telegram{bot: s, chatID: chatID}
}
