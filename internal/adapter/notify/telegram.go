package notify

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// Telegram posts new booking requests to the staff chat.
type Telegram struct {
	bot    Sender
	chatID int64
}

func NewTelegram(token string, chatID int64) (*Telegram, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("telegram login: %w", err)
	}

	return &Telegram{bot: bot, chatID: chatID}, nil
}

func (t *Telegram) Alert(ctx context.Context, ev BookingRequested) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := tgbotapi.NewMessage(t.chatID, FormatBooking(ev))
	if _, err := t.bot.Send(msg); err != nil {
		return fmt.Errorf("telegram send: %w", err)
	}

	return nil
}

func FormatBooking(ev BookingRequested) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "🆕 New booking request\n")
	fmt.Fprintf(&sb, "Name: %s\n", ev.Name)
	fmt.Fprintf(&sb, "Email: %s\n", ev.Email)
	fmt.Fprintf(&sb, "Phone: %s\n", ev.Phone)
	fmt.Fprintf(&sb, "Date: %s", ev.Date)
	if ev.TimeSlot != "" {
		fmt.Fprintf(&sb, " (%s)", ev.TimeSlot)
	}
	fmt.Fprintf(&sb, "\nEvent: %s\n", ev.EventType)
	if ev.NumberOfPeople > 0 {
		fmt.Fprintf(&sb, "Guests: %d\n", ev.NumberOfPeople)
	}
	fmt.Fprintf(&sb, "Games: %d selected\n", len(ev.SelectedGames))
	if ev.Requirements != "" {
		fmt.Fprintf(&sb, "Notes: %s\n", ev.Requirements)
	}
	fmt.Fprintf(&sb, "Ref: %s", ev.BookingID)

	return sb.String()
}
