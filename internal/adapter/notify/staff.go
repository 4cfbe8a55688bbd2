package notify

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/srgjo27/epic_events/internal/core/domain"
)

type Alerter interface {
	Alert(ctx context.Context, ev BookingRequested) error
}

// Marker records that staff have seen a booking request.
type Marker interface {
	MarkNotified(ctx context.Context, id uuid.UUID) error
}

// Staff alerts the team about a booking request and flags the stored row.
// It can be used directly as a publisher when no broker is configured.
type Staff struct {
	alerter Alerter
	marker  Marker
}

func NewStaff(alerter Alerter, marker Marker) *Staff {
	return &Staff{alerter: alerter, marker: marker}
}

// Deliver fails only when the alert could not be sent. A flag write that
// fails after the alert went out is logged and the event counts as delivered.
func (s *Staff) Deliver(ctx context.Context, ev BookingRequested) error {
	if err := s.alerter.Alert(ctx, ev); err != nil {
		return fmt.Errorf("alert booking %s: %w", ev.BookingID, err)
	}

	if s.marker == nil {
		return nil
	}

	if err := s.marker.MarkNotified(ctx, ev.BookingID); err != nil {
		log.Printf("[notify] alert sent but flag not stored for booking %s: %v", ev.BookingID, err)
	}

	return nil
}

func (s *Staff) PublishBookingRequest(ctx context.Context, req domain.BookingRequest) error {
	return s.Deliver(ctx, NewBookingRequested(req))
}

// LogAlerter writes alerts to the process log. It stands in when no chat is
// configured.
type LogAlerter struct{}

func (LogAlerter) Alert(_ context.Context, ev BookingRequested) error {
	log.Printf("[notify] %s", FormatBooking(ev))
	return nil
}
