package notify

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/srgjo27/epic_events/internal/core/domain"
)

const RKBookingRequested = "booking.requested"

// BookingRequested is the payload published once a booking request is stored.
type BookingRequested struct {
	BookingID      uuid.UUID   `json:"booking_id"`
	Name           string      `json:"name"`
	Email          string      `json:"email"`
	Phone          string      `json:"phone"`
	Date           string      `json:"date"`
	EventType      string      `json:"event_type"`
	Requirements   string      `json:"requirements,omitempty"`
	SelectedGames  []uuid.UUID `json:"selected_games"`
	NumberOfPeople int         `json:"number_of_people,omitempty"`
	TimeSlot       string      `json:"time_slot,omitempty"`
	CreatedAt      time.Time   `json:"created_at"`
}

func NewBookingRequested(req domain.BookingRequest) BookingRequested {
	ev := BookingRequested{
		BookingID:     req.ID,
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		Date:          req.Date,
		EventType:     string(req.EventType),
		SelectedGames: req.SelectedGameIDs,
		CreatedAt:     req.CreatedAt,
	}

	if req.Requirements != nil {
		ev.Requirements = *req.Requirements
	}
	if req.NumberOfPeople != nil {
		ev.NumberOfPeople = *req.NumberOfPeople
	}
	if req.TimeSlot != nil {
		ev.TimeSlot = *req.TimeSlot
	}

	return ev
}

func decode[T any](b []byte) (T, error) {
	var t T
	if err := json.Unmarshal(b, &t); err != nil {
		var zero T
		return zero, fmt.Errorf("decode payload failed: %w", err)
	}

	return t, nil
}
