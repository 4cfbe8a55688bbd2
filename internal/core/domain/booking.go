package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrMissingFields        = errors.New("required fields missing")
	ErrInvalidEventType     = errors.New("unknown event type")
	ErrInvalidPeopleCount   = errors.New("number of people must be a positive number")
	ErrNoGamesSelected      = errors.New("no games selected")
	ErrSubmissionInProgress = errors.New("booking submission already in progress")
	ErrFormSubmitted        = errors.New("booking form already submitted")
)

type EventType string

const (
	EventBirthday   EventType = "birthday"
	EventCorporate  EventType = "corporate"
	EventTournament EventType = "tournament"
	EventOther      EventType = "other"
)

var EventTypes = []EventType{EventBirthday, EventCorporate, EventTournament, EventOther}

func (e EventType) Valid() bool {
	for _, t := range EventTypes {
		if t == e {
			return true
		}
	}

	return false
}

type SubmissionState string

const (
	SubmissionIdle       SubmissionState = "IDLE"
	SubmissionSubmitting SubmissionState = "SUBMITTING"
	SubmissionSubmitted  SubmissionState = "SUBMITTED"
	SubmissionFailed     SubmissionState = "FAILED"
)

// BookingForm holds the raw field values a visitor has typed so far.
type BookingForm struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Date           string `json:"date"`
	EventType      string `json:"event_type"`
	Requirements   string `json:"requirements"`
	NumberOfPeople string `json:"number_of_people"`
	TimeSlot       string `json:"time_slot"`
}

func (f BookingForm) IsEmpty() bool {
	return f == BookingForm{}
}

// Missing returns the names of required fields that are blank.
func (f BookingForm) Missing() []string {
	var missing []string

	required := []struct {
		name  string
		value string
	}{
		{"name", f.Name},
		{"email", f.Email},
		{"phone", f.Phone},
		{"date", f.Date},
		{"event_type", f.EventType},
	}

	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			missing = append(missing, r.name)
		}
	}

	return missing
}

// BookingRequest is the row written to booking_requests. ID and CreatedAt are
// assigned by the database on insert.
type BookingRequest struct {
	ID              uuid.UUID   `json:"id"`
	Name            string      `json:"name"`
	Email           string      `json:"email"`
	Phone           string      `json:"phone"`
	Date            string      `json:"date"`
	EventType       EventType   `json:"event_type"`
	Requirements    *string     `json:"requirements,omitempty"`
	SelectedGameIDs []uuid.UUID `json:"selected_games"`
	NumberOfPeople  *int        `json:"number_of_people,omitempty"`
	TimeSlot        *string     `json:"time_slot,omitempty"`
	CreatedAt       time.Time   `json:"created_at"`
}

type ValidationError struct {
	Err    error
	Fields []string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "invalid booking: " + e.Err.Error()
	}

	return fmt.Sprintf("invalid booking: %v (%s)", e.Err, strings.Join(e.Fields, ", "))
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

type SubmissionError struct {
	Err error
}

func (e *SubmissionError) Error() string {
	return fmt.Sprintf("failed to submit booking request: %v", e.Err)
}

func (e *SubmissionError) Unwrap() error {
	return e.Err
}
