package services

import (
	"context"
	"errors"
	"log"
	"strconv"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/srgjo27/epic_events/internal/core/domain"
	"github.com/srgjo27/epic_events/internal/core/i18n"
	"github.com/srgjo27/epic_events/internal/core/ports"
)

// BookingFlow owns one booking form and its submission lifecycle:
// IDLE -> SUBMITTING -> SUBMITTED | FAILED, and FAILED -> IDLE on resubmit.
// SUBMITTED is terminal for the flow.
type BookingFlow struct {
	repo      ports.BookingRepository
	publisher ports.BookingPublisher
	selection *SelectionStore
	notifier  ports.Notifier
	language  func() domain.Language

	mu      sync.Mutex
	state   domain.SubmissionState
	form    domain.BookingForm
	lastErr error
}

func NewBookingFlow(repo ports.BookingRepository, publisher ports.BookingPublisher, selection *SelectionStore, notifier ports.Notifier, language func() domain.Language) *BookingFlow {
	if language == nil {
		language = func() domain.Language { return domain.DefaultLanguage }
	}

	return &BookingFlow{
		repo:      repo,
		publisher: publisher,
		selection: selection,
		notifier:  notifier,
		language:  language,
		state:     domain.SubmissionIdle,
	}
}

func (f *BookingFlow) State() domain.SubmissionState {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.state
}

func (f *BookingFlow) Form() domain.BookingForm {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.form
}

func (f *BookingFlow) LastError() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.lastErr
}

// SetForm replaces the field values. Fields are frozen while a submission is
// in flight and after a successful one.
func (f *BookingFlow) SetForm(form domain.BookingForm) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch f.state {
	case domain.SubmissionSubmitting:
		return domain.ErrSubmissionInProgress
	case domain.SubmissionSubmitted:
		return domain.ErrFormSubmitted
	}

	f.form = form
	return nil
}

// Submit validates the form and the current selection and, when both are
// acceptable, writes exactly one booking request. Every call that reaches a
// terminal outcome produces exactly one notification.
func (f *BookingFlow) Submit(ctx context.Context) (*domain.BookingRequest, error) {
	f.mu.Lock()

	switch f.state {
	case domain.SubmissionSubmitting:
		f.mu.Unlock()
		return nil, domain.ErrSubmissionInProgress
	case domain.SubmissionSubmitted:
		f.mu.Unlock()
		return nil, domain.ErrFormSubmitted
	case domain.SubmissionFailed:
		f.state = domain.SubmissionIdle
	}

	req, err := buildBookingRequest(f.form, f.selection.IDs())
	if err != nil {
		f.state = domain.SubmissionFailed
		f.lastErr = err
		f.mu.Unlock()

		f.notify(domain.NotifyError, validationMessageKey(err))
		return nil, err
	}

	f.state = domain.SubmissionSubmitting
	f.mu.Unlock()

	ctx, span := tracer.Start(ctx, "booking.submit")
	span.SetAttributes(attribute.Int("booking.selected_games", len(req.SelectedGameIDs)))
	err = f.repo.CreateBookingRequest(ctx, req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()

	if err != nil {
		log.Printf("Error submitting booking request for %s: %v", req.Email, err)
		subErr := &domain.SubmissionError{Err: err}

		f.mu.Lock()
		f.state = domain.SubmissionFailed
		f.lastErr = subErr
		f.mu.Unlock()

		f.notify(domain.NotifyError, "booking.failure")
		return nil, subErr
	}

	f.mu.Lock()
	f.state = domain.SubmissionSubmitted
	f.form = domain.BookingForm{}
	f.lastErr = nil
	f.mu.Unlock()

	// games toggled while the insert was running stay selected
	f.selection.Remove(req.SelectedGameIDs...)
	f.notify(domain.NotifySuccess, "booking.success")

	if f.publisher != nil {
		if err := f.publisher.PublishBookingRequest(ctx, *req); err != nil {
			log.Printf("Failed to publish booking request %s: %v", req.ID, err)
		}
	}

	return req, nil
}

func (f *BookingFlow) notify(kind domain.NotificationKind, key string) {
	if f.notifier == nil {
		return
	}

	f.notifier.Notify(domain.Notification{
		Kind:    kind,
		Message: i18n.Translate(f.language(), key),
	})
}

func buildBookingRequest(form domain.BookingForm, selected []uuid.UUID) (*domain.BookingRequest, error) {
	if missing := form.Missing(); len(missing) > 0 {
		return nil, &domain.ValidationError{Err: domain.ErrMissingFields, Fields: missing}
	}

	if len(selected) == 0 {
		return nil, &domain.ValidationError{Err: domain.ErrNoGamesSelected}
	}

	eventType := domain.EventType(strings.TrimSpace(form.EventType))
	if !eventType.Valid() {
		return nil, &domain.ValidationError{Err: domain.ErrInvalidEventType, Fields: []string{"event_type"}}
	}

	var people *int
	if raw := strings.TrimSpace(form.NumberOfPeople); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			return nil, &domain.ValidationError{Err: domain.ErrInvalidPeopleCount, Fields: []string{"number_of_people"}}
		}
		people = &n
	}

	ids := make([]uuid.UUID, len(selected))
	copy(ids, selected)

	return &domain.BookingRequest{
		Name:            strings.TrimSpace(form.Name),
		Email:           strings.TrimSpace(form.Email),
		Phone:           strings.TrimSpace(form.Phone),
		Date:            strings.TrimSpace(form.Date),
		EventType:       eventType,
		Requirements:    optional(form.Requirements),
		SelectedGameIDs: ids,
		NumberOfPeople:  people,
		TimeSlot:        optional(form.TimeSlot),
	}, nil
}

func validationMessageKey(err error) string {
	switch {
	case errors.Is(err, domain.ErrMissingFields):
		return "booking.missingFields"
	case errors.Is(err, domain.ErrNoGamesSelected):
		return "booking.selectGames"
	case errors.Is(err, domain.ErrInvalidEventType):
		return "booking.invalidEvent"
	case errors.Is(err, domain.ErrInvalidPeopleCount):
		return "booking.invalidPeople"
	default:
		return "booking.failure"
	}
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	return &s
}
