package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/srgjo27/epic_events/internal/core/domain"
	"github.com/srgjo27/epic_events/internal/core/i18n"
	"github.com/srgjo27/epic_events/internal/core/services"
)

type ActionHandler struct {
	content *services.ContentService
}

func NewActionHandler(content *services.ContentService) *ActionHandler {
	return &ActionHandler{content: content}
}

func wantsJSON(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "application/json")
}

func redirectBack(w http.ResponseWriter, r *http.Request, anchor string) {
	http.Redirect(w, r, "/"+anchor, http.StatusSeeOther)
}

// SetLanguage switches to the posted lang, or toggles when none is given.
func (h *ActionHandler) SetLanguage(w http.ResponseWriter, r *http.Request) {
	session := SessionFrom(r.Context())

	if code := r.PostFormValue("lang"); code != "" {
		session.SetLanguage(domain.ParseLanguage(code))
	} else {
		session.ToggleLanguage()
	}

	if wantsJSON(r) {
		respondJSON(w, http.StatusOK, map[string]string{"lang": string(session.Language())})
		return
	}

	redirectBack(w, r, "")
}

func (h *ActionHandler) ToggleGame(w http.ResponseWriter, r *http.Request) {
	session := SessionFrom(r.Context())

	game, err := h.content.FindGame(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respondError(w, http.StatusNotFound, "game not found", nil)
			return
		}

		respondError(w, http.StatusBadGateway, "failed to load games", err)
		return
	}

	selected := session.Selection().Toggle(*game)

	if wantsJSON(r) {
		respondJSON(w, http.StatusOK, map[string]interface{}{
			"id":       game.ID,
			"selected": selected,
			"count":    session.Selection().Len(),
		})
		return
	}

	redirectBack(w, r, "#games")
}

func (h *ActionHandler) ClearSelection(w http.ResponseWriter, r *http.Request) {
	session := SessionFrom(r.Context())
	session.Selection().Clear()

	if wantsJSON(r) {
		respondJSON(w, http.StatusOK, map[string]int{"count": 0})
		return
	}

	redirectBack(w, r, "#booking")
}

func formFromRequest(r *http.Request) domain.BookingForm {
	return domain.BookingForm{
		Name:           r.PostFormValue("name"),
		Email:          r.PostFormValue("email"),
		Phone:          r.PostFormValue("phone"),
		Date:           r.PostFormValue("date"),
		EventType:      r.PostFormValue("event_type"),
		Requirements:   r.PostFormValue("requirements"),
		NumberOfPeople: r.PostFormValue("number_of_people"),
		TimeSlot:       r.PostFormValue("time_slot"),
	}
}

// SubmitBooking stores the posted form on the session and submits it. The
// outcome reaches the visitor as a toast on the next render.
func (h *ActionHandler) SubmitBooking(w http.ResponseWriter, r *http.Request) {
	session := SessionFrom(r.Context())
	flow := session.Booking()

	if err := flow.SetForm(formFromRequest(r)); err != nil {
		session.Notify(domain.Notification{
			Kind:    domain.NotifyError,
			Message: i18n.Translate(session.Language(), "booking.inProgress"),
		})
		h.bookingResponse(w, r, nil, err)
		return
	}

	// the insert is not abandoned when the visitor navigates away
	req, err := flow.Submit(context.WithoutCancel(r.Context()))
	if errors.Is(err, domain.ErrSubmissionInProgress) {
		session.Notify(domain.Notification{
			Kind:    domain.NotifyError,
			Message: i18n.Translate(session.Language(), "booking.inProgress"),
		})
	}

	h.bookingResponse(w, r, req, err)
}

func (h *ActionHandler) bookingResponse(w http.ResponseWriter, r *http.Request, req *domain.BookingRequest, err error) {
	if !wantsJSON(r) {
		redirectBack(w, r, "#booking")
		return
	}

	var validationErr *domain.ValidationError
	var submissionErr *domain.SubmissionError

	switch {
	case err == nil:
		respondJSON(w, http.StatusCreated, req)
	case errors.As(err, &validationErr):
		respondJSON(w, http.StatusUnprocessableEntity, map[string]interface{}{
			"error":  validationErr.Err.Error(),
			"fields": validationErr.Fields,
		})
	case errors.Is(err, domain.ErrSubmissionInProgress), errors.Is(err, domain.ErrFormSubmitted):
		respondError(w, http.StatusConflict, err.Error(), nil)
	case errors.As(err, &submissionErr):
		respondError(w, http.StatusBadGateway, "failed to submit booking request", err)
	default:
		respondError(w, http.StatusInternalServerError, "internal server error", err)
	}
}
