package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/srgjo27/epic_events/internal/core/i18n"
	"github.com/srgjo27/epic_events/internal/core/services"
)

type Pinger interface {
	PingContext(ctx context.Context) error
}

type APIHandler struct {
	content  *services.ContentService
	sessions *services.SessionManager
	db       Pinger
}

func NewAPIHandler(content *services.ContentService, sessions *services.SessionManager, db Pinger) *APIHandler {
	return &APIHandler{content: content, sessions: sessions, db: db}
}

type gameJSON struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Image       string     `json:"image"`
	CategoryID  *uuid.UUID `json:"category_id,omitempty"`
	Selected    bool       `json:"selected"`
}

// HealthCheck reports database reachability.
func (h *APIHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		respondError(w, http.StatusServiceUnavailable, "database unhealthy", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().UTC(),
		"sessions":  h.sessions.Len(),
	})
}

// GetGames lists the catalog in the session language, flagging the games the
// visitor has selected.
func (h *APIHandler) GetGames(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	session := SessionFrom(r.Context())
	t := i18n.Translator{Lang: session.Language()}

	f := h.content.GamesFetcher()
	f.Start(ctx)
	res := f.Wait(ctx)
	f.Unmount()

	switch {
	case res.Failed():
		respondError(w, http.StatusBadGateway, "failed to retrieve games", res.Err)
		return
	case res.Loading():
		respondError(w, http.StatusGatewayTimeout, "timed out retrieving games", ctx.Err())
		return
	}

	games := make([]gameJSON, 0, len(res.Data))
	for _, g := range res.Data {
		games = append(games, gameJSON{
			ID:          g.ID,
			Name:        t.Text(g.Name),
			Description: t.Text(g.Description),
			Image:       g.Image,
			CategoryID:  g.CategoryID,
			Selected:    session.Selection().Contains(g.ID),
		})
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"games": games,
		"count": len(games),
		"lang":  t.Lang,
	})
}

func (h *APIHandler) GetSelection(w http.ResponseWriter, r *http.Request) {
	session := SessionFrom(r.Context())
	t := i18n.Translator{Lang: session.Language()}

	games := session.Selection().Games()
	out := make([]gameJSON, 0, len(games))
	for _, g := range games {
		out = append(out, gameJSON{
			ID:         g.ID,
			Name:       t.Text(g.Name),
			Image:      g.Image,
			CategoryID: g.CategoryID,
			Selected:   true,
		})
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"games": out,
		"count": len(out),
	})
}
