package handler

import (
	"bytes"
	"context"
	"embed"
	"html/template"
	"log"
	"net/http"
	"time"

	"github.com/srgjo27/epic_events/internal/core/services"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/*.html"))

const defaultRenderTimeout = 3 * time.Second

type PageHandler struct {
	content       *services.ContentService
	interval      time.Duration
	renderTimeout time.Duration
	now           func() time.Time
}

func NewPageHandler(content *services.ContentService, carouselInterval time.Duration) *PageHandler {
	if carouselInterval <= 0 {
		carouselInterval = services.DefaultCarouselInterval
	}

	return &PageHandler{
		content:       content,
		interval:      carouselInterval,
		renderTimeout: defaultRenderTimeout,
		now:           time.Now,
	}
}

// Home renders the landing page in the session language. Sections whose
// fetch has not resolved within the render timeout are drawn in their
// loading state.
func (h *PageHandler) Home(w http.ResponseWriter, r *http.Request) {
	session := SessionFrom(r.Context())

	page := h.content.NewPageView()
	page.Mount(r.Context(), session)
	defer page.Unmount()

	ctx, cancel := context.WithTimeout(r.Context(), h.renderTimeout)
	page.Wait(ctx)
	cancel()

	data := buildPage(page, session, h.interval, h.now())

	var buf bytes.Buffer
	if err := pageTemplate.ExecuteTemplate(&buf, "page.html", data); err != nil {
		log.Printf("Error rendering page: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Content-Language", string(data.Lang))
	_, _ = buf.WriteTo(w)
}
