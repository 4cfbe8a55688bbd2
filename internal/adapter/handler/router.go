package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/srgjo27/epic_events/internal/core/services"
)

type RouterConfig struct {
	Content          *services.ContentService
	Sessions         *services.SessionManager
	DB               Pinger
	CarouselInterval time.Duration
	CORSOrigins      []string
}

// corsOptions sends the session cookie cross-origin only to an explicit
// origin list. A wildcard origin gets anonymous access.
func corsOptions(origins []string) cors.Options {
	credentials := len(origins) > 0
	for _, o := range origins {
		if strings.Contains(o, "*") {
			credentials = false
		}
	}

	return cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: credentials,
		MaxAge:           300,
	}
}

func NewRouter(cfg RouterConfig) http.Handler {
	page := NewPageHandler(cfg.Content, cfg.CarouselInterval)
	actions := NewActionHandler(cfg.Content)
	gallery := NewGalleryHandler(cfg.Content, cfg.CarouselInterval)
	api := NewAPIHandler(cfg.Content, cfg.Sessions, cfg.DB)

	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)

	r.Get("/health", api.HealthCheck)

	r.Group(func(r chi.Router) {
		r.Use(Sessions(cfg.Sessions))

		// websocket connections outlive any request timeout
		r.Get("/gallery/ws", gallery.Serve)

		r.Group(func(r chi.Router) {
			r.Use(chimiddleware.Timeout(30 * time.Second))

			r.Get("/", page.Home)
			r.Post("/language", actions.SetLanguage)
			r.Post("/games/{id}/toggle", actions.ToggleGame)
			r.Post("/selection/clear", actions.ClearSelection)
			r.Post("/bookings", actions.SubmitBooking)

			r.Route("/api/v1", func(r chi.Router) {
				r.Use(cors.Handler(corsOptions(cfg.CORSOrigins)))

				r.Get("/games", api.GetGames)
				r.Get("/selection", api.GetSelection)
			})
		})
	})

	return r
}
