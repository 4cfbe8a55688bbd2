package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	cache "github.com/srgjo27/epic_events/internal/adapter/cache/redis"
	"github.com/srgjo27/epic_events/internal/adapter/handler"
	"github.com/srgjo27/epic_events/internal/adapter/notify"
	"github.com/srgjo27/epic_events/internal/adapter/repository/postgres"
	"github.com/srgjo27/epic_events/internal/config"
	"github.com/srgjo27/epic_events/internal/core/ports"
	"github.com/srgjo27/epic_events/internal/core/services"
	redisclient "github.com/srgjo27/epic_events/internal/platform/cache"
	"github.com/srgjo27/epic_events/internal/platform/database"
	"github.com/srgjo27/epic_events/internal/platform/obs"
)

func serveCmd() *cobra.Command {
	var migrate bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the landing site",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			return serve(cfg, migrate)
		},
	}

	cmd.Flags().BoolVar(&migrate, "migrate", false, "Apply the schema before serving")
	return cmd
}

func serve(cfg config.App, migrate bool) error {
	ctx := context.Background()

	shutdownTracer, err := obs.InitTracer(ctx, serviceName, version, cfg.OTLPEndpoint)
	if err != nil {
		log.Printf("Tracing disabled: %v", err)
	} else {
		defer shutdownTracer(context.Background())
	}

	db, err := openDatabase(cfg)
	if err != nil {
		return fmt.Errorf("failed to connect to db after retries: %w", err)
	}
	defer db.Close()

	if migrate {
		if err := database.Migrate(ctx, db); err != nil {
			return err
		}
	}

	var contentRepo ports.ContentRepository = postgres.NewContentRepository(db)

	if cfg.RedisAddr != "" {
		rdb, err := redisclient.NewRedisClient(ctx, cfg.RedisAddr)
		if err != nil {
			log.Printf("Content cache disabled: %v", err)
		} else {
			defer rdb.Close()
			contentRepo = cache.NewContentCache(contentRepo, rdb, cfg.ContentCacheTTL)
		}
	}

	bookingRepo := postgres.NewBookingRepository(db)

	var publishers notify.Fanout

	if cfg.RabbitURL != "" {
		pub, err := notify.NewPublisher(cfg.RabbitURL, cfg.BookingExchange)
		if err != nil {
			log.Printf("Booking broker unavailable, notifying staff inline: %v", err)
		} else {
			defer pub.Close()
			publishers = append(publishers, pub)
		}
	}

	if len(publishers) == 0 {
		publishers = append(publishers, newStaff(cfg, bookingRepo))
	}

	content := services.NewContentService(contentRepo)
	sessions := services.NewSessionManager(bookingRepo, publishers, cfg.SessionIdleTimeout,
		services.WithMaxSessions(cfg.MaxSessions))

	cleanupCtx, stopCleanup := context.WithCancel(ctx)
	defer stopCleanup()

	go func() {
		sessions.RunBackgroundCleanup(cleanupCtx)
	}()

	router := handler.NewRouter(handler.RouterConfig{
		Content:          content,
		Sessions:         sessions,
		DB:               db,
		CarouselInterval: cfg.CarouselInterval,
		CORSOrigins:      cfg.CORSOrigins,
	})

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 35 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Printf("Server starting on %s", cfg.HTTPAddr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serveErr:
		sessions.CloseAll()
		return fmt.Errorf("server startup failed: %w", err)
	case <-quit:
	}
	log.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// hijacked websockets are not tracked by Shutdown
	sessions.CloseAll()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
		return err
	}

	log.Println("Server exiting")
	return nil
}
