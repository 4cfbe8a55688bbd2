package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	cache "github.com/srgjo27/epic_events/internal/adapter/cache/redis"
	"github.com/srgjo27/epic_events/internal/adapter/notify"
	"github.com/srgjo27/epic_events/internal/adapter/repository/postgres"
	"github.com/srgjo27/epic_events/internal/config"
	redisclient "github.com/srgjo27/epic_events/internal/platform/cache"
)

func cacheCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the content cache",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "flush",
		Short: "Drop cached site content so the next request reads the database",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			if cfg.RedisAddr == "" {
				log.Println("REDIS_ADDR not set, nothing to flush")
				return nil
			}

			rdb, err := redisclient.NewRedisClient(cmd.Context(), cfg.RedisAddr)
			if err != nil {
				return err
			}
			defer rdb.Close()

			if err := cache.NewContentCache(nil, rdb, 0).Invalidate(cmd.Context()); err != nil {
				return err
			}

			log.Println("Content cache flushed")
			return nil
		},
	})

	return cmd
}

func notifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "notify",
		Short: "Consume booking events and alert staff",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			db, err := openDatabase(cfg)
			if err != nil {
				return err
			}
			defer db.Close()

			consumerCfg := notify.ConsumerConfig{
				RabbitURL:   cfg.RabbitURL,
				Exchange:    cfg.BookingExchange,
				Queue:       cfg.StaffQueue,
				Prefetch:    16,
				ServiceName: serviceName + "-notify",
			}

			cons := notify.NewConsumer(consumerCfg, newStaff(cfg, postgres.NewBookingRepository(db)))

			for {
				if err := cons.Connect(); err != nil {
					log.Printf("[notify] connect failed: %v; retry in 2s", err)
					time.Sleep(2 * time.Second)
					continue
				}
				break
			}
			defer cons.Close()

			ctx, cancel := context.WithCancel(context.Background())
			go func() {
				if err := cons.Run(ctx); err != nil {
					log.Printf("[notify] run error: %v", err)
				}
			}()

			log.Printf("[notify] started. queue=%s exchange=%s", consumerCfg.Queue, consumerCfg.Exchange)

			sig := make(chan os.Signal, 1)
			signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
			<-sig
			cancel()
			time.Sleep(200 * time.Millisecond)

			return nil
		},
	}
}
