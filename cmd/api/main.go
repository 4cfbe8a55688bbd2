package main

import (
	"database/sql"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/srgjo27/epic_events/internal/adapter/notify"
	"github.com/srgjo27/epic_events/internal/adapter/repository/postgres"
	"github.com/srgjo27/epic_events/internal/config"
	"github.com/srgjo27/epic_events/internal/platform/database"
)

const serviceName = "epic-events"

var version = "dev"

var rootCmd = &cobra.Command{
	Use:          "epic-events",
	Short:        "Epic Events landing site and booking intake",
	SilenceUsage: true,
}

func main() {
	rootCmd.Version = version
	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(cacheCmd())
	rootCmd.AddCommand(notifyCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func openDatabase(cfg config.App) (*sql.DB, error) {
	db, err := database.NewPostgresDB(cfg.Database())
	if err != nil {
		return nil, err
	}

	return db, nil
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the content and booking tables",
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

			if err := database.Migrate(cmd.Context(), db); err != nil {
				return err
			}

			log.Println("Schema is up to date")
			return nil
		},
	}
}

// newStaff builds the staff notifier: Telegram when a bot token is set,
// otherwise the process log.
func newStaff(cfg config.App, bookings *postgres.BookingRepository) *notify.Staff {
	var alerter notify.Alerter = notify.LogAlerter{}

	if cfg.TelegramBotToken != "" {
		tg, err := notify.NewTelegram(cfg.TelegramBotToken, cfg.TelegramChatID)
		if err != nil {
			log.Printf("Telegram unavailable, alerting to log: %v", err)
		} else {
			alerter = tg
		}
	}

	return notify.NewStaff(alerter, bookings)
}
