package database

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"log"
	"time"

	_ "github.com/lib/pq"
)

//go:embed schema.sql
var schema string

type Config struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string

	MaxRetries    int
	RetryInterval time.Duration
}

func (c Config) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.User, c.Password, c.Host, c.Port, c.DBName)
}

const (
	defaultMaxRetries    = 10
	defaultRetryInterval = 2 * time.Second
)

func NewPostgresDB(cfg Config) (*sql.DB, error) {
	var db *sql.DB
	var err error

	maxRetries, retryInterval := cfg.MaxRetries, cfg.RetryInterval
	if maxRetries <= 0 {
		maxRetries = defaultMaxRetries
	}
	if retryInterval <= 0 {
		retryInterval = defaultRetryInterval
	}

	for i := 1; i <= maxRetries; i++ {
		log.Printf("Connecting to database (Attempt %d/%d)...", i, maxRetries)
		db, err = sql.Open("postgres", cfg.DSN())
		if err == nil {
			err = db.Ping()
		}

		if err == nil {
			log.Println("Database connected successfully!")
			db.SetMaxOpenConns(20)
			db.SetMaxIdleConns(5)
			db.SetConnMaxIdleTime(5 * time.Minute)
			return db, nil
		}

		if db != nil {
			db.Close()
		}

		if i == maxRetries {
			break
		}

		log.Printf("Database not ready yet. Waiting %s...", retryInterval)
		time.Sleep(retryInterval)
	}

	return nil, fmt.Errorf("failed to connect to database: %w", err)
}

// Migrate creates the content and booking tables when they do not exist yet.
func Migrate(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}

	return nil
}
