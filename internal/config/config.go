package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/srgjo27/epic_events/internal/platform/database"
)

type App struct {
	// HTTP
	HTTPAddr    string   `envconfig:"HTTP_ADDR" default:":8080"`
	CORSOrigins []string `envconfig:"CORS_ORIGINS" default:"*"`

	// DB
	DBHost     string `envconfig:"DB_HOST" default:"localhost"`
	DBPort     string `envconfig:"DB_PORT" default:"5432"`
	DBUser     string `envconfig:"DB_USER" default:"postgres"`
	DBPassword string `envconfig:"DB_PASSWORD"`
	DBName     string `envconfig:"DB_NAME" default:"epic_events"`

	DBConnectRetries int           `envconfig:"DB_CONNECT_RETRIES" default:"10"`
	DBRetryInterval  time.Duration `envconfig:"DB_RETRY_INTERVAL" default:"2s"`

	// Cache, disabled when RedisAddr is empty
	RedisAddr       string        `envconfig:"REDIS_ADDR"`
	ContentCacheTTL time.Duration `envconfig:"CONTENT_CACHE_TTL" default:"5m"`

	// Sessions
	SessionIdleTimeout time.Duration `envconfig:"SESSION_IDLE_TIMEOUT" default:"30m"`
	MaxSessions        int           `envconfig:"MAX_SESSIONS" default:"10000"`
	CarouselInterval   time.Duration `envconfig:"CAROUSEL_INTERVAL" default:"5s"`

	// Staff notifications
	RabbitURL        string `envconfig:"RABBIT_URL"`
	BookingExchange  string `envconfig:"BOOKING_EXCHANGE" default:"booking.exchange"`
	StaffQueue       string `envconfig:"STAFF_QUEUE" default:"booking.staff.q"`
	TelegramBotToken string `envconfig:"TELEGRAM_BOT_TOKEN"`
	TelegramChatID   int64  `envconfig:"TELEGRAM_CHAT_ID"`

	// Tracing, disabled when empty
	OTLPEndpoint string `envconfig:"OTEL_EXPORTER_OTLP_ENDPOINT"`
}

func (c App) Database() database.Config {
	return database.Config{
		Host:     c.DBHost,
		Port:     c.DBPort,
		User:     c.DBUser,
		Password: c.DBPassword,
		DBName:   c.DBName,

		MaxRetries:    c.DBConnectRetries,
		RetryInterval: c.DBRetryInterval,
	}
}

// Load reads .env when present, then the process environment.
func Load() (App, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Println(".env file not found, using OS environment.")
	}

	var c App
	err := envconfig.Process("", &c)
	return c, err
}
