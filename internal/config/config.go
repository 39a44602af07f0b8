package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type AppConfig struct {
	Server     ServerConfig
	Postgres   PostgresConfig
	Redis      RedisConfig
	Kafka      KafkaConfig
	Mail       MailConfig
	Scheduler  SchedulerConfig
	Dispatcher DispatcherConfig
	Pruner     PrunerConfig
}

type ServerConfig struct {
	Port      string `envconfig:"SERVER_PORT" default:"8080"`
	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	JWTSecret string `envconfig:"JWT_SECRET" required:"true"`
}

type PostgresConfig struct {
	Host     string `envconfig:"POSTGRES_HOST" required:"true"`
	Port     int    `envconfig:"POSTGRES_PORT" required:"true"`
	User     string `envconfig:"POSTGRES_USER" required:"true"`
	Password string `envconfig:"POSTGRES_PASSWORD" required:"true"`
	DBName   string `envconfig:"POSTGRES_DB" required:"true"`
}

type RedisConfig struct {
	Host     string        `envconfig:"REDIS_HOST" required:"true"`
	Port     int           `envconfig:"REDIS_PORT" required:"true"`
	CacheTTL time.Duration `envconfig:"MONITOR_CACHE_TTL" default:"30s"`
}

// Brokers may be empty; the stream alert channel is only wired up when at
// least one broker is configured.
type KafkaConfig struct {
	Brokers    []string `envconfig:"KAFKA_BROKERS"`
	AlertTopic string   `envconfig:"KAFKA_ALERT_TOPIC" default:"statusping.alerts"`
}

type MailConfig struct {
	Email            string `envconfig:"MAIL_EMAIL" required:"true"`
	Password         string `envconfig:"MAIL_PASSWORD" required:"true"`
	Host             string `envconfig:"MAIL_HOST" required:"true"`
	Port             int    `envconfig:"MAIL_PORT" required:"true"`
	AdminMailAddress string `envconfig:"MAIL_ADMIN_EMAIL" required:"true"`
}

type SchedulerConfig struct {
	MaxConcurrentChecks int           `envconfig:"MAX_CONCURRENT_CHECKS" default:"100"`
	FailureThreshold    int           `envconfig:"FAILURE_THRESHOLD" default:"3"`
	StartupJitter       time.Duration `envconfig:"SCHEDULER_STARTUP_JITTER" default:"10s"`
	StoreMaxRetries     int           `envconfig:"STORE_MAX_RETRIES" default:"3"`
	StoreInitialBackoff time.Duration `envconfig:"STORE_INITIAL_BACKOFF" default:"100ms"`
}

type DispatcherConfig struct {
	QueueSize      int           `envconfig:"ALERT_QUEUE_SIZE" default:"500"`
	MaxRetries     int           `envconfig:"ALERT_MAX_RETRIES" default:"5"`
	InitialBackoff time.Duration `envconfig:"ALERT_INITIAL_BACKOFF" default:"1s"`
	WebhookTimeout time.Duration `envconfig:"ALERT_WEBHOOK_TIMEOUT" default:"10s"`
}

type PrunerConfig struct {
	Schedule  string `envconfig:"PRUNER_SCHEDULE" default:"@hourly"`
	BatchSize int    `envconfig:"PRUNER_BATCH_SIZE" default:"5000"`
}

func LoadConfig(path string) (AppConfig, error) {
	_ = godotenv.Load(path)

	var cfg AppConfig
	err := envconfig.Process("", &cfg)
	return cfg, err
}
