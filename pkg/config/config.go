package config

import (
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// MustLoad loads the configuration from environment variables and .env file.
func MustLoad[T any](cfg T) {
	_ = godotenv.Load() // Load environment variables from .env file

	env.Must(cfg, env.Parse(cfg))
}

// Load loads the configuration from environment variables and .env file.
func Load[T any](cfg T) error {
	_ = godotenv.Load() // Missing .env file is fine; env vars may be set directly

	return env.Parse(cfg)
}

// Config holds the configuration for the matching engine service.
type Config struct {
	Symbol   string `env:"SYMBOL,required"` // Traded symbol, e.g. BTC/USD
	MaxDepth int    `env:"MAX_DEPTH" envDefault:"0"`

	KafkaConfig          `envPrefix:"KAFKA_"`
	TradePublisherConfig `envPrefix:"TRADE_PUBLISHER_"`
	RedisConfig          `envPrefix:"REDIS_"`
	SnapshotConfig       `envPrefix:"SNAPSHOT_"`
	MetricsConfig        `envPrefix:"METRICS_"`
}

// KafkaConfig holds the configuration for the order command consumer.
// The reader is partition-bound, so there is no consumer group setting.
type KafkaConfig struct {
	Topic   string   `env:"TOPIC,required"`
	Brokers []string `env:"BROKER,required"`
}

// TradePublisherConfig holds the configuration for the trade event producer.
type TradePublisherConfig struct {
	Topic   string   `env:"TOPIC,required"`
	Brokers []string `env:"BROKER,required"`
}

// RedisConfig holds the connection settings for the snapshot store.
type RedisConfig struct {
	Addrs    string `env:"ADDRESS,required"` // Comma-separated list of Redis addresses
	Password string `env:"PASSWORD" envDefault:""`
	Username string `env:"USERNAME" envDefault:""`
	DB       int    `env:"DB" envDefault:"0"`
}

// SnapshotConfig controls how often book snapshots are taken.
type SnapshotConfig struct {
	Interval    time.Duration `env:"INTERVAL" envDefault:"30s"`
	OffsetDelta int64         `env:"OFFSET_DELTA" envDefault:"1000"`
}

// MetricsConfig holds the listen address of the Prometheus endpoint.
type MetricsConfig struct {
	Addr string `env:"ADDR" envDefault:":9100"`
}
