package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/Mithileshan/stockpulse-batch-realtime-etl/pkg/interval"
	"github.com/Mithileshan/stockpulse-batch-realtime-etl/pkg/postgresql"
)

// Config represents the application configuration.
type Config struct {
	App        AppConfig         `envPrefix:"APP_"`
	Postgres   postgresql.Config `envPrefix:"POSTGRES_"`
	TickKafka  TickKafkaConfig   `envPrefix:"TICK_KAFKA_"`
	Aggregator AggregatorConfig  `envPrefix:"AGGREGATOR_"`
	Producer   ProducerConfig    `envPrefix:"PRODUCER_"`
}

// AppConfig represents the application configuration.
type AppConfig struct {
	Name          string `env:"NAME" envDefault:"stockpulse"`
	Environment   string `env:"ENVIRONMENT" envDefault:"development"`
	Port          int    `env:"PORT" envDefault:"8080"`
	LogLevel      string `env:"LOG_LEVEL" envDefault:"info"`
	MigrationsDir string `env:"MIGRATIONS_DIR" envDefault:"migrations"`
}

// TickKafkaConfig represents the tick topic configuration.
type TickKafkaConfig struct {
	Brokers       []string      `env:"BROKERS" envSeparator:"," envDefault:"localhost:9092"`
	Topic         string        `env:"TOPIC" envDefault:"stock.ticks.v1"`
	ConsumerGroup string        `env:"CONSUMER_GROUP" envDefault:"stockpulse-consumer-v1"`
	Workers       int           `env:"WORKERS" envDefault:"3"`
	MaxRetries    int           `env:"MAX_RETRIES" envDefault:"3"`
	RetryBackoff  time.Duration `env:"RETRY_BACKOFF" envDefault:"500ms"`
}

// AggregatorConfig represents the bucket aggregator configuration.
type AggregatorConfig struct {
	Source        string        `env:"SOURCE" envDefault:"aggregator"`
	Interval      string        `env:"INTERVAL" envDefault:"1m"`
	Cadence       time.Duration `env:"CADENCE" envDefault:"30s"`
	LatenessBound time.Duration `env:"LATENESS_BOUND" envDefault:"5s"`
	Lookback      time.Duration `env:"LOOKBACK" envDefault:"24h"`
}

// ProducerConfig represents the simulated tick producer configuration.
type ProducerConfig struct {
	Interval time.Duration `env:"INTERVAL" envDefault:"2s"`
	Symbols  []string      `env:"SYMBOLS" envSeparator:"," envDefault:"AAPL,MSFT,GOOG,AMZN,TSLA,NVDA"`
}

// Load loads the configuration from the environment.
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate fails fast on configuration the services cannot run with.
func (c *Config) Validate() error {
	if len(c.TickKafka.Brokers) == 0 {
		return fmt.Errorf("config: at least one kafka broker is required")
	}
	if c.TickKafka.Topic == "" {
		return fmt.Errorf("config: kafka topic is required")
	}
	if c.Postgres.Host == "" || c.Postgres.Database == "" {
		return fmt.Errorf("config: postgres host and database are required")
	}
	if !interval.IsValidInterval(c.Aggregator.Interval) {
		return fmt.Errorf("config: unsupported aggregator interval %q", c.Aggregator.Interval)
	}
	if c.Aggregator.LatenessBound < 0 {
		return fmt.Errorf("config: lateness bound must not be negative")
	}
	if c.TickKafka.Workers < 1 {
		return fmt.Errorf("config: at least one consumer worker is required")
	}
	return nil
}
