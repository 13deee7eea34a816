package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	DefaultValidityMinutes = 30
	MaxValidityMinutes     = 525600
)

// ClickConfig настройки асинхронной записи кликов
type ClickConfig struct {
	QueueSize int `env:"CLICK_QUEUE_SIZE"`
	Workers   int `env:"CLICK_WORKERS"`
	// DataLimit максимальное число хранимых записей о кликах на одну ссылку, 0 - без ограничения
	DataLimit int `env:"CLICK_DATA_LIMIT"`
}

// RetryConfig настройки повторных попыток генерации кода
type RetryConfig struct {
	MaxAttempts int `env:"RETRY_MAX_ATTEMPTS"`
}

// LogSinkConfig настройки удаленного приемника событий логирования
type LogSinkConfig struct {
	URL       string        `env:"LOG_SINK_URL"`
	Token     string        `env:"LOG_SINK_TOKEN"`
	Level     string        `env:"LOG_SINK_LEVEL"`
	QueueSize int           `env:"LOG_SINK_QUEUE_SIZE"`
	RPS       float64       `env:"LOG_SINK_RPS"`
	Timeout   time.Duration `env:"LOG_SINK_TIMEOUT"`
}

// Enabled сообщает, настроен ли удаленный приемник
func (c LogSinkConfig) Enabled() bool {
	return c.URL != ""
}

// Config содержит конфигурацию приложения
type Config struct {
	ServerAddress   NetworkAddress `env:"SERVER_ADDRESS"`
	BaseURL         URLPrefix      `env:"BASE_URL"`
	DefaultValidity int            `env:"DEFAULT_VALIDITY"`
	SweepInterval   time.Duration  `env:"SWEEP_INTERVAL"`
	ShutdownTimeout time.Duration  `env:"SHUTDOWN_TIMEOUT"`

	Click   ClickConfig
	Retry   RetryConfig
	LogSink LogSinkConfig
}

// NewDefaultConfig возвращает конфигурацию со значениями по умолчанию
func NewDefaultConfig() *Config {
	return &Config{
		ServerAddress:   NetworkAddress{Host: "localhost", Port: 5000},
		BaseURL:         URLPrefix("http://localhost:5000"),
		DefaultValidity: DefaultValidityMinutes,
		SweepInterval:   time.Hour,
		ShutdownTimeout: 10 * time.Second,
		Click: ClickConfig{
			QueueSize: 1024,
			Workers:   4,
			DataLimit: 1000,
		},
		Retry: RetryConfig{
			MaxAttempts: 10,
		},
		LogSink: LogSinkConfig{
			Level:     "info",
			QueueSize: 256,
			RPS:       20,
			Timeout:   3 * time.Second,
		},
	}
}

// Load загружает конфигурацию из аргументов командной строки и переменных окружения.
// Приоритет: переменные окружения > флаги > значения по умолчанию.
func Load() (*Config, error) {
	// .env не обязателен
	_ = godotenv.Load()

	return parse(os.Args[1:])
}

func parse(args []string) (*Config, error) {
	cfg := NewDefaultConfig()

	fs := flag.NewFlagSet("shortener", flag.ContinueOnError)
	fs.Var(&cfg.ServerAddress, "a", "address to run HTTP server")
	fs.Var(&cfg.BaseURL, "b", "base URL for shortened URL")
	fs.IntVar(&cfg.DefaultValidity, "v", cfg.DefaultValidity, "default link validity in minutes")
	fs.DurationVar(&cfg.SweepInterval, "s", cfg.SweepInterval, "interval between expired links cleanups")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("failed to parse flags: %w", err)
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.DefaultValidity < 1 || c.DefaultValidity > MaxValidityMinutes {
		return fmt.Errorf("default validity must be between 1 and %d minutes, got %d", MaxValidityMinutes, c.DefaultValidity)
	}
	if c.SweepInterval <= 0 {
		return errors.New("sweep interval must be positive")
	}
	if c.Click.Workers < 1 {
		return errors.New("click workers must be at least 1")
	}
	if c.Click.QueueSize < 1 {
		return errors.New("click queue size must be at least 1")
	}
	if c.Click.DataLimit < 0 {
		return errors.New("click data limit must not be negative")
	}
	if c.Retry.MaxAttempts < 1 {
		return errors.New("retry max attempts must be at least 1")
	}
	if c.LogSink.Enabled() {
		if c.LogSink.QueueSize < 1 {
			return errors.New("log sink queue size must be at least 1")
		}
		if c.LogSink.Timeout <= 0 {
			return errors.New("log sink timeout must be positive")
		}
		if c.LogSink.RPS < 0 {
			return errors.New("log sink rps must not be negative")
		}
	}

	return nil
}
