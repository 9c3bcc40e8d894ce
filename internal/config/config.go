package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

var (
	// ErrReadConfig ошибка чтения/декодирования файла конфигурации
	ErrReadConfig = errors.New("config: failed to read config file")

	// ErrInvalidConfig ошибка валидации конфигурации
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

// Config конфигурация сервиса
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Database  DatabaseConfig  `toml:"database"`
	Logs      LogsConfig      `toml:"logs"`
	Metrics   MetricsConfig   `toml:"metrics"`
	Booking   BookingConfig   `toml:"booking"`
	Admin     AdminConfig     `toml:"admin"`
	Razorpay  RazorpayConfig  `toml:"razorpay"`
	Kafka     KafkaConfig     `toml:"kafka"`
	Redis     RedisConfig     `toml:"redis"`
	RateLimit RateLimitConfig `toml:"rate_limit"`
}

// ServerConfig параметры HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig параметры подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN строка подключения для lib/pq
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// LogsConfig параметры логирования
type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// MetricsConfig параметры prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// BookingConfig параметры бронирования
type BookingConfig struct {
	// Timezone часовой пояс, в котором интерпретируются дата и время бронирования
	Timezone string `toml:"timezone"`
}

// Location возвращает часовой пояс бронирования
func (c BookingConfig) Location() (*time.Location, error) {
	return time.LoadLocation(c.Timezone)
}

// AdminConfig список администраторов платформы
type AdminConfig struct {
	Emails []string `toml:"emails"`
}

// IsAdmin проверяет, является ли email администратором (без учета регистра)
func (c AdminConfig) IsAdmin(email string) bool {
	for _, admin := range c.Emails {
		if strings.EqualFold(strings.TrimSpace(admin), strings.TrimSpace(email)) {
			return true
		}
	}
	return false
}

// RazorpayConfig параметры платежного шлюза
type RazorpayConfig struct {
	URL       string `toml:"url"`
	KeyID     string `toml:"key_id"`
	KeySecret string `toml:"key_secret"`
	Currency  string `toml:"currency"`
	Timeout   int    `toml:"timeout"` // секунды
}

// KafkaConfig параметры публикации событий
// Пустой список брокеров отключает публикацию
type KafkaConfig struct {
	Brokers      []string `toml:"brokers"`
	TopicPrefix  string   `toml:"topic_prefix"`
	WriteTimeout int      `toml:"write_timeout"` // секунды
}

// Enabled включена ли публикация событий
func (c KafkaConfig) Enabled() bool {
	return len(c.Brokers) > 0
}

// RedisConfig параметры Redis (используется rate limiter'ом)
type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// RateLimitConfig параметры ограничения частоты запросов
// Если Redis не задан, используется локальный лимитер
type RateLimitConfig struct {
	Enabled  bool   `toml:"enabled"`
	Requests int    `toml:"requests"`
	Window   int    `toml:"window"` // секунды
	Prefix   string `toml:"prefix"`
	FailOpen bool   `toml:"fail_open"`
}

// Load загружает конфигурацию из TOML файла, применяет значения по умолчанию
// и переопределения из переменных окружения
func Load(path string) (*Config, error) {
	cfg := defaultConfig()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrReadConfig, path, err)
	}

	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 15,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{
			Level: "info",
			File:  "logs/app.log",
		},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "parking-service",
		},
		Booking: BookingConfig{
			Timezone: "Asia/Kolkata",
		},
		Razorpay: RazorpayConfig{
			URL:      "https://api.razorpay.com/v1",
			Currency: "INR",
			Timeout:  10,
		},
		Kafka: KafkaConfig{
			TopicPrefix:  "parking",
			WriteTimeout: 5,
		},
		RateLimit: RateLimitConfig{
			Requests: 200,
			Window:   60,
			Prefix:   "rl",
			FailOpen: true,
		},
	}
}

// applyEnv секреты не хранятся в файле и передаются через окружение
func applyEnv(cfg *Config) {
	if v, ok := os.LookupEnv("DB_PASSWORD"); ok {
		cfg.Database.Password = v
	}
	if v, ok := os.LookupEnv("RAZORPAY_KEY_ID"); ok {
		cfg.Razorpay.KeyID = v
	}
	if v, ok := os.LookupEnv("RAZORPAY_KEY_SECRET"); ok {
		cfg.Razorpay.KeySecret = v
	}
	if v, ok := os.LookupEnv("REDIS_PASSWORD"); ok {
		cfg.Redis.Password = v
	}
}

// Validate проверяет корректность конфигурации
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port must be in range 1..65535", ErrInvalidConfig)
	}
	if c.Database.Host == "" || c.Database.DBName == "" || c.Database.User == "" {
		return fmt.Errorf("%w: database.host, database.dbname and database.user are required", ErrInvalidConfig)
	}
	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		return fmt.Errorf("%w: metrics.path must start with '/'", ErrInvalidConfig)
	}
	if _, err := c.Booking.Location(); err != nil {
		return fmt.Errorf("%w: booking.timezone: %v", ErrInvalidConfig, err)
	}
	if c.RateLimit.Enabled && (c.RateLimit.Requests <= 0 || c.RateLimit.Window <= 0) {
		return fmt.Errorf("%w: rate_limit.requests and rate_limit.window must be positive", ErrInvalidConfig)
	}
	return nil
}
