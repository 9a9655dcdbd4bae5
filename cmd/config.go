package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"courier/internal/adapters/out/postgres"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	HTTPPort string

	DBHost         string
	DBPort         string
	DBUser         string
	DBPassword     string
	DBName         string
	DBSslMode      string
	DBMaxOpenConns int

	LogLevel  string
	LogFormat string

	JWTSecret string
	JWTIssuer string

	StripeSecretKey string
	PaymentCurrency string

	RedisAddr      string
	RedisPassword  string
	IdempotencyTTL time.Duration

	KafkaHost        string
	KafkaEventsTopic string

	ReconcileSchedule    string
	ReconcileGracePeriod time.Duration

	CORSAllowOrigins []string
}

var defaults = map[string]any{
	"HTTP_PORT":              "8080",
	"DB_HOST":                "localhost",
	"DB_PORT":                "5432",
	"DB_USER":                "postgres",
	"DB_PASSWORD":            "",
	"DB_NAME":                "courier",
	"DB_SSLMODE":             "disable",
	"DB_MAX_OPEN_CONNS":      25,
	"LOG_LEVEL":              "info",
	"LOG_FORMAT":             "json",
	"JWT_SECRET":             "",
	"JWT_ISSUER":             "",
	"STRIPE_SECRET_KEY":      "",
	"PAYMENT_CURRENCY":       "usd",
	"REDIS_ADDR":             "",
	"REDIS_PASSWORD":         "",
	"IDEMPOTENCY_TTL":        "24h",
	"KAFKA_HOST":             "",
	"KAFKA_EVENTS_TOPIC":     "courier.events",
	"RECONCILE_SCHEDULE":     "@every 5m",
	"RECONCILE_GRACE_PERIOD": "10m",
	"CORS_ALLOW_ORIGINS":     "",
}

// LoadConfig reads the configuration from the environment. Variables from
// envFile are loaded first when the file exists; variables already set in the
// environment win.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	cfg := Config{
		HTTPPort:             v.GetString("HTTP_PORT"),
		DBHost:               v.GetString("DB_HOST"),
		DBPort:               v.GetString("DB_PORT"),
		DBUser:               v.GetString("DB_USER"),
		DBPassword:           v.GetString("DB_PASSWORD"),
		DBName:               v.GetString("DB_NAME"),
		DBSslMode:            v.GetString("DB_SSLMODE"),
		DBMaxOpenConns:       v.GetInt("DB_MAX_OPEN_CONNS"),
		LogLevel:             v.GetString("LOG_LEVEL"),
		LogFormat:            v.GetString("LOG_FORMAT"),
		JWTSecret:            v.GetString("JWT_SECRET"),
		JWTIssuer:            v.GetString("JWT_ISSUER"),
		StripeSecretKey:      v.GetString("STRIPE_SECRET_KEY"),
		PaymentCurrency:      v.GetString("PAYMENT_CURRENCY"),
		RedisAddr:            v.GetString("REDIS_ADDR"),
		RedisPassword:        v.GetString("REDIS_PASSWORD"),
		IdempotencyTTL:       v.GetDuration("IDEMPOTENCY_TTL"),
		KafkaHost:            v.GetString("KAFKA_HOST"),
		KafkaEventsTopic:     v.GetString("KAFKA_EVENTS_TOPIC"),
		ReconcileSchedule:    v.GetString("RECONCILE_SCHEDULE"),
		ReconcileGracePeriod: v.GetDuration("RECONCILE_GRACE_PERIOD"),
		CORSAllowOrigins:     splitList(v.GetString("CORS_ALLOW_ORIGINS")),
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	var problems []error
	if c.HTTPPort == "" {
		problems = append(problems, errors.New("HTTP_PORT is required"))
	}
	if c.DBMaxOpenConns <= 0 {
		problems = append(problems, fmt.Errorf("DB_MAX_OPEN_CONNS must be positive, got %d", c.DBMaxOpenConns))
	}
	if c.IdempotencyTTL <= 0 {
		problems = append(problems, fmt.Errorf("IDEMPOTENCY_TTL must be positive, got %s", c.IdempotencyTTL))
	}
	if c.ReconcileGracePeriod <= 0 {
		problems = append(problems, fmt.Errorf("RECONCILE_GRACE_PERIOD must be positive, got %s", c.ReconcileGracePeriod))
	}
	if c.ReconcileSchedule == "" {
		problems = append(problems, errors.New("RECONCILE_SCHEDULE is required"))
	}
	return errors.Join(problems...)
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// Database returns the connection settings for the PostgreSQL adapter.
func (c Config) Database() postgres.DatabaseConfig {
	return postgres.DatabaseConfig{
		Host:         c.DBHost,
		Port:         c.DBPort,
		User:         c.DBUser,
		Password:     c.DBPassword,
		Name:         c.DBName,
		SSLMode:      c.DBSslMode,
		MaxOpenConns: c.DBMaxOpenConns,
	}
}
