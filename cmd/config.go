package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"foodorder/internal/pkg/errs"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	HTTPPort string

	DBHost              string
	DBPort              string
	DBUser              string
	DBPassword          string
	DBName              string
	DBSslMode           string
	DBMigrationsEnabled bool

	KafkaBrokers           []string
	KafkaOrderChangedTopic string

	OrderRetention    time.Duration
	RetentionSchedule string
}

var defaults = map[string]any{
	"HTTP_PORT":                 "8080",
	"DB_HOST":                   "localhost",
	"DB_PORT":                   "5432",
	"DB_USER":                   "postgres",
	"DB_PASSWORD":               "postgres",
	"DB_NAME":                   "foodorder",
	"DB_SSLMODE":                "disable",
	"DB_MIGRATIONS_ENABLED":     true,
	"KAFKA_BROKERS":             "",
	"KAFKA_ORDER_CHANGED_TOPIC": "order.changed",
	"ORDER_RETENTION_DAYS":      30,
	"RETENTION_SCHEDULE":        "@hourly",
}

// LoadConfig reads envFile into the environment when it exists and resolves
// every key from the environment, falling back to defaults.
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

	retentionDays := v.GetInt("ORDER_RETENTION_DAYS")
	if retentionDays <= 0 {
		return Config{}, errs.NewValueIsOutOfRangeError("ORDER_RETENTION_DAYS", retentionDays, 1, "unbounded")
	}

	return Config{
		HTTPPort:               v.GetString("HTTP_PORT"),
		DBHost:                 v.GetString("DB_HOST"),
		DBPort:                 v.GetString("DB_PORT"),
		DBUser:                 v.GetString("DB_USER"),
		DBPassword:             v.GetString("DB_PASSWORD"),
		DBName:                 v.GetString("DB_NAME"),
		DBSslMode:              v.GetString("DB_SSLMODE"),
		DBMigrationsEnabled:    v.GetBool("DB_MIGRATIONS_ENABLED"),
		KafkaBrokers:           splitList(v.GetString("KAFKA_BROKERS")),
		KafkaOrderChangedTopic: v.GetString("KAFKA_ORDER_CHANGED_TOPIC"),
		OrderRetention:         time.Duration(retentionDays) * 24 * time.Hour,
		RetentionSchedule:      v.GetString("RETENTION_SCHEDULE"),
	}, nil
}

// DSN renders the postgres connection string used by gorm and goose.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// KafkaEnabled reports whether order events go to a broker.
func (c Config) KafkaEnabled() bool {
	return len(c.KafkaBrokers) > 0
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
