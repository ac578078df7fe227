package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds process configuration for the api, worker and consumer binaries.
type Config struct {
	AppName     string
	Environment string
	Port        string
	MetricsPort string
	JWTSecret   string

	DBHost         string
	DBPort         string
	DBUser         string
	DBPassword     string
	DBName         string
	DBSSLMode      string
	DBMaxOpenConns int
	DBMaxIdleConns int
	DBAutoMigrate  bool

	RedisAddr string

	KafkaBroker        string
	KafkaConsumerGroup string
	OutboxPollInterval time.Duration

	ConnectMaxRetries int
	RBACModelPath     string
	TaxTableCacheTTL  time.Duration
}

// Load reads .env (when present) and the environment, applying defaults.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		AppName:     getenv("APP_NAME", "backend-erp"),
		Environment: getenv("APP_ENV", "development"),
		Port:        getenv("PORT", "3000"),
		MetricsPort: getenv("METRICS_PORT", "9091"),
		JWTSecret:   strings.TrimSpace(getenv("JWT_SECRET", "")),

		DBHost:         getenv("DB_HOST", "localhost"),
		DBPort:         getenv("DB_PORT", "5432"),
		DBUser:         getenv("DB_USER", "postgres"),
		DBPassword:     getenv("DB_PASSWORD", "postgres"),
		DBName:         getenv("DB_NAME", "erp"),
		DBSSLMode:      getenv("DB_SSLMODE", "disable"),
		DBMaxOpenConns: getenvInt("DB_MAX_OPEN_CONNS", 25),
		DBMaxIdleConns: getenvInt("DB_MAX_IDLE_CONNS", 10),
		DBAutoMigrate:  getenvBool("DB_AUTO_MIGRATE", false),

		RedisAddr: getenv("REDIS_ADDR", "localhost:6379"),

		KafkaBroker:        strings.TrimSpace(getenv("KAFKA_BROKER", "")),
		KafkaConsumerGroup: getenv("KAFKA_CONSUMER_GROUP", "backend-erp-employee-salary"),
		OutboxPollInterval: getenvDuration("OUTBOX_POLL_INTERVAL", 3*time.Second),

		ConnectMaxRetries: getenvInt("CONNECT_MAX_RETRIES", 5),
		RBACModelPath:     getenv("RBAC_MODEL_PATH", "internal/rbac/infra/model.conf"),
		TaxTableCacheTTL:  getenvDuration("TAX_TABLE_CACHE_TTL", 6*time.Hour),
	}
}

func (c Config) IsProduction() bool {
	return c.Environment == "production"
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvBool(key string, def bool) bool {
	value := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
	switch value {
	case "1", "true", "yes", "y", "on":
		return true
	case "0", "false", "no", "n", "off":
		return false
	default:
		return def
	}
}

func getenvInt(key string, def int) int {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return def
	}
	return parsed
}

func getenvDuration(key string, def time.Duration) time.Duration {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return def
	}
	return parsed
}
