package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config captures process-level configuration. Everything comes from the
// environment so main stays lean.
type Config struct {
	Addr           string
	DatabaseURL    string
	Redis          RedisConfig
	KafkaBrokers   []string
	KafkaTopic     string
	AdminToken     string
	JWTSigningKey  string
	PushGatewayURL string
}

// RedisConfig holds connection settings for the overview cache.
// An empty URL disables Redis entirely.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// FromEnv builds a Config from environment variables with development defaults.
func FromEnv() Config {
	cfg := Config{
		Addr:           getenv("GEMEENTENET_ADDR", ":8080"),
		DatabaseURL:    getenv("GEMEENTENET_DATABASE_URL", ""),
		AdminToken:     getenv("GEMEENTENET_ADMIN_TOKEN", ""),
		JWTSigningKey:  getenv("GEMEENTENET_JWT_SIGNING_KEY", "dev-secret-key-change-in-production"),
		PushGatewayURL: getenv("GEMEENTENET_PUSH_GATEWAY_URL", ""),
		KafkaTopic:     getenv("GEMEENTENET_KAFKA_AUDIT_TOPIC", "lidmaat-oudit"),
		Redis: RedisConfig{
			URL:          getenv("GEMEENTENET_REDIS_URL", ""),
			PoolSize:     getenvInt("GEMEENTENET_REDIS_POOL_SIZE", 10),
			MinIdleConns: getenvInt("GEMEENTENET_REDIS_MIN_IDLE_CONNS", 2),
			DialTimeout:  5 * time.Second,
			ReadTimeout:  3 * time.Second,
			WriteTimeout: 3 * time.Second,
		},
	}
	if brokers := os.Getenv("GEMEENTENET_KAFKA_BROKERS"); brokers != "" {
		cfg.KafkaBrokers = strings.Split(brokers, ",")
	}
	return cfg
}

func getenv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}
