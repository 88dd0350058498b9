package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string
	Environment string
	ServiceName string
	Version     string

	Storage      string // "postgres" or "memory"
	MachinesFile string // Optional YAML catalog overriding the embedded one

	DBUser            string
	DBPassword        string
	DBHost            string
	DBPort            string
	DBName            string
	DBMaxConns        int
	DBMaxConnIdleTime time.Duration
	DBMaxConnLifetime time.Duration

	JWTSecret string
	TokenTTL  time.Duration

	RedisAddr      string // Empty disables spin rate limiting
	SpinRateLimit  int
	SpinRateWindow time.Duration

	CORSOrigins       []string
	TrustedProxies    []string // Only these peers may set X-Forwarded-For
	DemoTTL           time.Duration
	DemoPurgeInterval time.Duration
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFormat:   getEnv("LOG_FORMAT", "text"),
		Environment: getEnv("ENVIRONMENT", "dev"),
		ServiceName: getEnv("SERVICE_NAME", "reel-casino"),
		Version:     getEnv("VERSION", "dev"),

		Storage:      strings.ToLower(getEnv("STORAGE", StoragePostgres)),
		MachinesFile: getEnv("MACHINES_FILE", ""),

		DBUser:            getEnv("DB_USER", "postgres"),
		DBPassword:        getEnv("DB_PASSWORD", "postgres"),
		DBHost:            getEnv("DB_HOST", "localhost"),
		DBPort:            getEnv("DB_PORT", "5432"),
		DBName:            getEnv("DB_NAME", "reelcasino"),
		DBMaxConns:        getEnvAsInt("DB_MAX_CONNS", DefaultDBMaxConns),
		DBMaxConnIdleTime: getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", DefaultDBMaxConnIdleTime),
		DBMaxConnLifetime: getEnvAsDuration("DB_MAX_CONN_LIFETIME", DefaultDBMaxConnLifetime),

		JWTSecret: getEnv("JWT_SECRET", ""),
		TokenTTL:  getEnvAsDuration("TOKEN_TTL", DefaultTokenTTL),

		RedisAddr:      getEnv("REDIS_ADDR", ""),
		SpinRateLimit:  getEnvAsInt("SPIN_RATE_LIMIT", DefaultSpinRateLimit),
		SpinRateWindow: getEnvAsDuration("SPIN_RATE_WINDOW", DefaultSpinRateWindow),

		CORSOrigins:       splitList(getEnv("CORS_ORIGINS", DefaultCORSOrigins)),
		TrustedProxies:    splitList(getEnv("TRUSTED_PROXIES", "")),
		DemoTTL:           getEnvAsDuration("DEMO_TTL", DefaultDemoTTL),
		DemoPurgeInterval: getEnvAsDuration("DEMO_PURGE_INTERVAL", DefaultDemoPurgeInterval),
	}

	port, err := strconv.Atoi(getEnv("PORT", DefaultPort))
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable must be set for security")
	}

	if cfg.Storage != StoragePostgres && cfg.Storage != StorageMemory {
		return nil, fmt.Errorf("invalid STORAGE value %q: expected %s or %s", cfg.Storage, StoragePostgres, StorageMemory)
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt parses an integer variable, falling back to the default when unset or malformed
func getEnvAsInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsDuration parses a time.Duration variable, falling back to the default when unset or malformed
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}

// UsesPostgres reports whether the postgres backend is selected
func (c *Config) UsesPostgres() bool {
	return c.Storage == StoragePostgres
}
