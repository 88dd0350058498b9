package config

import "time"

// Storage backends
const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

// Defaults
const (
	DefaultPort              = "8080"
	DefaultTokenTTL          = 24 * time.Hour
	DefaultDemoTTL           = 24 * time.Hour
	DefaultDemoPurgeInterval = time.Hour
	DefaultSpinRateLimit     = 10
	DefaultSpinRateWindow    = time.Second
	DefaultDBMaxConns        = 20
	DefaultDBMaxConnIdleTime = 5 * time.Minute
	DefaultDBMaxConnLifetime = 30 * time.Minute
	DefaultCORSOrigins       = "*"
)

// Example values shipped in .env.example
const (
	ExampleDBPassword = "change_this_secure_password"
	ExampleJWTSecret  = "generate_with_openssl_rand_hex_32"
)
