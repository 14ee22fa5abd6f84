package app

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Issuer         string        // Issuer claim for tokens (default: democat)
	Audience       string        // Audience claim for tokens (default: democat)
	BootstrapToken string        // Optional: token required to perform bootstrap
	NumKeys        int           // Number of signing keys (default: 3, max: 10)
	AccessTokenTTL time.Duration // Access token lifetime (default: 5h)

	KeyStorageMode string        // Key storage: persistent or ephemeral (default: persistent)
	MasterKeyFile  string        // Path to the key encrypting master key (default: ./master.key)
	KeyLifetime    time.Duration // How long a stored key signs (default: 90 days)
	KeyGracePeriod time.Duration // Expired keys verify this long before pruning (default: 30 days)

	DatabaseFile string // Path to SQLite database file (default: ./catalog.db)
	PepperFile   string // Path to the password hashing pepper (default: ./pepper)
	Timezone     string // Location calendar days are counted in (default: UTC)

	DemoCacheSize     int           // Demo LRU entries (default: 256)
	DemoCacheTTL      time.Duration // Demo LRU entry lifetime (default: 5m)
	ActivityRetention time.Duration // Activity older than this is pruned (default: 90 days)

	Env                  string        // Environment (dev, staging, prod) (default: dev)
	LogLevel             string        // Log level (debug, info, warn, error) (default: info)
	LogFormat            string        // Log format (json, text) (default: json)
	Port                 int           // HTTP server port (default: 8080)
	ShutdownGracePeriod  time.Duration // Graceful shutdown timeout (default: 10s)
	HousekeepingInterval time.Duration // Housekeeping interval (default: 1h)
}

// LoadConfig reads the configuration from the environment. A .env file in
// the working directory is loaded first when present; variables already set
// in the environment win.
func LoadConfig() Config {
	_ = godotenv.Load()

	return Config{
		Issuer:         getEnvOrDefault("CATALOG_ISSUER", "democat"),
		Audience:       getEnvOrDefault("CATALOG_AUDIENCE", "democat"),
		BootstrapToken: os.Getenv("BOOTSTRAP_TOKEN"),
		NumKeys:        getEnvIntOrDefault("CATALOG_NUM_KEYS", 0),
		AccessTokenTTL: getEnvDurationOrDefault("ACCESS_TOKEN_TTL", 5*time.Hour),

		KeyStorageMode: getEnvOrDefault("CATALOG_KEY_STORAGE", "persistent"),
		MasterKeyFile:  getEnvOrDefault("CATALOG_MASTER_KEY_FILE", "master.key"),
		KeyLifetime:    getEnvDurationOrDefault("CATALOG_KEY_LIFETIME", 90*24*time.Hour),
		KeyGracePeriod: getEnvDurationOrDefault("CATALOG_KEY_GRACE_PERIOD", 30*24*time.Hour),

		DatabaseFile: getEnvOrDefault("CATALOG_DATABASE_FILE", "catalog.db"),
		PepperFile:   getEnvOrDefault("CATALOG_PEPPER_FILE", "pepper"),
		Timezone:     getEnvOrDefault("CATALOG_TIMEZONE", "UTC"),

		DemoCacheSize:     getEnvIntOrDefault("DEMO_CACHE_SIZE", 256),
		DemoCacheTTL:      getEnvDurationOrDefault("DEMO_CACHE_TTL", 5*time.Minute),
		ActivityRetention: getEnvDurationOrDefault("ACTIVITY_RETENTION", 90*24*time.Hour),

		Env:                  getEnvOrDefault("ENV", "dev"),
		LogLevel:             getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:            getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                 getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod:  getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		HousekeepingInterval: getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", 1*time.Hour),
	}
}

// Location resolves Timezone.
func (c Config) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid CATALOG_TIMEZONE %q: %w", c.Timezone, err)
	}
	return loc, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Plain integers are minutes
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
