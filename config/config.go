package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/Dosada05/tournament-draws/matchupformat"
	"github.com/joho/godotenv"
)

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
	StorageBolt     = "bolt"
)

// Config holds every setting the server reads from the environment.
type Config struct {
	ServerPort int

	StorageDriver string
	DatabaseURL   string
	BoltPath      string

	RedisURL      string
	RedisPassword string
	RedisStream   string

	JWTSecretKey string

	R2AccountID       string
	R2AccessKeyID     string
	R2SecretAccessKey string
	R2BucketName      string
	R2PublicBaseURL   string

	DevMode              bool
	DefaultMatchUpFormat string
	LogLevel             slog.Level

	OperatorUsername     string
	OperatorPasswordHash string
	OperatorRole         string

	SnapshotInterval   time.Duration
	CORSAllowedOrigins []string
}

// R2Configured reports whether object storage settings were provided.
func (c *Config) R2Configured() bool {
	return c.R2AccountID != "" || c.R2AccessKeyID != "" || c.R2SecretAccessKey != "" ||
		c.R2BucketName != "" || c.R2PublicBaseURL != ""
}

// Load reads the configuration from the environment. A .env file in the
// working directory is loaded first when present.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from the given lookup function.
func FromEnv(getenv func(string) string) (*Config, error) {
	cfg := &Config{
		StorageDriver:        strings.ToLower(getenv("STORAGE_DRIVER")),
		DatabaseURL:          getenv("DATABASE_URL"),
		BoltPath:             getenv("BOLT_PATH"),
		RedisURL:             getenv("REDIS_URL"),
		RedisPassword:        getenv("REDIS_PASSWORD"),
		RedisStream:          getenv("REDIS_STREAM"),
		JWTSecretKey:         getenv("JWT_SECRET_KEY"),
		R2AccountID:          getenv("R2_ACCOUNT_ID"),
		R2AccessKeyID:        getenv("R2_ACCESS_KEY_ID"),
		R2SecretAccessKey:    getenv("R2_SECRET_ACCESS_KEY"),
		R2BucketName:         getenv("R2_BUCKET_NAME"),
		R2PublicBaseURL:      getenv("R2_PUBLIC_BASE_URL"),
		DefaultMatchUpFormat: getenv("DEFAULT_MATCHUP_FORMAT"),
		OperatorUsername:     getenv("OPERATOR_USERNAME"),
		OperatorPasswordHash: getenv("OPERATOR_PASSWORD_HASH"),
		OperatorRole:         strings.ToLower(getenv("OPERATOR_ROLE")),
	}

	if cfg.JWTSecretKey == "" {
		return nil, errors.New("JWT_SECRET_KEY environment variable is not set")
	}

	portStr := getenv("SERVER_PORT")
	if portStr == "" {
		portStr = "8080"
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_PORT environment variable: %w", err)
	}
	if port <= 0 || port > 65535 {
		return nil, fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", port)
	}
	cfg.ServerPort = port

	switch cfg.StorageDriver {
	case "":
		cfg.StorageDriver = StorageMemory
	case StorageMemory, StorageBolt:
	case StoragePostgres:
		if cfg.DatabaseURL == "" {
			return nil, errors.New("DATABASE_URL environment variable is not set")
		}
	default:
		return nil, fmt.Errorf("unknown STORAGE_DRIVER %q", cfg.StorageDriver)
	}
	if cfg.BoltPath == "" {
		cfg.BoltPath = "draws.db"
	}

	if cfg.R2Configured() {
		if cfg.R2AccountID == "" || cfg.R2AccessKeyID == "" || cfg.R2SecretAccessKey == "" ||
			cfg.R2BucketName == "" || cfg.R2PublicBaseURL == "" {
			return nil, errors.New("R2 configuration is incomplete: set all R2_* variables or none")
		}
	}

	if v := getenv("DEV_MODE"); v != "" {
		cfg.DevMode, err = strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid DEV_MODE environment variable: %w", err)
		}
	}

	if cfg.DefaultMatchUpFormat == "" {
		cfg.DefaultMatchUpFormat = matchupformat.DefaultCode
	} else if !matchupformat.IsValid(cfg.DefaultMatchUpFormat) {
		return nil, fmt.Errorf("DEFAULT_MATCHUP_FORMAT %q is not a valid matchUp format", cfg.DefaultMatchUpFormat)
	}

	if v := getenv("LOG_LEVEL"); v != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(v)); err != nil {
			return nil, fmt.Errorf("invalid LOG_LEVEL environment variable: %w", err)
		}
	}

	if (cfg.OperatorUsername == "") != (cfg.OperatorPasswordHash == "") {
		return nil, errors.New("OPERATOR_USERNAME and OPERATOR_PASSWORD_HASH must be set together")
	}
	switch cfg.OperatorRole {
	case "":
		cfg.OperatorRole = "organizer"
	case "organizer", "admin":
	default:
		return nil, fmt.Errorf("unknown OPERATOR_ROLE %q", cfg.OperatorRole)
	}

	if v := getenv("SNAPSHOT_INTERVAL"); v != "" {
		cfg.SnapshotInterval, err = time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid SNAPSHOT_INTERVAL environment variable: %w", err)
		}
		if cfg.SnapshotInterval < 0 {
			return nil, fmt.Errorf("SNAPSHOT_INTERVAL must not be negative, got %s", cfg.SnapshotInterval)
		}
	}

	for _, origin := range strings.Split(getenv("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	return cfg, nil
}
