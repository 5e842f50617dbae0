// Package config builds the process configuration once at boot.
// Components receive it by reference instead of reading the environment ad hoc.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

// Config holds every externally supplied setting the server needs.
type Config struct {
	// HTTPAddr is the listen address for the HTTP server.
	HTTPAddr string

	// DB holds the Postgres connection settings.
	DB DBConfig

	// Redis holds the optional cache connection settings.
	Redis RedisConfig

	// JWTSecret signs and verifies session tokens. Required.
	JWTSecret string

	// TokenTTL is the session token validity window.
	TokenTTL time.Duration

	// ResetTokenTTL is the password reset token validity window.
	ResetTokenTTL time.Duration

	// BcryptCost is the work factor used for password hashing.
	BcryptCost int

	// RunMigrations enables GORM AutoMigrate at startup.
	RunMigrations bool

	// SeedTemplates inserts the default action template catalog at startup
	// when the table is empty.
	SeedTemplates bool
}

// DBConfig holds the pieces of the Postgres DSN.
type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

// DSN renders the config as a pgx-compatible connection string.
func (c DBConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

// RedisConfig holds the Redis connection settings.
type RedisConfig struct {
	Addr     string
	Password string
}

// Load reads the environment (and a .env file if present) into a Config.
// It fails when JWT_SECRET is missing so a misconfigured server never boots.
func Load() (*Config, error) {
	// .env is a development convenience; absence is not an error.
	_ = godotenv.Load()

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, errors.New("JWT_SECRET is required")
	}

	cfg := &Config{
		HTTPAddr: getenv("HTTP_ADDR", ":8080"),
		DB: DBConfig{
			Host:     getenv("DB_HOST", "localhost"),
			Port:     getenv("DB_PORT", "5432"),
			User:     getenv("DB_USER", "postgres"),
			Password: os.Getenv("DB_PASSWORD"),
			Name:     getenv("DB_NAME", "job_hunter"),
			SSLMode:  getenv("DB_SSLMODE", "disable"),
		},
		Redis: RedisConfig{
			Addr:     getenv("REDIS_HOST", "localhost") + ":" + getenv("REDIS_PORT", "6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
		},
		JWTSecret:     secret,
		TokenTTL:      durationEnv("TOKEN_TTL", 7*24*time.Hour),
		ResetTokenTTL: durationEnv("RESET_TOKEN_TTL", time.Hour),
		BcryptCost:    intEnv("BCRYPT_COST", bcrypt.DefaultCost),
		RunMigrations: os.Getenv("RUN_MIGRATIONS") == "true",
		SeedTemplates: os.Getenv("SEED_TEMPLATES") == "true",
	}

	if cfg.BcryptCost < bcrypt.DefaultCost {
		return nil, fmt.Errorf("BCRYPT_COST must be at least %d", bcrypt.DefaultCost)
	}

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func durationEnv(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}

func intEnv(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
