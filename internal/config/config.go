// Package config assembles the process configuration once at startup.
// Components receive values through their constructors; nothing in the
// core reads the environment directly.
package config

import (
	"errors"
	"fmt"
	"os"
)

type Config struct {
	ServerAddr     string
	DatabaseURL    string
	MigrationsDir  string
	AdminKey       string
	Apple          AppleConfig
	DeviceCheckURL string
}

// AppleConfig may be incomplete: the iOS verifier reports missing
// credentials as a per-request configuration error, matching how an
// unconfigured attestation path behaves in production.
type AppleConfig struct {
	KeyID         string
	TeamID        string
	PrivateKeyPEM string
}

func Load() (Config, error) {
	cfg := Config{
		ServerAddr:    envDefault("SERVER_ADDR", "0.0.0.0:8080"),
		MigrationsDir: envDefault("MIGRATIONS_DIR", "internal/adapters/repository/postgres/migrations"),
		AdminKey:      os.Getenv("ADMIN_KEY"),
		Apple: AppleConfig{
			KeyID:         os.Getenv("APPLE_KEY_ID"),
			TeamID:        os.Getenv("APPLE_TEAM_ID"),
			PrivateKeyPEM: os.Getenv("APPLE_P8_FILE_CONTENT"),
		},
		DeviceCheckURL: os.Getenv("APPLE_DEVICECHECK_URL"),
	}

	dbURL, err := DatabaseURLFromEnv()
	if err != nil {
		return Config{}, err
	}
	cfg.DatabaseURL = dbURL

	if cfg.AdminKey == "" {
		return Config{}, errors.New("ADMIN_KEY must be set")
	}

	return cfg, nil
}

// DatabaseURLFromEnv resolves the store connection string from
// DATABASE_URL, falling back to the individual POSTGRES_* variables.
func DatabaseURLFromEnv() (string, error) {
	if url := os.Getenv("DATABASE_URL"); url != "" {
		return url, nil
	}
	if url := postgresConnString(); url != "" {
		return url, nil
	}
	return "", errors.New("DATABASE_URL or the POSTGRES_* variables must be set")
}

func postgresConnString() string {
	dbName := os.Getenv("POSTGRES_DB")
	user := os.Getenv("POSTGRES_USER")
	password := os.Getenv("POSTGRES_PASSWORD")
	host := os.Getenv("POSTGRES_HOST")
	port := os.Getenv("POSTGRES_PORT")
	if dbName == "" || user == "" || host == "" || port == "" {
		return ""
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", user, password, host, port, dbName)
}

func envDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
