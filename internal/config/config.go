package config

import (
	"log/slog"
	"os"
	"time"
)

// defaultJWTSecret is the secret the original deployment shipped with. It is
// kept as the fallback on purpose; production deployments are expected to
// override it via JWT_SECRET.
const defaultJWTSecret = "votre_secret_jwt_tres_securise_changez_moi_en_production"

type Config struct {
	Port        string
	Env         string
	BaseURL     string
	DatabaseURL string
	SQLitePath  string
	UploadDir   string
	JWTSecret   string
	JWTExpiry   time.Duration
}

func Load() Config {
	cfg := Config{
		Port:        getEnv("PORT", "3000"),
		Env:         getEnv("ENV", "development"),
		BaseURL:     getEnv("BASE_URL", "http://localhost:3000"),
		DatabaseURL: getEnv("DATABASE_URL", ""),
		SQLitePath:  getEnv("SQLITE_PATH", "database.sqlite"),
		UploadDir:   getEnv("UPLOAD_DIR", "uploads"),
		JWTSecret:   getEnv("JWT_SECRET", defaultJWTSecret),
		JWTExpiry:   24 * time.Hour,
	}

	if cfg.Env == "production" && cfg.JWTSecret == defaultJWTSecret {
		slog.Warn("JWT_SECRET is not set, using the built-in default signing secret")
	}

	return cfg
}

// IsDevelopment reports whether verbose error bodies should be returned.
func (c Config) IsDevelopment() bool {
	return c.Env != "production"
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
