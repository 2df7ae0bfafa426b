// Package config loads application settings from a .env file and environment
// variables. Environment variables always take precedence over .env values.
package config

import (
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	// Postgres – optional. When set, the service uses the bun-backed store
	// instead of the in-memory one.
	DatabaseURL string

	// Server
	Debug      bool
	Port       string
	TLSDomains []string

	// Allowed CORS origins for the hosted frontend plus local dev ports.
	CORSOrigins []string

	// SeedDemo pre-populates the in-memory store with demo horses.
	SeedDemo bool
}

const defaultOrigins = "http://localhost," +
	"http://localhost:3000," +
	"http://localhost:5500,http://127.0.0.1:5500," +
	"http://localhost:8001,http://127.0.0.1:8001," +
	"https://stable-manager-frontend.vercel.app"

// Load reads configuration from a .env file (if present) and then from
// environment variables. Environment variables always win.
func Load() *Config {
	v := newViper()

	// Defaults
	v.SetDefault("PORT", ":9000")
	v.SetDefault("DEBUG", false)
	v.SetDefault("TLS_DOMAINS", "stable-manager.app,www.stable-manager.app")
	v.SetDefault("CORS_ORIGINS", defaultOrigins)
	v.SetDefault("SEED_DEMO", false)

	return &Config{
		DatabaseURL: v.GetString("DATABASE_URL"),
		Debug:       v.GetBool("DEBUG"),
		Port:        v.GetString("PORT"),
		TLSDomains:  splitTrimmed(v.GetString("TLS_DOMAINS")),
		CORSOrigins: splitTrimmed(v.GetString("CORS_ORIGINS")),
		SeedDemo:    v.GetBool("SEED_DEMO"),
	}
}

func newViper() *viper.Viper {
	// Silently load .env – OK if the file doesn't exist (production uses real env vars).
	if err := godotenv.Load(); err != nil {
		log.Println("config: no .env file found, using environment variables only")
	}

	v := viper.New()
	v.AutomaticEnv()
	return v
}

func splitTrimmed(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}
