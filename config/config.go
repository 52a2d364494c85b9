package config

import (
	"errors"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config carries all process configuration. It is built once in main and
// passed to the components that need it; nothing reads the environment after
// startup.
type Config struct {
	Port         string
	MongoURI     string
	DatabaseName string
	JWTSecret    string
	TokenExpiry  time.Duration
	CORSOrigins  []string
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Load reads .env (if present) and the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("no .env file found, using process environment")
	}

	cfg := &Config{
		Port:         getEnv("PORT", "8000"),
		MongoURI:     getEnv("MONGODB_URI", "mongodb://localhost:27017"),
		DatabaseName: getEnv("DATABASE_NAME", "food_ordering"),
		JWTSecret:    os.Getenv("JWT_SECRET"),
		TokenExpiry:  time.Hour,
		CORSOrigins:  []string{getEnv("FRONTEND_ORIGIN", "http://localhost:3000")},
	}
	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET must be set")
	}
	if v := os.Getenv("TOKEN_EXPIRY"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, errors.New("invalid TOKEN_EXPIRY: " + err.Error())
		}
		cfg.TokenExpiry = d
	}
	return cfg, nil
}
