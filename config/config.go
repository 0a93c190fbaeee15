package config

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppName string
	AppEnv  string
	Port    string

	APIBaseURL string
	APITimeout time.Duration

	NotificationDelay time.Duration

	SessionTTL           time.Duration
	SessionSweepInterval time.Duration

	CORSAllowOrigins string
}

func get(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func duration(k string, def time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		log.Printf("Invalid %s=%q, using %s", k, v, def)
		return def
	}
	return d
}

// Load reads .env when present, then the environment.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	return &Config{
		AppName: get("APP_NAME", "NSKK School"),
		AppEnv:  get("APP_ENV", "dev"),
		Port:    get("PORT", "8080"),

		APIBaseURL: strings.TrimRight(get("API_BASE_URL", "http://localhost:5000"), "/"),
		APITimeout: duration("API_TIMEOUT", 10*time.Second),

		NotificationDelay: duration("NOTIFICATION_DELAY", 3*time.Second),

		SessionTTL:           duration("SESSION_TTL", 30*time.Minute),
		SessionSweepInterval: duration("SESSION_SWEEP_INTERVAL", time.Minute),

		CORSAllowOrigins: get("CORS_ALLOW_ORIGINS", "*"),
	}
}

func (c *Config) IsDev() bool {
	return c.AppEnv == "dev"
}
