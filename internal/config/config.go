package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env             string        // dev, prod
	HTTPPort        string        // default 8080
	FixturePath     string        // optional YAML seed file, empty = demo data
	DemoData        bool          // load the built-in demo dataset when no fixture is set
	ShutdownTimeout time.Duration // graceful shutdown timeout
	ClockTick       time.Duration // chrome clock refresh, display only
	WorkerInterval  time.Duration // how often the reminder worker polls
	APIBaseURL      string        // base URL for worker/simulate clients
}

func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Env:             getEnv("APP_ENV", "dev"),
		HTTPPort:        getEnv("HTTP_PORT", "8080"),
		FixturePath:     os.Getenv("FIXTURE_PATH"),
		DemoData:        getBool("DEMO_DATA", true),
		ShutdownTimeout: getDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
		ClockTick:       getDuration("CLOCK_TICK", time.Second),
		WorkerInterval:  getDuration("WORKER_INTERVAL", time.Minute),
		APIBaseURL:      getEnv("API_BASE_URL", "http://127.0.0.1:8080"),
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
		fmt.Fprintf(os.Stderr, "invalid bool for %s=%q, using default %v\n", key, v, def)
	}
	return def
}

func getDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return time.Duration(n) * time.Second
		}
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
		fmt.Fprintf(os.Stderr, "invalid duration for %s=%q, using default %s\n", key, v, def)
	}
	return def
}
