package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr        string
	TLSCert     string
	TLSKey      string
	DatabaseURL string
	TokenKey    string
	RateLimit   float64
	RateBurst   int

	BotToken       string
	BotPollTimeout time.Duration
}

// TLS reports whether both certificate files are configured.
func (c Config) TLS() bool { return c.TLSCert != "" && c.TLSKey != "" }

// Accounts reports whether login, profiles and history are available.
func (c Config) Accounts() bool { return c.DatabaseURL != "" }

// Load reads .env from the working directory when present and then the environment.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	c := Config{
		Addr:        getenv("ADDR", ":8080"),
		TLSCert:     os.Getenv("TLS_CERT"),
		TLSKey:      os.Getenv("TLS_KEY"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		TokenKey:    os.Getenv("TOKEN_KEY"),
		BotToken:    os.Getenv("TOKEN_BOT"),
	}

	var err error
	if c.RateLimit, err = strconv.ParseFloat(getenv("RATE_LIMIT", "5"), 64); err != nil || c.RateLimit <= 0 {
		return Config{}, fmt.Errorf("RATE_LIMIT: %q is not a positive number", os.Getenv("RATE_LIMIT"))
	}
	if c.RateBurst, err = strconv.Atoi(getenv("RATE_BURST", "10")); err != nil || c.RateBurst <= 0 {
		return Config{}, fmt.Errorf("RATE_BURST: %q is not a positive integer", os.Getenv("RATE_BURST"))
	}
	secs, err := strconv.Atoi(getenv("BOT_POLL_TIMEOUT", "20"))
	if err != nil || secs < 0 {
		return Config{}, fmt.Errorf("BOT_POLL_TIMEOUT: %q is not a number of seconds", os.Getenv("BOT_POLL_TIMEOUT"))
	}
	c.BotPollTimeout = time.Duration(secs) * time.Second

	if c.Accounts() && c.TokenKey == "" {
		return Config{}, errors.New("TOKEN_KEY environment variable is not set")
	}
	return c, nil
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
