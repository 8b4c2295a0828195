package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"
)

var (
	ErrAPIURLInvalid   = errors.New("API_URL must be an absolute URL")
	ErrAuthURLMissing  = errors.New("AUTH_SESSION_URL must be set")
	ErrDurationInvalid = errors.New("invalid duration")
	ErrRateInvalid     = errors.New("AUTH_RATE_LIMIT must be a positive number of requests per minute")
)

// Config holds the runtime configuration of the backend.
type Config struct {
	Port           string
	APIURL         *url.URL
	DatabasePath   string
	AuthSessionURL string
	SessionTTL     time.Duration
	ReportCacheTTL time.Duration

	// AuthRateLimit is the number of auth callback requests per minute
	// and client IP.
	AuthRateLimit rate.Limit
}

// LoadEnv loads environment variables from the given files.
//
// Without files, a .env file in the working directory is loaded if it exists.
// Variables that are already set are not overwritten.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		err := godotenv.Load()
		if errors.Is(err, fs.ErrNotExist) {
			log.Debug().Msg("no .env file found, using environment only")
			return nil
		}
		return err
	}

	return godotenv.Load(files...)
}

// Load reads the configuration from the environment.
func Load() (Config, error) {
	apiURL, err := url.Parse(getEnv("API_URL", "http://localhost:8080/api"))
	if err != nil || !apiURL.IsAbs() {
		return Config{}, ErrAPIURLInvalid
	}

	sessionTTL, err := getDuration("SESSION_TTL", 7*24*time.Hour)
	if err != nil {
		return Config{}, err
	}

	reportTTL, err := getDuration("REPORT_CACHE_TTL", 10*time.Minute)
	if err != nil {
		return Config{}, err
	}

	perMinute, err := strconv.ParseFloat(getEnv("AUTH_RATE_LIMIT", "10"), 64)
	if err != nil || perMinute <= 0 {
		return Config{}, ErrRateInvalid
	}

	authURL := os.Getenv("AUTH_SESSION_URL")
	if authURL == "" {
		return Config{}, ErrAuthURLMissing
	}

	return Config{
		Port:           getEnv("PORT", "8080"),
		APIURL:         apiURL,
		DatabasePath:   DatabasePath(),
		AuthSessionURL: authURL,
		SessionTTL:     sessionTTL,
		ReportCacheTTL: reportTTL,
		AuthRateLimit:  rate.Limit(perMinute / 60),
	}, nil
}

// DatabasePath returns the path of the SQLite database file.
func DatabasePath() string {
	return getEnv("DATABASE_PATH", "data/fguardian.db")
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback, nil
	}

	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("%w for %s: %q", ErrDurationInvalid, key, value)
	}

	return d, nil
}
