package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

const defaultKomojuBaseURL = "https://komoju.com/api/v1"

var (
	ErrMissingSecretKey     = errors.New("missing KOMOJU_SECRET_KEY")
	ErrMissingWebhookSecret = errors.New("missing KOMOJU_WEBHOOK_SECRET")
)

// Config is the process-wide, read-only configuration. It is built once at
// startup and handed to the components that need it; rotating a secret
// requires a restart.
type Config struct {
	// Server configuration
	Port string

	// KOMOJU gateway configuration
	KomojuBaseURL   string
	KomojuSecretKey string
	WebhookSecret   string

	// BaseURL is this service's own externally reachable URL, used to build
	// the return_url sent to the gateway.
	BaseURL string
}

// Load reads the environment exactly once. Both secrets are required: a
// missing secret fails here rather than being defaulted to a value that
// would silently pass (or fail) verification later.
func Load() (*Config, error) {
	secretKey := strings.TrimSpace(os.Getenv("KOMOJU_SECRET_KEY"))
	if secretKey == "" {
		return nil, ErrMissingSecretKey
	}

	webhookSecret := strings.TrimSpace(os.Getenv("KOMOJU_WEBHOOK_SECRET"))
	if webhookSecret == "" {
		return nil, ErrMissingWebhookSecret
	}

	return &Config{
		Port:            getEnv("PORT", "8080"),
		KomojuBaseURL:   getEnv("KOMOJU_BASE_URL", defaultKomojuBaseURL),
		KomojuSecretKey: secretKey,
		WebhookSecret:   webhookSecret,
		BaseURL:         resolveBaseURL(),
	}, nil
}

// resolveBaseURL picks the platform-provided host first, then an explicit
// override, then the development default.
func resolveBaseURL() string {
	if host := strings.TrimSpace(os.Getenv("VERCEL_URL")); host != "" {
		return fmt.Sprintf("https://%s", host)
	}
	if base := strings.TrimSpace(os.Getenv("APP_BASE_URL")); base != "" {
		return base
	}
	return "http://localhost:8080"
}

func getEnv(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}
