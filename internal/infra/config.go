package infra

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config represents application configuration loaded from environment
// variables. Pushpay credentials are intentionally not validated here: an
// unconfigured process still starts, and the auth layer reports the missing
// setting at call time so it is distinguishable from network failures.
type Config struct {
	AppEnv              string
	Port                string
	PushpayBaseURL      string
	PushpayClientID     string
	PushpayClientSecret string
	PushpayMerchantKey  string
	PushpayScope        string
	AllowedOrigins      []string
	HTTPReadTimeout     time.Duration
	HTTPWriteTimeout    time.Duration
	HTTPIdleTimeout     time.Duration
	UpstreamTimeout     time.Duration
	RateLimitPerMin     int
}

// LoadConfig loads configuration from environment variables and applies
// defaults where needed.
func LoadConfig() *Config {
	return &Config{
		AppEnv:              getEnv("APP_ENV", "development"),
		Port:                getEnv("PORT", "10000"),
		PushpayBaseURL:      getEnv("PUSHPAY_BASE_URL", "https://sandbox-api.pushpay.com/v1"),
		PushpayClientID:     os.Getenv("PUSHPAY_CLIENT_ID"),
		PushpayClientSecret: os.Getenv("PUSHPAY_CLIENT_SECRET"),
		PushpayMerchantKey:  os.Getenv("PUSHPAY_MERCHANT_KEY"),
		PushpayScope:        getEnv("PUSHPAY_SCOPE", "read"),
		AllowedOrigins:      splitList(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000")),
		HTTPReadTimeout:     time.Second * time.Duration(getEnvInt("HTTP_READ_TIMEOUT_SECONDS", 15)),
		HTTPWriteTimeout:    time.Second * time.Duration(getEnvInt("HTTP_WRITE_TIMEOUT_SECONDS", 30)),
		HTTPIdleTimeout:     time.Second * time.Duration(getEnvInt("HTTP_IDLE_TIMEOUT_SECONDS", 60)),
		UpstreamTimeout:     time.Second * time.Duration(getEnvInt("UPSTREAM_TIMEOUT_SECONDS", 15)),
		RateLimitPerMin:     getEnvInt("RATE_LIMIT_PER_MINUTE", 60),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
