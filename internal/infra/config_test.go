package infra

import (
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("PUSHPAY_BASE_URL", "")
	t.Setenv("PUSHPAY_SCOPE", "")
	t.Setenv("PUSHPAY_CLIENT_ID", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", "")
	t.Setenv("UPSTREAM_TIMEOUT_SECONDS", "")

	cfg := LoadConfig()
	if cfg.Port != "10000" {
		t.Fatalf("Port = %q, want 10000", cfg.Port)
	}
	if cfg.PushpayBaseURL != "https://sandbox-api.pushpay.com/v1" {
		t.Fatalf("PushpayBaseURL = %q", cfg.PushpayBaseURL)
	}
	if cfg.PushpayScope != "read" {
		t.Fatalf("PushpayScope = %q, want read", cfg.PushpayScope)
	}
	if cfg.PushpayClientID != "" {
		t.Fatalf("PushpayClientID = %q, want empty", cfg.PushpayClientID)
	}
	if cfg.UpstreamTimeout != 15*time.Second {
		t.Fatalf("UpstreamTimeout = %v, want 15s", cfg.UpstreamTimeout)
	}
	if len(cfg.AllowedOrigins) != 1 || cfg.AllowedOrigins[0] != "http://localhost:3000" {
		t.Fatalf("AllowedOrigins = %#v", cfg.AllowedOrigins)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("PUSHPAY_BASE_URL", "https://api.pushpay.com/v1")
	t.Setenv("PUSHPAY_CLIENT_ID", "cid")
	t.Setenv("PUSHPAY_CLIENT_SECRET", "secret")
	t.Setenv("PUSHPAY_MERCHANT_KEY", "mk")
	t.Setenv("UPSTREAM_TIMEOUT_SECONDS", "5")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "120")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://dashboard.example.com, https://staging.example.com ,")

	cfg := LoadConfig()
	if cfg.Port != "9000" {
		t.Fatalf("Port = %q, want 9000", cfg.Port)
	}
	if cfg.PushpayBaseURL != "https://api.pushpay.com/v1" {
		t.Fatalf("PushpayBaseURL = %q", cfg.PushpayBaseURL)
	}
	if cfg.PushpayClientID != "cid" || cfg.PushpayClientSecret != "secret" || cfg.PushpayMerchantKey != "mk" {
		t.Fatalf("pushpay settings not loaded: %+v", cfg)
	}
	if cfg.UpstreamTimeout != 5*time.Second {
		t.Fatalf("UpstreamTimeout = %v, want 5s", cfg.UpstreamTimeout)
	}
	if cfg.RateLimitPerMin != 120 {
		t.Fatalf("RateLimitPerMin = %d, want 120", cfg.RateLimitPerMin)
	}
	want := []string{"https://dashboard.example.com", "https://staging.example.com"}
	if len(cfg.AllowedOrigins) != len(want) {
		t.Fatalf("AllowedOrigins = %#v", cfg.AllowedOrigins)
	}
	for i := range want {
		if cfg.AllowedOrigins[i] != want[i] {
			t.Fatalf("AllowedOrigins[%d] = %q, want %q", i, cfg.AllowedOrigins[i], want[i])
		}
	}
}

func TestLoadConfigIgnoresMalformedInt(t *testing.T) {
	t.Setenv("RATE_LIMIT_PER_MINUTE", "many")

	cfg := LoadConfig()
	if cfg.RateLimitPerMin != 60 {
		t.Fatalf("RateLimitPerMin = %d, want default 60", cfg.RateLimitPerMin)
	}
}
