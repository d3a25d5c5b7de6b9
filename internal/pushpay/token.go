package pushpay

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"funddash/internal/domain"
)

// expiryMargin keeps a token from being used so close to its stated expiry
// that it lapses mid-request.
const expiryMargin = time.Minute

const defaultScope = "read"

// TokenSource caches a client-credentials bearer token and refreshes it from
// the OAuth endpoint when it is absent or inside the expiry margin.
type TokenSource struct {
	httpClient   *http.Client
	baseURL      string
	clientID     string
	clientSecret string
	scope        string
	logger       zerolog.Logger
	now          func() time.Time

	group singleflight.Group

	mu        sync.Mutex
	token     string
	expiresAt time.Time
}

// TokenOptions configures a TokenSource.
type TokenOptions struct {
	BaseURL      string
	ClientID     string
	ClientSecret string
	Scope        string
	HTTPClient   *http.Client
	Logger       *zerolog.Logger
}

// NewTokenSource constructs a token source. Credentials are validated at call
// time, not here, so an unconfigured process can still start.
func NewTokenSource(opts TokenOptions) *TokenSource {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	scope := strings.TrimSpace(opts.Scope)
	if scope == "" {
		scope = defaultScope
	}
	logger := zerolog.Nop()
	if opts.Logger != nil {
		logger = *opts.Logger
	}
	return &TokenSource{
		httpClient:   httpClient,
		baseURL:      strings.TrimRight(opts.BaseURL, "/"),
		clientID:     strings.TrimSpace(opts.ClientID),
		clientSecret: strings.TrimSpace(opts.ClientSecret),
		scope:        scope,
		logger:       logger,
		now:          time.Now,
	}
}

// Token returns a currently valid bearer token, refreshing it when the cache
// is empty or stale. Concurrent callers share a single in-flight refresh.
func (ts *TokenSource) Token(ctx context.Context) (string, error) {
	if ts.clientID == "" {
		return "", &domain.ConfigError{Setting: "PUSHPAY_CLIENT_ID"}
	}
	if ts.clientSecret == "" {
		return "", &domain.ConfigError{Setting: "PUSHPAY_CLIENT_SECRET"}
	}

	if token, ok := ts.cached(); ok {
		return token, nil
	}

	v, err, _ := ts.group.Do("token", func() (any, error) {
		// A waiter that lost the race may find the cache already fresh.
		if token, ok := ts.cached(); ok {
			return token, nil
		}
		return ts.refresh(ctx)
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

func (ts *TokenSource) cached() (string, bool) {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	if ts.token != "" && ts.now().Before(ts.expiresAt) {
		return ts.token, true
	}
	return "", false
}

// refresh exchanges the client credentials for a fresh token. A failed
// exchange leaves any previously cached credential in place.
func (ts *TokenSource) refresh(ctx context.Context) (string, error) {
	payload, err := json.Marshal(map[string]string{
		"grant_type":    "client_credentials",
		"client_id":     ts.clientID,
		"client_secret": ts.clientSecret,
		"scope":         ts.scope,
	})
	if err != nil {
		return "", &domain.AuthError{Message: "encode token request", Detail: err.Error()}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, ts.baseURL+"/oauth/token", bytes.NewReader(payload))
	if err != nil {
		return "", &domain.AuthError{Message: "build token request", Detail: err.Error()}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := ts.httpClient.Do(req)
	if err != nil {
		return "", &domain.AuthError{Message: "token request failed", Detail: err.Error()}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &domain.AuthError{Message: "read token response", Detail: err.Error()}
	}
	if resp.StatusCode >= 300 {
		return "", &domain.AuthError{
			Message: "identity endpoint rejected credentials",
			Detail:  strings.TrimSpace(string(raw)),
		}
	}

	var decoded tokenResponse
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return "", &domain.AuthError{Message: "decode token response", Detail: err.Error()}
	}
	if decoded.AccessToken == "" || decoded.ExpiresIn <= 0 {
		return "", &domain.AuthError{Message: "malformed token response"}
	}

	lifetime := time.Duration(decoded.ExpiresIn) * time.Second
	margin := expiryMargin
	if lifetime <= margin {
		margin = lifetime / 2
	}
	expiresAt := ts.now().Add(lifetime - margin)

	ts.mu.Lock()
	ts.token = decoded.AccessToken
	ts.expiresAt = expiresAt
	ts.mu.Unlock()

	ts.logger.Debug().Time("expires_at", expiresAt).Msg("pushpay: refreshed access token")
	return decoded.AccessToken, nil
}
