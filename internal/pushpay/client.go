package pushpay

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"funddash/internal/domain"
)

const defaultBaseURL = "https://sandbox-api.pushpay.com/v1"

// Payments are requested newest-first; the dashboard never re-sorts.
const paymentOrder = "CreatedOn desc"

// Client performs authenticated, read-only calls against the Pushpay API.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	merchantKey string
	tokens      *TokenSource
	logger      zerolog.Logger
}

// Options configures the Pushpay client.
type Options struct {
	BaseURL        string
	ClientID       string
	ClientSecret   string
	MerchantKey    string
	Scope          string
	HTTPClient     *http.Client
	Logger         *zerolog.Logger
	RequestTimeout time.Duration
}

// PaymentQuery narrows a payment listing. Zero times are omitted from the
// upstream query.
type PaymentQuery struct {
	From time.Time
	To   time.Time
	Take int
}

// NewClient constructs a client with sane defaults and injected dependencies.
func NewClient(opts Options) *Client {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.RequestTimeout
		if timeout <= 0 {
			timeout = 15 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	baseURL := strings.TrimRight(opts.BaseURL, "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	logger := zerolog.Nop()
	if opts.Logger != nil {
		logger = *opts.Logger
	}
	tokens := NewTokenSource(TokenOptions{
		BaseURL:      baseURL,
		ClientID:     opts.ClientID,
		ClientSecret: opts.ClientSecret,
		Scope:        opts.Scope,
		HTTPClient:   httpClient,
		Logger:       &logger,
	})
	return &Client{
		httpClient:  httpClient,
		baseURL:     baseURL,
		merchantKey: strings.TrimSpace(opts.MerchantKey),
		tokens:      tokens,
		logger:      logger,
	}
}

// Get issues an authenticated GET against the data API and returns the raw
// response body. There is no retry and no automatic re-auth on 401; the 60s
// expiry margin in the token source keeps that window small.
func (c *Client) Get(ctx context.Context, path string, query url.Values) ([]byte, error) {
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return nil, err
	}

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, &domain.UpstreamError{Body: err.Error()}
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &domain.UpstreamError{Body: err.Error()}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &domain.UpstreamError{StatusCode: resp.StatusCode, Body: err.Error()}
	}
	if resp.StatusCode >= 300 {
		return nil, &domain.UpstreamError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(raw))}
	}
	return raw, nil
}

// ListPayments fetches one page of payments for a fund, newest first.
func (c *Client) ListPayments(ctx context.Context, fundID string, q PaymentQuery) (*domain.PaymentPage, error) {
	if c.merchantKey == "" {
		return nil, &domain.ConfigError{Setting: "PUSHPAY_MERCHANT_KEY"}
	}
	if strings.TrimSpace(fundID) == "" {
		return nil, errors.New("fund id is required")
	}

	query := url.Values{}
	query.Set("fund", fundID)
	query.Set("orderBy", paymentOrder)
	if q.Take > 0 {
		query.Set("take", strconv.Itoa(q.Take))
	}
	if !q.From.IsZero() {
		query.Set("from", q.From.UTC().Format(time.RFC3339))
	}
	if !q.To.IsZero() {
		query.Set("to", q.To.UTC().Format(time.RFC3339))
	}

	path := fmt.Sprintf("/merchant/%s/payments", url.PathEscape(c.merchantKey))
	raw, err := c.Get(ctx, path, query)
	if err != nil {
		return nil, err
	}

	var decoded paymentsResponse
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, &domain.UpstreamError{Body: fmt.Sprintf("decode payments response: %v", err)}
	}

	page := decoded.toDomain()
	c.logger.Debug().
		Str("fund", fundID).
		Int("items", len(page.Items)).
		Int("total", page.TotalCount).
		Msg("pushpay: fetched payments")
	return page, nil
}
