package domain

import "fmt"

// ConfigError reports a required setting that was absent at call time.
// Not retryable; the deployment must be fixed and restarted.
type ConfigError struct {
	Setting string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("missing required setting %s", e.Setting)
}

// AuthError reports that the identity endpoint rejected the client
// credentials or returned a malformed payload.
type AuthError struct {
	Message string
	Detail  string
}

func (e *AuthError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s", e.Message, e.Detail)
	}
	return e.Message
}

// UpstreamError surfaces a non-success response or transport failure from the
// payments API. StatusCode is 0 when the request never got a response.
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("upstream request failed: %s", e.Body)
	}
	return fmt.Sprintf("upstream api error: status=%d body=%s", e.StatusCode, e.Body)
}
