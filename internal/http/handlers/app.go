package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"funddash/internal/domain"
	"funddash/internal/fund"
)

// App bundles the handler dependencies.
type App struct {
	Funds  *fund.Service
	Logger zerolog.Logger
}

func NewApp(funds *fund.Service, logger zerolog.Logger) *App {
	return &App{Funds: funds, Logger: logger}
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, code int, message, details string) {
	body := map[string]any{"error": message}
	if details != "" {
		body["details"] = details
	}
	a.json(w, code, body)
}

// fundError translates a core error into the dashboard's error shape.
// Configuration problems are the operator's to fix; auth and upstream
// failures are reported as a bad gateway with the upstream detail attached
// for diagnostics.
func (a *App) fundError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	a.Logger.Error().Err(err).Str("path", r.URL.Path).Msg("fund request failed")

	var cfgErr *domain.ConfigError
	if errors.As(err, &cfgErr) {
		a.error(w, http.StatusInternalServerError, "Server is not configured", cfgErr.Error())
		return
	}
	var authErr *domain.AuthError
	var upErr *domain.UpstreamError
	if errors.As(err, &authErr) || errors.As(err, &upErr) {
		a.error(w, http.StatusBadGateway, fallback, err.Error())
		return
	}
	a.error(w, http.StatusInternalServerError, fallback, err.Error())
}
