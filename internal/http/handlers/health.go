package handlers

import (
	"net/http"
	"time"
)

func (a *App) Health(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, map[string]string{
		"status":    "OK",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"message":   "Fund Dashboard API is running",
	})
}

// Index lists the available endpoints for anyone poking at the root.
func (a *App) Index(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, map[string]any{
		"message": "Fund Dashboard API",
		"endpoints": map[string]string{
			"health":       "/health",
			"transactions": "/api/transactions/fund/{fundId}",
			"summary":      "/api/transactions/fund/{fundId}/summary",
		},
	})
}
