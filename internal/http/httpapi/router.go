package httpapi

import (
	stdhttp "net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"funddash/internal/http/handlers"
	"funddash/internal/infra"
	appmw "funddash/internal/middleware"
)

func NewRouter(app *handlers.App, cfg *infra.Config, logger zerolog.Logger) stdhttp.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RealIP, chimw.Recoverer)
	r.Use(appmw.RequestID)
	r.Use(appmw.Logger(logger))
	r.Use(appmw.CORS(cfg.AllowedOrigins))
	if cfg.RateLimitPerMin > 0 {
		r.Use(appmw.RateLimit(cfg.RateLimitPerMin, time.Minute))
	}

	r.Get("/", app.Index)
	r.Get("/health", app.Health)

	r.Route("/api/transactions", func(r chi.Router) {
		r.Get("/fund/{fundID}", app.TransactionsByFund)
		r.Get("/fund/{fundID}/summary", app.FundSummary)
	})

	return r
}
