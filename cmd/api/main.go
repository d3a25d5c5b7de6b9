package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"funddash/internal/fund"
	"funddash/internal/http/handlers"
	"funddash/internal/http/httpapi"
	"funddash/internal/infra"
	"funddash/internal/pushpay"
)

func main() {
	// .env is optional
	_ = godotenv.Load()

	cfg := infra.LoadConfig()
	logger := infra.NewLogger(cfg.AppEnv)

	if cfg.PushpayClientID == "" || cfg.PushpayClientSecret == "" {
		logger.Warn().Msg("pushpay credentials are not configured; upstream calls will fail")
	}
	if cfg.PushpayMerchantKey == "" {
		logger.Warn().Msg("pushpay merchant key is not configured; upstream calls will fail")
	}

	client := pushpay.NewClient(pushpay.Options{
		BaseURL:        cfg.PushpayBaseURL,
		ClientID:       cfg.PushpayClientID,
		ClientSecret:   cfg.PushpayClientSecret,
		MerchantKey:    cfg.PushpayMerchantKey,
		Scope:          cfg.PushpayScope,
		RequestTimeout: cfg.UpstreamTimeout,
		Logger:         &logger,
	})

	funds := fund.NewService(client, logger)
	app := handlers.NewApp(funds, logger)
	router := httpapi.NewRouter(app, cfg, logger)
	server := infra.NewHTTPServer(cfg, router)

	go func() {
		logger.Info().Msgf("API listening on :%s", cfg.Port)
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPIdleTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown server")
	}
	logger.Info().Msg("server stopped")
}
