package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"persona-api/internal/api"
	"persona-api/internal/cfg"
	"persona-api/internal/metrics"
	"persona-api/internal/model"
	"persona-api/internal/predict"
)

func main() {
	// Optional .env for local development; absence is not an error.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Msg(".env load failed")
	}

	c, err := cfg.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("config load failed")
	}
	setupLogging(c.LogLevel)

	m := metrics.New()

	// Artifact load failure is non-fatal: the server still starts so the
	// informational page stays reachable and /predict can report a clear
	// unavailable error.
	bundle := model.Load(c.ModelPath, c.EncoderPath)
	if bundle.Available() {
		m.ModelLoaded.Set(1)
		if info, err := os.Stat(c.ModelPath); err == nil {
			m.ModelAge.Set(time.Since(info.ModTime()).Seconds())
		}
	} else {
		m.ModelLoaded.Set(0)
	}

	svc := predict.New(bundle, metrics.NewWrapper(m))
	server := api.New(svc, m, c)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	errs := make(chan error, 1)
	go func() {
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			errs <- err
		}
	}()

	waitForShutdown(ctx, server, errs)
}

func setupLogging(level string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
}

func waitForShutdown(ctx context.Context, server *api.Server, errs chan error) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case <-sigChan:
		log.Info().Msg("shutdown signal received")
	case err := <-errs:
		log.Error().Err(err).Msg("server failed")
	case <-ctx.Done():
		log.Info().Msg("context canceled")
	}

	log.Info().Msg("shutting down gracefully...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Warn().Err(err).Msg("shutdown timeout, forcing exit")
	}
}
