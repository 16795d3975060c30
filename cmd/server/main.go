// yt-analytics - YouTube Channel Keyword and Upload Analytics
// Copyright 2026 Aditya Argadinata
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/AdityaArgadinata/yt-analytics

// Command server runs the analytics HTTP API.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/AdityaArgadinata/yt-analytics/internal/api"
	"github.com/AdityaArgadinata/yt-analytics/internal/auth"
	"github.com/AdityaArgadinata/yt-analytics/internal/cache"
	"github.com/AdityaArgadinata/yt-analytics/internal/config"
	"github.com/AdityaArgadinata/yt-analytics/internal/keywords"
	"github.com/AdityaArgadinata/yt-analytics/internal/logging"
	"github.com/AdityaArgadinata/yt-analytics/internal/youtube"
)

func main() {
	if err := run(); err != nil {
		logging.Fatal().Err(err).Msg("Server exited with error")
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("version", api.Version).
		Str("auth_mode", cfg.Auth.Mode).
		Bool("youtube_configured", cfg.YouTube.APIKey != "").
		Msg("Starting yt-analytics")

	engine := keywords.NewEngine(
		keywords.WithExtraWordlists(cfg.Keywords.ExtraStopWords, cfg.Keywords.ExtraNoiseWords),
	)

	resultCache := cache.New(cfg.Cache.TTL, cfg.Cache.SweepInterval)
	defer resultCache.Close()

	fetcher := youtube.NewClient(&cfg.YouTube)
	tokens := auth.NewTokenManager(&cfg.Auth)

	handler := api.NewHandler(cfg, engine, fetcher, resultCache, tokens)
	router := api.NewRouter(handler, api.NewChiMiddleware(api.MiddlewareConfigFromAPI(&cfg.API)))

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router.Setup(),
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logging.Info().Str("addr", server.Addr).Msg("HTTP server listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
		logging.Info().Msg("Shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	logging.Info().Msg("Server stopped cleanly")
	return nil
}
