// yt-analytics - YouTube Channel Keyword and Upload Analytics
// Copyright 2026 Aditya Argadinata
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/AdityaArgadinata/yt-analytics

// Package api provides the HTTP surface: handlers, routing and the
// middleware stack serving the dashboard frontend.
package api

import (
	"net/http"
	"time"

	"github.com/AdityaArgadinata/yt-analytics/internal/auth"
	"github.com/AdityaArgadinata/yt-analytics/internal/cache"
	"github.com/AdityaArgadinata/yt-analytics/internal/config"
	"github.com/AdityaArgadinata/yt-analytics/internal/keywords"
	"github.com/AdityaArgadinata/yt-analytics/internal/models"
	"github.com/AdityaArgadinata/yt-analytics/internal/youtube"
)

// Version is the reported application version.
const Version = "1.0.0"

// Handler holds all dependencies the HTTP handlers need.
type Handler struct {
	config    *config.Config
	engine    *keywords.Engine
	fetcher   youtube.Fetcher
	cache     *cache.Cache
	tokens    *auth.TokenManager
	startTime time.Time
}

// NewHandler creates a handler with all dependencies injected.
func NewHandler(cfg *config.Config, engine *keywords.Engine, fetcher youtube.Fetcher, resultCache *cache.Cache, tokens *auth.TokenManager) *Handler {
	return &Handler{
		config:    cfg,
		engine:    engine,
		fetcher:   fetcher,
		cache:     resultCache,
		tokens:    tokens,
		startTime: time.Now(),
	}
}

// Health reports overall service health. The YouTube upstream is not
// probed here; a missing API key degrades the status instead because the
// demo endpoint still works without it.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	upstreamConfigured := h.config != nil && h.config.YouTube.APIKey != ""

	status := "healthy"
	if !upstreamConfigured {
		status = "degraded"
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: map[string]interface{}{
			"status":              status,
			"version":             Version,
			"youtube_configured":  upstreamConfigured,
			"auth_mode":           h.config.Auth.Mode,
			"uptime":              time.Since(h.startTime).Seconds(),
			"cached_result_count": h.cache.GetStats().TotalKeys,
		},
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}

// HealthLive is the liveness probe. Returns 200 whenever the process is
// alive, regardless of upstream state.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: map[string]interface{}{
			"alive":  true,
			"uptime": time.Since(h.startTime).Seconds(),
		},
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}

// HealthReady is the readiness probe. The service is ready to analyze
// channels only when the upstream client is configured; demo-only
// deployments report not_ready so orchestration keeps them out of
// analysis traffic.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	ready := h.config != nil && h.config.YouTube.APIKey != ""

	statusCode := http.StatusOK
	status := "ready"
	if !ready {
		statusCode = http.StatusServiceUnavailable
		status = "not_ready"
	}

	respondJSON(w, statusCode, &models.APIResponse{
		Status: status,
		Data: map[string]interface{}{
			"youtube_configured": ready,
			"ready_to_serve":     ready,
			"uptime":             time.Since(h.startTime).Seconds(),
		},
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}

// CacheStats exposes result cache counters for the dashboard's admin view.
func (h *Handler) CacheStats(w http.ResponseWriter, r *http.Request) {
	stats := h.cache.GetStats()

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: map[string]interface{}{
			"stats":    stats,
			"hit_rate": h.cache.HitRate(),
		},
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}
