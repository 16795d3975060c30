// yt-analytics - YouTube Channel Keyword and Upload Analytics
// Copyright 2026 Aditya Argadinata
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/AdityaArgadinata/yt-analytics

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/AdityaArgadinata/yt-analytics/internal/middleware"
)

// Router wires handlers and middleware into the HTTP routing tree.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
}

// NewRouter creates a router for the given handler and middleware
// factory.
func NewRouter(handler *Handler, mw *ChiMiddleware) *Router {
	if mw == nil {
		mw = NewChiMiddleware(nil)
	}
	return &Router{
		handler:       handler,
		chiMiddleware: mw,
	}
}

// Setup configures all HTTP routes.
func (router *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// ========================
	// Global Middleware Stack
	// ========================
	// Applied to ALL routes in order: request id with logging context,
	// real IP from X-Forwarded-For, panic recovery, CORS (global so
	// OPTIONS preflight is handled), request metrics.
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(router.chiMiddleware.CORS())
	r.Use(middleware.PrometheusMetrics)

	// ========================
	// Health Endpoints
	// ========================
	r.Route("/api/v1/health", func(r chi.Router) {
		r.Get("/", router.handler.Health)
		r.Get("/live", router.handler.HealthLive)
		r.Get("/ready", router.handler.HealthReady)
	})

	// ========================
	// Authentication Endpoints
	// ========================
	// Login has the strictest rate limiting (brute force prevention)
	r.Route("/api/v1/auth", func(r chi.Router) {
		r.With(router.chiMiddleware.RateLimitLogin()).Post("/login", router.handler.Login)
	})

	// ========================
	// Keyword Analysis Endpoints
	// ========================
	// The demo payload is public; live analysis requires a token with an
	// entitled plan.
	r.Route("/api/v1/keywords", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())

		r.Get("/demo", router.handler.KeywordsDemo)
		r.With(router.handler.Authenticate).Post("/analyze", router.handler.KeywordsAnalyze)
	})

	// ========================
	// Upload Analytics Endpoints
	// ========================
	r.Route("/api/v1/analytics", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(router.handler.Authenticate)

		r.Post("/uploads", router.handler.AnalyticsUploads)
	})

	// ========================
	// Operational Endpoints
	// ========================
	r.Route("/api/v1/cache", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(router.handler.Authenticate)

		r.Get("/stats", router.handler.CacheStats)
	})

	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	return r
}
