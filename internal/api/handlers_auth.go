// yt-analytics - YouTube Channel Keyword and Upload Analytics
// Copyright 2026 Aditya Argadinata
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/AdityaArgadinata/yt-analytics

package api

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/AdityaArgadinata/yt-analytics/internal/auth"
	"github.com/AdityaArgadinata/yt-analytics/internal/logging"
	"github.com/AdityaArgadinata/yt-analytics/internal/models"
)

type claimsContextKey struct{}

// LoginRequest is the dashboard login body.
type LoginRequest struct {
	Username string `json:"username" validate:"required,min=1,max=128"`
	Password string `json:"password" validate:"required,min=1,max=256"`
}

// Login checks the configured dashboard credential and issues a bearer
// token carrying the plan claim.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	if h.tokens.Open() {
		respondError(w, http.StatusForbidden, "AUTH_DISABLED", "Authentication is disabled", nil)
		return
	}

	var req LoginRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}

	token, err := h.tokens.Login(req.Username, req.Password)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid username or password", nil)
		return
	}

	logger := logging.Ctx(r.Context())
	logger.Info().Str("user", sanitizeLogValue(req.Username)).Msg("Dashboard login")

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: map[string]interface{}{
			"token":      token,
			"token_type": "Bearer",
			"expires_in": int64(h.config.Auth.TokenTTL.Seconds()),
		},
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}

// Authenticate verifies the Bearer token and stashes its claims in the
// request context. In open mode (auth.mode=none) every request passes.
func (h *Handler) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.tokens.Open() {
			next.ServeHTTP(w, r)
			return
		}

		header := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			respondError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Missing or malformed Authorization header", nil)
			return
		}

		claims, err := h.tokens.Verify(token)
		if err != nil {
			respondError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid or expired token", nil)
			return
		}

		ctx := context.WithValue(r.Context(), claimsContextKey{}, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// claimsFromContext returns the verified claims, or nil in open mode.
func claimsFromContext(ctx context.Context) *auth.Claims {
	claims, _ := ctx.Value(claimsContextKey{}).(*auth.Claims)
	return claims
}

// requireEntitlement checks the plan claim against the configured
// entitled plans. Returns false and responds PAYMENT_REQUIRED when the
// plan is not allowed to run analyses.
func (h *Handler) requireEntitlement(w http.ResponseWriter, r *http.Request) bool {
	if h.tokens.Open() {
		return true
	}

	claims := claimsFromContext(r.Context())
	if claims == nil || !h.tokens.Entitled(claims.Plan) {
		respondError(w, http.StatusPaymentRequired, "PAYMENT_REQUIRED", "Your plan does not include channel analysis", nil)
		return false
	}
	return true
}
