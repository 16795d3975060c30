// yt-analytics - YouTube Channel Keyword and Upload Analytics
// Copyright 2026 Aditya Argadinata
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/AdityaArgadinata/yt-analytics

// Package auth implements the dashboard login and the plan entitlement
// gate. Tokens are HS256 JWTs carrying a plan claim; in mode "none" the
// gate is disabled entirely for self-hosted single-user setups.
package auth

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/AdityaArgadinata/yt-analytics/internal/config"
)

const issuer = "yt-analytics"

var (
	ErrInvalidToken       = errors.New("auth: invalid token")
	ErrInvalidCredentials = errors.New("auth: invalid credentials")
	ErrNotEntitled        = errors.New("auth: plan not entitled")
)

// Claims are the token claims issued at login.
type Claims struct {
	Plan string `json:"plan"`
	jwt.RegisteredClaims
}

// TokenManager issues and verifies dashboard tokens and answers
// entitlement checks against the configured plan list.
type TokenManager struct {
	cfg *config.AuthConfig
}

// NewTokenManager creates a TokenManager from config.
func NewTokenManager(cfg *config.AuthConfig) *TokenManager {
	return &TokenManager{cfg: cfg}
}

// Open reports whether the gate is disabled (mode "none").
func (m *TokenManager) Open() bool {
	return m.cfg.Mode == "none"
}

// Login checks the dashboard credential and issues a token carrying the
// configured plan. Comparison is constant-time.
func (m *TokenManager) Login(user, password string) (string, error) {
	userOK := subtle.ConstantTimeCompare([]byte(user), []byte(m.cfg.DashboardUser)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(m.cfg.DashboardPassword)) == 1
	if !userOK || !passOK {
		return "", ErrInvalidCredentials
	}
	return m.Issue(user, m.cfg.DashboardPlan)
}

// Issue signs a token for subject with the given plan claim.
func (m *TokenManager) Issue(subject, plan string) (string, error) {
	now := time.Now()
	claims := Claims{
		Plan: plan,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.cfg.TokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(m.cfg.Secret))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify parses and validates a token, returning its claims. Expired,
// malformed or foreign-issuer tokens fail with ErrInvalidToken.
func (m *TokenManager) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
			}
			return []byte(m.cfg.Secret), nil
		},
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// Entitled reports whether a plan may run analyses.
func (m *TokenManager) Entitled(plan string) bool {
	for _, p := range m.cfg.EntitledPlans {
		if p == plan {
			return true
		}
	}
	return false
}
