// yt-analytics - YouTube Channel Keyword and Upload Analytics
// Copyright 2026 Aditya Argadinata
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/AdityaArgadinata/yt-analytics

package api

import (
	"net/http"
	"testing"

	"github.com/goccy/go-json"
)

func TestLoginSuccess(t *testing.T) {
	env := newTestEnv(t, "jwt")

	resp, body := doJSON(t, http.MethodPost, env.server.URL+"/api/v1/auth/login", "",
		LoginRequest{Username: "admin", Password: "hunter2"})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var data struct {
		Token     string `json:"token"`
		TokenType string `json:"token_type"`
		ExpiresIn int64  `json:"expires_in"`
	}
	if err := json.Unmarshal(body.Data, &data); err != nil {
		t.Fatalf("decode login data: %v", err)
	}
	if data.Token == "" {
		t.Fatal("expected a token")
	}
	if data.TokenType != "Bearer" {
		t.Errorf("expected Bearer, got %q", data.TokenType)
	}
	if data.ExpiresIn != 3600 {
		t.Errorf("expected 3600s expiry, got %d", data.ExpiresIn)
	}

	claims, err := env.tokens.Verify(data.Token)
	if err != nil {
		t.Fatalf("issued token failed verification: %v", err)
	}
	if claims.Plan != "pro" {
		t.Errorf("expected plan pro, got %q", claims.Plan)
	}
}

func TestLoginInvalidCredentials(t *testing.T) {
	env := newTestEnv(t, "jwt")

	cases := []struct {
		name string
		req  LoginRequest
	}{
		{"wrong password", LoginRequest{Username: "admin", Password: "wrong"}},
		{"wrong username", LoginRequest{Username: "root", Password: "hunter2"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp, body := doJSON(t, http.MethodPost, env.server.URL+"/api/v1/auth/login", "", tc.req)
			if resp.StatusCode != http.StatusUnauthorized {
				t.Fatalf("expected 401, got %d", resp.StatusCode)
			}
			if body.Error == nil || body.Error.Code != "UNAUTHORIZED" {
				t.Errorf("expected UNAUTHORIZED, got %+v", body.Error)
			}
		})
	}
}

func TestLoginValidation(t *testing.T) {
	env := newTestEnv(t, "jwt")

	resp, body := doJSON(t, http.MethodPost, env.server.URL+"/api/v1/auth/login", "",
		LoginRequest{Username: "admin"})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
	if body.Error == nil || body.Error.Code != "VALIDATION_ERROR" {
		t.Errorf("expected VALIDATION_ERROR, got %+v", body.Error)
	}
}

func TestLoginDisabledInOpenMode(t *testing.T) {
	env := newTestEnv(t, "none")

	resp, body := doJSON(t, http.MethodPost, env.server.URL+"/api/v1/auth/login", "",
		LoginRequest{Username: "admin", Password: "hunter2"})
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", resp.StatusCode)
	}
	if body.Error == nil || body.Error.Code != "AUTH_DISABLED" {
		t.Errorf("expected AUTH_DISABLED, got %+v", body.Error)
	}
}

func TestAuthenticateRejectsGarbageToken(t *testing.T) {
	env := newTestEnv(t, "jwt")

	resp, body := doJSON(t, http.MethodGet, env.server.URL+"/api/v1/cache/stats", "not-a-token", nil)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
	if body.Error == nil || body.Error.Code != "UNAUTHORIZED" {
		t.Errorf("expected UNAUTHORIZED, got %+v", body.Error)
	}
}

func TestAuthenticateOpenModeSkipsToken(t *testing.T) {
	env := newTestEnv(t, "none")

	resp, _ := doJSON(t, http.MethodGet, env.server.URL+"/api/v1/cache/stats", "", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 in open mode, got %d", resp.StatusCode)
	}
}
