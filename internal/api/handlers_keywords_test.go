// yt-analytics - YouTube Channel Keyword and Upload Analytics
// Copyright 2026 Aditya Argadinata
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/AdityaArgadinata/yt-analytics

package api

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/goccy/go-json"

	"github.com/AdityaArgadinata/yt-analytics/internal/models"
	"github.com/AdityaArgadinata/yt-analytics/internal/youtube"
)

func TestKeywordsDemoIsPublic(t *testing.T) {
	env := newTestEnv(t, "jwt")

	resp, body := doJSON(t, http.MethodGet, env.server.URL+"/api/v1/keywords/demo", "", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var insights models.Insights
	if err := json.Unmarshal(body.Data, &insights); err != nil {
		t.Fatalf("decode demo insights: %v", err)
	}
	if len(insights.TopKeywords) == 0 {
		t.Error("expected demo keywords")
	}
	if len(insights.TrendingHashtags) == 0 {
		t.Error("expected demo hashtags")
	}
	if insights.Metadata.ChannelID != "demo" {
		t.Errorf("expected channel demo, got %q", insights.Metadata.ChannelID)
	}
}

func TestKeywordsAnalyzeRequiresAuth(t *testing.T) {
	env := newTestEnv(t, "jwt")

	resp, body := doJSON(t, http.MethodPost, env.server.URL+"/api/v1/keywords/analyze", "",
		AnalyzeRequest{ChannelID: "UCtest123456"})
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
	if body.Error == nil || body.Error.Code != "UNAUTHORIZED" {
		t.Errorf("expected UNAUTHORIZED, got %+v", body.Error)
	}
}

func TestKeywordsAnalyze(t *testing.T) {
	env := newTestEnv(t, "jwt")
	token := env.login(t)

	resp, body := doJSON(t, http.MethodPost, env.server.URL+"/api/v1/keywords/analyze", token,
		AnalyzeRequest{ChannelID: "UCtest123456"})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d: %+v", resp.StatusCode, body.Error)
	}

	var insights models.Insights
	if err := json.Unmarshal(body.Data, &insights); err != nil {
		t.Fatalf("decode insights: %v", err)
	}
	if insights.Metadata.ChannelID != "UCtest123456" {
		t.Errorf("unexpected channel id %q", insights.Metadata.ChannelID)
	}
	if insights.Metadata.TotalVideosAnalyzed != 4 {
		t.Errorf("expected 4 videos analyzed, got %d", insights.Metadata.TotalVideosAnalyzed)
	}
	if len(insights.TopKeywords) == 0 {
		t.Fatal("expected keywords from the test batch")
	}

	found := false
	for _, kw := range insights.TopKeywords {
		if kw.Keyword == "golang" {
			found = true
		}
	}
	if !found {
		t.Error("expected golang among top keywords")
	}
}

func TestKeywordsAnalyzeCaching(t *testing.T) {
	env := newTestEnv(t, "jwt")
	token := env.login(t)
	req := AnalyzeRequest{ChannelID: "UCtest123456"}
	url := env.server.URL + "/api/v1/keywords/analyze"

	_, first := doJSON(t, http.MethodPost, url, token, req)
	if first.Metadata.Cached {
		t.Error("first analysis should not be cached")
	}
	if got := env.fetcher.fetchCalls.Load(); got != 1 {
		t.Fatalf("expected 1 upstream fetch, got %d", got)
	}

	_, second := doJSON(t, http.MethodPost, url, token, req)
	if !second.Metadata.Cached {
		t.Error("second analysis should be served from cache")
	}
	if got := env.fetcher.fetchCalls.Load(); got != 1 {
		t.Errorf("cached response still hit upstream, %d fetches", got)
	}

	req.Refresh = true
	_, third := doJSON(t, http.MethodPost, url, token, req)
	if third.Metadata.Cached {
		t.Error("refresh should force a recompute")
	}
	if got := env.fetcher.fetchCalls.Load(); got != 2 {
		t.Errorf("expected refresh to hit upstream, %d fetches", got)
	}
}

func TestKeywordsAnalyzeEntitlementGate(t *testing.T) {
	env := newTestEnv(t, "jwt")

	token, err := env.tokens.Issue("freeloader", "free")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	resp, body := doJSON(t, http.MethodPost, env.server.URL+"/api/v1/keywords/analyze", token,
		AnalyzeRequest{ChannelID: "UCtest123456"})
	if resp.StatusCode != http.StatusPaymentRequired {
		t.Fatalf("expected 402, got %d", resp.StatusCode)
	}
	if body.Error == nil || body.Error.Code != "PAYMENT_REQUIRED" {
		t.Errorf("expected PAYMENT_REQUIRED, got %+v", body.Error)
	}
}

func TestKeywordsAnalyzeOpenMode(t *testing.T) {
	env := newTestEnv(t, "none")

	resp, _ := doJSON(t, http.MethodPost, env.server.URL+"/api/v1/keywords/analyze", "",
		AnalyzeRequest{ChannelID: "UCtest123456"})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 in open mode, got %d", resp.StatusCode)
	}
}

func TestKeywordsAnalyzeResolvesChannelNames(t *testing.T) {
	env := newTestEnv(t, "jwt")
	token := env.login(t)

	resp, body := doJSON(t, http.MethodPost, env.server.URL+"/api/v1/keywords/analyze", token,
		AnalyzeRequest{ChannelID: "Test Channel"})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d: %+v", resp.StatusCode, body.Error)
	}
	if got := env.fetcher.searchCalls.Load(); got != 1 {
		t.Errorf("expected 1 search call, got %d", got)
	}

	var insights models.Insights
	if err := json.Unmarshal(body.Data, &insights); err != nil {
		t.Fatalf("decode insights: %v", err)
	}
	if insights.Metadata.ChannelID != "UCtest123456" {
		t.Errorf("expected resolved channel id, got %q", insights.Metadata.ChannelID)
	}
}

func TestKeywordsAnalyzeSkipsSearchForRawID(t *testing.T) {
	env := newTestEnv(t, "jwt")
	env.fetcher.channel.ID = "UCAbCdEfGhIjKlMnOpQrStUv"
	env.fetcher.channel.UploadsPlaylistID = "UUAbCdEfGhIjKlMnOpQrStUv"
	token := env.login(t)

	resp, _ := doJSON(t, http.MethodPost, env.server.URL+"/api/v1/keywords/analyze", token,
		AnalyzeRequest{ChannelID: "UCAbCdEfGhIjKlMnOpQrStUv"})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if got := env.fetcher.searchCalls.Load(); got != 0 {
		t.Errorf("raw channel id should bypass search, got %d search calls", got)
	}
}

func TestKeywordsAnalyzeValidation(t *testing.T) {
	env := newTestEnv(t, "jwt")
	token := env.login(t)
	url := env.server.URL + "/api/v1/keywords/analyze"

	cases := []struct {
		name string
		req  AnalyzeRequest
	}{
		{"missing channel", AnalyzeRequest{}},
		{"channel too short", AnalyzeRequest{ChannelID: "ab"}},
		{"max results too large", AnalyzeRequest{ChannelID: "UCtest123456", MaxResults: 9999}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp, body := doJSON(t, http.MethodPost, url, token, tc.req)
			if resp.StatusCode != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", resp.StatusCode)
			}
			if body.Error == nil || body.Error.Code != "VALIDATION_ERROR" {
				t.Errorf("expected VALIDATION_ERROR, got %+v", body.Error)
			}
		})
	}
}

func TestKeywordsAnalyzeUpstreamErrors(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"channel not found", youtube.ErrChannelNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"no uploads", youtube.ErrNoUploads, http.StatusNotFound, "NOT_FOUND"},
		{"not configured", youtube.ErrNotConfigured, http.StatusServiceUnavailable, "UPSTREAM_ERROR"},
		{"unexpected failure", errors.New("tls handshake timeout"), http.StatusBadGateway, "UPSTREAM_ERROR"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			env := newTestEnv(t, "jwt")
			env.fetcher.err = tc.err
			token := env.login(t)

			resp, body := doJSON(t, http.MethodPost, env.server.URL+"/api/v1/keywords/analyze", token,
				AnalyzeRequest{ChannelID: "UCtest123456"})
			if resp.StatusCode != tc.wantStatus {
				t.Fatalf("expected %d, got %d", tc.wantStatus, resp.StatusCode)
			}
			if body.Error == nil || body.Error.Code != tc.wantCode {
				t.Fatalf("expected %s, got %+v", tc.wantCode, body.Error)
			}
			if tc.wantStatus == http.StatusBadGateway && strings.Contains(body.Error.Message, "tls handshake") {
				t.Error("upstream detail leaked into the user-facing message")
			}
		})
	}
}
