// yt-analytics - YouTube Channel Keyword and Upload Analytics
// Copyright 2026 Aditya Argadinata
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/AdityaArgadinata/yt-analytics

package api

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/AdityaArgadinata/yt-analytics/internal/cache"
	"github.com/AdityaArgadinata/yt-analytics/internal/keywords"
	"github.com/AdityaArgadinata/yt-analytics/internal/logging"
	"github.com/AdityaArgadinata/yt-analytics/internal/metrics"
	"github.com/AdityaArgadinata/yt-analytics/internal/models"
	"github.com/AdityaArgadinata/yt-analytics/internal/youtube"
)

// timeRangeLatest labels analyses built from the newest uploads.
const timeRangeLatest = "latest_videos"

// AnalyzeRequest is the body of POST /api/v1/keywords/analyze.
type AnalyzeRequest struct {
	ChannelID  string `json:"channel_id" validate:"required,min=3,max=64"`
	MaxResults int    `json:"max_results" validate:"omitempty,min=1,max=500"`

	// Refresh drops the cached result for this channel before analyzing.
	Refresh bool `json:"refresh"`
}

// KeywordsDemo serves a canned analysis so the dashboard can be explored
// without a YouTube API key or a login.
func (h *Handler) KeywordsDemo(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data:   keywords.DemoInsights(time.Now()),
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}

// KeywordsAnalyze fetches a channel's recent uploads and runs the keyword
// analysis. Results are cached per channel and result size; refresh=true
// forces a recompute.
func (h *Handler) KeywordsAnalyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}
	if !h.requireEntitlement(w, r) {
		return
	}

	maxResults := req.MaxResults
	if maxResults == 0 {
		maxResults = h.config.YouTube.MaxVideos
	}

	key := cache.GenerateKey("keywords_analyze", map[string]interface{}{
		"channel_id":  req.ChannelID,
		"max_results": maxResults,
	})

	if req.Refresh {
		h.cache.Delete(key)
	} else if cached, ok := h.cache.Get(key); ok {
		metrics.RecordCacheLookup(true)
		respondJSON(w, http.StatusOK, &models.APIResponse{
			Status: "success",
			Data:   cached,
			Metadata: models.Metadata{
				Timestamp: time.Now(),
				Cached:    true,
			},
		})
		return
	}
	metrics.RecordCacheLookup(false)

	start := time.Now()
	channelID, err := h.resolveChannelID(r.Context(), req.ChannelID)
	if err != nil {
		respondUpstreamError(w, r, req.ChannelID, err)
		return
	}

	_, videos, err := youtube.FetchChannelVideos(r.Context(), h.fetcher, channelID, maxResults)
	if err != nil {
		respondUpstreamError(w, r, req.ChannelID, err)
		return
	}

	insights := h.engine.Analyze(channelID, timeRangeLatest, videos)
	metrics.RecordAnalysis(time.Since(start), len(videos))

	h.cache.Set(key, insights)

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data:   insights,
		Metadata: models.Metadata{
			Timestamp:   time.Now(),
			QueryTimeMs: time.Since(start).Milliseconds(),
		},
	})
}

// channelIDLength is the fixed length of YouTube channel ids.
const channelIDLength = 24

// resolveChannelID accepts either a raw channel id or a free-text channel
// name. Names go through search, matching the dashboard's lookup box.
func (h *Handler) resolveChannelID(ctx context.Context, q string) (string, error) {
	if strings.HasPrefix(q, "UC") && len(q) == channelIDLength {
		return q, nil
	}

	channel, err := h.fetcher.SearchChannel(ctx, q)
	if err != nil {
		return "", err
	}
	return channel.ID, nil
}

// respondUpstreamError maps fetch failures to API errors. Unexpected
// upstream errors surface as a generic message; the detail is logged only,
// correlated to the request id.
func respondUpstreamError(w http.ResponseWriter, r *http.Request, channelID string, err error) {
	switch {
	case errors.Is(err, youtube.ErrChannelNotFound):
		respondError(w, http.StatusNotFound, "NOT_FOUND", "Channel not found", nil)
	case errors.Is(err, youtube.ErrNoUploads):
		respondError(w, http.StatusNotFound, "NOT_FOUND", "Channel has no public uploads", nil)
	case errors.Is(err, youtube.ErrNotConfigured):
		respondError(w, http.StatusServiceUnavailable, "UPSTREAM_ERROR", "Channel analysis is not available on this deployment", nil)
	default:
		logger := logging.Ctx(r.Context())
		logger.Error().
			Str("channel_id", sanitizeLogValue(channelID)).
			Err(err).
			Msg("Channel fetch failed")
		respondError(w, http.StatusBadGateway, "UPSTREAM_ERROR", "Failed to fetch channel data, please try again later", nil)
	}
}
