// yt-analytics - YouTube Channel Keyword and Upload Analytics
// Copyright 2026 Aditya Argadinata
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/AdityaArgadinata/yt-analytics

package api

import (
	"net/http"
	"time"

	"github.com/AdityaArgadinata/yt-analytics/internal/analytics"
	"github.com/AdityaArgadinata/yt-analytics/internal/cache"
	"github.com/AdityaArgadinata/yt-analytics/internal/metrics"
	"github.com/AdityaArgadinata/yt-analytics/internal/models"
	"github.com/AdityaArgadinata/yt-analytics/internal/youtube"
)

// UploadsRequest is the body of POST /api/v1/analytics/uploads.
type UploadsRequest struct {
	ChannelID  string `json:"channel_id" validate:"required,min=3,max=64"`
	MaxResults int    `json:"max_results" validate:"omitempty,min=1,max=500"`
	Refresh    bool   `json:"refresh"`
}

// AnalyticsUploads builds upload-timing patterns (day, hour, month
// buckets plus Shorts split) for a channel's recent uploads. Shares the
// result cache with keyword analysis under its own key space.
func (h *Handler) AnalyticsUploads(w http.ResponseWriter, r *http.Request) {
	var req UploadsRequest
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

	key := cache.GenerateKey("analytics_uploads", map[string]interface{}{
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

	patterns := analytics.BuildPatterns(videos)

	h.cache.Set(key, patterns)

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data:   patterns,
		Metadata: models.Metadata{
			Timestamp:   time.Now(),
			QueryTimeMs: time.Since(start).Milliseconds(),
		},
	})
}
