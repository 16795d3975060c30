// yt-analytics - YouTube Channel Keyword and Upload Analytics
// Copyright 2026 Aditya Argadinata
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/AdityaArgadinata/yt-analytics

package youtube

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	gobreaker "github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"

	"github.com/AdityaArgadinata/yt-analytics/internal/config"
	"github.com/AdityaArgadinata/yt-analytics/internal/logging"
	"github.com/AdityaArgadinata/yt-analytics/internal/metrics"
	"github.com/AdityaArgadinata/yt-analytics/internal/models"
)

const (
	pageSize      = 50 // playlistItems page size, Data API maximum
	statsBatchMax = 50 // videos endpoint accepts up to 50 ids per call
)

// Client implements Fetcher against the YouTube Data API v3.
//
// Outgoing calls are paced by a token-bucket limiter to protect quota and
// wrapped in a circuit breaker so a failing upstream degrades fast instead
// of stalling every analysis request.
type Client struct {
	baseURL   string
	apiKey    string
	maxVideos int
	http      *http.Client
	limiter   *rate.Limiter
	breaker   *gobreaker.CircuitBreaker[[]byte]
}

// NewClient creates a Client from config. The API key is validated lazily:
// construction always succeeds, calls fail with ErrNotConfigured.
func NewClient(cfg *config.YouTubeConfig) *Client {
	c := &Client{
		baseURL:   cfg.BaseURL,
		apiKey:    cfg.APIKey,
		maxVideos: cfg.MaxVideos,
		http:      &http.Client{Timeout: cfg.Timeout},
		limiter:   rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), 1),
	}

	c.breaker = gobreaker.NewCircuitBreaker[[]byte](gobreaker.Settings{
		Name:    "youtube-api",
		Timeout: cfg.BreakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.BreakerMaxFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logging.Info().
				Str("breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("circuit breaker state change")
			metrics.YouTubeBreakerState.Set(breakerStateValue(to))
		},
	})

	logging.Info().
		Str("base_url", cfg.BaseURL).
		Str("api_key", maskKey(cfg.APIKey)).
		Int("max_videos", cfg.MaxVideos).
		Msg("youtube client configured")

	return c
}

func breakerStateValue(s gobreaker.State) float64 {
	switch s {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	default:
		return 2
	}
}

// SearchChannel resolves a query string to the top-ranked channel.
func (c *Client) SearchChannel(ctx context.Context, query string) (*models.Channel, error) {
	params := url.Values{}
	params.Set("part", "snippet")
	params.Set("q", query)
	params.Set("type", "channel")
	params.Set("maxResults", "1")

	var resp searchResponse
	if err := c.call(ctx, "search", params, &resp); err != nil {
		return nil, err
	}
	if len(resp.Items) == 0 {
		return nil, ErrChannelNotFound
	}

	item := resp.Items[0]
	return &models.Channel{
		ID:          item.ID.ChannelID,
		Title:       item.Snippet.Title,
		Description: item.Snippet.Description,
	}, nil
}

// GetChannel loads metadata, statistics and the uploads playlist id for a
// channel.
func (c *Client) GetChannel(ctx context.Context, channelID string) (*models.Channel, error) {
	params := url.Values{}
	params.Set("part", "snippet,statistics,contentDetails")
	params.Set("id", channelID)

	var resp channelsResponse
	if err := c.call(ctx, "channels", params, &resp); err != nil {
		return nil, err
	}
	if len(resp.Items) == 0 {
		return nil, ErrChannelNotFound
	}

	item := resp.Items[0]
	return &models.Channel{
		ID:                item.ID,
		Title:             item.Snippet.Title,
		Description:       item.Snippet.Description,
		UploadsPlaylistID: item.ContentDetails.RelatedPlaylists.Uploads,
		Statistics: models.ChannelStatistics{
			ViewCount:       parseCount(item.Statistics.ViewCount),
			SubscriberCount: parseCount(item.Statistics.SubscriberCount),
			VideoCount:      parseCount(item.Statistics.VideoCount),
		},
	}, nil
}

// ListUploads pages through an uploads playlist until max records are
// collected or the playlist ends.
func (c *Client) ListUploads(ctx context.Context, playlistID string, max int) ([]models.VideoRecord, error) {
	if playlistID == "" {
		return nil, ErrNoUploads
	}
	if max <= 0 || max > c.maxVideos {
		max = c.maxVideos
	}

	var (
		records   []models.VideoRecord
		pageToken string
	)
	for len(records) < max {
		params := url.Values{}
		params.Set("part", "snippet,contentDetails")
		params.Set("playlistId", playlistID)
		params.Set("maxResults", strconv.Itoa(pageSize))
		if pageToken != "" {
			params.Set("pageToken", pageToken)
		}

		var resp playlistItemsResponse
		if err := c.call(ctx, "playlistItems", params, &resp); err != nil {
			return nil, err
		}

		for _, item := range resp.Items {
			id := item.ContentDetails.VideoID
			if id == "" {
				id = item.Snippet.ResourceID.VideoID
			}
			if id == "" {
				continue
			}
			published := item.Snippet.PublishedAt
			if item.ContentDetails.VideoPublishedAt != nil {
				published = *item.ContentDetails.VideoPublishedAt
			}
			records = append(records, models.VideoRecord{
				ID:          id,
				Title:       item.Snippet.Title,
				PublishedAt: published,
			})
			if len(records) >= max {
				break
			}
		}

		pageToken = resp.NextPageToken
		if pageToken == "" {
			break
		}
	}
	return records, nil
}

// GetVideoStats completes partial records with statistics, descriptions
// and durations, 50 ids per request. Records absent from the response keep
// their partial data with zeroed counters. The result is sorted newest
// first.
func (c *Client) GetVideoStats(ctx context.Context, videos []models.VideoRecord) ([]models.VideoRecord, error) {
	out := make([]models.VideoRecord, 0, len(videos))

	for start := 0; start < len(videos); start += statsBatchMax {
		end := start + statsBatchMax
		if end > len(videos) {
			end = len(videos)
		}
		chunk := videos[start:end]

		ids := make([]string, len(chunk))
		for i, v := range chunk {
			ids[i] = v.ID
		}
		params := url.Values{}
		params.Set("part", "snippet,statistics,contentDetails")
		params.Set("id", strings.Join(ids, ","))
		params.Set("maxResults", strconv.Itoa(statsBatchMax))

		var resp videosResponse
		if err := c.call(ctx, "videos", params, &resp); err != nil {
			return nil, err
		}

		byID := make(map[string]int, len(resp.Items))
		for i, item := range resp.Items {
			byID[item.ID] = i
		}
		for _, v := range chunk {
			i, ok := byID[v.ID]
			if !ok {
				out = append(out, v)
				continue
			}
			item := resp.Items[i]
			record := models.VideoRecord{
				ID:           v.ID,
				Title:        item.Snippet.Title,
				Description:  item.Snippet.Description,
				PublishedAt:  item.Snippet.PublishedAt,
				ViewCount:    parseCount(item.Statistics.ViewCount),
				LikeCount:    parseCount(item.Statistics.LikeCount),
				CommentCount: parseCount(item.Statistics.CommentCount),
				Duration:     item.ContentDetails.Duration,
			}
			if record.Title == "" {
				record.Title = v.Title
			}
			if record.PublishedAt.IsZero() {
				record.PublishedAt = v.PublishedAt
			}
			out = append(out, record)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].PublishedAt.After(out[j].PublishedAt)
	})
	return out, nil
}

// call performs one rate-limited, breaker-guarded GET against the Data API
// and decodes the JSON response into dst.
func (c *Client) call(ctx context.Context, endpoint string, params url.Values, dst interface{}) error {
	if c.apiKey == "" {
		return ErrNotConfigured
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	params.Set("key", c.apiKey)
	reqURL := fmt.Sprintf("%s/%s?%s", c.baseURL, endpoint, params.Encode())

	started := time.Now()
	body, err := c.breaker.Execute(func() ([]byte, error) {
		return c.doRequest(ctx, endpoint, reqURL)
	})
	took := time.Since(started)

	status := "ok"
	if err != nil {
		status = "error"
	}
	metrics.RecordYouTubeRequest(endpoint, status, took)

	if err != nil {
		if err == gobreaker.ErrOpenState || err == gobreaker.ErrTooManyRequests {
			logging.Warn().Str("endpoint", endpoint).Msg("circuit breaker rejecting upstream call")
			return ErrUnavailable
		}
		return err
	}

	logging.Debug().
		Str("endpoint", endpoint).
		Dur("took", took).
		Msg("youtube api call ok")

	return json.Unmarshal(body, dst)
}

func (c *Client) doRequest(ctx context.Context, endpoint, reqURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		logging.Err(err).Str("endpoint", endpoint).Msg("youtube api network error")
		return nil, fmt.Errorf("youtube fetch failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("youtube read failed: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		reason := ""
		var apiErr apiErrorResponse
		if json.Unmarshal(body, &apiErr) == nil {
			if len(apiErr.Error.Errors) > 0 {
				reason = apiErr.Error.Errors[0].Reason
			} else {
				reason = apiErr.Error.Message
			}
		}
		logging.Error().
			Str("endpoint", endpoint).
			Int("status", resp.StatusCode).
			Str("reason", reason).
			Msg("youtube api http error")
		if reason != "" {
			return nil, fmt.Errorf("youtube api error (HTTP %d): %s", resp.StatusCode, reason)
		}
		return nil, fmt.Errorf("youtube api error (HTTP %d)", resp.StatusCode)
	}
	return body, nil
}
