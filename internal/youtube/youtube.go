// yt-analytics - YouTube Channel Keyword and Upload Analytics
// Copyright 2026 Aditya Argadinata
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/AdityaArgadinata/yt-analytics

// Package youtube fetches public channel and video metadata from the
// YouTube Data API v3. The rest of the application consumes the Fetcher
// interface; handlers and tests substitute fakes.
package youtube

import (
	"context"
	"errors"

	"github.com/AdityaArgadinata/yt-analytics/internal/models"
)

// Fetcher is the upstream metadata source consumed by the API layer.
type Fetcher interface {
	// SearchChannel resolves a free-text query to the best-matching channel.
	SearchChannel(ctx context.Context, query string) (*models.Channel, error)

	// GetChannel loads channel metadata, statistics and the uploads
	// playlist id.
	GetChannel(ctx context.Context, channelID string) (*models.Channel, error)

	// ListUploads pages through the uploads playlist and returns up to max
	// partial records (id, title, published time). Statistics are filled by
	// GetVideoStats.
	ListUploads(ctx context.Context, playlistID string, max int) ([]models.VideoRecord, error)

	// GetVideoStats fills view/like/comment counts and durations for the
	// given records, batched 50 ids per request, and returns the completed
	// batch sorted newest first.
	GetVideoStats(ctx context.Context, videos []models.VideoRecord) ([]models.VideoRecord, error)
}

// Sentinel errors. Handlers map these to user-facing responses; anything
// else is reported as a generic upstream failure.
var (
	ErrNotConfigured   = errors.New("youtube: api key not configured")
	ErrChannelNotFound = errors.New("youtube: channel not found")
	ErrNoUploads       = errors.New("youtube: channel has no public uploads")
	ErrUnavailable     = errors.New("youtube: upstream unavailable")
)

// FetchChannelVideos is the composite flow behind one analysis request:
// channel details, uploads playlist, then per-video statistics.
func FetchChannelVideos(ctx context.Context, f Fetcher, channelID string, max int) (*models.Channel, []models.VideoRecord, error) {
	channel, err := f.GetChannel(ctx, channelID)
	if err != nil {
		return nil, nil, err
	}
	if channel.UploadsPlaylistID == "" {
		return nil, nil, ErrNoUploads
	}

	uploads, err := f.ListUploads(ctx, channel.UploadsPlaylistID, max)
	if err != nil {
		return nil, nil, err
	}
	if len(uploads) == 0 {
		return channel, nil, nil
	}

	videos, err := f.GetVideoStats(ctx, uploads)
	if err != nil {
		return nil, nil, err
	}
	return channel, videos, nil
}
