// yt-analytics - YouTube Channel Keyword and Upload Analytics
// Copyright 2026 Aditya Argadinata
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/AdityaArgadinata/yt-analytics

package models

import "time"

// VideoRecord is one analyzed video as supplied by the fetch layer.
//
// The fetch layer normalizes the YouTube Data API response before handing
// records to the engine: missing or malformed statistics become 0, a missing
// description becomes the empty string. The engine never sees partial or
// corrupt records (the fetch layer supplies a complete batch or no batch).
type VideoRecord struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description,omitempty"`
	PublishedAt  time.Time `json:"published_at"`
	ViewCount    int64     `json:"view_count"`
	LikeCount    int64     `json:"like_count"`
	CommentCount int64     `json:"comment_count"`
	// Duration is the raw ISO-8601 duration string (e.g. "PT1M30S").
	// Unused by the keyword engine; the upload-pattern analyzer uses it to
	// classify Shorts.
	Duration string `json:"duration,omitempty"`
}

// VideoRef is a compact reference to a contributing video, attached to
// keyword and hashtag aggregates so the dashboard can show examples.
type VideoRef struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Views    int64  `json:"views"`
	Likes    int64  `json:"likes,omitempty"`
	Comments int64  `json:"comments,omitempty"`
}

// Channel carries the public channel metadata shown in the dashboard header.
type Channel struct {
	ID                string            `json:"id"`
	Title             string            `json:"title"`
	Description       string            `json:"description,omitempty"`
	UploadsPlaylistID string            `json:"uploads_playlist_id,omitempty"`
	Statistics        ChannelStatistics `json:"statistics"`
}

// ChannelStatistics holds the channel-level counters from the Data API.
type ChannelStatistics struct {
	ViewCount       int64 `json:"view_count"`
	SubscriberCount int64 `json:"subscriber_count"`
	VideoCount      int64 `json:"video_count"`
}
