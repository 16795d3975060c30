// yt-analytics - YouTube Channel Keyword and Upload Analytics
// Copyright 2026 Aditya Argadinata
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/AdityaArgadinata/yt-analytics

package models

import "time"

// Performance classifies a keyword or hashtag relative to the batch averages.
type Performance string

// Performance tiers. High means the entry beats both the batch view average
// and the batch engagement average by a margin; low means it clears neither.
const (
	PerformanceHigh   Performance = "high"
	PerformanceMedium Performance = "medium"
	PerformanceLow    Performance = "low"
)

// KeywordData is one scored keyword in the final ranking.
//
// Frequency counts videos touched, not occurrences: a keyword appearing in
// both the title and description of the same video contributes once.
type KeywordData struct {
	Keyword     string      `json:"keyword"`
	Frequency   int         `json:"frequency"`
	AvgViews    float64     `json:"avg_views"`
	AvgLikes    float64     `json:"avg_likes"`
	AvgComments float64     `json:"avg_comments"`
	Performance Performance `json:"performance"`
	Videos      []VideoRef  `json:"videos"`
}

// HashtagData is one scored hashtag in the final ranking. Hashtags keep the
// leading '#' and are tracked unweighted with views only.
type HashtagData struct {
	Hashtag     string      `json:"hashtag"`
	Frequency   int         `json:"frequency"`
	AvgViews    float64     `json:"avg_views"`
	Performance Performance `json:"performance"`
	Trending    bool        `json:"trending"`
	Videos      []VideoRef  `json:"videos"`
}

// Recommendations are the derived suggestions handed to the presentation
// layer verbatim.
type Recommendations struct {
	SuggestedKeywords []string `json:"suggested_keywords"`
	SuggestedHashtags []string `json:"suggested_hashtags"`
	Insights          []string `json:"insights"`
}

// InsightsStats summarizes the surviving aggregate entries.
type InsightsStats struct {
	TotalKeywords       int     `json:"total_keywords"`
	TotalHashtags       int     `json:"total_hashtags"`
	AvgKeywordsPerVideo float64 `json:"avg_keywords_per_video"`
	AvgHashtagsPerVideo float64 `json:"avg_hashtags_per_video"`
}

// InsightsMetadata records what was analyzed and when.
type InsightsMetadata struct {
	ChannelID           string    `json:"channel_id"`
	TotalVideosAnalyzed int       `json:"total_videos_analyzed"`
	AnalyzedAt          time.Time `json:"analyzed_at"`
	TimeRange           string    `json:"time_range"`
}

// Insights is the complete output of one keyword analysis run. It is built
// fresh per request, optionally cached for a short TTL, and serialized to
// JSON without transformation.
type Insights struct {
	TopKeywords      []KeywordData    `json:"top_keywords"`
	TrendingHashtags []HashtagData    `json:"trending_hashtags"`
	Recommendations  Recommendations  `json:"recommendations"`
	Stats            InsightsStats    `json:"stats"`
	Metadata         InsightsMetadata `json:"metadata"`
}
