// yt-analytics - YouTube Channel Keyword and Upload Analytics
// Copyright 2026 Aditya Argadinata
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/AdityaArgadinata/yt-analytics

package keywords

import (
	"math"
	"time"

	"github.com/AdityaArgadinata/yt-analytics/internal/models"
)

// Engine runs the full keyword analysis pipeline: extraction, aggregation,
// scoring, selection and recommendation. It is stateless between calls and
// safe for concurrent use.
type Engine struct {
	words     *Wordlist
	tokenizer *Tokenizer
	now       func() time.Time
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock overrides the timestamp source. Used by tests to pin
// metadata.analyzed_at.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// WithExtraWordlists extends the built-in stop and noise word lists.
func WithExtraWordlists(extraStop, extraNoise []string) Option {
	return func(e *Engine) {
		e.words = NewWordlist(extraStop, extraNoise)
	}
}

// NewEngine creates an Engine with the default word lists and wall clock.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		words: NewWordlist(nil, nil),
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.tokenizer = NewTokenizer(e.words)
	return e
}

// Analyze runs the pipeline over one batch of videos. A nil or empty batch
// is not an error; it yields a result with empty lists and zeroed stats.
// The output is deterministic for identical input batches.
func (e *Engine) Analyze(channelID, timeRange string, videos []models.VideoRecord) *models.Insights {
	kwMap, htMap := e.tokenizer.aggregate(videos)
	ref := computeBatchStats(videos)

	scoredKws := make([]scoredKeyword, 0, len(kwMap))
	for _, entry := range kwMap {
		scoredKws = append(scoredKws, scoreKeyword(entry, ref))
	}
	scoredTags := make([]scoredHashtag, 0, len(htMap))
	for _, entry := range htMap {
		scoredTags = append(scoredTags, scoreHashtag(entry, ref))
	}

	selectedKws := selectKeywords(scoredKws)
	selectedTags := selectHashtags(scoredTags)

	topKeywords := make([]models.KeywordData, len(selectedKws))
	var keywordFreqTotal int
	for i, s := range selectedKws {
		topKeywords[i] = s.KeywordData
		keywordFreqTotal += s.Frequency
	}
	trendingTags := make([]models.HashtagData, len(selectedTags))
	var hashtagFreqTotal int
	for i, s := range selectedTags {
		trendingTags[i] = s.HashtagData
		hashtagFreqTotal += s.Frequency
	}

	n := max1(float64(len(videos)))

	return &models.Insights{
		TopKeywords:      topKeywords,
		TrendingHashtags: trendingTags,
		Recommendations:  e.words.buildRecommendations(topKeywords, trendingTags),
		Stats: models.InsightsStats{
			TotalKeywords:       len(topKeywords),
			TotalHashtags:       len(trendingTags),
			AvgKeywordsPerVideo: round1(float64(keywordFreqTotal) / n),
			AvgHashtagsPerVideo: round1(float64(hashtagFreqTotal) / n),
		},
		Metadata: models.InsightsMetadata{
			ChannelID:           channelID,
			TotalVideosAnalyzed: len(videos),
			AnalyzedAt:          e.now().UTC(),
			TimeRange:           timeRange,
		},
	}
}

// round1 rounds to one decimal place for presentation.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
