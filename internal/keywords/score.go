// yt-analytics - YouTube Channel Keyword and Upload Analytics
// Copyright 2026 Aditya Argadinata
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/AdityaArgadinata/yt-analytics

package keywords

import (
	"strings"

	"github.com/AdityaArgadinata/yt-analytics/internal/models"
)

// Scoring constants. These are the tunables of the quality formula; the
// algorithm itself never needs to change when they are re-tuned.
const (
	titleFrequencyWeight = 1.5
	phraseBonus          = 1.3
	longKeywordBonus     = 1.2 // length > 8
	mediumKeywordBonus   = 1.1 // length > 5

	highViewsFactor     = 1.1
	mediumViewsFactor   = 0.7
	hashtagHighFactor   = 1.5
	hashtagMediumFactor = 0.8

	trendingMinFrequency = 3
)

// batchStats are the reference values every entry is classified against,
// computed once per batch.
type batchStats struct {
	overallAvgViews float64
	avgEngagement   float64
}

// computeBatchStats derives the batch-wide view average and mean engagement
// rate. Every division is guarded so an empty or zero-view batch yields
// zeros rather than NaN.
func computeBatchStats(videos []models.VideoRecord) batchStats {
	if len(videos) == 0 {
		return batchStats{}
	}
	var totalViews, totalEngagement float64
	for _, v := range videos {
		totalViews += float64(v.ViewCount)
		totalEngagement += float64(v.LikeCount+v.CommentCount) / max1(float64(v.ViewCount))
	}
	n := float64(len(videos))
	return batchStats{
		overallAvgViews: totalViews / n,
		avgEngagement:   totalEngagement / n,
	}
}

// qualityScore rewards frequency (title placements count extra), phrase
// candidates and longer keywords.
func (e *keywordEntry) qualityScore() float64 {
	score := float64(e.frequency) + float64(e.titleFreq)*titleFrequencyWeight
	if strings.Contains(e.keyword, " ") {
		score *= phraseBonus
	}
	switch {
	case len(e.keyword) > 8:
		score *= longKeywordBonus
	case len(e.keyword) > 5:
		score *= mediumKeywordBonus
	}
	return score
}

// classifyKeyword assigns a performance tier relative to the batch
// averages. High requires beating both the view and the engagement
// reference; medium requires approaching either.
func classifyKeyword(avgViews, engagementRate float64, ref batchStats) models.Performance {
	switch {
	case avgViews > ref.overallAvgViews*highViewsFactor &&
		engagementRate > ref.avgEngagement*highViewsFactor:
		return models.PerformanceHigh
	case avgViews > ref.overallAvgViews*mediumViewsFactor ||
		engagementRate > ref.avgEngagement*mediumViewsFactor:
		return models.PerformanceMedium
	default:
		return models.PerformanceLow
	}
}

// classifyHashtag uses the simpler view-only variant.
func classifyHashtag(avgViews float64, ref batchStats) models.Performance {
	switch {
	case avgViews > ref.overallAvgViews*hashtagHighFactor:
		return models.PerformanceHigh
	case avgViews > ref.overallAvgViews*hashtagMediumFactor:
		return models.PerformanceMedium
	default:
		return models.PerformanceLow
	}
}

// tierMultiplier converts a performance tier into the ranking weight.
func tierMultiplier(p models.Performance) float64 {
	switch p {
	case models.PerformanceHigh:
		return 3
	case models.PerformanceMedium:
		return 2
	default:
		return 1
	}
}

// scoredKeyword pairs the public KeywordData with the internal scores used
// for selection and ranking.
type scoredKeyword struct {
	models.KeywordData
	quality   float64
	rankScore float64
}

type scoredHashtag struct {
	models.HashtagData
	rankScore float64
}

// scoreKeyword derives averages, tier and ranking score for one aggregate
// entry.
func scoreKeyword(e *keywordEntry, ref batchStats) scoredKeyword {
	freq := float64(e.frequency)
	avgViews := e.totalViews / freq
	avgLikes := e.totalLikes / freq
	avgComments := e.totalComments / freq
	engagementRate := (avgLikes + avgComments) / max1(avgViews)

	performance := classifyKeyword(avgViews, engagementRate, ref)
	quality := e.qualityScore()

	return scoredKeyword{
		KeywordData: models.KeywordData{
			Keyword:     e.keyword,
			Frequency:   e.frequency,
			AvgViews:    avgViews,
			AvgLikes:    avgLikes,
			AvgComments: avgComments,
			Performance: performance,
			Videos:      e.videos,
		},
		quality:   quality,
		rankScore: quality * tierMultiplier(performance),
	}
}

func scoreHashtag(e *hashtagEntry, ref batchStats) scoredHashtag {
	avgViews := e.totalViews / float64(e.frequency)
	performance := classifyHashtag(avgViews, ref)

	return scoredHashtag{
		HashtagData: models.HashtagData{
			Hashtag:     e.hashtag,
			Frequency:   e.frequency,
			AvgViews:    avgViews,
			Performance: performance,
			Trending:    e.frequency >= trendingMinFrequency && performance != models.PerformanceLow,
			Videos:      e.videos,
		},
		rankScore: float64(e.frequency) * tierMultiplier(performance),
	}
}

// max1 clamps a denominator to at least 1 so sparse batches never divide
// by zero.
func max1(v float64) float64 {
	if v < 1 {
		return 1
	}
	return v
}
