// yt-analytics - YouTube Channel Keyword and Upload Analytics
// Copyright 2026 Aditya Argadinata
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/AdityaArgadinata/yt-analytics

package keywords

import (
	"time"

	"github.com/AdityaArgadinata/yt-analytics/internal/models"
)

// DemoInsights returns a canned analysis result for preview pages and API
// exploration. The shape matches Analyze output exactly; only analyzedAt is
// computed at call time.
func DemoInsights(now time.Time) *models.Insights {
	return &models.Insights{
		TopKeywords: []models.KeywordData{
			{
				Keyword:     "tutorial",
				Frequency:   15,
				AvgViews:    25000,
				AvgLikes:    1200,
				AvgComments: 150,
				Performance: models.PerformanceHigh,
				Videos: []models.VideoRef{
					{ID: "demo1", Title: "Tutorial Complete Guide", Views: 30000, Likes: 1500, Comments: 200},
					{ID: "demo2", Title: "Advanced Tutorial Tips", Views: 20000, Likes: 900, Comments: 100},
				},
			},
			{
				Keyword:     "tips",
				Frequency:   12,
				AvgViews:    18000,
				AvgLikes:    800,
				AvgComments: 90,
				Performance: models.PerformanceMedium,
				Videos: []models.VideoRef{
					{ID: "demo3", Title: "Pro Tips & Tricks", Views: 22000, Likes: 1000, Comments: 120},
					{ID: "demo4", Title: "Essential Tips", Views: 14000, Likes: 600, Comments: 60},
				},
			},
		},
		TrendingHashtags: []models.HashtagData{
			{
				Hashtag:     "#tutorial",
				Frequency:   20,
				AvgViews:    28000,
				Performance: models.PerformanceHigh,
				Trending:    true,
				Videos: []models.VideoRef{
					{ID: "demo5", Title: "Complete #tutorial Guide", Views: 35000},
					{ID: "demo6", Title: "Quick #tutorial Tips", Views: 21000},
				},
			},
			{
				Hashtag:     "#tips",
				Frequency:   15,
				AvgViews:    19000,
				Performance: models.PerformanceMedium,
				Trending:    true,
				Videos: []models.VideoRef{
					{ID: "demo7", Title: "Pro #tips for Beginners", Views: 24000},
					{ID: "demo8", Title: "Advanced #tips", Views: 14000},
				},
			},
		},
		Recommendations: models.Recommendations{
			SuggestedKeywords: []string{"tutorial", "guide", "tips", "complete", "advanced"},
			SuggestedHashtags: []string{"#tutorial", "#tips", "#guide", "#howto", "#learn"},
			Insights: []string{
				`Keyword "tutorial" shows the strongest performance with an average of 25000 views per video.`,
				"Hashtags #tutorial, #tips are trending across your recent uploads.",
				`You use "tutorial" consistently; it appears in 15 videos.`,
				`Keyword "guide" performs well but appears in only 2 videos. Consider using it more often.`,
			},
		},
		Stats: models.InsightsStats{
			TotalKeywords:       145,
			TotalHashtags:       23,
			AvgKeywordsPerVideo: 8.5,
			AvgHashtagsPerVideo: 2.3,
		},
		Metadata: models.InsightsMetadata{
			ChannelID:           "demo",
			TotalVideosAnalyzed: 50,
			AnalyzedAt:          now.UTC(),
			TimeRange:           "latest_videos",
		},
	}
}
