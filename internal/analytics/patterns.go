// yt-analytics - YouTube Channel Keyword and Upload Analytics
// Copyright 2026 Aditya Argadinata
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/AdityaArgadinata/yt-analytics

package analytics

import (
	"fmt"
	"sort"

	"github.com/AdityaArgadinata/yt-analytics/internal/models"
)

// weekdays in render order, Sunday first to match time.Weekday numbering.
var weekdays = [7]string{
	"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
}

// BuildPatterns derives upload-timing analytics from one batch of videos:
// uploads and accumulated views bucketed by weekday, hour of day and
// calendar month, Shorts/regular split, and posting suggestions based on
// the historically strongest slots. Timestamps are bucketed in UTC.
//
// Only buckets with at least one upload are emitted. Day buckets keep
// weekday order, hour buckets ascend, month buckets ascend
// lexicographically (the "2006-01" key sorts chronologically).
func BuildPatterns(videos []models.VideoRecord) models.UploadPatterns {
	var dayBuckets [7]models.DayBucket
	var hourBuckets [24]models.HourBucket
	monthMap := make(map[string]*models.MonthBucket)

	var shorts, regular int
	for _, v := range videos {
		ts := v.PublishedAt.UTC()

		day := &dayBuckets[int(ts.Weekday())]
		day.Uploads++
		day.TotalViews += v.ViewCount

		hour := &hourBuckets[ts.Hour()]
		hour.Uploads++
		hour.TotalViews += v.ViewCount

		key := ts.Format("2006-01")
		month, ok := monthMap[key]
		if !ok {
			month = &models.MonthBucket{Month: key}
			monthMap[key] = month
		}
		month.Uploads++
		month.TotalViews += v.ViewCount

		if ClassifyVideo(v) == models.VideoTypeShort {
			shorts++
		} else {
			regular++
		}
	}

	patterns := models.UploadPatterns{
		ShortCount:   shorts,
		RegularCount: regular,
	}
	for i, b := range dayBuckets {
		if b.Uploads == 0 {
			continue
		}
		b.Day = weekdays[i]
		patterns.ByDay = append(patterns.ByDay, b)
	}
	for i, b := range hourBuckets {
		if b.Uploads == 0 {
			continue
		}
		b.Hour = i
		patterns.ByHour = append(patterns.ByHour, b)
	}
	for _, b := range monthMap {
		patterns.ByMonth = append(patterns.ByMonth, *b)
	}
	sort.Slice(patterns.ByMonth, func(i, j int) bool {
		return patterns.ByMonth[i].Month < patterns.ByMonth[j].Month
	})

	patterns.Suggestions = buildSuggestions(patterns, videos)
	return patterns
}

// buildSuggestions names the historically strongest day and hour, and the
// most used title keyword. Empty batches produce no suggestions.
func buildSuggestions(p models.UploadPatterns, videos []models.VideoRecord) []string {
	var suggestions []string

	if day, ok := bestDay(p.ByDay); ok {
		suggestions = append(suggestions, fmt.Sprintf(
			"Upload on %s; it carries the highest historical view total.", day))
	}
	if hour, ok := bestHour(p.ByHour); ok {
		suggestions = append(suggestions, fmt.Sprintf(
			"Target %02d:00 UTC for the initial boost.", hour))
	}
	if word, ok := topTitleWord(videos); ok {
		suggestions = append(suggestions, fmt.Sprintf(
			"Work %q or a related hashtag into your next one or two videos.", word))
	}
	return suggestions
}

func bestDay(buckets []models.DayBucket) (string, bool) {
	best := -1
	var views int64 = -1
	for i, b := range buckets {
		if b.TotalViews > views {
			best, views = i, b.TotalViews
		}
	}
	if best < 0 {
		return "", false
	}
	return buckets[best].Day, true
}

func bestHour(buckets []models.HourBucket) (int, bool) {
	best := -1
	var views int64 = -1
	for i, b := range buckets {
		if b.TotalViews > views {
			best, views = i, b.TotalViews
		}
	}
	if best < 0 {
		return 0, false
	}
	return buckets[best].Hour, true
}
