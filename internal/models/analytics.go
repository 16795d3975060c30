// yt-analytics - YouTube Channel Keyword and Upload Analytics
// Copyright 2026 Aditya Argadinata
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/AdityaArgadinata/yt-analytics

package models

// VideoType distinguishes Shorts from regular uploads by duration.
type VideoType string

// Video types. A video of 60 seconds or less is classified as a Short.
const (
	VideoTypeShort   VideoType = "short"
	VideoTypeRegular VideoType = "regular"
)

// DayBucket accumulates uploads and views per weekday.
type DayBucket struct {
	Day        string `json:"day"`
	Uploads    int    `json:"uploads"`
	TotalViews int64  `json:"total_views"`
}

// HourBucket accumulates uploads and views per hour of day (0-23, UTC).
type HourBucket struct {
	Hour       int   `json:"hour"`
	Uploads    int   `json:"uploads"`
	TotalViews int64 `json:"total_views"`
}

// MonthBucket accumulates uploads and views per calendar month ("2026-01").
type MonthBucket struct {
	Month      string `json:"month"`
	Uploads    int    `json:"uploads"`
	TotalViews int64  `json:"total_views"`
}

// UploadPatterns is the upload-timing analysis for one channel batch:
// when the channel uploads, how those slots perform, and plain-language
// posting suggestions derived from the historical totals.
type UploadPatterns struct {
	ByDay        []DayBucket   `json:"by_day"`
	ByHour       []HourBucket  `json:"by_hour"`
	ByMonth      []MonthBucket `json:"by_month"`
	ShortCount   int           `json:"short_count"`
	RegularCount int           `json:"regular_count"`
	Suggestions  []string      `json:"suggestions"`
}
