// yt-analytics - YouTube Channel Keyword and Upload Analytics
// Copyright 2026 Aditya Argadinata
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/AdityaArgadinata/yt-analytics

package analytics

import (
	"strings"
	"testing"
	"time"

	"github.com/AdityaArgadinata/yt-analytics/internal/models"
)

func TestBuildPatternsBuckets(t *testing.T) {
	// Two Monday uploads at 10:00 UTC, one Friday upload at 18:00 UTC,
	// spanning two months.
	videos := []models.VideoRecord{
		{
			ID:          "v1",
			Title:       "Tutorial Golang",
			PublishedAt: time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC), // Monday
			ViewCount:   1000,
		},
		{
			ID:          "v2",
			Title:       "Tutorial Docker",
			PublishedAt: time.Date(2026, 6, 8, 10, 30, 0, 0, time.UTC), // Monday
			ViewCount:   2000,
		},
		{
			ID:          "v3",
			Title:       "Vlog Jumat",
			PublishedAt: time.Date(2026, 7, 3, 18, 0, 0, 0, time.UTC), // Friday
			ViewCount:   500,
		},
	}

	p := BuildPatterns(videos)

	if len(p.ByDay) != 2 {
		t.Fatalf("ByDay = %d buckets, want 2", len(p.ByDay))
	}
	if p.ByDay[0].Day != "Monday" || p.ByDay[0].Uploads != 2 || p.ByDay[0].TotalViews != 3000 {
		t.Errorf("Monday bucket = %+v", p.ByDay[0])
	}
	if p.ByDay[1].Day != "Friday" || p.ByDay[1].Uploads != 1 {
		t.Errorf("Friday bucket = %+v", p.ByDay[1])
	}

	if len(p.ByHour) != 2 {
		t.Fatalf("ByHour = %d buckets, want 2", len(p.ByHour))
	}
	if p.ByHour[0].Hour != 10 || p.ByHour[0].Uploads != 2 {
		t.Errorf("10:00 bucket = %+v", p.ByHour[0])
	}
	if p.ByHour[1].Hour != 18 || p.ByHour[1].Uploads != 1 {
		t.Errorf("18:00 bucket = %+v", p.ByHour[1])
	}

	if len(p.ByMonth) != 2 {
		t.Fatalf("ByMonth = %d buckets, want 2", len(p.ByMonth))
	}
	if p.ByMonth[0].Month != "2026-06" || p.ByMonth[0].TotalViews != 3000 {
		t.Errorf("first month bucket = %+v", p.ByMonth[0])
	}
	if p.ByMonth[1].Month != "2026-07" {
		t.Errorf("second month bucket = %+v", p.ByMonth[1])
	}
}

func TestBuildPatternsSuggestions(t *testing.T) {
	videos := []models.VideoRecord{
		{
			ID:          "v1",
			Title:       "Tutorial Golang Pemula",
			PublishedAt: time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC),
			ViewCount:   5000,
		},
		{
			ID:          "v2",
			Title:       "Tutorial Golang Lanjutan",
			PublishedAt: time.Date(2026, 6, 5, 20, 0, 0, 0, time.UTC),
			ViewCount:   1000,
		},
	}

	p := BuildPatterns(videos)

	if len(p.Suggestions) != 3 {
		t.Fatalf("suggestions = %d, want 3: %v", len(p.Suggestions), p.Suggestions)
	}
	if !strings.Contains(p.Suggestions[0], "Monday") {
		t.Errorf("day suggestion should name Monday: %q", p.Suggestions[0])
	}
	if !strings.Contains(p.Suggestions[1], "10:00") {
		t.Errorf("hour suggestion should name 10:00: %q", p.Suggestions[1])
	}
	if !strings.Contains(p.Suggestions[2], `"golang"`) && !strings.Contains(p.Suggestions[2], `"tutorial"`) {
		t.Errorf("keyword suggestion should name the top title word: %q", p.Suggestions[2])
	}
}

func TestBuildPatternsEmptyBatch(t *testing.T) {
	p := BuildPatterns(nil)

	if len(p.ByDay) != 0 || len(p.ByHour) != 0 || len(p.ByMonth) != 0 {
		t.Errorf("expected no buckets, got %+v", p)
	}
	if len(p.Suggestions) != 0 {
		t.Errorf("expected no suggestions, got %v", p.Suggestions)
	}
	if p.ShortCount != 0 || p.RegularCount != 0 {
		t.Errorf("expected zero counts, got %+v", p)
	}
}

func TestBuildPatternsShortsSplit(t *testing.T) {
	videos := []models.VideoRecord{
		{ID: "v1", PublishedAt: time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC), Duration: "PT45S"},
		{ID: "v2", PublishedAt: time.Date(2026, 6, 2, 0, 0, 0, 0, time.UTC), Duration: "PT1M"},
		{ID: "v3", PublishedAt: time.Date(2026, 6, 3, 0, 0, 0, 0, time.UTC), Duration: "PT1M1S"},
		{ID: "v4", PublishedAt: time.Date(2026, 6, 4, 0, 0, 0, 0, time.UTC)},
	}

	p := BuildPatterns(videos)
	if p.ShortCount != 2 {
		t.Errorf("ShortCount = %d, want 2 (45s and exactly 60s)", p.ShortCount)
	}
	if p.RegularCount != 2 {
		t.Errorf("RegularCount = %d, want 2 (61s and missing duration)", p.RegularCount)
	}
}

func TestParseISODuration(t *testing.T) {
	tests := []struct {
		in      string
		want    time.Duration
		wantErr bool
	}{
		{"PT45S", 45 * time.Second, false},
		{"PT1M", time.Minute, false},
		{"PT1M30S", 90 * time.Second, false},
		{"PT2H15M5S", 2*time.Hour + 15*time.Minute + 5*time.Second, false},
		{"P1DT2H", 26 * time.Hour, false},
		{"PT0S", 0, false},
		{"", 0, true},
		{"PT", 0, true},
		{"P", 0, true},
		{"1M30S", 0, true},
		{"PT1X", 0, true},
		{"PT1M30", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseISODuration(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseISODuration(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseISODuration(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestClassifyVideo(t *testing.T) {
	tests := []struct {
		name     string
		duration string
		want     models.VideoType
	}{
		{"short", "PT30S", models.VideoTypeShort},
		{"exactly sixty seconds", "PT1M", models.VideoTypeShort},
		{"just over sixty seconds", "PT1M1S", models.VideoTypeRegular},
		{"long video", "PT10M5S", models.VideoTypeRegular},
		{"missing duration", "", models.VideoTypeRegular},
		{"malformed duration", "garbage", models.VideoTypeRegular},
		{"zero duration", "PT0S", models.VideoTypeRegular},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := models.VideoRecord{ID: "v", Duration: tt.duration}
			if got := ClassifyVideo(v); got != tt.want {
				t.Errorf("ClassifyVideo(%q) = %v, want %v", tt.duration, got, tt.want)
			}
		})
	}
}
