// yt-analytics - YouTube Channel Keyword and Upload Analytics
// Copyright 2026 Aditya Argadinata
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/AdityaArgadinata/yt-analytics

package analytics

import (
	"fmt"
	"time"

	"github.com/AdityaArgadinata/yt-analytics/internal/models"
)

// shortMaxDuration is the Shorts boundary. YouTube classifies uploads of
// 60 seconds or less as Shorts.
const shortMaxDuration = 60 * time.Second

// ParseISODuration parses the subset of ISO-8601 durations the YouTube Data
// API emits for videos: PT[nH][nM][nS], optionally prefixed with a day
// component (P1DT2H). Fractional values do not occur in the API and are
// rejected.
func ParseISODuration(s string) (time.Duration, error) {
	if len(s) < 2 || s[0] != 'P' {
		return 0, fmt.Errorf("invalid ISO-8601 duration %q", s)
	}

	var (
		total   time.Duration
		num     int64
		hasNum  bool
		inTime  bool
		hasUnit bool
	)
	for _, r := range s[1:] {
		switch {
		case r >= '0' && r <= '9':
			num = num*10 + int64(r-'0')
			hasNum = true
		case r == 'T':
			if inTime {
				return 0, fmt.Errorf("invalid ISO-8601 duration %q", s)
			}
			inTime = true
		case r == 'D' && !inTime:
			if !hasNum {
				return 0, fmt.Errorf("invalid ISO-8601 duration %q", s)
			}
			total += time.Duration(num) * 24 * time.Hour
			num, hasNum, hasUnit = 0, false, true
		case r == 'H' && inTime:
			if !hasNum {
				return 0, fmt.Errorf("invalid ISO-8601 duration %q", s)
			}
			total += time.Duration(num) * time.Hour
			num, hasNum, hasUnit = 0, false, true
		case r == 'M' && inTime:
			if !hasNum {
				return 0, fmt.Errorf("invalid ISO-8601 duration %q", s)
			}
			total += time.Duration(num) * time.Minute
			num, hasNum, hasUnit = 0, false, true
		case r == 'S' && inTime:
			if !hasNum {
				return 0, fmt.Errorf("invalid ISO-8601 duration %q", s)
			}
			total += time.Duration(num) * time.Second
			num, hasNum, hasUnit = 0, false, true
		default:
			return 0, fmt.Errorf("invalid ISO-8601 duration %q", s)
		}
	}
	if hasNum || !hasUnit {
		// Trailing digits without a unit, or no unit at all ("PT").
		return 0, fmt.Errorf("invalid ISO-8601 duration %q", s)
	}
	return total, nil
}

// ClassifyVideo maps a video to short or regular by its duration field.
// Missing or malformed durations classify as regular; the API omits the
// field for live streams and premieres.
func ClassifyVideo(v models.VideoRecord) models.VideoType {
	if v.Duration == "" {
		return models.VideoTypeRegular
	}
	d, err := ParseISODuration(v.Duration)
	if err != nil {
		return models.VideoTypeRegular
	}
	if d > 0 && d <= shortMaxDuration {
		return models.VideoTypeShort
	}
	return models.VideoTypeRegular
}
