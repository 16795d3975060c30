// yt-analytics - YouTube Channel Keyword and Upload Analytics
// Copyright 2026 Aditya Argadinata
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/AdityaArgadinata/yt-analytics

package keywords

import (
	"sort"

	"github.com/AdityaArgadinata/yt-analytics/internal/models"
)

// Selection thresholds. The fallback exists so the feature degrades
// gracefully on small channels instead of returning nothing.
const (
	minKeywordFrequency  = 2
	minHashtagFrequency  = 2
	relaxedMinLength     = 6
	minSurvivors         = 5
	fallbackKeywordLimit = 15
	maxTopKeywords       = 20
	maxTrendingHashtags  = 15
)

// selectKeywords applies the survival policy to all scored entries and
// returns the ranked, truncated result list.
//
// Primary rule: frequency >= 2. Relaxation: single-occurrence entries stay
// when they are high performers, phrases, or long keywords. If fewer than 5
// entries survive, filtering is abandoned entirely in favor of the top 15
// by raw frequency.
func selectKeywords(scored []scoredKeyword) []scoredKeyword {
	survivors := make([]scoredKeyword, 0, len(scored))
	for _, s := range scored {
		if s.Frequency >= minKeywordFrequency || keepSingleUse(s) {
			survivors = append(survivors, s)
		}
	}

	if len(survivors) < minSurvivors {
		survivors = topByFrequency(scored, fallbackKeywordLimit)
	} else {
		sortKeywordsByRank(survivors)
	}

	if len(survivors) > maxTopKeywords {
		survivors = survivors[:maxTopKeywords]
	}
	return survivors
}

// keepSingleUse is the relaxation for frequency-1 entries.
func keepSingleUse(s scoredKeyword) bool {
	if s.Performance == models.PerformanceHigh {
		return true
	}
	if isPhrase(s.Keyword) {
		return true
	}
	return len(s.Keyword) >= relaxedMinLength
}

func isPhrase(keyword string) bool {
	for i := 0; i < len(keyword); i++ {
		if keyword[i] == ' ' {
			return true
		}
	}
	return false
}

// topByFrequency discards all filtering and keeps the n most frequent
// entries. Ties break on rank score, then keyword, for deterministic output.
func topByFrequency(scored []scoredKeyword, n int) []scoredKeyword {
	out := make([]scoredKeyword, len(scored))
	copy(out, scored)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Frequency != out[j].Frequency {
			return out[i].Frequency > out[j].Frequency
		}
		if out[i].rankScore != out[j].rankScore {
			return out[i].rankScore > out[j].rankScore
		}
		return out[i].Keyword < out[j].Keyword
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}

// sortKeywordsByRank orders survivors by ranking score descending with a
// stable keyword tie-break so identical inputs produce identical output.
func sortKeywordsByRank(entries []scoredKeyword) {
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].rankScore != entries[j].rankScore {
			return entries[i].rankScore > entries[j].rankScore
		}
		return entries[i].Keyword < entries[j].Keyword
	})
}

// selectHashtags keeps hashtags used in at least two videos, ranked by
// frequency-weighted performance, truncated to the top 15.
func selectHashtags(scored []scoredHashtag) []scoredHashtag {
	survivors := make([]scoredHashtag, 0, len(scored))
	for _, s := range scored {
		if s.Frequency >= minHashtagFrequency {
			survivors = append(survivors, s)
		}
	}

	sort.Slice(survivors, func(i, j int) bool {
		if survivors[i].rankScore != survivors[j].rankScore {
			return survivors[i].rankScore > survivors[j].rankScore
		}
		return survivors[i].Hashtag < survivors[j].Hashtag
	})

	if len(survivors) > maxTrendingHashtags {
		survivors = survivors[:maxTrendingHashtags]
	}
	return survivors
}
