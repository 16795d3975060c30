// yt-analytics - YouTube Channel Keyword and Upload Analytics
// Copyright 2026 Aditya Argadinata
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/AdityaArgadinata/yt-analytics

package keywords

import (
	"fmt"
	"math"
	"strings"

	"github.com/AdityaArgadinata/yt-analytics/internal/models"
)

// Recommendation thresholds.
const (
	consistentMinFrequency = 4
	underusedMaxFrequency  = 4
	phraseAdvantageFactor  = 1.2
	lowHighRatioThreshold  = 0.3
	minSuggestionLength    = 4

	maxSuggestedHighKeywords   = 8
	maxSuggestedMediumKeywords = 4
	maxSuggestedKeywords       = 12
	maxSuggestedTrendingTags   = 5
	maxSuggestedHighTags       = 5
	maxSuggestedHashtags       = 8
)

// buildRecommendations derives human-readable insights and suggestion lists
// from the ranked output. Each insight rule fires only when its precondition
// holds, so the list length varies from zero to six.
func (w *Wordlist) buildRecommendations(kws []models.KeywordData, tags []models.HashtagData) models.Recommendations {
	var high, medium []models.KeywordData
	for _, k := range kws {
		switch k.Performance {
		case models.PerformanceHigh:
			high = append(high, k)
		case models.PerformanceMedium:
			medium = append(medium, k)
		}
	}

	var trending, highTags []models.HashtagData
	for _, t := range tags {
		if t.Trending {
			trending = append(trending, t)
		}
		if t.Performance == models.PerformanceHigh {
			highTags = append(highTags, t)
		}
	}

	insights := make([]string, 0, 6)

	// Rule 1: strongest high performer.
	if len(high) > 0 {
		insights = append(insights, fmt.Sprintf(
			"Keyword %q shows the strongest performance with an average of %d views per video.",
			high[0].Keyword, int64(math.Round(high[0].AvgViews))))
	}

	// Rule 2: phrases outperforming single words by a clear margin.
	if phraseAvg, singleAvg, ok := phraseVersusSingle(kws); ok && phraseAvg > singleAvg*phraseAdvantageFactor {
		insights = append(insights, fmt.Sprintf(
			"Multi-word phrases average %d views against %d for single keywords; favor specific phrases in titles.",
			int64(math.Round(phraseAvg)), int64(math.Round(singleAvg))))
	}

	// Rule 3: trending hashtags.
	if len(trending) > 0 {
		names := make([]string, 0, 3)
		for _, t := range trending {
			names = append(names, t.Hashtag)
			if len(names) == 3 {
				break
			}
		}
		insights = append(insights, fmt.Sprintf(
			"Hashtags %s are trending across your recent uploads.", strings.Join(names, ", ")))
	}

	// Rule 4: most consistent keyword.
	if k, ok := firstWithMinFrequency(kws, consistentMinFrequency); ok {
		insights = append(insights, fmt.Sprintf(
			"You use %q consistently; it appears in %d videos.", k.Keyword, k.Frequency))
	}

	// Rule 5: underused high performer.
	if k, ok := firstUnderusedHigh(kws); ok {
		insights = append(insights, fmt.Sprintf(
			"Keyword %q performs well but appears in only %d videos. Consider using it more often.",
			k.Keyword, k.Frequency))
	}

	// Rule 6: commentary when few keywords reach the high tier.
	if len(kws) > 0 {
		ratio := float64(len(high)) / float64(len(kws))
		if ratio < lowHighRatioThreshold {
			insights = append(insights, fmt.Sprintf(
				"Only %d of your %d top keywords reach the high tier; experiment with the suggested keywords below.",
				len(high), len(kws)))
		}
	}

	return models.Recommendations{
		SuggestedKeywords: w.suggestKeywords(high, medium),
		SuggestedHashtags: w.suggestHashtags(trending, highTags),
		Insights:          insights,
	}
}

// phraseVersusSingle computes the average views of phrase entries and
// single-word entries. ok is false unless both groups are non-empty.
func phraseVersusSingle(kws []models.KeywordData) (phraseAvg, singleAvg float64, ok bool) {
	var phraseTotal, singleTotal float64
	var phraseN, singleN int
	for _, k := range kws {
		if isPhrase(k.Keyword) {
			phraseTotal += k.AvgViews
			phraseN++
		} else {
			singleTotal += k.AvgViews
			singleN++
		}
	}
	if phraseN == 0 || singleN == 0 {
		return 0, 0, false
	}
	return phraseTotal / float64(phraseN), singleTotal / float64(singleN), true
}

func firstWithMinFrequency(kws []models.KeywordData, minFreq int) (models.KeywordData, bool) {
	for _, k := range kws {
		if k.Frequency >= minFreq {
			return k, true
		}
	}
	return models.KeywordData{}, false
}

func firstUnderusedHigh(kws []models.KeywordData) (models.KeywordData, bool) {
	for _, k := range kws {
		if k.Performance == models.PerformanceHigh && k.Frequency < underusedMaxFrequency {
			return k, true
		}
	}
	return models.KeywordData{}, false
}

// suggestKeywords unions the top high and medium performers, re-filtered
// against the noise lists to keep the suggestions copy-paste ready.
func (w *Wordlist) suggestKeywords(high, medium []models.KeywordData) []string {
	candidates := make([]string, 0, maxSuggestedKeywords)
	for i, k := range high {
		if i == maxSuggestedHighKeywords {
			break
		}
		candidates = append(candidates, k.Keyword)
	}
	for i, k := range medium {
		if i == maxSuggestedMediumKeywords {
			break
		}
		candidates = append(candidates, k.Keyword)
	}

	seen := make(map[string]struct{}, len(candidates))
	out := make([]string, 0, maxSuggestedKeywords)
	for _, c := range candidates {
		if len(c) < minSuggestionLength || w.IsNoiseWord(c) {
			continue
		}
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
		if len(out) == maxSuggestedKeywords {
			break
		}
	}
	return out
}

// suggestHashtags unions trending and high-performance hashtags, dropping
// anything that fails the noise or URL checks once the '#' is stripped.
func (w *Wordlist) suggestHashtags(trending, high []models.HashtagData) []string {
	candidates := make([]string, 0, maxSuggestedHashtags)
	for i, t := range trending {
		if i == maxSuggestedTrendingTags {
			break
		}
		candidates = append(candidates, t.Hashtag)
	}
	for i, t := range high {
		if i == maxSuggestedHighTags {
			break
		}
		candidates = append(candidates, t.Hashtag)
	}

	seen := make(map[string]struct{}, len(candidates))
	out := make([]string, 0, maxSuggestedHashtags)
	for _, c := range candidates {
		bare := strings.TrimPrefix(c, "#")
		if len(bare) < minSuggestionLength {
			continue
		}
		if w.IsNoiseWord(bare) || w.looksLikeURLComponent(bare) {
			continue
		}
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
		if len(out) == maxSuggestedHashtags {
			break
		}
	}
	return out
}
