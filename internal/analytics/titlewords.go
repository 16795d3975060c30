// yt-analytics - YouTube Channel Keyword and Upload Analytics
// Copyright 2026 Aditya Argadinata
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/AdityaArgadinata/yt-analytics

package analytics

import (
	"sort"
	"strings"

	"github.com/AdityaArgadinata/yt-analytics/internal/models"
)

// titleStopWords is the deliberately small stop set for title word counts.
// The deeper filtering lives in the keywords engine; this pass only feeds
// the posting suggestion.
var titleStopWords = map[string]struct{}{
	"a": {}, "an": {}, "the": {}, "di": {}, "dan": {}, "yang": {},
	"ke": {}, "dari": {}, "of": {}, "for": {}, "to": {}, "in": {},
	"on": {}, "itu": {}, "ini": {}, "apa": {}, "kok": {}, "ga": {},
	"nggak": {}, "gak": {}, "udah": {}, "aja": {}, "siapa": {},
	"kan": {}, "ya": {}, "aku": {}, "kamu": {}, "my": {}, "our": {},
	"your": {}, "with": {}, "vs": {},
}

const titlePunctuation = `#"'()[],.?!:;|`

// topTitleWord returns the most frequent non-stop word across all titles.
// Ties break alphabetically so the suggestion is stable between runs.
func topTitleWord(videos []models.VideoRecord) (string, bool) {
	counts := make(map[string]int)
	for _, v := range videos {
		title := strings.ToLower(v.Title)
		title = strings.Map(func(r rune) rune {
			if strings.ContainsRune(titlePunctuation, r) {
				return ' '
			}
			return r
		}, title)
		for _, w := range strings.Fields(title) {
			if len(w) <= 2 {
				continue
			}
			if _, stop := titleStopWords[w]; stop {
				continue
			}
			counts[w]++
		}
	}
	if len(counts) == 0 {
		return "", false
	}

	words := make([]string, 0, len(counts))
	for w := range counts {
		words = append(words, w)
	}
	sort.Slice(words, func(i, j int) bool {
		if counts[words[i]] != counts[words[j]] {
			return counts[words[i]] > counts[words[j]]
		}
		return words[i] < words[j]
	})
	return words[0], true
}
