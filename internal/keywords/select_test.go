// yt-analytics - YouTube Channel Keyword and Upload Analytics
// Copyright 2026 Aditya Argadinata
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/AdityaArgadinata/yt-analytics

package keywords

import (
	"fmt"
	"testing"

	"github.com/AdityaArgadinata/yt-analytics/internal/models"
)

func makeScoredKeyword(keyword string, frequency int, perf models.Performance, rank float64) scoredKeyword {
	return scoredKeyword{
		KeywordData: models.KeywordData{
			Keyword:     keyword,
			Frequency:   frequency,
			Performance: perf,
		},
		rankScore: rank,
	}
}

func TestSelectKeywordsFrequencyFilter(t *testing.T) {
	// Enough recurring entries that the fallback never engages; the
	// single-use low performer "tips" must be dropped.
	scored := []scoredKeyword{
		makeScoredKeyword("golang tutorial", 4, models.PerformanceHigh, 40),
		makeScoredKeyword("docker", 3, models.PerformanceMedium, 30),
		makeScoredKeyword("kubernetes", 2, models.PerformanceMedium, 25),
		makeScoredKeyword("backend", 2, models.PerformanceLow, 20),
		makeScoredKeyword("devops", 2, models.PerformanceLow, 15),
		makeScoredKeyword("tips", 1, models.PerformanceLow, 5),
	}

	got := selectKeywords(scored)
	if len(got) != 5 {
		t.Fatalf("survivors = %d, want 5", len(got))
	}
	for _, s := range got {
		if s.Keyword == "tips" {
			t.Error("single-use low performer should be filtered out")
		}
	}
}

func TestSelectKeywordsSingleUseRelaxation(t *testing.T) {
	scored := []scoredKeyword{
		makeScoredKeyword("alpha", 2, models.PerformanceLow, 50),
		makeScoredKeyword("bravo", 2, models.PerformanceLow, 45),
		makeScoredKeyword("charlie", 2, models.PerformanceLow, 40),
		makeScoredKeyword("delta", 2, models.PerformanceLow, 35),
		makeScoredKeyword("echos", 2, models.PerformanceLow, 30),
		// Single-use entries exercising each relaxation branch.
		makeScoredKeyword("wins", 1, models.PerformanceHigh, 29),
		makeScoredKeyword("react hooks", 1, models.PerformanceLow, 28),
		makeScoredKeyword("pemrograman", 1, models.PerformanceLow, 27),
		// Short, low, single use: no branch keeps it.
		makeScoredKeyword("tips", 1, models.PerformanceLow, 26),
	}

	got := selectKeywords(scored)

	kept := make(map[string]bool, len(got))
	for _, s := range got {
		kept[s.Keyword] = true
	}
	if !kept["wins"] {
		t.Error("high performer should survive at frequency 1")
	}
	if !kept["react hooks"] {
		t.Error("phrase should survive at frequency 1")
	}
	if !kept["pemrograman"] {
		t.Error("long keyword should survive at frequency 1")
	}
	if kept["tips"] {
		t.Error("short low-performance single-use keyword should be dropped")
	}
}

func TestSelectKeywordsFallbackOnSparseData(t *testing.T) {
	// Fewer than 5 survivors: filtering is abandoned for top-by-frequency.
	scored := []scoredKeyword{
		makeScoredKeyword("alpha", 2, models.PerformanceLow, 10),
		makeScoredKeyword("beta", 1, models.PerformanceLow, 9),
		makeScoredKeyword("gama", 1, models.PerformanceLow, 8),
		makeScoredKeyword("delt", 1, models.PerformanceLow, 7),
	}

	got := selectKeywords(scored)
	if len(got) != 4 {
		t.Fatalf("fallback should keep all %d entries, got %d", len(scored), len(got))
	}
	if got[0].Keyword != "alpha" {
		t.Errorf("fallback orders by frequency first, got %q on top", got[0].Keyword)
	}
}

func TestSelectKeywordsCap(t *testing.T) {
	var scored []scoredKeyword
	for i := 0; i < 30; i++ {
		scored = append(scored, makeScoredKeyword(
			fmt.Sprintf("keyword%02d", i), 3, models.PerformanceMedium, float64(100-i)))
	}

	got := selectKeywords(scored)
	if len(got) != maxTopKeywords {
		t.Errorf("len = %d, want cap %d", len(got), maxTopKeywords)
	}
	if got[0].Keyword != "keyword00" {
		t.Errorf("highest rank score should come first, got %q", got[0].Keyword)
	}
}

func TestSelectKeywordsDeterministicTieBreak(t *testing.T) {
	scored := []scoredKeyword{
		makeScoredKeyword("zulu", 2, models.PerformanceLow, 10),
		makeScoredKeyword("alpha", 2, models.PerformanceLow, 10),
		makeScoredKeyword("mike", 2, models.PerformanceLow, 10),
		makeScoredKeyword("bravo", 2, models.PerformanceLow, 10),
		makeScoredKeyword("tango", 2, models.PerformanceLow, 10),
	}

	got := selectKeywords(scored)
	want := []string{"alpha", "bravo", "mike", "tango", "zulu"}
	for i, w := range want {
		if got[i].Keyword != w {
			t.Errorf("position %d = %q, want %q", i, got[i].Keyword, w)
		}
	}
}

func TestSelectHashtags(t *testing.T) {
	var scored []scoredHashtag
	for i := 0; i < 20; i++ {
		scored = append(scored, scoredHashtag{
			HashtagData: models.HashtagData{
				Hashtag:   fmt.Sprintf("#tag%02d", i),
				Frequency: 2,
			},
			rankScore: float64(100 - i),
		})
	}
	scored = append(scored, scoredHashtag{
		HashtagData: models.HashtagData{Hashtag: "#once", Frequency: 1},
		rankScore:   200,
	})

	got := selectHashtags(scored)
	if len(got) != maxTrendingHashtags {
		t.Fatalf("len = %d, want cap %d", len(got), maxTrendingHashtags)
	}
	for _, s := range got {
		if s.Hashtag == "#once" {
			t.Error("frequency-1 hashtag should not survive even with a top score")
		}
	}
	if got[0].Hashtag != "#tag00" {
		t.Errorf("highest rank should come first, got %q", got[0].Hashtag)
	}
}
