// yt-analytics - YouTube Channel Keyword and Upload Analytics
// Copyright 2026 Aditya Argadinata
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/AdityaArgadinata/yt-analytics

package keywords

import (
	"github.com/AdityaArgadinata/yt-analytics/internal/models"
)

// Aggregation weights and caps. Description occurrences are discounted
// relative to title occurrences because titles are deliberate keyword
// placements while descriptions accumulate boilerplate.
const (
	descriptionWeight = 0.7
	maxKeywordVideos  = 5
	maxHashtagVideos  = 3
)

// keywordEntry accumulates per-keyword statistics across the batch.
// Frequency counts videos touched: a video contributes at most once per
// keyword, with the title taking precedence over the description.
type keywordEntry struct {
	keyword       string
	frequency     int
	titleFreq     int
	descFreq      int
	totalViews    float64
	totalLikes    float64
	totalComments float64
	videos        []models.VideoRef
	videoIDs      map[string]struct{}
}

// hashtagEntry accumulates per-hashtag statistics. Hashtags are unweighted
// and track views only.
type hashtagEntry struct {
	hashtag    string
	frequency  int
	totalViews float64
	videos     []models.VideoRef
	videoIDs   map[string]struct{}
}

func (e *keywordEntry) addVideo(v models.VideoRecord) {
	if _, ok := e.videoIDs[v.ID]; ok {
		return
	}
	e.videoIDs[v.ID] = struct{}{}
	if len(e.videos) < maxKeywordVideos {
		e.videos = append(e.videos, models.VideoRef{
			ID:       v.ID,
			Title:    v.Title,
			Views:    v.ViewCount,
			Likes:    v.LikeCount,
			Comments: v.CommentCount,
		})
	}
}

func (e *hashtagEntry) addVideo(v models.VideoRecord) {
	if _, ok := e.videoIDs[v.ID]; ok {
		return
	}
	e.videoIDs[v.ID] = struct{}{}
	if len(e.videos) < maxHashtagVideos {
		e.videos = append(e.videos, models.VideoRef{
			ID:    v.ID,
			Title: v.Title,
			Views: v.ViewCount,
		})
	}
}

// aggregate folds the extracted candidates of every video into per-keyword
// and per-hashtag entry maps.
func (t *Tokenizer) aggregate(videos []models.VideoRecord) (map[string]*keywordEntry, map[string]*hashtagEntry) {
	kwMap := make(map[string]*keywordEntry)
	htMap := make(map[string]*hashtagEntry)

	for _, v := range videos {
		titleKeywords := t.ExtractKeywords(v.Title)
		descKeywords := t.ExtractKeywords(v.Description)

		inTitle := make(map[string]struct{}, len(titleKeywords))
		for _, kw := range titleKeywords {
			inTitle[kw] = struct{}{}

			entry, ok := kwMap[kw]
			if !ok {
				entry = &keywordEntry{keyword: kw, videoIDs: make(map[string]struct{})}
				kwMap[kw] = entry
			}
			entry.frequency++
			entry.titleFreq++
			entry.totalViews += float64(v.ViewCount)
			entry.totalLikes += float64(v.LikeCount)
			entry.totalComments += float64(v.CommentCount)
			entry.addVideo(v)
		}

		// Description-sourced keywords already seen in this video's title
		// are skipped so frequency stays "videos touched", not occurrences.
		for _, kw := range descKeywords {
			if _, dup := inTitle[kw]; dup {
				continue
			}
			entry, ok := kwMap[kw]
			if !ok {
				entry = &keywordEntry{keyword: kw, videoIDs: make(map[string]struct{})}
				kwMap[kw] = entry
			}
			entry.frequency++
			entry.descFreq++
			entry.totalViews += descriptionWeight * float64(v.ViewCount)
			entry.totalLikes += descriptionWeight * float64(v.LikeCount)
			entry.totalComments += descriptionWeight * float64(v.CommentCount)
			entry.addVideo(v)
		}

		// Hashtags: title and description count equally; a video still
		// contributes at most once per hashtag.
		seenTags := make(map[string]struct{})
		for _, tag := range append(t.ExtractHashtags(v.Title), t.ExtractHashtags(v.Description)...) {
			if _, dup := seenTags[tag]; dup {
				continue
			}
			seenTags[tag] = struct{}{}

			entry, ok := htMap[tag]
			if !ok {
				entry = &hashtagEntry{hashtag: tag, videoIDs: make(map[string]struct{})}
				htMap[tag] = entry
			}
			entry.frequency++
			entry.totalViews += float64(v.ViewCount)
			entry.addVideo(v)
		}
	}

	return kwMap, htMap
}
