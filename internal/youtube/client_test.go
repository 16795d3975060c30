// yt-analytics - YouTube Channel Keyword and Upload Analytics
// Copyright 2026 Aditya Argadinata
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/AdityaArgadinata/yt-analytics

package youtube

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/AdityaArgadinata/yt-analytics/internal/config"
	"github.com/AdityaArgadinata/yt-analytics/internal/models"
)

func testClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewClient(&config.YouTubeConfig{
		APIKey:             "test-key-1234567890",
		BaseURL:            srv.URL,
		MaxVideos:          100,
		Timeout:            5 * time.Second,
		RequestsPerSecond:  1000,
		BreakerMaxFailures: 100,
		BreakerTimeout:     time.Second,
	})
}

func TestSearchChannel(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.URL.Path, "/search") {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("q"); got != "tech channel" {
			t.Errorf("q = %q, want tech channel", got)
		}
		fmt.Fprint(w, `{"items":[{"id":{"channelId":"UC123"},"snippet":{"title":"Tech Weekly","description":"weekly tech"}}]}`)
	}))

	ch, err := c.SearchChannel(context.Background(), "tech channel")
	if err != nil {
		t.Fatalf("SearchChannel() error = %v", err)
	}
	if ch.ID != "UC123" || ch.Title != "Tech Weekly" {
		t.Errorf("channel = %+v", ch)
	}
}

func TestSearchChannelNotFound(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"items":[]}`)
	}))

	_, err := c.SearchChannel(context.Background(), "nothing")
	if !errors.Is(err, ErrChannelNotFound) {
		t.Errorf("error = %v, want ErrChannelNotFound", err)
	}
}

func TestGetChannelParsesStatistics(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"items":[{
			"id":"UC123",
			"snippet":{"title":"Tech Weekly","description":"d"},
			"statistics":{"viewCount":"123456","subscriberCount":"1000","videoCount":"not-a-number"},
			"contentDetails":{"relatedPlaylists":{"uploads":"UU123"}}
		}]}`)
	}))

	ch, err := c.GetChannel(context.Background(), "UC123")
	if err != nil {
		t.Fatalf("GetChannel() error = %v", err)
	}
	if ch.UploadsPlaylistID != "UU123" {
		t.Errorf("UploadsPlaylistID = %q, want UU123", ch.UploadsPlaylistID)
	}
	if ch.Statistics.ViewCount != 123456 {
		t.Errorf("ViewCount = %d, want 123456", ch.Statistics.ViewCount)
	}
	if ch.Statistics.VideoCount != 0 {
		t.Errorf("VideoCount = %d, want 0 for malformed counter", ch.Statistics.VideoCount)
	}
}

func TestListUploadsPagination(t *testing.T) {
	pages := map[string]string{
		"": `{"nextPageToken":"page2","items":[
			{"snippet":{"title":"Video A","publishedAt":"2026-06-01T10:00:00Z","resourceId":{"videoId":"a"}},"contentDetails":{"videoId":"a"}},
			{"snippet":{"title":"Video B","publishedAt":"2026-06-02T10:00:00Z","resourceId":{"videoId":"b"}},"contentDetails":{"videoId":"b"}}
		]}`,
		"page2": `{"items":[
			{"snippet":{"title":"Video C","publishedAt":"2026-06-03T10:00:00Z","resourceId":{"videoId":"c"}},"contentDetails":{"videoId":"c"}}
		]}`,
	}

	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("playlistId"); got != "UU123" {
			t.Errorf("playlistId = %q, want UU123", got)
		}
		fmt.Fprint(w, pages[r.URL.Query().Get("pageToken")])
	}))

	records, err := c.ListUploads(context.Background(), "UU123", 10)
	if err != nil {
		t.Fatalf("ListUploads() error = %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("records = %d, want 3", len(records))
	}
	if records[0].ID != "a" || records[2].ID != "c" {
		t.Errorf("unexpected order: %v", records)
	}
}

func TestListUploadsRespectsMax(t *testing.T) {
	calls := 0
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		fmt.Fprint(w, `{"nextPageToken":"more","items":[
			{"snippet":{"title":"V1","publishedAt":"2026-06-01T10:00:00Z","resourceId":{"videoId":"v1"}},"contentDetails":{"videoId":"v1"}},
			{"snippet":{"title":"V2","publishedAt":"2026-06-02T10:00:00Z","resourceId":{"videoId":"v2"}},"contentDetails":{"videoId":"v2"}}
		]}`)
	}))

	records, err := c.ListUploads(context.Background(), "UU123", 2)
	if err != nil {
		t.Fatalf("ListUploads() error = %v", err)
	}
	if len(records) != 2 {
		t.Errorf("records = %d, want 2", len(records))
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1 (max reached on first page)", calls)
	}
}

func TestListUploadsEmptyPlaylistID(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected")
	}))

	_, err := c.ListUploads(context.Background(), "", 10)
	if !errors.Is(err, ErrNoUploads) {
		t.Errorf("error = %v, want ErrNoUploads", err)
	}
}

func TestGetVideoStats(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ids := r.URL.Query().Get("id")
		if ids != "old,new" {
			t.Errorf("id = %q, want old,new", ids)
		}
		fmt.Fprint(w, `{"items":[
			{"id":"old","snippet":{"title":"Old Video","description":"desc","publishedAt":"2026-05-01T10:00:00Z"},
			 "statistics":{"viewCount":"100","likeCount":"10","commentCount":"1"},
			 "contentDetails":{"duration":"PT10M"}},
			{"id":"new","snippet":{"title":"New Video","description":"","publishedAt":"2026-06-01T10:00:00Z"},
			 "statistics":{"viewCount":"200"},
			 "contentDetails":{"duration":"PT45S"}}
		]}`)
	}))

	partial := []models.VideoRecord{
		{ID: "old", Title: "placeholder"},
		{ID: "new", Title: "placeholder"},
	}
	videos, err := c.GetVideoStats(context.Background(), partial)
	if err != nil {
		t.Fatalf("GetVideoStats() error = %v", err)
	}
	if len(videos) != 2 {
		t.Fatalf("videos = %d, want 2", len(videos))
	}
	// Sorted newest first.
	if videos[0].ID != "new" {
		t.Errorf("first video = %s, want new", videos[0].ID)
	}
	if videos[0].ViewCount != 200 || videos[0].LikeCount != 0 {
		t.Errorf("new stats = %+v (missing likeCount must parse as 0)", videos[0])
	}
	if videos[1].Title != "Old Video" || videos[1].Duration != "PT10M" {
		t.Errorf("old video = %+v", videos[1])
	}
}

func TestGetVideoStatsKeepsUnmatchedRecords(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"items":[]}`)
	}))

	videos, err := c.GetVideoStats(context.Background(), []models.VideoRecord{
		{ID: "ghost", Title: "Deleted Video"},
	})
	if err != nil {
		t.Fatalf("GetVideoStats() error = %v", err)
	}
	if len(videos) != 1 || videos[0].Title != "Deleted Video" {
		t.Errorf("videos = %+v, want the partial record preserved", videos)
	}
}

func TestCallWithoutAPIKey(t *testing.T) {
	c := NewClient(&config.YouTubeConfig{
		BaseURL:            "http://unused.invalid",
		MaxVideos:          10,
		Timeout:            time.Second,
		RequestsPerSecond:  1000,
		BreakerMaxFailures: 100,
		BreakerTimeout:     time.Second,
	})

	_, err := c.GetChannel(context.Background(), "UC123")
	if !errors.Is(err, ErrNotConfigured) {
		t.Errorf("error = %v, want ErrNotConfigured", err)
	}
}

func TestCallReportsUpstreamReason(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		fmt.Fprint(w, `{"error":{"code":403,"message":"quota","errors":[{"reason":"quotaExceeded"}]}}`)
	}))

	_, err := c.GetChannel(context.Background(), "UC123")
	if err == nil || !strings.Contains(err.Error(), "quotaExceeded") {
		t.Errorf("error = %v, want quotaExceeded reason", err)
	}
}

func TestFetchChannelVideos(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasPrefix(r.URL.Path, "/channels"):
			fmt.Fprint(w, `{"items":[{
				"id":"UC123","snippet":{"title":"Tech Weekly"},
				"statistics":{"viewCount":"1000"},
				"contentDetails":{"relatedPlaylists":{"uploads":"UU123"}}
			}]}`)
		case strings.HasPrefix(r.URL.Path, "/playlistItems"):
			fmt.Fprint(w, `{"items":[
				{"snippet":{"title":"V1","publishedAt":"2026-06-01T10:00:00Z","resourceId":{"videoId":"v1"}},"contentDetails":{"videoId":"v1"}}
			]}`)
		case strings.HasPrefix(r.URL.Path, "/videos"):
			fmt.Fprint(w, `{"items":[
				{"id":"v1","snippet":{"title":"V1","publishedAt":"2026-06-01T10:00:00Z"},
				 "statistics":{"viewCount":"500","likeCount":"50","commentCount":"5"},
				 "contentDetails":{"duration":"PT5M"}}
			]}`)
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))

	channel, videos, err := FetchChannelVideos(context.Background(), c, "UC123", 50)
	if err != nil {
		t.Fatalf("FetchChannelVideos() error = %v", err)
	}
	if channel.Title != "Tech Weekly" {
		t.Errorf("channel = %+v", channel)
	}
	if len(videos) != 1 || videos[0].ViewCount != 500 {
		t.Errorf("videos = %+v", videos)
	}
}

func TestMaskKey(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", "(empty)"},
		{"short", "********"},
		{"AIzaSyD-1234567890abcd", "AIza****abcd"},
	}
	for _, tt := range tests {
		if got := maskKey(tt.in); got != tt.want {
			t.Errorf("maskKey(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseCount(t *testing.T) {
	cases := map[string]int64{
		"":      0,
		"abc":   0,
		"-5":    0,
		"12345": 12345,
	}
	for in, want := range cases {
		if got := parseCount(in); got != want {
			t.Errorf("parseCount(%q) = %d, want %d", in, got, want)
		}
	}
}
