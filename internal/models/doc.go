// yt-analytics - YouTube Channel Keyword and Upload Analytics
// Copyright 2026 Aditya Argadinata
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/AdityaArgadinata/yt-analytics

// Package models defines the data structures shared across the application:
// video records fetched from the YouTube Data API, keyword and hashtag
// aggregates produced by the analytics engine, upload-timing patterns, and
// the standard API response envelope.
//
// All types are plain, JSON-serializable structures. Nothing in this package
// holds mutable state or owns goroutines; ownership of a value transfers to
// whoever received it.
package models
