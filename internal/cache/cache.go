// yt-analytics - YouTube Channel Keyword and Upload Analytics
// Copyright 2026 Aditya Argadinata
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/AdityaArgadinata/yt-analytics

// Package cache provides the short-lived in-memory result cache. Analysis
// results are expensive to recompute (multiple upstream API round trips)
// but stale quickly, so entries default to a two minute TTL.
package cache

import (
	"crypto/sha256"
	"fmt"
	"sync"
	"time"

	"github.com/goccy/go-json"
)

// Entry is one cached item with its expiration time.
type Entry struct {
	Data      interface{}
	ExpiresAt time.Time
}

// Cache is a thread-safe in-memory TTL cache with a background sweep.
// Create with New, stop the sweep goroutine with Close.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]Entry
	ttl     time.Duration

	statsMu sync.Mutex
	stats   Stats

	stop     chan struct{}
	stopOnce sync.Once
}

// Stats is a snapshot of cache performance counters.
type Stats struct {
	Hits      int64     `json:"hits"`
	Misses    int64     `json:"misses"`
	Evictions int64     `json:"evictions"`
	TotalKeys int64     `json:"total_keys"`
	LastSweep time.Time `json:"last_sweep"`
}

// New creates a Cache whose entries expire after ttl. A background
// goroutine sweeps expired entries every sweepInterval; a non-positive
// interval disables the sweep (expired entries are still evicted lazily
// on Get).
func New(ttl, sweepInterval time.Duration) *Cache {
	c := &Cache{
		entries: make(map[string]Entry),
		ttl:     ttl,
		stats:   Stats{LastSweep: time.Now()},
		stop:    make(chan struct{}),
	}
	if sweepInterval > 0 {
		go c.sweepLoop(sweepInterval)
	}
	return c
}

// Close stops the background sweep goroutine. Safe to call more than once.
func (c *Cache) Close() {
	c.stopOnce.Do(func() { close(c.stop) })
}

// Get retrieves a value by key. Expired entries are removed on access and
// count as both a miss and an eviction.
func (c *Cache) Get(key string) (interface{}, bool) {
	c.mu.RLock()
	entry, exists := c.entries[key]
	c.mu.RUnlock()

	if !exists {
		c.addStats(func(s *Stats) { s.Misses++ })
		return nil, false
	}
	if time.Now().After(entry.ExpiresAt) {
		evicted, keys := c.evictIfExpired(key)
		c.addStats(func(s *Stats) {
			s.Misses++
			if evicted {
				s.Evictions++
			}
			s.TotalKeys = keys
		})
		return nil, false
	}

	c.addStats(func(s *Stats) { s.Hits++ })
	return entry.Data, true
}

// evictIfExpired deletes key only if the stored entry is still expired at
// delete time. The expiry check must be repeated under the write lock: a
// fresh value written for the same key after the read stays put.
func (c *Cache) evictIfExpired(key string) (bool, int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	current, exists := c.entries[key]
	if !exists || time.Now().Before(current.ExpiresAt) {
		return false, int64(len(c.entries))
	}
	delete(c.entries, key)
	return true, int64(len(c.entries))
}

// Set stores a value with the default TTL.
func (c *Cache) Set(key string, value interface{}) {
	c.SetWithTTL(key, value, c.ttl)
}

// SetWithTTL stores a value with a custom TTL, overwriting any existing
// entry under the same key.
func (c *Cache) SetWithTTL(key string, value interface{}, ttl time.Duration) {
	c.mu.Lock()
	c.entries[key] = Entry{Data: value, ExpiresAt: time.Now().Add(ttl)}
	keys := int64(len(c.entries))
	c.mu.Unlock()

	c.addStats(func(s *Stats) { s.TotalKeys = keys })
}

// Delete removes one entry. Used for explicit refresh: delete, recompute,
// set. No-op when the key is absent.
func (c *Cache) Delete(key string) {
	c.mu.Lock()
	_, existed := c.entries[key]
	delete(c.entries, key)
	keys := int64(len(c.entries))
	c.mu.Unlock()

	c.addStats(func(s *Stats) {
		if existed {
			s.Evictions++
		}
		s.TotalKeys = keys
	})
}

// Clear drops every entry at once.
func (c *Cache) Clear() {
	c.mu.Lock()
	evicted := int64(len(c.entries))
	c.entries = make(map[string]Entry)
	c.mu.Unlock()

	c.addStats(func(s *Stats) {
		s.Evictions += evicted
		s.TotalKeys = 0
	})
}

// GetStats returns a copy of the current counters.
func (c *Cache) GetStats() Stats {
	c.statsMu.Lock()
	defer c.statsMu.Unlock()
	return c.stats
}

// HitRate returns the hit percentage over all lookups, 0 when no lookups
// have happened yet.
func (c *Cache) HitRate() float64 {
	stats := c.GetStats()
	total := stats.Hits + stats.Misses
	if total == 0 {
		return 0.0
	}
	return float64(stats.Hits) / float64(total) * 100.0
}

func (c *Cache) sweepLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.sweep()
		case <-c.stop:
			return
		}
	}
}

// sweep removes all expired entries in one pass.
func (c *Cache) sweep() {
	now := time.Now()

	c.mu.Lock()
	var evicted int64
	for key, entry := range c.entries {
		if now.After(entry.ExpiresAt) {
			delete(c.entries, key)
			evicted++
		}
	}
	keys := int64(len(c.entries))
	c.mu.Unlock()

	c.addStats(func(s *Stats) {
		s.Evictions += evicted
		s.TotalKeys = keys
		s.LastSweep = now
	})
}

func (c *Cache) addStats(update func(*Stats)) {
	c.statsMu.Lock()
	update(&c.stats)
	c.statsMu.Unlock()
}

// GenerateKey builds a compact cache key from a method name and its
// parameters. Falls back to plain formatting when the parameters cannot
// be serialized.
func GenerateKey(method string, params interface{}) string {
	data, err := json.Marshal(params)
	if err != nil {
		return fmt.Sprintf("%s:%v", method, params)
	}
	hash := sha256.Sum256(data)
	return fmt.Sprintf("%s:%x", method, hash[:16])
}
