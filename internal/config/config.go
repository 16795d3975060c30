// yt-analytics - YouTube Channel Keyword and Upload Analytics
// Copyright 2026 Aditya Argadinata
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/AdityaArgadinata/yt-analytics

// Package config provides layered application configuration using Koanf v2.
//
// Precedence: environment variables > YAML config file > built-in defaults.
package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	YouTube  YouTubeConfig  `koanf:"youtube"`
	Cache    CacheConfig    `koanf:"cache"`
	Auth     AuthConfig     `koanf:"auth"`
	API      APIConfig      `koanf:"api"`
	Keywords KeywordsConfig `koanf:"keywords"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host    string        `koanf:"host"`
	Port    int           `koanf:"port"`
	Timeout time.Duration `koanf:"timeout"`
}

// YouTubeConfig holds YouTube Data API client settings.
type YouTubeConfig struct {
	// APIKey is the Data API v3 key. Required for live analysis; the demo
	// endpoint works without it.
	APIKey string `koanf:"api_key"`

	// BaseURL overrides the API endpoint (tests point this at a stub server).
	BaseURL string `koanf:"base_url"`

	// MaxVideos caps how many uploads are fetched per analysis (hard cap 500).
	MaxVideos int `koanf:"max_videos"`

	Timeout time.Duration `koanf:"timeout"`

	// RequestsPerSecond paces outgoing Data API calls to protect quota.
	RequestsPerSecond float64 `koanf:"requests_per_second"`

	// Circuit breaker settings for the upstream API.
	BreakerMaxFailures uint32        `koanf:"breaker_max_failures"`
	BreakerTimeout     time.Duration `koanf:"breaker_timeout"`
}

// CacheConfig holds the analysis result cache settings.
type CacheConfig struct {
	// TTL is how long a computed Insights result stays valid per channel.
	TTL time.Duration `koanf:"ttl"`

	// SweepInterval is how often expired entries are evicted in the
	// background.
	SweepInterval time.Duration `koanf:"sweep_interval"`
}

// AuthConfig holds the entitlement gate settings.
//
// Mode "none" disables the gate entirely (self-hosted single-user setups).
// Mode "jwt" requires a bearer token whose plan claim is in EntitledPlans.
type AuthConfig struct {
	Mode     string        `koanf:"mode"`
	Secret   string        `koanf:"secret"`
	TokenTTL time.Duration `koanf:"token_ttl"`

	// Dashboard login credential checked by POST /api/v1/auth/login.
	DashboardUser     string `koanf:"dashboard_user"`
	DashboardPassword string `koanf:"dashboard_password"`

	// Plan granted to a successful dashboard login.
	DashboardPlan string `koanf:"dashboard_plan"`

	// EntitledPlans lists plan claims allowed to run analyses.
	EntitledPlans []string `koanf:"entitled_plans"`
}

// APIConfig holds HTTP API behavior settings.
type APIConfig struct {
	RateLimitRequests int           `koanf:"rate_limit_requests"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`
}

// KeywordsConfig extends the built-in word lists without touching the
// algorithm. Entries are lower-cased on load.
type KeywordsConfig struct {
	ExtraStopWords  []string `koanf:"extra_stop_words"`
	ExtraNoiseWords []string `koanf:"extra_noise_words"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// defaultConfig returns a Config with all default values. Defaults are
// applied first, then overridden by config file and env vars.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:    "0.0.0.0",
			Port:    8080,
			Timeout: 30 * time.Second,
		},
		YouTube: YouTubeConfig{
			APIKey:             "",
			BaseURL:            "https://www.googleapis.com/youtube/v3",
			MaxVideos:          100,
			Timeout:            15 * time.Second,
			RequestsPerSecond:  5,
			BreakerMaxFailures: 5,
			BreakerTimeout:     30 * time.Second,
		},
		Cache: CacheConfig{
			TTL:           2 * time.Minute,
			SweepInterval: time.Minute,
		},
		Auth: AuthConfig{
			Mode:          "jwt",
			Secret:        "",
			TokenTTL:      24 * time.Hour,
			DashboardPlan: "pro",
			EntitledPlans: []string{"pro", "premium"},
		},
		API: APIConfig{
			RateLimitRequests: 100,
			RateLimitWindow:   time.Minute,
			RateLimitDisabled: false,
			CORSOrigins:       []string{},
		},
		Keywords: KeywordsConfig{},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
	}
}
