// yt-analytics - YouTube Channel Keyword and Upload Analytics
// Copyright 2026 Aditya Argadinata
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/AdityaArgadinata/yt-analytics

package config

import (
	"errors"
	"fmt"
)

const maxVideosHardCap = 500

// Validate checks the configuration for values that would misbehave at
// runtime. It normalizes soft violations (e.g. clamps MaxVideos) and returns
// an error for contradictions that need operator attention.
func (c *Config) Validate() error {
	var errs []error

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be 1-65535, got %d", c.Server.Port))
	}
	if c.Server.Timeout <= 0 {
		errs = append(errs, errors.New("server.timeout must be positive"))
	}

	if c.YouTube.MaxVideos <= 0 {
		errs = append(errs, fmt.Errorf("youtube.max_videos must be positive, got %d", c.YouTube.MaxVideos))
	} else if c.YouTube.MaxVideos > maxVideosHardCap {
		c.YouTube.MaxVideos = maxVideosHardCap
	}
	if c.YouTube.RequestsPerSecond <= 0 {
		errs = append(errs, errors.New("youtube.requests_per_second must be positive"))
	}

	if c.Cache.TTL <= 0 {
		errs = append(errs, errors.New("cache.ttl must be positive"))
	}
	if c.Cache.SweepInterval <= 0 {
		errs = append(errs, errors.New("cache.sweep_interval must be positive"))
	}

	switch c.Auth.Mode {
	case "none":
		// Open mode needs no secret.
	case "jwt":
		if c.Auth.Secret == "" {
			errs = append(errs, errors.New("auth.secret is required when auth.mode is jwt (set JWT_SECRET)"))
		} else if len(c.Auth.Secret) < 32 {
			errs = append(errs, errors.New("auth.secret must be at least 32 bytes"))
		}
		if len(c.Auth.EntitledPlans) == 0 {
			errs = append(errs, errors.New("auth.entitled_plans must not be empty when auth.mode is jwt"))
		}
	default:
		errs = append(errs, fmt.Errorf("auth.mode must be jwt or none, got %q", c.Auth.Mode))
	}

	if !c.API.RateLimitDisabled {
		if c.API.RateLimitRequests <= 0 {
			errs = append(errs, errors.New("api.rate_limit_requests must be positive"))
		}
		if c.API.RateLimitWindow <= 0 {
			errs = append(errs, errors.New("api.rate_limit_window must be positive"))
		}
	}

	return errors.Join(errs...)
}
