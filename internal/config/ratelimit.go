package config

import "time"

// RateLimitConfig controls the fixed-window limiter guarding the
// credential endpoints. Limit requests are allowed per Window for each
// (IP, user, route) combination.
type RateLimitConfig struct {
	Enabled bool
	Limit   int
	Window  time.Duration
	Prefix  string
}

// LoadRateLimitConfig reads limiter settings from the environment. The
// defaults allow 20 attempts per minute, generous for humans and tight
// for scripts.
func LoadRateLimitConfig() RateLimitConfig {
	return RateLimitConfig{
		Enabled: getenv("RATE_LIMIT_ENABLED", "true") == "true",
		Limit:   atoi(getenv("RATE_LIMIT_MAX", "20")),
		Window:  parseDur(getenv("RATE_LIMIT_WINDOW", "1m")),
		Prefix:  getenv("RATE_LIMIT_PREFIX", "rl"),
	}
}
