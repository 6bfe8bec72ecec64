package config

import "time"

// RateLimitConfig configures the Redis token bucket applied to /api routes.
// Each key starts with Capacity tokens and regains RefillTokens every
// RefillInterval.  KeyStrategy is one of "ip", "route" or "ip_route".
type RateLimitConfig struct {
	Enabled        bool
	Capacity       int
	RefillTokens   int
	RefillInterval time.Duration
	TTL            time.Duration
	KeyStrategy    string
	Prefix         string
	Debug          bool
}

// LoadRateLimitConfig reads the RATE_LIMIT_* variables and clamps them to
// usable values.  RATE_LIMIT_BURST overrides the capacity and
// RATE_LIMIT_REFILL_EVERY switches to one token per interval.
func LoadRateLimitConfig() RateLimitConfig {
	cfg := RateLimitConfig{
		Enabled:        envBool("RATE_LIMIT_ENABLED", true),
		Capacity:       envInt("RATE_LIMIT_CAPACITY", 120),
		RefillTokens:   envInt("RATE_LIMIT_REFILL_TOKENS", 2),
		RefillInterval: envDur("RATE_LIMIT_REFILL_INTERVAL", time.Second),
		TTL:            envDur("RATE_LIMIT_TTL", 10*time.Minute),
		KeyStrategy:    envStr("RATE_LIMIT_KEY_STRATEGY", "ip_route"),
		Prefix:         envStr("RATE_LIMIT_PREFIX", "billboard:rl"),
		Debug:          envBool("RATE_LIMIT_DEBUG", false),
	}
	if burst := envInt("RATE_LIMIT_BURST", -1); burst > 0 {
		cfg.Capacity = burst
	}
	if every := envDur("RATE_LIMIT_REFILL_EVERY", 0); every > 0 {
		cfg.RefillTokens = 1
		cfg.RefillInterval = every
	}
	return cfg.Normalized()
}

// Normalized clamps c to values the token bucket script can use.  The
// script works in whole milliseconds for the refill interval and whole
// seconds for the key TTL, so both have a floor.
func (c RateLimitConfig) Normalized() RateLimitConfig {
	if c.Capacity < 1 {
		c.Capacity = 1
	}
	if c.RefillTokens < 1 {
		c.RefillTokens = 1
	}
	if c.RefillInterval <= 0 {
		c.RefillInterval = time.Second
	}
	if c.RefillInterval < time.Millisecond {
		c.RefillInterval = time.Millisecond
	}
	if min := 5 * c.RefillInterval; c.TTL < min {
		c.TTL = min
	}
	if c.TTL < time.Second {
		c.TTL = time.Second
	}
	return c
}
