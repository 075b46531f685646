package middleware

import (
	"ai-therapist/config"
	"ai-therapist/internal/metrics"
	"ai-therapist/pkg/log"
)

type Middleware struct {
	l              log.Logger
	metrics        *metrics.Collector
	allowedOrigins []string
	limiter        *rateLimiter
}

// New builds the middleware set. A disabled or non-positive rate limit turns RateLimit into a pass-through.
func New(l log.Logger, m *metrics.Collector, cors config.CORSConfig, rl config.RateLimitConfig) Middleware {
	mw := Middleware{
		l:              l,
		metrics:        m,
		allowedOrigins: cors.AllowedOrigins,
	}
	if rl.Enabled && rl.RequestsPerMinute > 0 {
		mw.limiter = newRateLimiter(rl.RequestsPerMinute)
	}
	return mw
}
