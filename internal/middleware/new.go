package middleware

import (
	"multilingual-tool-router/config"
	"multilingual-tool-router/pkg/log"
)

type Middleware struct {
	l       log.Logger
	config  *config.Config
	limiter *rateLimiter
}

func New(l log.Logger, cfg *config.Config) Middleware {
	var limiter *rateLimiter
	if cfg.RateLimit.PerMin > 0 {
		limiter = newRateLimiter(cfg.RateLimit.PerMin)
	}

	return Middleware{
		l:       l,
		config:  cfg,
		limiter: limiter,
	}
}
