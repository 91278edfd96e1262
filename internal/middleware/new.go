package middleware

import (
	"nova-assistant/config"
	"nova-assistant/pkg/log"
)

type Middleware struct {
	l           log.Logger
	environment string
	rateLimiter *rateLimiter
}

func New(l log.Logger, cfg *config.Config) Middleware {
	return Middleware{
		l:           l,
		environment: cfg.Environment.Name,
		rateLimiter: newRateLimiter(cfg.Chat.RateLimitPerMin),
	}
}
