package middleware

import (
	"time"

	"github.com/rs/cors"

	"emotion-assistant/pkg/log"
	"emotion-assistant/pkg/scope"
)

// Config tunes the cross-cutting HTTP middlewares.
type Config struct {
	AllowedOrigins []string
	RequestsPerMin int
	Burst          int
}

type Middleware struct {
	l          log.Logger
	jwtManager scope.Manager
	cookie     CookieConfig
	cors       *cors.Cors
	limiter    *rateLimiter
}

func New(l log.Logger, jwtManager scope.Manager, cookie CookieConfig, cfg Config) Middleware {
	return Middleware{
		l:          l,
		jwtManager: jwtManager,
		cookie:     cookie,
		cors:       newCORS(cfg.AllowedOrigins),
		limiter:    newRateLimiter(cfg.RequestsPerMin, cfg.Burst, limiterTTL),
	}
}

const (
	limiterTTL      = 5 * time.Minute
	limiterCapacity = 1000
)
