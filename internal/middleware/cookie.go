package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// CookieConfig describes the auth cookie. Production cookies are Secure and
// SameSite=None so a separately hosted frontend can send them.
type CookieConfig struct {
	Name   string
	TTL    time.Duration
	Secure bool
}

// SetAuthCookie writes the token as an HttpOnly cookie.
func SetAuthCookie(c *gin.Context, cfg CookieConfig, token string) {
	c.SetSameSite(sameSite(cfg))
	c.SetCookie(cfg.Name, token, int(cfg.TTL.Seconds()), "/", "", cfg.Secure, true)
}

// ClearAuthCookie expires the auth cookie with the same attributes it was set with.
func ClearAuthCookie(c *gin.Context, cfg CookieConfig) {
	c.SetSameSite(sameSite(cfg))
	c.SetCookie(cfg.Name, "", -1, "/", "", cfg.Secure, true)
}

func sameSite(cfg CookieConfig) http.SameSite {
	if cfg.Secure {
		return http.SameSiteNoneMode
	}
	return http.SameSiteLaxMode
}
