package bootstrap

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/dekkov/personal-website/internal/api/http/middleware"
)

// CORS permits browser requests from the configured site URL and the
// local development hosts. The request-host entries of the endpoint
// allow-list are covered by same-origin requests, which browsers never
// preflight.
func CORS(siteURL string) gin.HandlerFunc {
	cfg := cors.DefaultConfig()
	cfg.AllowOrigins = middleware.AllowedOrigins(siteURL, "")
	cfg.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	cfg.AllowHeaders = []string{"Origin", "Content-Type", "X-Request-Id"}
	cfg.MaxAge = 12 * time.Hour
	return cors.New(cfg)
}
