package middleware

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	apihttp "github.com/dekkov/personal-website/internal/api/http"
)

// localDevOrigins are always permitted so the site can be developed
// against a locally running frontend.
var localDevOrigins = []string{
	"http://localhost:3000",
	"http://127.0.0.1:3000",
}

// AllowedOrigins builds the origin allow-list for a request: the
// configured site URL, the request's own host under both schemes, and
// the fixed local development hosts.
func AllowedOrigins(siteURL, host string) []string {
	allowed := make([]string, 0, 4+len(localDevOrigins))
	if siteURL != "" {
		allowed = append(allowed, strings.TrimSuffix(siteURL, "/"))
	}
	if host != "" {
		allowed = append(allowed, "https://"+host, "http://"+host)
	}
	return append(allowed, localDevOrigins...)
}

// OriginCheck is the CSRF mitigation for POST endpoints. A request
// carrying an Origin header outside the allow-list is rejected with
// 403; a request without one is permitted (same-origin fetches and
// non-browser clients often omit it).
func OriginCheck(siteURL string) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin == "" {
			c.Next()
			return
		}

		for _, allowed := range AllowedOrigins(siteURL, c.Request.Host) {
			if origin == allowed {
				c.Next()
				return
			}
		}

		log.Printf("[warn] operation=origin_check path=%s origin=%q blocked", c.Request.URL.Path, origin)
		c.AbortWithStatusJSON(http.StatusForbidden, apihttp.Fail("Unauthorized origin"))
	}
}

// RefererCheck guards GET endpoints the same way but by Referer prefix.
// A wholly absent referer (direct navigation) is permitted and logged.
func RefererCheck(siteURL string) gin.HandlerFunc {
	return func(c *gin.Context) {
		referer := c.GetHeader("Referer")
		if referer == "" {
			log.Printf("[info] operation=referer_check path=%s referer=direct", c.Request.URL.Path)
			c.Next()
			return
		}

		for _, allowed := range AllowedOrigins(siteURL, c.Request.Host) {
			if strings.HasPrefix(referer, allowed) {
				c.Next()
				return
			}
		}

		log.Printf("[warn] operation=referer_check path=%s referer=%q blocked", c.Request.URL.Path, referer)
		c.AbortWithStatusJSON(http.StatusForbidden, apihttp.Fail("Unauthorized access"))
	}
}
