package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	apihttp "github.com/dekkov/personal-website/internal/api/http"
)

const staleClientAge = 10 * time.Minute

type rateClient struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimit allows perMinute requests per client IP with a burst of the
// same size. Exhausted clients get 429. State is in-process only; the
// map is pruned of stale entries as it grows.
func RateLimit(perMinute int) gin.HandlerFunc {
	if perMinute <= 0 {
		perMinute = 5
	}

	var mu sync.Mutex
	clients := make(map[string]*rateClient)

	return func(c *gin.Context) {
		ip := c.ClientIP()

		mu.Lock()
		client, ok := clients[ip]
		if !ok {
			if len(clients) >= 1024 {
				pruneStale(clients)
			}
			client = &rateClient{
				limiter: rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMinute)), perMinute),
			}
			clients[ip] = client
		}
		client.lastSeen = time.Now()
		allowed := client.limiter.Allow()
		mu.Unlock()

		if !allowed {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, apihttp.Fail("Too many requests. Please try again later."))
			return
		}
		c.Next()
	}
}

func pruneStale(clients map[string]*rateClient) {
	cutoff := time.Now().Add(-staleClientAge)
	for ip, client := range clients {
		if client.lastSeen.Before(cutoff) {
			delete(clients, ip)
		}
	}
}
