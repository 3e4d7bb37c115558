package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

const siteURL = "https://mysite.example"

func originRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/submit", OriginCheck(siteURL), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	r.GET("/download", RefererCheck(siteURL), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func doRequest(r *gin.Engine, method, path string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	req.Host = "mysite.example"
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func TestAllowedOrigins(t *testing.T) {
	allowed := AllowedOrigins("https://mysite.example/", "mysite.example")

	assert.Contains(t, allowed, "https://mysite.example")
	assert.Contains(t, allowed, "http://mysite.example")
	assert.Contains(t, allowed, "http://localhost:3000")
	assert.Contains(t, allowed, "http://127.0.0.1:3000")
}

func TestOriginCheckAllowsAbsentOrigin(t *testing.T) {
	rr := doRequest(originRouter(), http.MethodPost, "/submit", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestOriginCheckAllowsListedOrigins(t *testing.T) {
	for _, origin := range []string{siteURL, "http://localhost:3000", "https://mysite.example"} {
		rr := doRequest(originRouter(), http.MethodPost, "/submit", map[string]string{"Origin": origin})
		assert.Equal(t, http.StatusOK, rr.Code, "origin %q must pass", origin)
	}
}

func TestOriginCheckBlocksUnknownOrigin(t *testing.T) {
	rr := doRequest(originRouter(), http.MethodPost, "/submit", map[string]string{"Origin": "https://evil.example"})
	assert.Equal(t, http.StatusForbidden, rr.Code)
	assert.Contains(t, rr.Body.String(), "Unauthorized origin")
}

func TestRefererCheckAllowsDirectNavigation(t *testing.T) {
	rr := doRequest(originRouter(), http.MethodGet, "/download", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestRefererCheckAllowsSitePages(t *testing.T) {
	rr := doRequest(originRouter(), http.MethodGet, "/download", map[string]string{
		"Referer": siteURL + "/about",
	})
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestRefererCheckBlocksForeignReferer(t *testing.T) {
	rr := doRequest(originRouter(), http.MethodGet, "/download", map[string]string{
		"Referer": "https://evil.example/page",
	})
	assert.Equal(t, http.StatusForbidden, rr.Code)
}
