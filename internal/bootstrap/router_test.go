package bootstrap

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dekkov/personal-website/config"
	"github.com/dekkov/personal-website/internal/contact"
	"github.com/dekkov/personal-website/internal/content"
)

type nopSender struct{}

func (nopSender) Send(context.Context, contact.Email) error { return nil }

type nopTracker struct{}

func (nopTracker) Track(context.Context, string, map[string]interface{}) error { return nil }

func testRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store, err := content.NewStore(t.TempDir())
	require.NoError(t, err)

	cfg := &config.Config{
		Server: config.ServerConfig{Port: "8080"},
		Site: config.SiteConfig{
			URL:        "https://mysite.example",
			ContentDir: "content",
			PublicDir:  t.TempDir(),
		},
		App: config.AppConfig{Environment: "test", Version: "test", ContactRateLimit: 5},
	}

	r, err := BuildRouter(RouterDeps{
		ServiceName: "personal-website",
		Cfg:         cfg,
		Store:       store,
		Sender:      nopSender{},
		Tracker:     nopTracker{},
	})
	require.NoError(t, err)
	return r
}

func TestRouterWiresHealth(t *testing.T) {
	r := testRouter(t)

	for _, path := range []string{"/health", "/healthz"} {
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, rr.Code, "path %q", path)
		assert.Contains(t, rr.Body.String(), "healthy")
	}
}

func TestRouterWiresSitemap(t *testing.T) {
	r := testRouter(t)

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/sitemap.xml", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Header().Get("Content-Type"), "application/xml")
	assert.Contains(t, rr.Body.String(), "<urlset")
}

func TestRouterWiresAPIEndpoints(t *testing.T) {
	r := testRouter(t)

	// Empty content store: listings are empty but routed.
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/posts", nil))
	assert.Equal(t, http.StatusOK, rr.Code)

	// Missing resume file in the temp public dir.
	rr = httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/download-resume", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)

	// Tracking endpoint routed and validating.
	req := httptest.NewRequest(http.MethodPost, "/api/track", nil)
	rr = httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
