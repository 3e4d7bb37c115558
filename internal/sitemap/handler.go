package sitemap

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dekkov/personal-website/internal/content"
)

// Handler serves the derived sitemap.
type Handler struct {
	store   *content.Store
	baseURL string
}

func NewHandler(store *content.Store, baseURL string) *Handler {
	return &Handler{store: store, baseURL: baseURL}
}

func (h *Handler) sitemap(c *gin.Context) {
	posts, err := h.store.ListPosts()
	if err != nil {
		log.Printf("[error] operation=sitemap error=%v", err)
		c.String(http.StatusInternalServerError, "sitemap unavailable")
		return
	}
	projects, err := h.store.ListProjects()
	if err != nil {
		log.Printf("[error] operation=sitemap error=%v", err)
		c.String(http.StatusInternalServerError, "sitemap unavailable")
		return
	}

	body, err := Encode(Build(h.baseURL, posts, projects, time.Now()))
	if err != nil {
		log.Printf("[error] operation=sitemap error=%v", err)
		c.String(http.StatusInternalServerError, "sitemap unavailable")
		return
	}

	c.Data(http.StatusOK, "application/xml; charset=utf-8", body)
}

// RegisterRoutes attaches the sitemap route at the site root.
func (h *Handler) RegisterRoutes(r gin.IRouter) {
	r.GET("/sitemap.xml", h.sitemap)
}
