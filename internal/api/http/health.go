package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Service   string    `json:"service"`
	Version   string    `json:"version"`
	Content   string    `json:"content,omitempty"`
}

// ContentChecker reports whether the content store is reachable.
type ContentChecker interface {
	Healthy() bool
}

type HealthHandler struct {
	serviceName string
	version     string
	content     ContentChecker
}

func NewHealthHandler(serviceName, version string, content ContentChecker) *HealthHandler {
	return &HealthHandler{
		serviceName: serviceName,
		version:     version,
		content:     content,
	}
}

func (h *HealthHandler) HealthCheck(c *gin.Context) {
	contentStatus := "disabled"
	if h.content != nil {
		if h.content.Healthy() {
			contentStatus = "up"
		} else {
			contentStatus = "down"
		}
	}

	c.JSON(http.StatusOK, HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		Service:   h.serviceName,
		Version:   h.version,
		Content:   contentStatus,
	})
}

func (h *HealthHandler) RegisterRoutes(r gin.IRouter) {
	r.GET("/health", h.HealthCheck)
	r.GET("/healthz", h.HealthCheck)
}
