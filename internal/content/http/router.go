package http

import "github.com/gin-gonic/gin"

// Register attaches content read routes to the given router group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("/posts", h.listPosts)
	rg.GET("/posts/:slug", h.getPost)
	rg.GET("/projects", h.listProjects)
	rg.GET("/projects/:slug", h.getProject)
	rg.GET("/experience", h.experience)
	rg.GET("/skills", h.skills)
}
