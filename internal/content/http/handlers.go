package http

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	apihttp "github.com/dekkov/personal-website/internal/api/http"
	"github.com/dekkov/personal-website/internal/content/domain"
	"github.com/dekkov/personal-website/internal/content/render"
)

func (h *Handler) listPosts(c *gin.Context) {
	var (
		posts []domain.BlogPost
		err   error
	)
	if tag := c.Query("tag"); tag != "" {
		posts, err = h.store.PostsByTag(tag)
	} else {
		posts, err = h.store.ListPosts()
	}
	if err != nil {
		log.Printf("[error] operation=list_posts error=%v", err)
		c.JSON(http.StatusInternalServerError, apihttp.Fail("Failed to load posts"))
		return
	}
	c.JSON(http.StatusOK, apihttp.OK(posts))
}

func (h *Handler) getPost(c *gin.Context) {
	post, err := h.store.GetPost(c.Param("slug"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, apihttp.Fail("Post not found"))
			return
		}
		log.Printf("[error] operation=get_post error=%v", err)
		c.JSON(http.StatusInternalServerError, apihttp.Fail("Failed to load post"))
		return
	}

	html, err := render.Render(post.Content)
	if err != nil {
		log.Printf("[error] operation=get_post error=%v", err)
		c.JSON(http.StatusInternalServerError, apihttp.Fail("Failed to render post"))
		return
	}

	c.JSON(http.StatusOK, apihttp.OK(postDetail{BlogPost: *post, HTML: html}))
}

func (h *Handler) listProjects(c *gin.Context) {
	var (
		projects []domain.Project
		err      error
	)
	if c.Query("featured") == "true" {
		projects, err = h.store.FeaturedProjects()
	} else {
		projects, err = h.store.ListProjects()
	}
	if err != nil {
		log.Printf("[error] operation=list_projects error=%v", err)
		c.JSON(http.StatusInternalServerError, apihttp.Fail("Failed to load projects"))
		return
	}
	c.JSON(http.StatusOK, apihttp.OK(projects))
}

func (h *Handler) getProject(c *gin.Context) {
	project, err := h.store.GetProject(c.Param("slug"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, apihttp.Fail("Project not found"))
			return
		}
		log.Printf("[error] operation=get_project error=%v", err)
		c.JSON(http.StatusInternalServerError, apihttp.Fail("Failed to load project"))
		return
	}

	html, err := render.Render(project.Content)
	if err != nil {
		log.Printf("[error] operation=get_project error=%v", err)
		c.JSON(http.StatusInternalServerError, apihttp.Fail("Failed to render project"))
		return
	}

	c.JSON(http.StatusOK, apihttp.OK(projectDetail{Project: *project, HTML: html}))
}

func (h *Handler) experience(c *gin.Context) {
	entries, err := h.store.Experience()
	if err != nil {
		log.Printf("[error] operation=get_experience error=%v", err)
		c.JSON(http.StatusInternalServerError, apihttp.Fail("Failed to load experience"))
		return
	}
	c.JSON(http.StatusOK, apihttp.OK(entries))
}

func (h *Handler) skills(c *gin.Context) {
	skills, err := h.store.Skills()
	if err != nil {
		log.Printf("[error] operation=get_skills error=%v", err)
		c.JSON(http.StatusInternalServerError, apihttp.Fail("Failed to load skills"))
		return
	}
	c.JSON(http.StatusOK, apihttp.OK(skills))
}
