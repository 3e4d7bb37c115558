package http

import (
	"github.com/dekkov/personal-website/internal/content"
	"github.com/dekkov/personal-website/internal/content/domain"
)

// Handler bundles the dependencies for the content read API.
type Handler struct {
	store *content.Store
}

func New(store *content.Store) *Handler {
	return &Handler{store: store}
}

// postDetail is a single post with its body rendered to HTML.
type postDetail struct {
	domain.BlogPost
	HTML string `json:"html"`
}

// projectDetail is a single project with its body rendered to HTML.
type projectDetail struct {
	domain.Project
	HTML string `json:"html"`
}
