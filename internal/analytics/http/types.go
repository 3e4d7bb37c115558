package http

import "github.com/dekkov/personal-website/internal/analytics"

// Handler bundles the dependencies for the tracking endpoint.
type Handler struct {
	tracker    analytics.Tracker
	production bool
}

func New(tracker analytics.Tracker, production bool) *Handler {
	return &Handler{tracker: tracker, production: production}
}
