package http

import "github.com/dekkov/personal-website/internal/contact"

// Handler bundles the dependencies for the contact endpoint.
type Handler struct {
	sender       contact.EmailSender
	contactEmail string
	production   bool
}

func New(sender contact.EmailSender, contactEmail string, production bool) *Handler {
	return &Handler{
		sender:       sender,
		contactEmail: contactEmail,
		production:   production,
	}
}
