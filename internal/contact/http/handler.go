package http

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	apihttp "github.com/dekkov/personal-website/internal/api/http"
	"github.com/dekkov/personal-website/internal/contact"
)

func (h *Handler) submit(c *gin.Context) {
	var sub contact.Submission
	if err := c.ShouldBindJSON(&sub); err != nil {
		c.JSON(http.StatusBadRequest, apihttp.Fail("Invalid request body"))
		return
	}

	// Bots fill the hidden honeypot field. Report success without
	// sending anything so the sender cannot tell it was dropped.
	if sub.Honeypot != "" {
		log.Printf("[info] operation=contact_submit honeypot=tripped")
		c.JSON(http.StatusOK, apihttp.Response{Success: true})
		return
	}

	if fieldErrs := contact.Validate(sub); fieldErrs != nil {
		resp := apihttp.Fail("Invalid input. Please check your data.")
		if !h.production {
			resp.Details = fieldErrs
		}
		c.JSON(http.StatusBadRequest, resp)
		return
	}

	msg := contact.BuildEmail(h.contactEmail, sub)
	if err := h.sender.Send(c.Request.Context(), msg); err != nil {
		log.Printf("[error] operation=contact_submit error=%v", err)
		c.JSON(http.StatusInternalServerError, apihttp.Fail("Internal server error"))
		return
	}

	c.JSON(http.StatusOK, apihttp.OKMessage("Message sent successfully"))
}
