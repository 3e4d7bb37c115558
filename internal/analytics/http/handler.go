package http

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dekkov/personal-website/internal/analytics"
	apihttp "github.com/dekkov/personal-website/internal/api/http"
)

func (h *Handler) track(c *gin.Context) {
	var ev analytics.Event
	if err := c.ShouldBindJSON(&ev); err != nil {
		c.JSON(http.StatusBadRequest, apihttp.Fail("Invalid tracking data"))
		return
	}

	if fieldErrs := analytics.Validate(ev); fieldErrs != nil {
		resp := apihttp.Fail("Invalid tracking data")
		if !h.production {
			resp.Details = fieldErrs
		}
		c.JSON(http.StatusBadRequest, resp)
		return
	}

	properties := analytics.TruncateProperties(ev.Properties)

	if err := h.tracker.Track(c.Request.Context(), ev.Event, properties); err != nil {
		log.Printf("[error] operation=track event=%s error=%v", ev.Event, err)
		c.JSON(http.StatusInternalServerError, apihttp.Fail("Failed to track event"))
		return
	}

	c.JSON(http.StatusOK, apihttp.Response{Success: true})
}

// Register attaches the tracking route to the given router group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.POST("", h.track)
}
