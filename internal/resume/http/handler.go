package http

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/dekkov/personal-website/internal/analytics"
	apihttp "github.com/dekkov/personal-website/internal/api/http"
)

const resumeFileName = "resume.pdf"

// Handler streams the resume PDF from the public root.
type Handler struct {
	publicDir string
	tracker   analytics.Tracker
}

// New creates a resume handler. The public directory is resolved to an
// absolute path once so the download path can be containment-checked.
func New(publicDir string, tracker analytics.Tracker) (*Handler, error) {
	abs, err := filepath.Abs(publicDir)
	if err != nil {
		return nil, fmt.Errorf("public root: %w", err)
	}
	return &Handler{publicDir: abs, tracker: tracker}, nil
}

func (h *Handler) download(c *gin.Context) {
	referrer := c.GetHeader("Referer")
	if referrer == "" {
		referrer = "direct"
	}

	// Record the download event first; a tracker failure must never
	// block the download itself.
	if err := h.tracker.Track(c.Request.Context(), analytics.EventResumeDownload, map[string]interface{}{
		"referrer": referrer,
	}); err != nil {
		log.Printf("[warn] operation=resume_download track_error=%v", err)
	}

	path, err := filepath.Abs(filepath.Join(h.publicDir, resumeFileName))
	if err != nil || !strings.HasPrefix(path, h.publicDir+string(filepath.Separator)) {
		log.Printf("[error] operation=resume_download error=resolved path escapes public root")
		c.JSON(http.StatusNotFound, apihttp.Fail("Resume not found"))
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			c.JSON(http.StatusNotFound, apihttp.Fail("Resume not found"))
			return
		}
		log.Printf("[error] operation=resume_download error=%v", err)
		c.JSON(http.StatusInternalServerError, apihttp.Fail("Failed to download resume"))
		return
	}

	c.Header("Content-Disposition", `attachment; filename="Resume.pdf"`)
	c.Header("X-Content-Type-Options", "nosniff")
	c.Header("Cache-Control", "private, max-age=3600")
	c.Data(http.StatusOK, "application/pdf", data)
}

// Register attaches the download route to the given router group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("", h.download)
}
