package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"recon-landing/pkg/models"
	"recon-landing/pkg/utils"
	"recon-landing/pkg/views"
)

// Handlers contains all HTTP handlers for the site
type Handlers struct {
	page   views.PageConfig
	now    func() time.Time
	logger *zap.Logger
}

// NewHandlers creates a new Handlers instance. The footer year is taken from
// now on every request.
func NewHandlers(page views.PageConfig, now func() time.Time, logger *zap.Logger) *Handlers {
	if now == nil {
		now = time.Now
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handlers{
		page:   page,
		now:    now,
		logger: logger,
	}
}

// HealthCheck handler for monitoring
func (h *Handlers) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// LandingPage renders the landing page with an empty contact form
func (h *Handlers) LandingPage(c *gin.Context) {
	cfg := h.page
	cfg.Year = h.now().Year()

	body, err := views.Render(cfg, models.ContactFormRecord{})
	if err != nil {
		h.logger.Error("Error rendering landing page", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error rendering page"})
		return
	}

	etag := utils.ETag(body)
	c.Header("ETag", etag)
	c.Header("Cache-Control", "no-cache")

	if etagMatches(c.GetHeader("If-None-Match"), etag) {
		c.Status(http.StatusNotModified)
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", body)
}

// etagMatches reports whether an If-None-Match header names etag or is "*".
// Weak validators compare equal to their strong form.
func etagMatches(header, etag string) bool {
	for _, candidate := range strings.Split(header, ",") {
		candidate = strings.TrimPrefix(strings.TrimSpace(candidate), "W/")
		if candidate == "*" || (candidate != "" && candidate == etag) {
			return true
		}
	}
	return false
}
