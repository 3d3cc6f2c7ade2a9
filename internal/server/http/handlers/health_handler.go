package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/bakery/internal/server/http/dto"
)

const bannerMessage = "Bakery Ordering API running"

// HealthHandler serves the banner and connectivity probe.
type HealthHandler struct {
	facade HealthFacade
	logger *slog.Logger
}

// NewHealthHandler constructs HealthHandler.
func NewHealthHandler(facade HealthFacade, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{facade: facade, logger: logger}
}

// Root handles GET /.
func (h *HealthHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, dto.MessageResponse{Message: bannerMessage})
}

// Health handles GET /healthz.
func (h *HealthHandler) Health(c *gin.Context) {
	resp := dto.HealthResponse{Backend: "running", Database: "connected", Driver: h.facade.Driver()}
	if err := h.facade.HealthCheck(c.Request.Context()); err != nil {
		h.logger.Warn("store health check failed", slog.String("error", err.Error()))
		resp.Database = "unavailable"
		c.JSON(http.StatusServiceUnavailable, resp)
		return
	}
	c.JSON(http.StatusOK, resp)
}
