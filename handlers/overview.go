package handlers

import (
	"net/http"

	"wastewise/services/overview"
	"wastewise/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// OverviewHandler exposes the dashboard overview counters.
type OverviewHandler struct {
	Service overview.OverviewService
}

// NewOverviewHandler constructs an OverviewHandler.
func NewOverviewHandler(svc overview.OverviewService) *OverviewHandler {
	return &OverviewHandler{Service: svc}
}

// GetStatsHandler handles GET /overview.
func (h *OverviewHandler) GetStatsHandler(c *gin.Context) {
	logger := utils.GetLogger()

	stats, err := h.Service.GetStats(c.Request.Context())
	if err != nil {
		logger.Error("Failed to assemble overview stats", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load overview"})
		return
	}
	c.JSON(http.StatusOK, stats)
}
