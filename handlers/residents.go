package handlers

import (
	"net/http"

	"wastewise/services/user"
	"wastewise/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ResidentHandler exposes the residents directory.
type ResidentHandler struct {
	UserService user.UserService
}

// NewResidentHandler constructs a ResidentHandler.
func NewResidentHandler(svc user.UserService) *ResidentHandler {
	return &ResidentHandler{UserService: svc}
}

// GetResidentsHandler handles GET /residents?search=&road=.
func (h *ResidentHandler) GetResidentsHandler(c *gin.Context) {
	logger := utils.GetLogger()

	residents, err := h.UserService.GetResidents(c.Query("search"), c.Query("road"))
	if err != nil {
		logger.Error("Failed to list residents", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list residents"})
		return
	}
	c.JSON(http.StatusOK, residents)
}
