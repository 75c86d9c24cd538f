package handlers

import (
	"net/http"

	"wastewise/models"
	"wastewise/services/community"
	"wastewise/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RecyclingHandler exposes the recycling info view over HTTP.
type RecyclingHandler struct {
	Service community.RecyclingService
}

// NewRecyclingHandler constructs a RecyclingHandler.
func NewRecyclingHandler(svc community.RecyclingService) *RecyclingHandler {
	return &RecyclingHandler{Service: svc}
}

// GetRecyclingInfoHandler handles GET /recycling.
func (h *RecyclingHandler) GetRecyclingInfoHandler(c *gin.Context) {
	logger := utils.GetLogger()

	info, err := h.Service.GetRecyclingInfo()
	if err != nil {
		logger.Error("Failed to load recycling info", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load recycling info"})
		return
	}
	c.JSON(http.StatusOK, info)
}

// AddCategoryHandler handles POST /recycling/categories.
func (h *RecyclingHandler) AddCategoryHandler(c *gin.Context) {
	var req models.RecyclingCategory
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	if err := h.Service.AddCategory(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, req)
}

// AddSegregationHandler handles POST /recycling/segregation.
func (h *RecyclingHandler) AddSegregationHandler(c *gin.Context) {
	var req models.WasteSegregation
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	if err := h.Service.AddSegregation(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, req)
}

// AddMotivationHandler handles POST /recycling/motivations.
func (h *RecyclingHandler) AddMotivationHandler(c *gin.Context) {
	var req models.RecyclingMotivation
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	if err := h.Service.AddMotivation(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, req)
}

// AddCenterHandler handles POST /recycling/centers.
func (h *RecyclingHandler) AddCenterHandler(c *gin.Context) {
	var req models.RecyclingCenter
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	if err := h.Service.AddCenter(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, req)
}
