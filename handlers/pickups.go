package handlers

import (
	"net/http"

	"wastewise/services/pickup"
	"wastewise/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PickupHandler exposes immediate-pickup management over HTTP.
type PickupHandler struct {
	Service pickup.PickupService
}

// NewPickupHandler constructs a PickupHandler.
func NewPickupHandler(svc pickup.PickupService) *PickupHandler {
	return &PickupHandler{Service: svc}
}

// GetPickupsHandler handles GET /pickups.
func (h *PickupHandler) GetPickupsHandler(c *gin.Context) {
	logger := utils.GetLogger()

	pickups, err := h.Service.GetPickups()
	if err != nil {
		logger.Error("Failed to list pickups", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list pickups"})
		return
	}
	c.JSON(http.StatusOK, pickups)
}

// ConfirmPickupHandler handles PUT /pickups/:id/confirm.
func (h *PickupHandler) ConfirmPickupHandler(c *gin.Context) {
	logger := utils.GetLogger()
	id := c.Param("id")

	if err := h.Service.ConfirmPickup(id); err != nil {
		logger.Error("Failed to confirm pickup", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Pickup confirmed"})
}

// AssignDriverHandler handles PUT /pickups/:id/driver.
func (h *PickupHandler) AssignDriverHandler(c *gin.Context) {
	logger := utils.GetLogger()
	id := c.Param("id")

	var req struct {
		Driver string `json:"driver" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if err := h.Service.AssignDriver(id, req.Driver); err != nil {
		logger.Error("Failed to assign driver",
			zap.String("id", id), zap.String("driver", req.Driver), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Driver assigned"})
}

// UpdatePickupStatusHandler handles PUT /pickups/:id/status.
func (h *PickupHandler) UpdatePickupStatusHandler(c *gin.Context) {
	logger := utils.GetLogger()
	id := c.Param("id")

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if err := h.Service.UpdateStatus(id, req.Status); err != nil {
		logger.Error("Failed to update pickup status",
			zap.String("id", id), zap.String("status", req.Status), zap.Error(err))
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Pickup status updated"})
}

// UpdateInstructionHandler handles PUT /pickups/:id/instruction.
func (h *PickupHandler) UpdateInstructionHandler(c *gin.Context) {
	logger := utils.GetLogger()
	id := c.Param("id")

	var req struct {
		Instruction string `json:"instruction"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if err := h.Service.UpdateInstruction(id, req.Instruction); err != nil {
		logger.Error("Failed to update pickup instruction", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Instruction updated"})
}

// GetDriversHandler handles GET /pickups/drivers.
func (h *PickupHandler) GetDriversHandler(c *gin.Context) {
	logger := utils.GetLogger()

	drivers, err := h.Service.GetDrivers()
	if err != nil {
		logger.Error("Failed to list drivers", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list drivers"})
		return
	}
	c.JSON(http.StatusOK, drivers)
}
