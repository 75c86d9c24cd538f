package handlers

import (
	"errors"
	"net/http"

	"wastewise/models"
	"wastewise/services/schedule"
	"wastewise/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RoadHandler exposes road and time-slot management over HTTP.
type RoadHandler struct {
	Service schedule.RoadService
}

// NewRoadHandler constructs a RoadHandler.
func NewRoadHandler(svc schedule.RoadService) *RoadHandler {
	return &RoadHandler{Service: svc}
}

// GetRoadsHandler handles GET /roads.
func (h *RoadHandler) GetRoadsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, h.Service.Roads())
}

// GetTimeSlotsHandler handles GET /roads/time-slots.
func (h *RoadHandler) GetTimeSlotsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, models.TimeSlots)
}

// AddRoadHandler handles POST /roads.
func (h *RoadHandler) AddRoadHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	road, err := h.Service.AddRoad(req.Name)
	if err != nil {
		if errors.Is(err, schedule.ErrEmptyRoadName) || errors.Is(err, schedule.ErrDuplicateRoad) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to add road", zap.String("name", req.Name), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add road"})
		return
	}
	c.JSON(http.StatusCreated, road)
}

// AssignTimeSlotHandler handles PUT /roads/:name/time-slot.
func (h *RoadHandler) AssignTimeSlotHandler(c *gin.Context) {
	logger := utils.GetLogger()
	name := c.Param("name")

	var req struct {
		TimeSlot string `json:"timeSlot" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	if !models.IsValidTimeSlot(req.TimeSlot) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown time slot"})
		return
	}

	if err := h.Service.AssignTimeSlot(name, req.TimeSlot); err != nil {
		logger.Error("Failed to assign time slot",
			zap.String("road", name), zap.String("timeSlot", req.TimeSlot), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to assign time slot"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Time slot assigned"})
}

// DeleteRoadHandler handles DELETE /roads/:name.
func (h *RoadHandler) DeleteRoadHandler(c *gin.Context) {
	logger := utils.GetLogger()
	name := c.Param("name")

	if err := h.Service.DeleteRoad(name); err != nil {
		logger.Error("Failed to delete road", zap.String("name", name), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete road"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Road deleted"})
}
