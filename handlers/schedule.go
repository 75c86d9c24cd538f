package handlers

import (
	"errors"
	"net/http"
	"time"

	"wastewise/cron"
	"wastewise/models"
	"wastewise/services/schedule"
	"wastewise/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ScheduleHandler exposes the scheduling engine over HTTP. Reminders may
// be nil, in which case confirmed entries queue no notification.
type ScheduleHandler struct {
	Engine    schedule.SchedulingEngine
	Reminders *cron.ReminderScheduler
}

// NewScheduleHandler constructs a ScheduleHandler.
func NewScheduleHandler(engine schedule.SchedulingEngine, reminders *cron.ReminderScheduler) *ScheduleHandler {
	return &ScheduleHandler{Engine: engine, Reminders: reminders}
}

// parseDay parses a day-precision date from a query or JSON value.
func parseDay(value string) (time.Time, error) {
	return time.ParseInLocation(models.ScheduleDateLayout, value, time.Local)
}

// GetEntriesHandler handles GET /schedules.
func (h *ScheduleHandler) GetEntriesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, h.Engine.Entries())
}

// GetDayStatusHandler handles GET /schedules/day?date=YYYY-MM-DD.
func (h *ScheduleHandler) GetDayStatusHandler(c *gin.Context) {
	date, err := parseDay(c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or missing date, expected YYYY-MM-DD"})
		return
	}
	c.JSON(http.StatusOK, h.Engine.ClassifyDate(date))
}

// SelectDateHandler handles POST /schedules/select.
func (h *ScheduleHandler) SelectDateHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req struct {
		Date string `json:"date" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	date, err := parseDay(req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date, expected YYYY-MM-DD"})
		return
	}

	result, err := h.Engine.SelectDate(date)
	if err != nil {
		if errors.Is(err, schedule.ErrPastDate) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to select date", zap.String("date", req.Date), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to select date"})
		return
	}
	c.JSON(http.StatusOK, result)
}

// ConfirmAssignmentHandler handles POST /schedules.
func (h *ScheduleHandler) ConfirmAssignmentHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req struct {
		Date      string `json:"date" binding:"required"`
		WasteType string `json:"wasteType"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	date, err := parseDay(req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date, expected YYYY-MM-DD"})
		return
	}
	if req.WasteType != "" && !models.IsValidWasteType(req.WasteType) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown waste type"})
		return
	}

	entry, err := h.Engine.ConfirmAssignment(date, req.WasteType)
	if err != nil {
		if errors.Is(err, schedule.ErrMissingWasteType) || errors.Is(err, schedule.ErrNoDateSelected) ||
			errors.Is(err, schedule.ErrDayAlreadyScheduled) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to confirm assignment", zap.String("date", req.Date), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save schedule"})
		return
	}

	if h.Reminders != nil {
		if err := h.Reminders.ScheduleForEntry(*entry); err != nil {
			logger.Warn("Failed to queue collection reminder",
				zap.String("date", entry.Date), zap.Error(err))
		}
	}
	c.JSON(http.StatusCreated, entry)
}

// EditEntryHandler handles PUT /schedules/:id.
func (h *ScheduleHandler) EditEntryHandler(c *gin.Context) {
	logger := utils.GetLogger()
	id := c.Param("id")

	var req struct {
		WasteType string `json:"wasteType" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	if !models.IsValidWasteType(req.WasteType) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown waste type"})
		return
	}

	entry, err := h.Engine.EditEntry(id, req.WasteType)
	if err != nil {
		logger.Error("Failed to edit schedule entry", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, entry)
}

// DeleteEntryHandler handles DELETE /schedules/:id.
func (h *ScheduleHandler) DeleteEntryHandler(c *gin.Context) {
	logger := utils.GetLogger()
	id := c.Param("id")

	if err := h.Engine.DeleteEntry(id); err != nil {
		logger.Error("Failed to delete schedule entry", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Schedule entry deleted"})
}

// RefreshHandler handles POST /schedules/refresh.
func (h *ScheduleHandler) RefreshHandler(c *gin.Context) {
	logger := utils.GetLogger()

	if err := h.Engine.Refresh(); err != nil {
		logger.Error("Failed to refresh schedule projection", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to refresh schedules"})
		return
	}
	c.JSON(http.StatusOK, h.Engine.Entries())
}

// GetWasteTypesHandler handles GET /schedules/waste-types.
func (h *ScheduleHandler) GetWasteTypesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, models.WasteTypes)
}
