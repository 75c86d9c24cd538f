package handlers

import (
	"net/http"

	"wastewise/services/bin"
	"wastewise/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BinHandler exposes bin and bin-request management over HTTP.
type BinHandler struct {
	Service bin.BinService
}

// NewBinHandler constructs a BinHandler.
func NewBinHandler(svc bin.BinService) *BinHandler {
	return &BinHandler{Service: svc}
}

// GetHomeNumbersHandler handles GET /bins/homes.
func (h *BinHandler) GetHomeNumbersHandler(c *gin.Context) {
	logger := utils.GetLogger()

	homes, err := h.Service.GetHomeNumbers()
	if err != nil {
		logger.Error("Failed to list home numbers", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list home numbers"})
		return
	}
	c.JSON(http.StatusOK, homes)
}

// GetBinsForHomeHandler handles GET /bins/homes/:homeNumber.
func (h *BinHandler) GetBinsForHomeHandler(c *gin.Context) {
	logger := utils.GetLogger()
	home := c.Param("homeNumber")

	bins, err := h.Service.GetBinsForHome(home)
	if err != nil {
		logger.Error("Failed to list bins", zap.String("homeNumber", home), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list bins"})
		return
	}
	c.JSON(http.StatusOK, bins)
}

// ActivateBinHandler handles PUT /bins/:id/activate.
func (h *BinHandler) ActivateBinHandler(c *gin.Context) {
	logger := utils.GetLogger()
	id := c.Param("id")

	if err := h.Service.ActivateBin(id); err != nil {
		logger.Error("Failed to activate bin", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Bin activated"})
}

// GetBinRequestsHandler handles GET /bins/requests.
func (h *BinHandler) GetBinRequestsHandler(c *gin.Context) {
	logger := utils.GetLogger()

	requests, err := h.Service.ListRequests()
	if err != nil {
		logger.Error("Failed to list bin requests", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list bin requests"})
		return
	}
	c.JSON(http.StatusOK, requests)
}

// ApproveBinRequestHandler handles POST /bins/requests/:id/approve.
func (h *BinHandler) ApproveBinRequestHandler(c *gin.Context) {
	logger := utils.GetLogger()
	id := c.Param("id")

	var req struct {
		HomeNumber string `json:"homeNumber" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	created, err := h.Service.ApproveRequest(id, req.HomeNumber)
	if err != nil {
		logger.Error("Failed to approve bin request", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// ConfirmBinRequestHandler handles PUT /bins/requests/:id/confirm.
func (h *BinHandler) ConfirmBinRequestHandler(c *gin.Context) {
	logger := utils.GetLogger()
	id := c.Param("id")

	if err := h.Service.ConfirmRequest(id); err != nil {
		logger.Error("Failed to confirm bin request", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Bin request confirmed"})
}
