package handlers

import (
	"net/http"
	"os"
	"path/filepath"

	"wastewise/models"
	"wastewise/services/community"
	"wastewise/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CommunityHandler exposes the sharing hub and awareness zone over HTTP.
type CommunityHandler struct {
	Service community.CommunityService
}

// NewCommunityHandler constructs a CommunityHandler.
func NewCommunityHandler(svc community.CommunityService) *CommunityHandler {
	return &CommunityHandler{Service: svc}
}

// GetSharedItemsHandler handles GET /community/items?search=.
func (h *CommunityHandler) GetSharedItemsHandler(c *gin.Context) {
	logger := utils.GetLogger()

	items, err := h.Service.SearchSharedItems(c.Query("search"))
	if err != nil {
		logger.Error("Failed to list shared items", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list shared items"})
		return
	}
	c.JSON(http.StatusOK, items)
}

// GetSharedItemHandler handles GET /community/items/:id.
func (h *CommunityHandler) GetSharedItemHandler(c *gin.Context) {
	item, err := h.Service.GetSharedItem(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, item)
}

// ShareItemHandler handles POST /community/items.
func (h *CommunityHandler) ShareItemHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req models.SharedItem
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if err := h.Service.ShareItem(&req); err != nil {
		logger.Error("Failed to share item", zap.String("title", req.Title), zap.Error(err))
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, req)
}

// UploadItemPhotoHandler handles POST /community/items/:id/photo with a
// multipart "photo" file.
func (h *CommunityHandler) UploadItemPhotoHandler(c *gin.Context) {
	logger := utils.GetLogger()
	id := c.Param("id")

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "photo not provided", "detail": err.Error()})
		return
	}

	// Buffer through a unique temp file so concurrent uploads with the same
	// filename cannot clobber each other and the client cannot pick the path.
	tempFile, err := os.CreateTemp("", "shared-item-*"+filepath.Ext(fileHeader.Filename))
	if err != nil {
		logger.Error("Failed to create temp file for upload", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save uploaded photo"})
		return
	}
	tempFilePath := tempFile.Name()
	tempFile.Close()
	defer os.Remove(tempFilePath)

	if err := c.SaveUploadedFile(fileHeader, tempFilePath); err != nil {
		logger.Error("Failed to buffer uploaded photo", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save uploaded photo"})
		return
	}

	url, err := h.Service.AttachPhoto(c.Request.Context(), id, tempFilePath)
	if err != nil {
		logger.Error("Failed to attach item photo", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"photoUrl": url})
}

// RemoveSharedItemHandler handles DELETE /community/items/:id.
func (h *CommunityHandler) RemoveSharedItemHandler(c *gin.Context) {
	logger := utils.GetLogger()
	id := c.Param("id")

	if err := h.Service.RemoveSharedItem(id); err != nil {
		logger.Error("Failed to remove shared item", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Shared item removed"})
}

// GetAwarenessHandler handles GET /community/awareness.
func (h *CommunityHandler) GetAwarenessHandler(c *gin.Context) {
	logger := utils.GetLogger()

	grouped, err := h.Service.GetAwareness()
	if err != nil {
		logger.Error("Failed to load awareness zone", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load awareness zone"})
		return
	}
	c.JSON(http.StatusOK, grouped)
}

// AddAwarenessDetailHandler handles POST /community/awareness.
func (h *CommunityHandler) AddAwarenessDetailHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req models.AwarenessDetail
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if err := h.Service.AddAwarenessDetail(&req); err != nil {
		logger.Error("Failed to add awareness detail", zap.String("type", req.Type), zap.Error(err))
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, req)
}
