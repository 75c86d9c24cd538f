package handlers

import (
	"net/http"

	"wastewise/models"
	"wastewise/services/issue"
	"wastewise/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// IssueHandler exposes reported-issue management over HTTP.
type IssueHandler struct {
	Service issue.IssueService
}

// NewIssueHandler constructs an IssueHandler.
func NewIssueHandler(svc issue.IssueService) *IssueHandler {
	return &IssueHandler{Service: svc}
}

// GetIssuesHandler handles GET /issues.
func (h *IssueHandler) GetIssuesHandler(c *gin.Context) {
	logger := utils.GetLogger()

	issues, err := h.Service.GetIssues()
	if err != nil {
		logger.Error("Failed to list issues", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list issues"})
		return
	}
	c.JSON(http.StatusOK, issues)
}

// ReportIssueHandler handles POST /issues.
func (h *IssueHandler) ReportIssueHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req models.ReportedIssue
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if err := h.Service.ReportIssue(&req); err != nil {
		logger.Error("Failed to report issue", zap.String("title", req.Title), zap.Error(err))
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, req)
}

// RespondToIssueHandler handles PUT /issues/:id/response.
func (h *IssueHandler) RespondToIssueHandler(c *gin.Context) {
	logger := utils.GetLogger()
	id := c.Param("id")

	var req struct {
		Reply  string `json:"reply"`
		Action string `json:"action"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if err := h.Service.Respond(id, req.Reply, req.Action); err != nil {
		logger.Error("Failed to respond to issue", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Response saved"})
}
