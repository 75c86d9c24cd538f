package handlers

import (
	"net/http"

	"wastewise/models"
	"wastewise/services/user"
	"wastewise/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler exposes staff registration, login, and profile endpoints.
type AuthHandler struct {
	UserService user.UserService
}

// NewAuthHandler constructs an AuthHandler.
func NewAuthHandler(svc user.UserService) *AuthHandler {
	return &AuthHandler{UserService: svc}
}

// RegisterAdminHandler handles POST /auth/register.
func (h *AuthHandler) RegisterAdminHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req models.User
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	resp, err := h.UserService.RegisterAdmin(req)
	if err != nil {
		logger.Error("Failed to register admin", zap.String("email", req.Email), zap.Error(err))
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// LoginHandler handles POST /auth/login.
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	resp, err := h.UserService.Authenticate(req.Email, req.Password)
	if err != nil {
		logger.Warn("Login failed", zap.String("email", req.Email), zap.Error(err))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetProfileHandler handles GET /auth/profile for the authenticated admin.
func (h *AuthHandler) GetProfileHandler(c *gin.Context) {
	logger := utils.GetLogger()

	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	profile, err := h.UserService.GetUserByID(userID.(string))
	if err != nil {
		logger.Error("Failed to load profile", zap.Any("userID", userID), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, profile)
}

// UpdateProfileHandler handles PUT /auth/profile.
func (h *AuthHandler) UpdateProfileHandler(c *gin.Context) {
	logger := utils.GetLogger()

	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req models.User
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	req.ID = userID.(string)

	updated, err := h.UserService.UpdateProfile(req)
	if err != nil {
		logger.Error("Failed to update profile", zap.String("id", req.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// LogoutHandler handles DELETE /auth/logout, revoking the active token.
func (h *AuthHandler) LogoutHandler(c *gin.Context) {
	logger := utils.GetLogger()

	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.UserService.RevokeAuthToken(userID.(string)); err != nil {
		logger.Error("Failed to revoke token", zap.Any("userID", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log out"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}
