// middleware/auth.go
package middleware

import (
	"net/http"
	"strings"

	userRepo "wastewise/database/repository/user"
	"wastewise/models"
	"wastewise/utils"

	"github.com/gin-gonic/gin"
)

// JWTAuthMiddleware authenticates requests with a Bearer token. The
// token must validate and its hash must match a stored account; the
// matching user's ID is placed in the context under "userID".
func JWTAuthMiddleware(users userRepo.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		token, err := utils.ValidateToken(tokenString)
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		computedHash := utils.HashToken(tokenString)
		usr, err := users.GetByTokenHash(computedHash)
		if err != nil || usr == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token mismatch or user not found"})
			return
		}

		c.Set("userID", usr.ID)
		c.Set("userPosition", usr.Position)
		c.Next()
	}
}

// AdminOnlyMiddleware rejects requests whose authenticated account is
// not municipal staff. Must run after JWTAuthMiddleware.
func AdminOnlyMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		position, _ := c.Get("userPosition")
		if position != models.PositionAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			return
		}
		c.Next()
	}
}
