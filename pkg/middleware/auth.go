// Package middleware contains any custom middleware used in the app
package middleware

import (
	"bitwise74/linkboard-api/internal/model"
	"bitwise74/linkboard-api/pkg/security"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const bearerPrefix = "Bearer "

// NewAuthMiddleware returns the request gate that guards every
// owner-scoped endpoint. It requires a valid bearer token, resolves the
// user behind it and aborts with a generic 401 on any failure. Callers
// never learn whether the token was missing, malformed or expired
func NewAuthMiddleware(d *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.MustGet("requestID").(string)

		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, bearerPrefix) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":     "Not authorized, no token",
				"requestID": requestID,
			})
			return
		}

		claims, err := security.ParseAuthToken(strings.TrimPrefix(header, bearerPrefix))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":     "Not authorized, token failed",
				"requestID": requestID,
			})

			zap.L().Debug("Failed to parse token", zap.Error(err), zap.String("requestID", requestID))
			return
		}

		// The token may outlive its user, so check they still exist
		var user model.User
		err = d.Where("id = ?", claims.UserID).First(&user).Error
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
					"error":     "Not authorized, user not found",
					"requestID": requestID,
				})
				return
			}

			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"error":     "Internal server error",
				"requestID": requestID,
			})

			zap.L().Error("Failed to check if user exists", zap.Error(err), zap.String("requestID", requestID))
			return
		}

		// Only the non-secret fields ride along on the request
		c.Set("userID", user.ID)
		c.Set("user", model.User{
			ID:        user.ID,
			Email:     user.Email,
			CreatedAt: user.CreatedAt,
		})
		c.Next()
	}
}
