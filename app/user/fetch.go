package user

import (
	"bitwise74/linkboard-api/internal"
	"bitwise74/linkboard-api/internal/model"
	"net/http"

	"github.com/gin-gonic/gin"
)

// UserFetch returns the profile of the authenticated user. The auth
// middleware already loaded it, so no extra query is needed
func UserFetch(c *gin.Context, _ *internal.Deps) {
	user := c.MustGet("user").(model.User)

	c.JSON(http.StatusOK, gin.H{
		"user": user,
	})
}
