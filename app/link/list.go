package link

import (
	"bitwise74/linkboard-api/internal"
	"bitwise74/linkboard-api/internal/model"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func LinkList(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(string)

	// Non-nil so a user without links gets [] and not null
	entries := make([]model.Link, 0)

	err := d.DB.
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&entries).
		Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to look up user links", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, entries)
}
