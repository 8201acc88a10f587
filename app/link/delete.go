package link

import (
	"bitwise74/linkboard-api/internal"
	"bitwise74/linkboard-api/internal/model"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var errNotOwner = errors.New("link is owned by a different user")

func LinkDelete(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(string)

	linkID := c.Param("id")
	if linkID == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "ID is missing",
			"requestID": requestID,
		})
		return
	}

	// Ownership check and delete run in one transaction so a concurrent
	// delete can't interleave between them
	err := d.DB.Transaction(func(tx *gorm.DB) error {
		var entry model.Link

		if err := tx.Where("id = ?", linkID).First(&entry).Error; err != nil {
			return err
		}

		if entry.UserID != userID {
			return errNotOwner
		}

		return tx.Delete(&entry).Error
	})

	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{
			"message": "Link deleted",
		})
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error":     "Link not found",
			"requestID": requestID,
		})
	case errors.Is(err, errNotOwner):
		c.JSON(http.StatusForbidden, gin.H{
			"error":     "You don't own this link",
			"requestID": requestID,
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to delete link", zap.Error(err), zap.String("requestID", requestID))
	}
}
