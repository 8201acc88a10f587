package root

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Validate only answers behind the auth middleware, so reaching it
// means the presented token is good
func Validate(c *gin.Context) {
	c.Status(http.StatusOK)
}
