package middleware

import (
	"bitwise74/linkboard-api/internal/model"
	"bitwise74/linkboard-api/pkg/security"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newAuthTestRouter(t *testing.T, handler gin.HandlerFunc) (*gin.Engine, *gorm.DB) {
	t.Helper()

	gin.SetMode(gin.TestMode)
	viper.Set("jwt.secret", "middleware-test-secret")

	database, err := gorm.Open(sqlite.Open(":memory:"))
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(model.User{}))

	router := gin.New()
	router.Use(NewRequestIDMiddleware(), NewAuthMiddleware(database))
	router.GET("/", handler)

	return router, database
}

func TestAuthMiddlewareSanitizesContextUser(t *testing.T) {
	var got model.User

	router, database := newAuthTestRouter(t, func(c *gin.Context) {
		got = c.MustGet("user").(model.User)
		c.Status(http.StatusOK)
	})

	require.NoError(t, database.Create(&model.User{
		ID:           "u1",
		Email:        "a@example.com",
		PasswordHash: "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy",
	}).Error)

	token, err := security.MakeAuthToken("u1")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, "u1", got.ID)
	assert.Equal(t, "a@example.com", got.Email)

	// The hash must never ride along on the request context
	assert.Empty(t, got.PasswordHash)
}

func TestAuthMiddlewareRejectsMissingHeader(t *testing.T) {
	router, _ := newAuthTestRouter(t, func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
