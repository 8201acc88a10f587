// Package app wires up the HTTP API
package app

import (
	"bitwise74/linkboard-api/app/link"
	"bitwise74/linkboard-api/app/root"
	"bitwise74/linkboard-api/app/user"
	"bitwise74/linkboard-api/db"
	"bitwise74/linkboard-api/internal"
	"bitwise74/linkboard-api/pkg/middleware"
	"bitwise74/linkboard-api/pkg/security"
	"fmt"
	"time"

	ginzap "github.com/gin-contrib/zap"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/gorm"
)

const (
	gray  = "\x1b[90m"
	reset = "\x1b[0m"
)

func NewRouter() (*gin.Engine, error) {
	database, err := db.New()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database, %w", err)
	}

	makeLogger()

	return newRouter(database), nil
}

func newRouter(database *gorm.DB) *gin.Engine {
	d := &internal.Deps{
		DB:   database,
		Hash: security.New(),
	}

	router := gin.New()

	router.Use(
		cors.New(cors.Config{
			AllowOrigins:     viper.GetStringSlice("host.cors"),
			AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
			ExposeHeaders:    []string{"Content-Length"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}),
		gin.Recovery(),
		middleware.NewRequestIDMiddleware(),
		ginzap.GinzapWithConfig(zap.L(), &ginzap.Config{
			TimeFormat: "15:04:05.000",
			UTC:        true,
			Skipper: func(c *gin.Context) bool {
				return c.Request.Method == "HEAD"
			},
			Context: func(c *gin.Context) []zapcore.Field {
				fields := []zapcore.Field{}

				if v := c.GetString("requestID"); v != "" {
					fields = append(fields, zap.String("requestID", v))
				}

				if v := c.GetString("userID"); v != "" {
					fields = append(fields, zap.String("userID", v))
				}

				return fields
			},
		}),
	)

	router.HandleMethodNotAllowed = true
	router.RedirectFixedPath = true

	auth := middleware.NewAuthMiddleware(database)

	m := router.Group("/api", middleware.BodySizeLimiter(1<<20))
	{
		// HEAD /api/heartbeat 		-> Used to check if the server is alive
		m.HEAD("/heartbeat", root.Heartbeat)

		// GET /api/validate		-> Validates an auth token
		m.GET("/validate", auth, root.Validate)

		// GET /api/profile		-> Returns the authenticated user
		m.GET("/profile", auth, func(c *gin.Context) { user.UserFetch(c, d) })
	}

	u := m.Group("/users")
	{
		// POST /api/users 		-> Registers a new user
		u.POST("", func(c *gin.Context) { user.UserRegister(c, d) })
	}

	a := m.Group("/auth")
	{
		// POST /api/auth/login 	-> Logs in a user and returns an auth token
		a.POST("/login", func(c *gin.Context) { user.UserLogin(c, d) })
	}

	l := m.Group("/links", auth)
	{
		// GET /api/links		-> Returns the user's links, newest first
		l.GET("", func(c *gin.Context) { link.LinkList(c, d) })

		// POST /api/links         	-> Creates a new link owned by the user
		l.POST("", func(c *gin.Context) { link.LinkCreate(c, d) })

		// DELETE /api/links/:id	-> Deletes a link owned by the user
		l.DELETE("/:id", func(c *gin.Context) { link.LinkDelete(c, d) })
	}

	return router
}

func makeLogger() {
	cfg := zap.NewDevelopmentConfig()

	if lvl, err := zapcore.ParseLevel(viper.GetString("app.log_level")); err == nil {
		cfg.Level = zap.NewAtomicLevelAt(lvl)
	}

	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	cfg.EncoderConfig.EncodeTime = func(t time.Time, pae zapcore.PrimitiveArrayEncoder) {
		pae.AppendString(gray + t.Format("15:04:05.000") + reset)
	}
	cfg.EncoderConfig.EncodeCaller = func(ec zapcore.EntryCaller, pae zapcore.PrimitiveArrayEncoder) {
		pae.AppendString(gray + ec.TrimmedPath() + reset)
	}

	cfg.DisableStacktrace = true

	log, _ := cfg.Build()
	zap.ReplaceGlobals(log)
}
