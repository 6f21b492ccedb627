package api

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/hanoutdz/landingapi/internal/api/handlers"
	"github.com/hanoutdz/landingapi/internal/config"
	"github.com/hanoutdz/landingapi/internal/service"
)

// NewRouter creates and configures the Gin router
func NewRouter(cfg *config.Config, pipeline *service.Pipeline, probe handlers.SheetsProbe, logger *zap.Logger) *gin.Engine {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Middleware
	router.Use(gin.Recovery())
	router.Use(loggingMiddleware(logger))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// API v1 routes
	v1 := router.Group("/v1")
	{
		v1.POST("/orders", handlers.HandleSubmitOrder(pipeline, logger))
		v1.GET("/orders/status", handlers.HandleOrdersStatus(cfg, probe, logger))
		v1.POST("/quote", handlers.HandleQuote(logger))
	}

	return router
}

// loggingMiddleware logs HTTP requests
func loggingMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		status := c.Writer.Status()
		logger.Info("HTTP request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", status),
		)
	}
}
