package app

import (
	"net/http"

	"depistage-suite-core/internal/app/config"
	"depistage-suite-core/internal/infrastructure/logger"
	securitymw "depistage-suite-core/internal/shared/middleware/security"

	"github.com/gin-gonic/gin"
)

func NewRouter(cfg *config.Config, loggerMw *logger.LoggerMiddleware, corsHandler securitymw.CORSHandler) *gin.Engine {
	// Set Gin mode based on environment
	configureGinMode(cfg.Environment)

	// Create router without default middleware for custom configuration
	r := gin.New()

	// Middlewares dans l'ordre d'importance
	r.Use(loggerMw.GinLogger())
	r.Use(loggerMw.GinRecovery())
	r.Use(gin.HandlerFunc(corsHandler))

	// Health check routes
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"data": gin.H{
				"status": "healthy",
			},
		})
	})

	r.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"data": gin.H{
				"status": "ready",
			},
		})
	})

	return r
}

// configureGinMode configure le mode Gin selon l'environnement
func configureGinMode(environment string) {
	switch environment {
	case "docker":
		gin.SetMode(gin.ReleaseMode)
	case "development":
		gin.SetMode(gin.DebugMode)
	default:
		// Mode debug par défaut pour développement local
		gin.SetMode(gin.DebugMode)
	}
}
