package security

import (
	"regexp"
	"time"

	"depistage-suite-core/internal/app/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORSHandler type spécifique pour Fx
type CORSHandler gin.HandlerFunc

// CORSMiddleware configure les règles CORS pour le front dépistage
func CORSMiddleware(appConfig *config.Config) CORSHandler {
	corsConfig := appConfig.GetCORS()

	// Fronts locaux de développement (Next.js sur 3000/3001)
	localPattern := regexp.MustCompile(`^https?://localhost:(3000|3001|8080)$`)

	return CORSHandler(cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool {
			if localPattern.MatchString(origin) {
				return true
			}

			// Origins configurés dans l'environnement
			for _, allowedOrigin := range corsConfig.AllowedOrigins {
				if origin == allowedOrigin {
					return true
				}
			}

			return false
		},

		AllowMethods: corsConfig.AllowedMethods,

		AllowHeaders: append(corsConfig.AllowedHeaders,
			"X-Request-Id"),

		ExposeHeaders: []string{
			"Content-Length",
			"Content-Disposition",
			"X-Request-Id",
		},

		AllowCredentials: corsConfig.AllowCredentials,

		// Cache de la réponse preflight
		MaxAge: time.Duration(corsConfig.MaxAge) * time.Second,
	}))
}
