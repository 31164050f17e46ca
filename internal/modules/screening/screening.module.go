package screening

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"depistage-suite-core/internal/app/config"
	"depistage-suite-core/internal/infrastructure/database/postgres"
	redisinfra "depistage-suite-core/internal/infrastructure/database/redis"
	"depistage-suite-core/internal/modules/screening/controllers"
	"depistage-suite-core/internal/modules/screening/services"
	"depistage-suite-core/internal/modules/screening/stores"
)

// Module regroupe tous les providers du domaine Dépistage
var Module = fx.Options(
	// Stores (principal + secours, sélection centralisée)
	fx.Provide(NewPostgresStore),
	fx.Provide(stores.NewMemoryStore),
	fx.Provide(NewStoreSelector),

	// Services
	fx.Provide(NewScreeningCacheService),
	fx.Provide(services.NewScreeningService),

	// Controllers
	fx.Provide(controllers.NewScreeningController),

	// Configuration des routes
	fx.Invoke(RegisterScreeningRoutes),
)

func NewPostgresStore(db *postgres.Client) *stores.PostgresStore {
	return stores.NewPostgresStore(db)
}

// NewStoreSelector branche le store mémoire en secours du store principal.
// La bascule peut être coupée par configuration (SCREENING_FALLBACK_ENABLED).
func NewStoreSelector(cfg *config.Config, primary *stores.PostgresStore, fallback *stores.MemoryStore) *stores.Selector {
	if !cfg.Screening.FallbackEnabled {
		return stores.NewSelector(primary, nil)
	}
	return stores.NewSelector(primary, fallback)
}

func NewScreeningCacheService(redisClient *redisinfra.Client) *services.ScreeningCacheService {
	return services.NewScreeningCacheService(redisClient)
}

// RegisterScreeningRoutes configure les routes Gin du module.
// Le chemin historique /api/screening est conservé pour le front existant,
// l'alias versionné /api/v1/screenings pointe sur les mêmes handlers.
func RegisterScreeningRoutes(r *gin.Engine, ctrl *controllers.ScreeningController) {
	api := r.Group("/api/screening")
	{
		api.GET("", ctrl.List)
		api.POST("", ctrl.Create)
		api.GET("/:id", ctrl.GetByID)
		api.PUT("/:id", ctrl.Update)
		api.DELETE("/:id", ctrl.Delete)
	}

	apiV1 := r.Group("/api/v1/screenings")
	{
		apiV1.GET("", ctrl.List)
		apiV1.POST("", ctrl.Create)
		apiV1.GET("/:id", ctrl.GetByID)
		apiV1.PUT("/:id", ctrl.Update)
		apiV1.DELETE("/:id", ctrl.Delete)
	}
}
