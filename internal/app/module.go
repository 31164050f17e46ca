package app

import (
	"fmt"

	"depistage-suite-core/internal/app/config"
	"depistage-suite-core/internal/infrastructure/database"
	"depistage-suite-core/internal/infrastructure/database/redis"
	"depistage-suite-core/internal/infrastructure/logger"
	"depistage-suite-core/internal/modules/screening"
	securitymw "depistage-suite-core/internal/shared/middleware/security"

	"go.uber.org/fx"
)

// NewRedisKeyGenerator crée le générateur de clés Redis et aligne le TTL du
// cache liste sur la configuration (SCREENING_LIST_CACHE_TTL)
func NewRedisKeyGenerator(cfg *config.Config) *redis.RedisKeyGenerator {
	generator := redis.NewRedisKeyGenerator(cfg.Environment)

	if err := generator.OverrideTTL("cache_screenings", int(cfg.Screening.ListCacheTTL.Seconds())); err != nil {
		fmt.Printf("[REDIS] ⚠️ TTL cache liste non appliqué: %v\n", err)
	}

	return generator
}

var AppModule = fx.Options(
	// Configuration (doit être fournie en premier)
	fx.Provide(config.NewConfig),
	fx.Provide(config.NewPostgresConfig),
	fx.Provide(config.NewRedisConfig),

	// Utilitaires partagés (après config, avant infrastructure)
	fx.Provide(NewRedisKeyGenerator),

	// Infrastructure
	database.Module,
	logger.Module,

	// Middlewares partagés
	fx.Provide(securitymw.CORSMiddleware),

	// Router
	fx.Provide(NewRouter),

	// Modules métier
	screening.Module,

	// Application
	fx.Provide(NewApplication),

	// Lifecycle management
	fx.Invoke((*Application).Start),
)
