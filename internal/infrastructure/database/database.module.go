package database

import (
	"go.uber.org/fx"

	"depistage-suite-core/internal/infrastructure/database/postgres"
	"depistage-suite-core/internal/infrastructure/database/redis"
)

var Module = fx.Options(

	// Modules database
	postgres.Module,
	redis.Module,
)
