package postgres

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/fx"
)

func NewPostgresClient(config *DatabaseConfig) (*Client, error) {
	return NewClient(config)
}

var Module = fx.Options(
	fx.Provide(NewPostgresClient),
	fx.Invoke(RegisterLifecycle),
)

func RegisterLifecycle(lc fx.Lifecycle, client *Client) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			// Test de connexion avec timeout
			timeoutCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()

			// PostgreSQL injoignable ne bloque pas le démarrage : le module
			// dépistage bascule sur le store mémoire tant que la base est absente
			if err := client.Ping(timeoutCtx); err != nil {
				fmt.Printf("[POSTGRES] ⚠️ Base injoignable au démarrage, mode dégradé actif: %v\n", err)
				return nil
			}

			if err := client.EnsureSchema(timeoutCtx); err != nil {
				return err
			}

			return client.HealthCheck(timeoutCtx)
		},
		OnStop: func(ctx context.Context) error {
			client.Close()
			return nil
		},
	})
}
