package postgres

import (
	"context"
	"fmt"
)

// schemaStatements : DDL idempotent appliqué au démarrage quand la base
// répond. Pas d'outil de migration externe, le schéma tient en une table.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS screening_records (
		id UUID PRIMARY KEY,
		screening_number TEXT NOT NULL UNIQUE,
		date DATE NOT NULL,
		last_name TEXT NOT NULL,
		first_name TEXT NOT NULL,
		age INTEGER NOT NULL DEFAULT 0,
		phone TEXT NOT NULL DEFAULT '',
		address TEXT NOT NULL DEFAULT '',
		vaccination BOOLEAN NOT NULL DEFAULT FALSE,
		screening BOOLEAN NOT NULL DEFAULT FALSE,
		mammography TEXT NOT NULL DEFAULT '',
		mammography_date DATE,
		gyneco_consultation BOOLEAN NOT NULL DEFAULT FALSE,
		gyneco_date DATE,
		fcu BOOLEAN NOT NULL DEFAULT FALSE,
		fcu_location TEXT,
		has_additional_exams TEXT,
		hpv BOOLEAN NOT NULL DEFAULT FALSE,
		mammary_ultrasound BOOLEAN NOT NULL DEFAULT FALSE,
		thermo_ablation BOOLEAN NOT NULL DEFAULT FALSE,
		anapath BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	// La liste est toujours servie du plus récent au plus ancien
	`CREATE INDEX IF NOT EXISTS idx_screening_records_created_at
		ON screening_records (created_at DESC)`,
}

// EnsureSchema applique les statements DDL dans l'ordre
func (c *Client) EnsureSchema(ctx context.Context) error {
	fmt.Printf("[MIGRATIONS] 🔍 Vérification schéma screening_records\n")

	for _, statement := range schemaStatements {
		if _, err := c.Exec(ctx, statement); err != nil {
			return fmt.Errorf("application schéma: %w", err)
		}
	}

	fmt.Printf("[MIGRATIONS] ✅ Schéma screening_records prêt\n")
	return nil
}
