package stores

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"depistage-suite-core/internal/infrastructure/database/postgres"
	"depistage-suite-core/internal/modules/screening/dto"
	"depistage-suite-core/internal/modules/screening/queries"
)

// PostgresStore est l'adaptateur du store principal : traduction entre la
// forme applicative et les lignes de screening_records, classification des
// échecs en ErrStoreUnavailable / ErrNotFound.
type PostgresStore struct {
	db *postgres.Client
}

// NewPostgresStore crée une nouvelle instance de l'adaptateur
func NewPostgresStore(db *postgres.Client) *PostgresStore {
	return &PostgresStore{db: db}
}

// List retourne tous les enregistrements triés par created_at décroissant
func (s *PostgresStore) List(ctx context.Context) ([]dto.ScreeningRecord, error) {
	rows, err := s.db.Query(ctx, queries.ScreeningQueries.ListAll)
	if err != nil {
		return nil, fmt.Errorf("%w: list: %v", ErrStoreUnavailable, err)
	}
	defer rows.Close()

	records := make([]dto.ScreeningRecord, 0)
	for rows.Next() {
		var record dto.ScreeningRecord
		if err := scanScreeningRow(rows, &record); err != nil {
			return nil, fmt.Errorf("%w: list scan: %v", ErrStoreUnavailable, err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: list rows: %v", ErrStoreUnavailable, err)
	}

	return records, nil
}

// GetByID distingue "zéro ligne" (ErrNotFound, réponse ferme) d'un échec de
// connexion ou de requête (ErrStoreUnavailable)
func (s *PostgresStore) GetByID(ctx context.Context, id string) (*dto.ScreeningRecord, error) {
	row := s.db.QueryRow(ctx, queries.ScreeningQueries.GetByID, id)

	var record dto.ScreeningRecord
	if err := scanScreeningRow(row, &record); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: get: %v", ErrStoreUnavailable, err)
	}

	return &record, nil
}

// Insert attribue id, numéro de dépistage et created_at puis persiste.
// Quand l'âge n'a pas été fourni, la colonne est omise du payload plutôt
// qu'envoyée à NULL, par défense contre les contraintes strictes du schéma.
func (s *PostgresStore) Insert(ctx context.Context, record *dto.ScreeningRecord, ageProvided bool) (*dto.ScreeningRecord, error) {
	persisted := *record
	persisted.ID = uuid.NewString()

	number, err := s.nextScreeningNumber(ctx)
	if err != nil {
		return nil, err
	}
	persisted.ScreeningNumber = number

	var createdAt time.Time
	if ageProvided {
		err = s.db.QueryRow(ctx, queries.ScreeningQueries.Insert,
			persisted.ID, persisted.ScreeningNumber, persisted.Date,
			persisted.LastName, persisted.FirstName, persisted.Age,
			persisted.Phone, persisted.Address,
			persisted.Vaccination, persisted.Screening,
			persisted.Mammography, persisted.MammographyDate,
			persisted.GynecoConsultation, persisted.GynecoDate,
			persisted.FCU, persisted.FCULocation,
			persisted.HasAdditionalExams,
			persisted.HPV, persisted.MammaryUltrasound,
			persisted.ThermoAblation, persisted.Anapath,
		).Scan(&createdAt)
	} else {
		err = s.db.QueryRow(ctx, queries.ScreeningQueries.InsertWithoutAge,
			persisted.ID, persisted.ScreeningNumber, persisted.Date,
			persisted.LastName, persisted.FirstName,
			persisted.Phone, persisted.Address,
			persisted.Vaccination, persisted.Screening,
			persisted.Mammography, persisted.MammographyDate,
			persisted.GynecoConsultation, persisted.GynecoDate,
			persisted.FCU, persisted.FCULocation,
			persisted.HasAdditionalExams,
			persisted.HPV, persisted.MammaryUltrasound,
			persisted.ThermoAblation, persisted.Anapath,
		).Scan(&createdAt)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: insert: %v", ErrStoreUnavailable, err)
	}

	persisted.CreatedAt = createdAt

	fmt.Printf("[STORE] Enregistrement créé - ID: %s, Numéro: %s\n",
		persisted.ID, persisted.ScreeningNumber)

	return &persisted, nil
}

// Update remplace intégralement les champs persistés de l'enregistrement
func (s *PostgresStore) Update(ctx context.Context, id string, record *dto.ScreeningRecord) (*dto.ScreeningRecord, error) {
	row := s.db.QueryRow(ctx, queries.ScreeningQueries.Update,
		id, record.Date, record.LastName, record.FirstName, record.Age,
		record.Phone, record.Address,
		record.Vaccination, record.Screening,
		record.Mammography, record.MammographyDate,
		record.GynecoConsultation, record.GynecoDate,
		record.FCU, record.FCULocation,
		record.HasAdditionalExams,
		record.HPV, record.MammaryUltrasound,
		record.ThermoAblation, record.Anapath,
	)

	var updated dto.ScreeningRecord
	if err := scanScreeningRow(row, &updated); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: update: %v", ErrStoreUnavailable, err)
	}

	return &updated, nil
}

// DeleteByID est idempotent : zéro ligne supprimée n'est pas une erreur ici,
// le service décide de la sémantique utilisateur
func (s *PostgresStore) DeleteByID(ctx context.Context, id string) error {
	rowsAffected, err := s.db.Exec(ctx, queries.ScreeningQueries.DeleteByID, id)
	if err != nil {
		return fmt.Errorf("%w: delete: %v", ErrStoreUnavailable, err)
	}

	if rowsAffected == 0 {
		fmt.Printf("[STORE] Suppression sans effet - ID: %s (aucune ligne)\n", id)
	}

	return nil
}

// nextScreeningNumber attribue le prochain numéro séquentiel de l'année.
// Format: DEP-{YYYY}-{NNNN}, exemple DEP-2026-0042
func (s *PostgresStore) nextScreeningNumber(ctx context.Context) (string, error) {
	year := time.Now().Year()
	prefix := fmt.Sprintf("DEP-%d-%%", year)

	var last int
	err := s.db.QueryRow(ctx, queries.ScreeningQueries.LastNumberForYear, prefix).Scan(&last)
	if err != nil {
		return "", fmt.Errorf("%w: numérotation: %v", ErrStoreUnavailable, err)
	}

	return fmt.Sprintf("DEP-%d-%04d", year, last+1), nil
}

// scanScreeningRow lit une ligne de screening_records dans l'ordre des
// colonnes partagé par toutes les requêtes de lecture
func scanScreeningRow(row pgx.Row, record *dto.ScreeningRecord) error {
	return row.Scan(
		&record.ID,
		&record.ScreeningNumber,
		&record.Date,
		&record.LastName,
		&record.FirstName,
		&record.Age,
		&record.Phone,
		&record.Address,
		&record.Vaccination,
		&record.Screening,
		&record.Mammography,
		&record.MammographyDate,
		&record.GynecoConsultation,
		&record.GynecoDate,
		&record.FCU,
		&record.FCULocation,
		&record.HasAdditionalExams,
		&record.HPV,
		&record.MammaryUltrasound,
		&record.ThermoAblation,
		&record.Anapath,
		&record.CreatedAt,
	)
}
