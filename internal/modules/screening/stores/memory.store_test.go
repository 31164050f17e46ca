package stores

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"depistage-suite-core/internal/modules/screening/dto"
)

func sampleRecord(lastName string) *dto.ScreeningRecord {
	location := "SAR"
	return &dto.ScreeningRecord{
		Date:               "2024-01-01",
		LastName:           lastName,
		FirstName:          "Marie",
		Age:                34,
		Phone:              "0102030405",
		Address:            "Abidjan, Cocody",
		Vaccination:        true,
		Screening:          false,
		Mammography:        "non",
		GynecoConsultation: true,
		FCU:                true,
		FCULocation:        &location,
	}
}

func TestMemoryStoreInsertAssignsIdentity(t *testing.T) {
	store := NewMemoryStore()

	persisted, err := store.Insert(context.Background(), sampleRecord("Dupont"), true)
	require.NoError(t, err)

	assert.NotEmpty(t, persisted.ID, "l'id doit être attribué par le store")
	assert.True(t, strings.HasPrefix(persisted.ScreeningNumber, "DEP-"),
		"numéro attendu au format DEP-YYYY-NNNN, reçu %s", persisted.ScreeningNumber)
	assert.False(t, persisted.CreatedAt.IsZero(), "created_at doit être attribué")
}

func TestMemoryStoreGetReturnsInsertedRecord(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	persisted, err := store.Insert(ctx, sampleRecord("Dupont"), true)
	require.NoError(t, err)

	found, err := store.GetByID(ctx, persisted.ID)
	require.NoError(t, err)
	assert.Equal(t, *persisted, *found)
}

func TestMemoryStoreGetUnknownID(t *testing.T) {
	store := NewMemoryStore()

	_, err := store.GetByID(context.Background(), "inconnu")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreListNewestFirst(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	for _, name := range []string{"Premier", "Deuxieme", "Troisieme"} {
		_, err := store.Insert(ctx, sampleRecord(name), true)
		require.NoError(t, err)
	}

	records, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, "Troisieme", records[0].LastName)
	assert.Equal(t, "Deuxieme", records[1].LastName)
	assert.Equal(t, "Premier", records[2].LastName)
}

func TestMemoryStoreUpdatePreservesImmutableFields(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	persisted, err := store.Insert(ctx, sampleRecord("Dupont"), true)
	require.NoError(t, err)

	replacement := sampleRecord("Kouassi")
	replacement.Age = 41

	updated, err := store.Update(ctx, persisted.ID, replacement)
	require.NoError(t, err)

	assert.Equal(t, "Kouassi", updated.LastName)
	assert.Equal(t, 41, updated.Age)
	assert.Equal(t, persisted.ID, updated.ID)
	assert.Equal(t, persisted.ScreeningNumber, updated.ScreeningNumber)
	assert.Equal(t, persisted.CreatedAt, updated.CreatedAt)
}

func TestMemoryStoreUpdateUnknownID(t *testing.T) {
	store := NewMemoryStore()

	_, err := store.Update(context.Background(), "inconnu", sampleRecord("Dupont"))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreDeleteThenGet(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	persisted, err := store.Insert(ctx, sampleRecord("Dupont"), true)
	require.NoError(t, err)

	require.NoError(t, store.DeleteByID(ctx, persisted.ID))

	_, err = store.GetByID(ctx, persisted.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	records, err := store.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestMemoryStoreDeleteIsIdempotent(t *testing.T) {
	store := NewMemoryStore()

	// Supprimer un id inexistant n'est pas une erreur à ce niveau,
	// la sémantique 404 appartient au service
	assert.NoError(t, store.DeleteByID(context.Background(), "inconnu"))
}
