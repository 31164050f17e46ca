package stores

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"depistage-suite-core/internal/modules/screening/dto"
)

// unavailableStore simule un store principal injoignable : toutes les
// opérations échouent en ErrStoreUnavailable
type unavailableStore struct{}

func (s *unavailableStore) List(ctx context.Context) ([]dto.ScreeningRecord, error) {
	return nil, fmt.Errorf("%w: connexion refusée", ErrStoreUnavailable)
}

func (s *unavailableStore) GetByID(ctx context.Context, id string) (*dto.ScreeningRecord, error) {
	return nil, fmt.Errorf("%w: connexion refusée", ErrStoreUnavailable)
}

func (s *unavailableStore) Insert(ctx context.Context, record *dto.ScreeningRecord, ageProvided bool) (*dto.ScreeningRecord, error) {
	return nil, fmt.Errorf("%w: connexion refusée", ErrStoreUnavailable)
}

func (s *unavailableStore) Update(ctx context.Context, id string, record *dto.ScreeningRecord) (*dto.ScreeningRecord, error) {
	return nil, fmt.Errorf("%w: connexion refusée", ErrStoreUnavailable)
}

func (s *unavailableStore) DeleteByID(ctx context.Context, id string) error {
	return fmt.Errorf("%w: connexion refusée", ErrStoreUnavailable)
}

func TestSelectorFallsBackWhenPrimaryUnavailable(t *testing.T) {
	selector := NewSelector(&unavailableStore{}, NewMemoryStore())
	ctx := context.Background()

	// Store de secours vide : liste vide, pas une erreur
	records, err := selector.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, records)

	persisted, err := selector.Insert(ctx, sampleRecord("Dupont"), true)
	require.NoError(t, err)
	assert.NotEmpty(t, persisted.ID)

	found, err := selector.GetByID(ctx, persisted.ID)
	require.NoError(t, err)
	assert.Equal(t, *persisted, *found)
}

func TestSelectorFirmNotFoundIsNeverRetried(t *testing.T) {
	// Le store principal répond fermement "aucune ligne" ; le secours
	// contient pourtant un enregistrement. La réponse ferme fait autorité.
	primary := NewMemoryStore()
	fallback := NewMemoryStore()
	ctx := context.Background()

	persisted, err := fallback.Insert(ctx, sampleRecord("Dupont"), true)
	require.NoError(t, err)

	selector := NewSelector(primary, fallback)

	_, err = selector.GetByID(ctx, persisted.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSelectorWithoutFallbackSurfacesUnavailability(t *testing.T) {
	selector := NewSelector(&unavailableStore{}, nil)

	_, err := selector.List(context.Background())
	assert.ErrorIs(t, err, ErrStoreUnavailable)
}

func TestSelectorMutationsFallBack(t *testing.T) {
	fallback := NewMemoryStore()
	selector := NewSelector(&unavailableStore{}, fallback)
	ctx := context.Background()

	persisted, err := selector.Insert(ctx, sampleRecord("Dupont"), true)
	require.NoError(t, err)

	replacement := sampleRecord("Kouassi")
	updated, err := selector.Update(ctx, persisted.ID, replacement)
	require.NoError(t, err)
	assert.Equal(t, "Kouassi", updated.LastName)

	require.NoError(t, selector.DeleteByID(ctx, persisted.ID))

	_, err = selector.GetByID(ctx, persisted.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
