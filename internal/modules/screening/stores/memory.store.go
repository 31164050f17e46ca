package stores

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"depistage-suite-core/internal/modules/screening/dto"
)

// MemoryStore est le store de secours : il porte le même contrat que
// l'adaptateur PostgreSQL mais vit dans le processus (mode démo/hors-ligne).
// Il ne retourne jamais ErrStoreUnavailable. Les données disparaissent au
// redémarrage, c'est assumé.
type MemoryStore struct {
	mu sync.Mutex

	records map[string]dto.ScreeningRecord
	// ordre d'insertion conservé pour le listing (le plus ancien en tête)
	order []string

	sequence     int
	sequenceYear int
}

// NewMemoryStore crée un store mémoire vide
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		records: make(map[string]dto.ScreeningRecord),
		order:   make([]string, 0),
	}
}

// List retourne les enregistrements du plus récent au plus ancien
func (s *MemoryStore) List(ctx context.Context) ([]dto.ScreeningRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records := make([]dto.ScreeningRecord, 0, len(s.order))
	for i := len(s.order) - 1; i >= 0; i-- {
		records = append(records, s.records[s.order[i]])
	}

	return records, nil
}

func (s *MemoryStore) GetByID(ctx context.Context, id string) (*dto.ScreeningRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, exists := s.records[id]
	if !exists {
		return nil, ErrNotFound
	}

	copied := record
	return &copied, nil
}

// Insert attribue id, numéro et created_at comme le ferait le store principal
func (s *MemoryStore) Insert(ctx context.Context, record *dto.ScreeningRecord, ageProvided bool) (*dto.ScreeningRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	persisted := *record
	persisted.ID = uuid.NewString()
	persisted.ScreeningNumber = s.nextScreeningNumber()
	persisted.CreatedAt = time.Now()

	// L'âge est déjà matérialisé en entier par le service ; la variante
	// "sans colonne age" du store principal n'a pas d'équivalent ici
	s.records[persisted.ID] = persisted
	s.order = append(s.order, persisted.ID)

	fmt.Printf("[STORE] Enregistrement créé en mémoire - ID: %s, Numéro: %s\n",
		persisted.ID, persisted.ScreeningNumber)

	return &persisted, nil
}

func (s *MemoryStore) Update(ctx context.Context, id string, record *dto.ScreeningRecord) (*dto.ScreeningRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, exists := s.records[id]
	if !exists {
		return nil, ErrNotFound
	}

	updated := *record
	// id, numéro et created_at sont immuables
	updated.ID = existing.ID
	updated.ScreeningNumber = existing.ScreeningNumber
	updated.CreatedAt = existing.CreatedAt

	s.records[id] = updated

	copied := updated
	return &copied, nil
}

// DeleteByID est idempotent, comme l'adaptateur PostgreSQL
func (s *MemoryStore) DeleteByID(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.records[id]; !exists {
		return nil
	}

	delete(s.records, id)
	for i, orderedID := range s.order {
		if orderedID == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}

	return nil
}

// nextScreeningNumber tient sa propre séquence annuelle, le compteur repart
// à zéro au changement d'année. Appelé sous verrou.
func (s *MemoryStore) nextScreeningNumber() string {
	year := time.Now().Year()
	if year != s.sequenceYear {
		s.sequenceYear = year
		s.sequence = 0
	}

	s.sequence++
	return fmt.Sprintf("DEP-%d-%04d", year, s.sequence)
}
