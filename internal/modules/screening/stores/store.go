package stores

import (
	"context"
	"errors"
	"fmt"

	"depistage-suite-core/internal/modules/screening/dto"
)

// Erreurs de classification du store, consommées par le service
var (
	// ErrStoreUnavailable : connexion ou requête en échec, le store n'a pas répondu
	ErrStoreUnavailable = errors.New("store indisponible")

	// ErrNotFound : le store a répondu, aucune ligne ne correspond
	ErrNotFound = errors.New("enregistrement non trouvé")
)

// Store est le contrat tabulaire uniforme partagé par le store principal
// (PostgreSQL) et le store mémoire de secours. Les appelants ne savent pas
// lequel des deux répond.
type Store interface {
	// List retourne tous les enregistrements, du plus récent au plus ancien
	List(ctx context.Context) ([]dto.ScreeningRecord, error)

	// GetByID retourne ErrNotFound quand zéro ligne correspond,
	// ErrStoreUnavailable quand le store n'a pas pu répondre
	GetByID(ctx context.Context, id string) (*dto.ScreeningRecord, error)

	// Insert attribue id, screening_number et created_at puis persiste.
	// ageProvided=false déclenche la variante défensive sans colonne age.
	Insert(ctx context.Context, record *dto.ScreeningRecord, ageProvided bool) (*dto.ScreeningRecord, error)

	// Update remplace intégralement les champs persistés de l'enregistrement
	Update(ctx context.Context, id string, record *dto.ScreeningRecord) (*dto.ScreeningRecord, error)

	// DeleteByID est idempotent à ce niveau : supprimer un id inexistant
	// n'est pas une erreur, le service décide de la sémantique 404
	DeleteByID(ctx context.Context, id string) error
}

// Selector centralise la politique de bascule : tenter le store principal,
// rejouer sur le store de secours uniquement sur ErrStoreUnavailable.
// Un ErrNotFound ferme du store principal est définitif et n'est jamais
// rejoué. Les deux stores sont mutuellement exclusifs, jamais réconciliés.
type Selector struct {
	primary  Store
	fallback Store
}

// NewSelector construit le sélecteur ; fallback peut être nil (bascule désactivée)
func NewSelector(primary Store, fallback Store) *Selector {
	return &Selector{
		primary:  primary,
		fallback: fallback,
	}
}

func (s *Selector) shouldFallback(err error) bool {
	return err != nil && s.fallback != nil && errors.Is(err, ErrStoreUnavailable)
}

func (s *Selector) List(ctx context.Context) ([]dto.ScreeningRecord, error) {
	records, err := s.primary.List(ctx)
	if s.shouldFallback(err) {
		fmt.Printf("[STORE] ⚠️ Store principal indisponible (list), bascule sur le store mémoire: %v\n", err)
		return s.fallback.List(ctx)
	}
	return records, err
}

func (s *Selector) GetByID(ctx context.Context, id string) (*dto.ScreeningRecord, error) {
	record, err := s.primary.GetByID(ctx, id)
	if s.shouldFallback(err) {
		fmt.Printf("[STORE] ⚠️ Store principal indisponible (get), bascule sur le store mémoire: %v\n", err)
		return s.fallback.GetByID(ctx, id)
	}
	return record, err
}

func (s *Selector) Insert(ctx context.Context, record *dto.ScreeningRecord, ageProvided bool) (*dto.ScreeningRecord, error) {
	persisted, err := s.primary.Insert(ctx, record, ageProvided)
	if s.shouldFallback(err) {
		fmt.Printf("[STORE] ⚠️ Store principal indisponible (insert), bascule sur le store mémoire: %v\n", err)
		return s.fallback.Insert(ctx, record, ageProvided)
	}
	return persisted, err
}

func (s *Selector) Update(ctx context.Context, id string, record *dto.ScreeningRecord) (*dto.ScreeningRecord, error) {
	updated, err := s.primary.Update(ctx, id, record)
	if s.shouldFallback(err) {
		fmt.Printf("[STORE] ⚠️ Store principal indisponible (update), bascule sur le store mémoire: %v\n", err)
		return s.fallback.Update(ctx, id, record)
	}
	return updated, err
}

func (s *Selector) DeleteByID(ctx context.Context, id string) error {
	err := s.primary.DeleteByID(ctx, id)
	if s.shouldFallback(err) {
		fmt.Printf("[STORE] ⚠️ Store principal indisponible (delete), bascule sur le store mémoire: %v\n", err)
		return s.fallback.DeleteByID(ctx, id)
	}
	return err
}
