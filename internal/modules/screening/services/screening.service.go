package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"depistage-suite-core/internal/modules/screening/dto"
	"depistage-suite-core/internal/modules/screening/stores"
)

// ScreeningService est le point d'entrée unique du module : validation et
// normalisation des payloads bruts, orchestration store principal/secours
// via le Selector, conversion des échecs en ServiceError.
type ScreeningService struct {
	store *stores.Selector
	cache *ScreeningCacheService
}

// NewScreeningService crée une nouvelle instance du service
func NewScreeningService(store *stores.Selector, cache *ScreeningCacheService) *ScreeningService {
	return &ScreeningService{
		store: store,
		cache: cache,
	}
}

// Create normalise le payload du formulaire puis persiste.
// PersistenceFailed ne survient que si les deux stores échouent, ce qui
// signale un bug plutôt qu'une panne (le store mémoire n'échoue pas).
func (s *ScreeningService) Create(ctx context.Context, req *dto.CreateScreeningRequest) (*dto.ScreeningRecord, error) {
	if err := validateCreateRequest(req); err != nil {
		return nil, err
	}

	record, ageProvided := normalizeCreateRequest(req)

	persisted, err := s.store.Insert(ctx, record, ageProvided)
	if err != nil {
		fmt.Printf("[SCREENING] ❌ Création échouée: %v\n", err)
		return nil, newPersistenceError("create")
	}

	s.cache.Invalidate(ctx)

	fmt.Printf("[SCREENING] Dépistage créé - Numéro: %s, vaccination=%t, screening=%t, gyneco=%t\n",
		persisted.ScreeningNumber, persisted.Vaccination, persisted.Screening, persisted.GynecoConsultation)

	return persisted, nil
}

// List sert la collection complète, cache d'abord, store ensuite.
// Une liste vide est un résultat valide, pas une erreur.
func (s *ScreeningService) List(ctx context.Context) ([]dto.ScreeningRecord, error) {
	if cached, hit := s.cache.GetList(ctx); hit {
		return cached, nil
	}

	records, err := s.store.List(ctx)
	if err != nil {
		fmt.Printf("[SCREENING] ❌ Lecture liste échouée: %v\n", err)
		return nil, newPersistenceError("list")
	}

	s.cache.SetList(ctx, records)

	return records, nil
}

// GetByID retourne l'enregistrement ou NotFound. Un NotFound ferme du store
// qui a répondu est définitif : seule une panne de connectivité déclenche la
// bascule, jamais un résultat vide.
func (s *ScreeningService) GetByID(ctx context.Context, id string) (*dto.ScreeningRecord, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, newNotFoundError(id)
	}

	record, err := s.store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, stores.ErrNotFound) {
			return nil, newNotFoundError(id)
		}
		fmt.Printf("[SCREENING] ❌ Lecture échouée - ID %s: %v\n", id, err)
		return nil, newPersistenceError("get")
	}

	return record, nil
}

// Update remplace intégralement l'enregistrement (pas de patch partiel)
func (s *ScreeningService) Update(ctx context.Context, id string, req *dto.UpdateScreeningRequest) (*dto.ScreeningRecord, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, newNotFoundError(id)
	}

	record := normalizeUpdateRequest(req)

	updated, err := s.store.Update(ctx, id, record)
	if err != nil {
		if errors.Is(err, stores.ErrNotFound) {
			return nil, newNotFoundError(id)
		}
		fmt.Printf("[SCREENING] ❌ Mise à jour échouée - ID %s: %v\n", id, err)
		return nil, newPersistenceError("update")
	}

	s.cache.Invalidate(ctx)

	return updated, nil
}

// Delete supprime l'enregistrement. Le store traite la suppression comme
// idempotente ; c'est ici que l'absence de cible devient un NotFound
// visible par l'utilisateur.
func (s *ScreeningService) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return newNotFoundError(id)
	}

	// Vérification d'existence préalable : le même store qui répondra à la
	// suppression décide du 404
	if _, err := s.store.GetByID(ctx, id); err != nil {
		if errors.Is(err, stores.ErrNotFound) {
			return newNotFoundError(id)
		}
		fmt.Printf("[SCREENING] ❌ Vérification avant suppression échouée - ID %s: %v\n", id, err)
		return newPersistenceError("delete")
	}

	if err := s.store.DeleteByID(ctx, id); err != nil {
		fmt.Printf("[SCREENING] ❌ Suppression échouée - ID %s: %v\n", id, err)
		return newPersistenceError("delete")
	}

	s.cache.Invalidate(ctx)

	return nil
}

// validateCreateRequest rejette avant tout appel store les champs
// obligatoires manquants
func validateCreateRequest(req *dto.CreateScreeningRequest) error {
	missing := []string{}

	if strings.TrimSpace(req.LastName) == "" {
		missing = append(missing, "lastName")
	}
	if strings.TrimSpace(req.FirstName) == "" {
		missing = append(missing, "firstName")
	}
	if strings.TrimSpace(req.Date) == "" {
		missing = append(missing, "date")
	}

	if len(missing) > 0 {
		return newValidationError("Champs obligatoires manquants", map[string]interface{}{
			"fields": missing,
		})
	}

	return nil
}

// normalizeCreateRequest applique les règles de normalisation une seule
// fois, à la frontière : passé ce point le modèle est strictement typé.
// Retourne aussi si l'âge a réellement été fourni (pour la variante
// d'insertion sans colonne age).
func normalizeCreateRequest(req *dto.CreateScreeningRequest) (*dto.ScreeningRecord, bool) {
	age, ageProvided := parseAge(req.Age)

	return &dto.ScreeningRecord{
		Date:      req.Date,
		LastName:  req.LastName,
		FirstName: req.FirstName,
		Age:       age,
		Phone:     req.Phone,
		Address:   req.Address,

		Vaccination:        parseOuiNon(req.Vaccination),
		Screening:          parseOuiNon(req.Screening),
		GynecoConsultation: parseOuiNon(req.GynecoConsultation),

		Mammography:     req.Mammography,
		MammographyDate: req.MammographyDate,
		GynecoDate:      req.GynecoDate,

		FCU:         req.FCU,
		FCULocation: req.FCULocation,

		HasAdditionalExams: req.HasAdditionalExams,

		HPV:               req.HPV,
		MammaryUltrasound: req.MammaryUltrasound,
		ThermoAblation:    req.ThermoAblation,
		Anapath:           req.Anapath,
	}, ageProvided
}

// normalizeUpdateRequest matérialise la forme persistée complète ; seul
// l'âge peut encore arriver absent et retombe sur la sentinelle 0
func normalizeUpdateRequest(req *dto.UpdateScreeningRequest) *dto.ScreeningRecord {
	age := 0
	if req.Age != nil && *req.Age > 0 {
		age = *req.Age
	}

	return &dto.ScreeningRecord{
		Date:      req.Date,
		LastName:  req.LastName,
		FirstName: req.FirstName,
		Age:       age,
		Phone:     req.Phone,
		Address:   req.Address,

		Vaccination: req.Vaccination,
		Screening:   req.Screening,

		Mammography:     req.Mammography,
		MammographyDate: req.MammographyDate,

		GynecoConsultation: req.GynecoConsultation,
		GynecoDate:         req.GynecoDate,

		FCU:         req.FCU,
		FCULocation: req.FCULocation,

		HasAdditionalExams: req.HasAdditionalExams,

		HPV:               req.HPV,
		MammaryUltrasound: req.MammaryUltrasound,
		ThermoAblation:    req.ThermoAblation,
		Anapath:           req.Anapath,
	}
}

// parseOuiNon convertit l'intention du formulaire : "oui" vaut vrai, toute
// autre chaîne vaut faux
func parseOuiNon(value string) bool {
	return value == "oui"
}

// parseAge matérialise toujours un entier positif ou nul : champ vide ou
// invalide retombe sur la sentinelle 0 ("non renseigné")
func parseAge(raw string) (int, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, false
	}

	age, err := strconv.Atoi(trimmed)
	if err != nil || age < 0 {
		return 0, false
	}

	return age, true
}
