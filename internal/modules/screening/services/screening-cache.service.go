package services

import (
	"context"
	"encoding/json"
	"fmt"

	"depistage-suite-core/internal/infrastructure/database/redis"
	"depistage-suite-core/internal/modules/screening/dto"
)

// ScreeningCacheService met en cache la liste complète des dépistages.
// Le TTL du pattern est aligné sur la cadence de polling des clients (5s) :
// la fenêtre de lecture périmée reste bornée par un tick de polling.
// Tout est best-effort, une erreur cache ne remonte jamais à l'appelant.
type ScreeningCacheService struct {
	redis *redis.Client
}

// NewScreeningCacheService crée une nouvelle instance du service
func NewScreeningCacheService(redisClient *redis.Client) *ScreeningCacheService {
	return &ScreeningCacheService{redis: redisClient}
}

// GetList tente de servir la liste depuis Redis
func (s *ScreeningCacheService) GetList(ctx context.Context) ([]dto.ScreeningRecord, bool) {
	if s == nil || s.redis == nil {
		return nil, false
	}

	payload, err := s.redis.GetWithPattern(ctx, "cache_screenings", "list")
	if err != nil {
		return nil, false
	}

	var records []dto.ScreeningRecord
	if err := json.Unmarshal([]byte(payload), &records); err != nil {
		// Entrée corrompue : purger et repartir du store
		_ = s.redis.DelWithPattern(ctx, "cache_screenings", "list")
		return nil, false
	}

	return records, true
}

// SetList alimente le cache après une lecture store réussie
func (s *ScreeningCacheService) SetList(ctx context.Context, records []dto.ScreeningRecord) {
	if s == nil || s.redis == nil {
		return
	}

	payload, err := json.Marshal(records)
	if err != nil {
		return
	}

	if err := s.redis.SetWithPattern(ctx, "cache_screenings", payload, "list"); err != nil {
		fmt.Printf("[CACHE] ⚠️ Écriture cache liste échouée: %v\n", err)
	}
}

// Invalidate purge la liste après toute mutation réussie, quel que soit le
// store qui l'a servie
func (s *ScreeningCacheService) Invalidate(ctx context.Context) {
	if s == nil || s.redis == nil {
		return
	}

	if err := s.redis.DelWithPattern(ctx, "cache_screenings", "list"); err != nil {
		fmt.Printf("[CACHE] ⚠️ Invalidation cache liste échouée: %v\n", err)
	}
}
