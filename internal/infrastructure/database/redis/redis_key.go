package redis

import (
	"fmt"
	"regexp"
	"strings"
)

// RedisKeyGenerator génère et valide les clés Redis selon les conventions Dépistage Suite
type RedisKeyGenerator struct {
	environment string
	// TTL ajustés par configuration, prioritaires sur les patterns prédéfinis
	ttlOverrides map[string]int
}

// NewRedisKeyGenerator crée une nouvelle instance du générateur
func NewRedisKeyGenerator(environment string) *RedisKeyGenerator {
	return &RedisKeyGenerator{
		environment:  environment,
		ttlOverrides: make(map[string]int),
	}
}

// OverrideTTL remplace le TTL d'un pattern (en secondes), typiquement depuis
// la configuration. À appeler avant la mise en service du générateur.
func (rkg *RedisKeyGenerator) OverrideTTL(patternName string, seconds int) error {
	if _, exists := RedisKeyPatterns[patternName]; !exists {
		return fmt.Errorf("pattern Redis non trouvé: %s", patternName)
	}
	rkg.ttlOverrides[patternName] = seconds
	return nil
}

// RedisKeyPattern définit les patterns standards des clés selon les conventions
// Pattern: depistage_{env}_{domain}_{context}:{identifier}
type RedisKeyPattern struct {
	Domain  string // cache, sequence, etc.
	Context string // screenings, record, etc.
	TTL     int    // TTL en secondes, 0 = pas d'expiration
}

// Patterns prédéfinis selon les conventions du projet
// Note : seuls les patterns réellement implémentés sont listés ici
var RedisKeyPatterns = map[string]RedisKeyPattern{
	// Cache de la liste complète, TTL aligné sur la cadence de polling client (5s)
	"cache_screenings": {Domain: "cache", Context: "screenings", TTL: 5},
}

// GenerateKey génère une clé Redis selon la convention : depistage_{env}_{domain}_{context}:{identifier}
func (rkg *RedisKeyGenerator) GenerateKey(patternName string, identifier ...string) (string, error) {
	pattern, exists := RedisKeyPatterns[patternName]
	if !exists {
		return "", fmt.Errorf("pattern Redis non trouvé: %s", patternName)
	}

	prefix := fmt.Sprintf("depistage_%s_%s_%s", rkg.environment, pattern.Domain, pattern.Context)

	if len(identifier) > 0 {
		// Joindre les identifiants avec "_" s'il y en a plusieurs
		identifierStr := strings.Join(identifier, "_")
		return fmt.Sprintf("%s:%s", prefix, identifierStr), nil
	}

	// Si pas d'identifier, retourner juste le préfixe (pour les clés singleton)
	return prefix, nil
}

// GetTTL récupère le TTL d'un pattern, override de configuration en priorité
func (rkg *RedisKeyGenerator) GetTTL(patternName string) (int, error) {
	pattern, exists := RedisKeyPatterns[patternName]
	if !exists {
		return 0, fmt.Errorf("pattern Redis non trouvé: %s", patternName)
	}

	if ttl, overridden := rkg.ttlOverrides[patternName]; overridden {
		return ttl, nil
	}

	return pattern.TTL, nil
}

// ValidateKey valide qu'une clé respecte les conventions
func (rkg *RedisKeyGenerator) ValidateKey(key string) error {
	if len(key) == 0 {
		return fmt.Errorf("clé vide")
	}

	if len(key) > 250 {
		return fmt.Errorf("clé trop longue (max 250 caractères): %d", len(key))
	}

	validKeyRegex := regexp.MustCompile(`^[a-zA-Z0-9_:\-]+$`)
	if !validKeyRegex.MatchString(key) {
		return fmt.Errorf("clé contient des caractères invalides: %s", key)
	}

	if !strings.HasPrefix(key, "depistage_") {
		return fmt.Errorf("clé doit commencer par 'depistage_': %s", key)
	}

	// Vérification convention depistage_{env}_{domain}_{context}
	parts := strings.SplitN(key, ":", 2)
	prefixParts := strings.Split(parts[0], "_")
	if len(prefixParts) < 4 {
		return fmt.Errorf("structure préfixe invalide (format: depistage_env_domain_context): %s", parts[0])
	}

	return nil
}

// GenerateWildcardPattern génère un pattern wildcard pour invalidation par domaine/context
func (rkg *RedisKeyGenerator) GenerateWildcardPattern(domain, context string) string {
	return fmt.Sprintf("depistage_%s_%s_%s*", rkg.environment, domain, context)
}

// ListAllPatterns retourne tous les patterns disponibles
func (rkg *RedisKeyGenerator) ListAllPatterns() map[string]RedisKeyPattern {
	return RedisKeyPatterns
}
