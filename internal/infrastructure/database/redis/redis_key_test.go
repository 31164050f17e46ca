package redis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateKeyFollowsConvention(t *testing.T) {
	generator := NewRedisKeyGenerator("development")

	key, err := generator.GenerateKey("cache_screenings", "list")
	require.NoError(t, err)
	assert.Equal(t, "depistage_development_cache_screenings:list", key)

	require.NoError(t, generator.ValidateKey(key))
}

func TestGenerateKeyUnknownPattern(t *testing.T) {
	generator := NewRedisKeyGenerator("development")

	_, err := generator.GenerateKey("pattern_inconnu")
	assert.Error(t, err)
}

func TestGetTTLUsesOverride(t *testing.T) {
	generator := NewRedisKeyGenerator("development")

	ttl, err := generator.GetTTL("cache_screenings")
	require.NoError(t, err)
	assert.Equal(t, 5, ttl)

	require.NoError(t, generator.OverrideTTL("cache_screenings", 10))

	ttl, err = generator.GetTTL("cache_screenings")
	require.NoError(t, err)
	assert.Equal(t, 10, ttl)
}

func TestOverrideTTLUnknownPattern(t *testing.T) {
	generator := NewRedisKeyGenerator("development")
	assert.Error(t, generator.OverrideTTL("pattern_inconnu", 10))
}

func TestValidateKeyRejectsForeignPrefix(t *testing.T) {
	generator := NewRedisKeyGenerator("development")
	assert.Error(t, generator.ValidateKey("autre_app_cache_screenings:list"))
}
