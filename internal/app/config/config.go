package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"depistage-suite-core/internal/infrastructure/database/postgres"
	"depistage-suite-core/internal/infrastructure/database/redis"

	"github.com/joho/godotenv"
)

// Uniquement variables d'environnement

// Config structure unifiée
type Config struct {
	Environment string
	Server      ServerConfig
	Database    DatabaseConfig
	Redis       RedisConfig
	Screening   ScreeningConfig
	Logging     LoggingConfig
	CORS        CORSConfig
}

// ServerConfig configuration serveur HTTP
type ServerConfig struct {
	Host         string        `env:"SERVER_HOST"`
	Port         int           `env:"SERVER_PORT"`
	ReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT"`
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT"`
}

// DatabaseConfig configuration PostgreSQL
type DatabaseConfig struct {
	Host           string        `env:"DB_HOST"`
	Port           int           `env:"DB_PORT"`
	Database       string        `env:"DB_NAME"`
	Username       string        `env:"DB_USERNAME"`
	Password       string        `env:"DB_PASSWORD"`
	MaxConnections int           `env:"DB_MAX_CONNECTIONS"`
	QueryTimeout   time.Duration `env:"DB_QUERY_TIMEOUT"`
	SSLMode        string        `env:"DB_SSL_MODE"`
}

// RedisConfig configuration Redis
type RedisConfig struct {
	Host     string `env:"REDIS_HOST"`
	Port     int    `env:"REDIS_PORT"`
	Password string `env:"REDIS_PASSWORD"`
	Database int    `env:"REDIS_DATABASE"`
}

// ScreeningConfig configuration du module dépistage
type ScreeningConfig struct {
	// TTL du cache liste, aligné sur la cadence de polling des clients (5s)
	ListCacheTTL time.Duration `env:"SCREENING_LIST_CACHE_TTL"`
	// Active le store mémoire de secours quand PostgreSQL est injoignable
	FallbackEnabled bool `env:"SCREENING_FALLBACK_ENABLED"`
}

// LoggingConfig configuration logging
type LoggingConfig struct {
	Level string `env:"LOG_LEVEL"`
}

// CORSConfig configuration CORS
type CORSConfig struct {
	AllowedOrigins   []string `env:"CORS_ALLOWED_ORIGINS"`
	AllowedMethods   []string `env:"CORS_ALLOWED_METHODS"`
	AllowedHeaders   []string `env:"CORS_ALLOWED_HEADERS"`
	AllowCredentials bool     `env:"CORS_ALLOW_CREDENTIALS"`
	MaxAge           int      `env:"CORS_MAX_AGE"`
}

// NewConfig charge la configuration depuis les variables d'environnement uniquement
func NewConfig() (*Config, error) {
	// Charger le fichier .env (optionnel)
	if err := godotenv.Load(".env"); err != nil {
		fmt.Printf("[CONFIG] Warning: Fichier .env non trouvé: %v\n", err)
	}

	config := &Config{}

	// Déterminer environnement
	config.Environment = getEnv("APP_ENV", "development")

	// Charger configuration serveur
	config.Server = ServerConfig{
		Host:         getEnv("SERVER_HOST", "localhost"),
		Port:         getEnvInt("SERVER_PORT", 4000),
		ReadTimeout:  getEnvDuration("SERVER_READ_TIMEOUT", 30) * time.Second,
		WriteTimeout: getEnvDuration("SERVER_WRITE_TIMEOUT", 30) * time.Second,
	}

	// Charger configuration database
	config.Database = DatabaseConfig{
		Host:           getEnv("DB_HOST", "localhost"),
		Port:           getEnvInt("DB_PORT", 5432),
		Database:       getEnv("DB_NAME", "depistage_suite"),
		Username:       getEnv("DB_USERNAME", "postgres"),
		Password:       getEnv("DB_PASSWORD", ""),
		MaxConnections: getEnvInt("DB_MAX_CONNECTIONS", 25),
		QueryTimeout:   getEnvDuration("DB_QUERY_TIMEOUT", 30) * time.Second,
		SSLMode:        getEnv("DB_SSL_MODE", "disable"),
	}

	// Charger configuration Redis
	config.Redis = RedisConfig{
		Host:     getEnv("REDIS_HOST", "localhost"),
		Port:     getEnvInt("REDIS_PORT", 6379),
		Password: getEnv("REDIS_PASSWORD", ""),
		Database: getEnvInt("REDIS_DATABASE", 0),
	}

	// Charger configuration module dépistage
	config.Screening = ScreeningConfig{
		ListCacheTTL:    getEnvDuration("SCREENING_LIST_CACHE_TTL", 5) * time.Second,
		FallbackEnabled: getEnvBool("SCREENING_FALLBACK_ENABLED", true),
	}

	// Charger configuration logging
	config.Logging = LoggingConfig{
		Level: getEnv("LOG_LEVEL", "debug"),
	}

	// Charger configuration CORS
	config.CORS = CORSConfig{
		AllowedOrigins:   getEnvStringSlice("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000"}),
		AllowedMethods:   getEnvStringSlice("CORS_ALLOWED_METHODS", []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
		AllowedHeaders:   getEnvStringSlice("CORS_ALLOWED_HEADERS", []string{"Content-Type", "Authorization"}),
		AllowCredentials: getEnvBool("CORS_ALLOW_CREDENTIALS", true),
		MaxAge:           getEnvInt("CORS_MAX_AGE", 3600),
	}

	// Validation configuration critique
	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("validation configuration échouée: %w", err)
	}

	fmt.Printf("[CONFIG] ✅ Configuration chargée pour environnement: %s\n", config.Environment)
	return config, nil
}

// Getters pour compatibilité avec l'ancien code
func (c *Config) GetDatabase() DatabaseConfig   { return c.Database }
func (c *Config) GetRedis() RedisConfig         { return c.Redis }
func (c *Config) GetServer() ServerConfig       { return c.Server }
func (c *Config) GetScreening() ScreeningConfig { return c.Screening }
func (c *Config) GetLogging() LoggingConfig     { return c.Logging }
func (c *Config) GetCORS() CORSConfig           { return c.CORS }

// Convertisseurs vers configurations infrastructure
func NewPostgresConfig(config *Config) *postgres.DatabaseConfig {
	return &postgres.DatabaseConfig{
		Host:     config.Database.Host,
		Port:     config.Database.Port,
		Database: config.Database.Database,
		Username: config.Database.Username,
		Password: config.Database.Password,
		SSLMode:  config.Database.SSLMode,
	}
}

func NewRedisConfig(config *Config) *redis.RedisConfig {
	return &redis.RedisConfig{
		Host:     config.Redis.Host,
		Port:     config.Redis.Port,
		Password: config.Redis.Password,
		Database: config.Redis.Database,
	}
}

// Helpers pour parsing variables d'environnement
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultSeconds int) time.Duration {
	return time.Duration(getEnvInt(key, defaultSeconds))
}

func getEnvStringSlice(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		return strings.Split(value, ",")
	}
	return defaultValue
}

// validateConfig valide la configuration selon l'environnement
func validateConfig(config *Config) error {
	env := config.Environment

	// Validation environnements supportés
	if env != "development" && env != "docker" {
		return fmt.Errorf("environnement non supporté: %s (utilisez 'development' ou 'docker')", env)
	}

	missingVars := []string{}

	// Variables critiques en mode docker (production/staging)
	if env == "docker" {
		if config.Database.Password == "" {
			missingVars = append(missingVars, "DB_PASSWORD")
		}

		// Warning pour variables recommandées en docker
		if config.Redis.Password == "" {
			fmt.Printf("[CONFIG] ⚠️ REDIS_PASSWORD non défini pour environnement docker\n")
		}
	}

	if len(missingVars) > 0 {
		return fmt.Errorf("variables critiques manquantes pour environnement docker: %v", missingVars)
	}

	return nil
}
