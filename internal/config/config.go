package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Store types
const (
	StoreSQL   = "sql"
	StoreMongo = "mongo"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	Port             string
	FunctionsPort    string
	RequestBodyLimit int

	// Store selection: sql (GORM) or mongo
	StoreType string

	// Relational database configuration
	DBType            string // mysql, postgres, sqlite, sqlserver
	DBHost            string
	DBPort            string
	DBDatabase        string
	DBUser            string
	DBPassword        string
	DBConnectionLimit int
	DBLogLevel        string

	// Document database configuration
	MongoURI      string
	MongoDatabase string
	MongoSeed     bool

	// Token issuance
	JWTSecret   string
	JWTIssuer   string
	JWTAudience string
	JWTLifetime time.Duration

	// AuthRequiredRoutes lists "<resource>.<operation>" keys that demand a bearer token,
	// e.g. "comments.delete".
	AuthRequiredRoutes map[string]bool

	// UniqueCheckExcludesSelf makes the user update uniqueness scan skip the record being updated.
	UniqueCheckExcludesSelf bool

	// Logging
	LogEnv   string
	LogLevel string
}

// Load loads configuration from environment variables.
// If ENV_FILE names a file, it is loaded first without overriding variables already set.
func Load() (*Config, error) {
	if envFile := os.Getenv("ENV_FILE"); envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return nil, fmt.Errorf("failed to load env file %s: %w", envFile, err)
		}
	}

	cfg := &Config{
		Port:                    getEnv("PORT", "3000"),
		FunctionsPort:           getEnv("FUNCTIONS_CUSTOMHANDLER_PORT", "7071"),
		RequestBodyLimit:        getEnvAsInt("REQUEST_BODY_LIMIT", 1024*1024),
		StoreType:               strings.ToLower(getEnv("STORE_TYPE", StoreSQL)),
		DBType:                  strings.ToLower(getEnv("DB_TYPE", "sqlite")),
		DBHost:                  getEnv("DB_HOST", "localhost"),
		DBPort:                  getEnv("DB_PORT", ""),
		DBDatabase:              getEnv("DB_DATABASE", ""),
		DBUser:                  getEnv("DB_USER", ""),
		DBPassword:              getEnv("DB_PASSWORD", ""),
		DBConnectionLimit:       getEnvAsInt("DB_CONNECTION_LIMIT", 5),
		DBLogLevel:              getEnv("DB_LOG_LEVEL", "warn"),
		MongoURI:                getEnv("MONGO_URI", ""),
		MongoDatabase:           getEnv("MONGO_DATABASE", "ArticlesDb"),
		MongoSeed:               getEnvAsBool("MONGO_SEED", true),
		JWTSecret:               getEnv("JWT_SECRET", ""),
		JWTIssuer:               getEnv("JWT_ISSUER", "AuthSer"),
		JWTAudience:             getEnv("JWT_AUDIENCE", "AuthClient"),
		JWTLifetime:             getEnvAsDuration("JWT_LIFETIME", time.Minute),
		AuthRequiredRoutes:      parseRouteSet(getEnv("AUTH_REQUIRED_ROUTES", "comments.delete")),
		UniqueCheckExcludesSelf: getEnvAsBool("UNIQUE_CHECK_EXCLUDES_SELF", false),
		LogEnv:                  getEnv("LOG_ENV", "dev"),
		LogLevel:                getEnv("LOG_LEVEL", "info"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that the settings required by the selected store are present
func (c *Config) Validate() error {
	switch c.StoreType {
	case StoreSQL:
		if c.DBDatabase == "" {
			return fmt.Errorf("DB_DATABASE is required")
		}
		if c.DBType != "sqlite" && c.DBUser == "" {
			return fmt.Errorf("DB_USER is required")
		}
	case StoreMongo:
		if c.MongoURI == "" {
			return fmt.Errorf("MONGO_URI is required")
		}
		if c.MongoDatabase == "" {
			return fmt.Errorf("MONGO_DATABASE is required")
		}
	default:
		return fmt.Errorf("unsupported store type: %s", c.StoreType)
	}

	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if c.JWTLifetime <= 0 {
		return fmt.Errorf("JWT_LIFETIME must be positive")
	}

	return nil
}

// RequiresAuth reports whether the given resource operation demands a bearer token
func (c *Config) RequiresAuth(resource, operation string) bool {
	return c.AuthRequiredRoutes[resource+"."+operation]
}

// parseRouteSet splits a comma separated route list into a lookup set
func parseRouteSet(value string) map[string]bool {
	routes := make(map[string]bool)
	for _, route := range strings.Split(value, ",") {
		route = strings.ToLower(strings.TrimSpace(route))
		if route != "" {
			routes[route] = true
		}
	}
	return routes
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt gets an environment variable as an integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsBool gets an environment variable as a boolean or returns a default value
func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsDuration accepts Go durations ("90s") or a bare number of minutes
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	if minutes, err := strconv.Atoi(valueStr); err == nil {
		return time.Duration(minutes) * time.Minute
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
