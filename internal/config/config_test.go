package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("STORE_TYPE", "")
	t.Setenv("DB_DATABASE", "articles.db")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("AUTH_REQUIRED_ROUTES", "")
	t.Setenv("JWT_LIFETIME", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, StoreSQL, cfg.StoreType)
	assert.Equal(t, "sqlite", cfg.DBType)
	assert.Equal(t, time.Minute, cfg.JWTLifetime)
	assert.True(t, cfg.RequiresAuth("comments", "delete"))
	assert.False(t, cfg.RequiresAuth("articles", "create"))
	assert.False(t, cfg.UniqueCheckExcludesSelf)
}

func TestLoadRequiresSecret(t *testing.T) {
	t.Setenv("DB_DATABASE", "articles.db")
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestLoadMongoRequiresURI(t *testing.T) {
	t.Setenv("STORE_TYPE", "mongo")
	t.Setenv("MONGO_URI", "")
	t.Setenv("JWT_SECRET", "secret")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "MONGO_URI")
}

func TestLoadEnvFile(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	content := "STORE_TYPE=mongo\nMONGO_URI=mongodb://localhost:27017\nJWT_SECRET=fromfile\nJWT_LIFETIME=5\nAUTH_REQUIRED_ROUTES=Articles.Create, comments.delete\n"
	require.NoError(t, os.WriteFile(envFile, []byte(content), 0o600))

	// godotenv does not override variables that are already set
	for _, key := range []string{"STORE_TYPE", "MONGO_URI", "JWT_SECRET", "JWT_LIFETIME", "AUTH_REQUIRED_ROUTES"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
	t.Setenv("ENV_FILE", envFile)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, StoreMongo, cfg.StoreType)
	assert.Equal(t, "fromfile", cfg.JWTSecret)
	assert.Equal(t, 5*time.Minute, cfg.JWTLifetime)
	assert.True(t, cfg.RequiresAuth("articles", "create"))
	assert.True(t, cfg.RequiresAuth("comments", "delete"))
}

func TestGetEnvAsDuration(t *testing.T) {
	t.Setenv("TEST_DURATION", "90s")
	assert.Equal(t, 90*time.Second, getEnvAsDuration("TEST_DURATION", time.Minute))

	t.Setenv("TEST_DURATION", "bogus")
	assert.Equal(t, time.Minute, getEnvAsDuration("TEST_DURATION", time.Minute))
}
