package database

import (
	"testing"

	"github.com/localnerve/articles-api/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"
)

func TestDialectorByType(t *testing.T) {
	cases := map[string]string{
		"mysql":     "mysql",
		"mariadb":   "mysql",
		"postgres":  "postgres",
		"sqlite":    "sqlite",
		"sqlserver": "sqlserver",
		"mssql":     "sqlserver",
	}
	for dbType, name := range cases {
		cfg := &config.Config{DBType: dbType, DBHost: "localhost", DBDatabase: "articles", DBUser: "u"}
		dialector, err := Dialector(cfg)
		require.NoError(t, err, dbType)
		assert.Equal(t, name, dialector.Name(), dbType)
	}

	_, err := Dialector(&config.Config{DBType: "oracle"})
	assert.Error(t, err)
}

func TestPortOrDefault(t *testing.T) {
	assert.Equal(t, "3306", portOrDefault("", "3306"))
	assert.Equal(t, "3307", portOrDefault("3307", "3306"))
}

func TestGormLogLevel(t *testing.T) {
	assert.Equal(t, logger.Silent, gormLogLevel("silent"))
	assert.Equal(t, logger.Info, gormLogLevel("info"))
	assert.Equal(t, logger.Warn, gormLogLevel(""))
}
