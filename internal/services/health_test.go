package services

import (
	"context"
	"testing"

	"github.com/localnerve/articles-api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestHealthCheck(t *testing.T) {
	store := testutil.NewTestStore(t)

	result := HealthCheck(context.Background(), store, zap.NewNop())
	assert.Equal(t, "healthy", result.Status)
	assert.Equal(t, "ok", result.Database)
	assert.Equal(t, "sql", result.Details["store"])

	_ = store.Close(context.Background())
	result = HealthCheck(context.Background(), store, zap.NewNop())
	assert.Equal(t, "unhealthy", result.Status)
	assert.Equal(t, "unreachable", result.Database)
	assert.NotEmpty(t, result.ErrorMessage)
}
