package services

import (
	"context"
	"fmt"

	"github.com/localnerve/articles-api/internal/repository"
	"go.uber.org/zap"
)

// HealthCheckResult represents the result of a health check
type HealthCheckResult struct {
	Status       string            `json:"status"`
	Database     string            `json:"database"`
	Details      map[string]string `json:"details,omitempty"`
	ErrorMessage string            `json:"error,omitempty"`
}

// HealthCheck pings the backing store
func HealthCheck(ctx context.Context, store *repository.Store, log *zap.Logger) HealthCheckResult {
	result := HealthCheckResult{
		Status:  "healthy",
		Details: map[string]string{"store": store.Kind},
	}

	if err := store.Ping(ctx); err != nil {
		result.Status = "unhealthy"
		result.Database = "unreachable"
		result.Details["database_ping_error"] = err.Error()
		result.ErrorMessage = fmt.Sprintf("Database ping failed: %v", err)
		log.Warn("Health check failed - database ping", zap.Error(err))
		return result
	}

	result.Database = "ok"
	log.Debug("Health check passed")
	return result
}
