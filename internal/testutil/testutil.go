// Package testutil provides in-memory stores and fixtures for package tests.
package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/localnerve/articles-api/internal/database"
	"github.com/localnerve/articles-api/internal/models"
	"github.com/localnerve/articles-api/internal/repository"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewTestDB creates a migrated in-memory SQLite database for testing
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}

	// Every pooled connection to ":memory:" would get its own empty database
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("Failed to get underlying SQL DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return db
}

// NewTestStore returns a GORM backed Store over a fresh in-memory database
func NewTestStore(t *testing.T) *repository.Store {
	t.Helper()
	return repository.NewGormStore(NewTestDB(t))
}

// Seed mirrors the document store defaults: one user, category, article and comment, all with id 1
func Seed(t *testing.T, store *repository.Store) {
	t.Helper()
	ctx := context.Background()
	now := time.Now().UTC()

	if err := store.Users.Create(ctx, &models.User{UserName: "User", Email: "email", Password: "123456"}); err != nil {
		t.Fatalf("Failed to seed user: %v", err)
	}
	if err := store.Categories.Create(ctx, &models.ArticleCategory{CategoryName: "Default Category"}); err != nil {
		t.Fatalf("Failed to seed category: %v", err)
	}
	if err := store.Articles.Create(ctx, &models.Article{
		Title: "Default Article", Content: "Default content", CreatedDate: now, UserID: 1, CategoryID: 1,
	}); err != nil {
		t.Fatalf("Failed to seed article: %v", err)
	}
	if err := store.Comments.Create(ctx, &models.Comment{
		Content: "Default Content", CreateDate: now, UserID: 1, ArticleID: 1,
	}); err != nil {
		t.Fatalf("Failed to seed comment: %v", err)
	}
}
