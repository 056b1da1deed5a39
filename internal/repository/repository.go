// Package repository holds the storage contracts for users, articles, categories and comments,
// with a GORM implementation for relational databases and a MongoDB implementation.
package repository

import (
	"context"
	"errors"

	"github.com/localnerve/articles-api/internal/models"
)

var (
	// ErrNotFound is returned when no record has the requested id
	ErrNotFound = errors.New("record not found")

	// ErrDuplicate is returned when a write violates a unique index
	ErrDuplicate = errors.New("duplicate key")
)

// Repository is the storage contract shared by every entity type
type Repository[T any] interface {
	List(ctx context.Context) ([]T, error)
	Get(ctx context.Context, id int) (*T, error)
	Create(ctx context.Context, entity *T) error
	Update(ctx context.Context, entity *T) error
	Delete(ctx context.Context, id int) error
}

// UserRepository stores users
type UserRepository interface {
	Repository[models.User]
}

// ArticleRepository stores articles
type ArticleRepository interface {
	Repository[models.Article]
}

// ArticleCategoryRepository stores article categories
type ArticleCategoryRepository interface {
	Repository[models.ArticleCategory]
}

// CommentRepository stores comments
type CommentRepository interface {
	Repository[models.Comment]
}

// Store bundles the repositories of one backing database
type Store struct {
	Kind       string
	Users      UserRepository
	Articles   ArticleRepository
	Categories ArticleCategoryRepository
	Comments   CommentRepository

	ping  func(ctx context.Context) error
	close func(ctx context.Context) error
}

// Ping checks that the backing database is reachable
func (s *Store) Ping(ctx context.Context) error {
	if s.ping == nil {
		return nil
	}
	return s.ping(ctx)
}

// Close releases the backing database connection
func (s *Store) Close(ctx context.Context) error {
	if s.close == nil {
		return nil
	}
	return s.close(ctx)
}
