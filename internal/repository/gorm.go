package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/localnerve/articles-api/internal/models"
	"gorm.io/gorm"
)

// KindSQL identifies a Store backed by GORM
const KindSQL = "sql"

// gormRepository implements Repository over a single GORM model.
// Identifiers are assigned by the database (auto-increment primary keys).
type gormRepository[T any] struct {
	db *gorm.DB
}

// NewGormStore builds a Store over an open GORM connection.
// The schema is expected to exist (see database.AutoMigrate).
func NewGormStore(db *gorm.DB) *Store {
	return &Store{
		Kind:       KindSQL,
		Users:      &gormRepository[models.User]{db: db},
		Articles:   &gormRepository[models.Article]{db: db},
		Categories: &gormRepository[models.ArticleCategory]{db: db},
		Comments:   &gormRepository[models.Comment]{db: db},
		ping: func(ctx context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		},
		close: func(context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.Close()
		},
	}
}

func (r *gormRepository[T]) List(ctx context.Context) ([]T, error) {
	var items []T
	if err := r.db.WithContext(ctx).Order("id").Find(&items).Error; err != nil {
		return nil, translateGormError(err)
	}
	return items, nil
}

func (r *gormRepository[T]) Get(ctx context.Context, id int) (*T, error) {
	var item T
	if err := r.db.WithContext(ctx).First(&item, id).Error; err != nil {
		return nil, translateGormError(err)
	}
	return &item, nil
}

func (r *gormRepository[T]) Create(ctx context.Context, entity *T) error {
	return translateGormError(r.db.WithContext(ctx).Create(entity).Error)
}

// Update writes the full record. Select("*") keeps zero values in the statement.
func (r *gormRepository[T]) Update(ctx context.Context, entity *T) error {
	return translateGormError(r.db.WithContext(ctx).Model(entity).Select("*").Updates(entity).Error)
}

func (r *gormRepository[T]) Delete(ctx context.Context, id int) error {
	var item T
	result := r.db.WithContext(ctx).Delete(&item, id)
	if result.Error != nil {
		return translateGormError(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// translateGormError maps driver errors onto the repository sentinels.
// TranslateError covers most dialects; the message match catches drivers that do not translate.
func translateGormError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) || isDuplicateMessage(err.Error()) {
		return fmt.Errorf("%w: %v", ErrDuplicate, err)
	}
	return err
}

func isDuplicateMessage(msg string) bool {
	msg = strings.ToLower(msg)
	return strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "duplicate entry") ||
		strings.Contains(msg, "duplicate key")
}
