package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/localnerve/articles-api/internal/dto"
	"github.com/localnerve/articles-api/internal/repository"
)

// ArticleCategoryService manages article categories. Categories carry no uniqueness
// or reference checks.
type ArticleCategoryService struct {
	repo repository.ArticleCategoryRepository
}

// NewArticleCategoryService creates an ArticleCategoryService over the store
func NewArticleCategoryService(store *repository.Store) *ArticleCategoryService {
	return &ArticleCategoryService{repo: store.Categories}
}

// List returns every category
func (s *ArticleCategoryService) List(ctx context.Context) ([]dto.ArticleCategoryDTO, error) {
	categories, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list article categories: %w", err)
	}
	result := make([]dto.ArticleCategoryDTO, 0, len(categories))
	for i := range categories {
		result = append(result, *dto.ToArticleCategoryDTO(&categories[i]))
	}
	return result, nil
}

// Get returns the category, or nil when there is none with the id
func (s *ArticleCategoryService) Get(ctx context.Context, id int) (*dto.ArticleCategoryDTO, error) {
	category, err := s.repo.Get(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get article category %d: %w", id, err)
	}
	return dto.ToArticleCategoryDTO(category), nil
}

// Create stores a new category
func (s *ArticleCategoryService) Create(ctx context.Context, req *dto.UpdateArticleCategoryRequest) (*dto.ArticleCategoryDTO, error) {
	category := dto.NewArticleCategory(req)
	if err := s.repo.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to create article category: %w", err)
	}
	return dto.ToArticleCategoryDTO(category), nil
}

// Update overlays req onto the stored category. It returns nil when there is none with the id.
func (s *ArticleCategoryService) Update(ctx context.Context, id int, req *dto.UpdateArticleCategoryRequest) (*dto.ArticleCategoryDTO, error) {
	category, err := s.repo.Get(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get article category %d: %w", id, err)
	}

	dto.ApplyArticleCategoryRequest(req, category)
	if err := s.repo.Update(ctx, category); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update article category %d: %w", id, err)
	}
	return dto.ToArticleCategoryDTO(category), nil
}

// Delete removes the category. Articles referencing it are left in place.
func (s *ArticleCategoryService) Delete(ctx context.Context, id int) error {
	return deleteError(s.repo.Delete(ctx, id), "Article category", id)
}
