package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/localnerve/articles-api/internal/dto"
	"github.com/localnerve/articles-api/internal/models"
	"github.com/localnerve/articles-api/internal/repository"
	"github.com/localnerve/articles-api/internal/types"
)

// ArticleService manages articles
type ArticleService struct {
	repo   repository.ArticleRepository
	checks *checks
	opts   Options
}

// NewArticleService creates an ArticleService over the store
func NewArticleService(store *repository.Store, opts Options) *ArticleService {
	return &ArticleService{
		repo:   store.Articles,
		checks: &checks{store: store, excludesSelf: opts.UniqueCheckExcludesSelf},
		opts:   opts,
	}
}

// List returns every article
func (s *ArticleService) List(ctx context.Context) ([]dto.ArticleDTO, error) {
	articles, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list articles: %w", err)
	}
	return toArticleDTOs(articles, func(*models.Article) bool { return true }), nil
}

// ListByUser returns the articles owned by the user
func (s *ArticleService) ListByUser(ctx context.Context, userID int) ([]dto.ArticleDTO, error) {
	articles, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list articles: %w", err)
	}
	return toArticleDTOs(articles, func(a *models.Article) bool { return a.UserID == userID }), nil
}

// Get returns the article, or nil when there is none with the id
func (s *ArticleService) Get(ctx context.Context, id int) (*dto.ArticleDTO, error) {
	article, err := s.repo.Get(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get article %d: %w", id, err)
	}
	return dto.ToArticleDTO(article), nil
}

// Create checks the user, the category and the title, then stores a new article
func (s *ArticleService) Create(ctx context.Context, req *dto.UpdateArticleRequest) (*dto.ArticleDTO, error) {
	article := dto.NewArticle(req, s.opts.now())
	if err := s.checks.articleRefs(ctx, article); err != nil {
		return nil, err
	}
	if err := s.checks.articleTitleUnique(ctx, article.Title); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, article); err != nil {
		return nil, articleWriteError(err, article.Title)
	}
	return dto.ToArticleDTO(article), nil
}

// Update overlays req onto the stored article. It returns nil when there is none with the id.
// The title is not rescanned, a clash is caught by the store.
func (s *ArticleService) Update(ctx context.Context, id int, req *dto.UpdateArticleRequest) (*dto.ArticleDTO, error) {
	article, err := s.repo.Get(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get article %d: %w", id, err)
	}

	dto.ApplyArticleRequest(req, article, s.opts.now())
	if err := s.checks.articleRefs(ctx, article); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, article); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil
		}
		return nil, articleWriteError(err, article.Title)
	}
	return dto.ToArticleDTO(article), nil
}

// Delete removes the article. Its comments are left in place.
func (s *ArticleService) Delete(ctx context.Context, id int) error {
	return deleteError(s.repo.Delete(ctx, id), "Article", id)
}

func toArticleDTOs(articles []models.Article, keep func(*models.Article) bool) []dto.ArticleDTO {
	result := make([]dto.ArticleDTO, 0, len(articles))
	for i := range articles {
		if keep(&articles[i]) {
			result = append(result, *dto.ToArticleDTO(&articles[i]))
		}
	}
	return result
}

func articleWriteError(err error, title string) error {
	if errors.Is(err, repository.ErrDuplicate) {
		return types.Conflict(ArticleTitleExists(title))
	}
	return fmt.Errorf("failed to write article: %w", err)
}
