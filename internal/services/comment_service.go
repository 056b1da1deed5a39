package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/localnerve/articles-api/internal/dto"
	"github.com/localnerve/articles-api/internal/repository"
)

// CommentService manages comments
type CommentService struct {
	repo   repository.CommentRepository
	checks *checks
	opts   Options
}

// NewCommentService creates a CommentService over the store
func NewCommentService(store *repository.Store, opts Options) *CommentService {
	return &CommentService{
		repo:   store.Comments,
		checks: &checks{store: store, excludesSelf: opts.UniqueCheckExcludesSelf},
		opts:   opts,
	}
}

// List returns every comment
func (s *CommentService) List(ctx context.Context) ([]dto.CommentDTO, error) {
	comments, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	result := make([]dto.CommentDTO, 0, len(comments))
	for i := range comments {
		result = append(result, *dto.ToCommentDTO(&comments[i]))
	}
	return result, nil
}

// Get returns the comment, or nil when there is none with the id
func (s *CommentService) Get(ctx context.Context, id int) (*dto.CommentDTO, error) {
	comment, err := s.repo.Get(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get comment %d: %w", id, err)
	}
	return dto.ToCommentDTO(comment), nil
}

// Create checks the article, then the user, and stores a new comment
func (s *CommentService) Create(ctx context.Context, req *dto.UpdateCommentRequest) (*dto.CommentDTO, error) {
	comment := dto.NewComment(req, s.opts.now())
	if err := s.checks.commentRefs(ctx, comment); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}
	return dto.ToCommentDTO(comment), nil
}

// Update overlays req onto the stored comment. It returns nil when there is none with the id.
func (s *CommentService) Update(ctx context.Context, id int, req *dto.UpdateCommentRequest) (*dto.CommentDTO, error) {
	comment, err := s.repo.Get(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get comment %d: %w", id, err)
	}

	dto.ApplyCommentRequest(req, comment, s.opts.now())
	if err := s.checks.commentRefs(ctx, comment); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, comment); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update comment %d: %w", id, err)
	}
	return dto.ToCommentDTO(comment), nil
}

// Delete removes the comment
func (s *CommentService) Delete(ctx context.Context, id int) error {
	return deleteError(s.repo.Delete(ctx, id), "Comment", id)
}
