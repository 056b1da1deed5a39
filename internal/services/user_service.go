package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/localnerve/articles-api/internal/dto"
	"github.com/localnerve/articles-api/internal/repository"
	"github.com/localnerve/articles-api/internal/types"
)

// UserService manages users
type UserService struct {
	repo   repository.UserRepository
	checks *checks
}

// NewUserService creates a UserService over the store
func NewUserService(store *repository.Store, opts Options) *UserService {
	return &UserService{
		repo:   store.Users,
		checks: &checks{store: store, excludesSelf: opts.UniqueCheckExcludesSelf},
	}
}

// List returns every user
func (s *UserService) List(ctx context.Context) ([]dto.UserDTO, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	result := make([]dto.UserDTO, 0, len(users))
	for i := range users {
		result = append(result, *dto.ToUserDTO(&users[i]))
	}
	return result, nil
}

// Get returns the user, or nil when there is none with the id
func (s *UserService) Get(ctx context.Context, id int) (*dto.UserDTO, error) {
	user, err := s.repo.Get(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user %d: %w", id, err)
	}
	return dto.ToUserDTO(user), nil
}

// Create checks user name and email uniqueness, then stores a new user
func (s *UserService) Create(ctx context.Context, req *dto.UpdateUserRequest) (*dto.UserDTO, error) {
	user := dto.NewUser(req)
	if err := s.checks.userUnique(ctx, user, 0); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, userWriteError(err)
	}
	return dto.ToUserDTO(user), nil
}

// Update overlays req onto the stored user. It returns nil when there is none with the id.
func (s *UserService) Update(ctx context.Context, id int, req *dto.UpdateUserRequest) (*dto.UserDTO, error) {
	user, err := s.repo.Get(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user %d: %w", id, err)
	}

	dto.ApplyUserRequest(req, user)
	if err := s.checks.userUnique(ctx, user, id); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, user); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil
		}
		return nil, userWriteError(err)
	}
	return dto.ToUserDTO(user), nil
}

// Delete removes the user. Articles and comments owned by it are left in place.
func (s *UserService) Delete(ctx context.Context, id int) error {
	return deleteError(s.repo.Delete(ctx, id), "User", id)
}

func userWriteError(err error) error {
	if errors.Is(err, repository.ErrDuplicate) {
		return types.Conflict("User with same user name or email exists.")
	}
	return fmt.Errorf("failed to write user: %w", err)
}

func deleteError(err error, entity string, id int) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, repository.ErrNotFound) {
		return types.NotFound(fmt.Sprintf("%s with id: %d not found.", entity, id))
	}
	return fmt.Errorf("failed to delete %s %d: %w", entity, id, err)
}
