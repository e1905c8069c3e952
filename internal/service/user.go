package service

import (
	"context"
	"errors"

	"github.com/veritable/veritable-go/internal/model"
	"github.com/veritable/veritable-go/internal/repository"
)

// UserService handles the administrative user listing and deletion routes.
type UserService struct {
	users *repository.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(users *repository.UserRepository) *UserService {
	return &UserService{users: users}
}

// List returns every user. The password hash is excluded at the model level.
func (s *UserService) List(ctx context.Context) ([]model.User, error) {
	return s.users.List(ctx)
}

// Delete removes a user account. Any authenticated principal may delete any
// user; the missing ownership check is a known gap kept from the original.
func (s *UserService) Delete(ctx context.Context, id int64) error {
	err := s.users.Delete(ctx, id)
	if errors.Is(err, repository.ErrUserNotFound) {
		return ErrUserNotFound
	}
	return err
}
