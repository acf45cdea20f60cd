package service

import (
	"context"
	"fmt"
	"strings"

	"bookslist/internal/models"
	"bookslist/internal/repository"
)

// UserService implements the user directory over the repository layer.
type UserService struct {
	users repository.Users
	books repository.Books
}

func NewUserService(users repository.Users, books repository.Books) *UserService {
	return &UserService{users: users, books: books}
}

var _ Users = (*UserService)(nil)

// List returns all users with their books attached.
func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		books, err := s.books.ListByUser(ctx, users[i].ID)
		if err != nil {
			return nil, err
		}
		users[i].Books = books
	}
	return users, nil
}

// Get returns a single user with books attached.
func (s *UserService) Get(ctx context.Context, id int) (*models.User, error) {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, fmt.Errorf("user id=%d: %w", id, ErrNotFound)
	}
	books, err := s.books.ListByUser(ctx, id)
	if err != nil {
		return nil, err
	}
	u.Books = books
	return u, nil
}

// Update renames a user and returns the updated record.
func (s *UserService) Update(ctx context.Context, id int, name string) (*models.User, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("name is required: %w", ErrValidation)
	}

	taken, err := s.users.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if taken != nil && taken.ID != id {
		return nil, fmt.Errorf("user %q: %w", name, ErrConflict)
	}

	ok, err := s.users.UpdateName(ctx, id, name)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("user id=%d: %w", id, ErrNotFound)
	}
	return s.Get(ctx, id)
}

// Delete removes a user. Owned books are cascade-deleted by the store.
func (s *UserService) Delete(ctx context.Context, id int) error {
	ok, err := s.users.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("user id=%d: %w", id, ErrNotFound)
	}
	return nil
}
