package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"bookslist/internal/models"
	"bookslist/internal/repository"
)

// BookService implements the per-user book catalog.
type BookService struct {
	users repository.Users
	books repository.Books
}

func NewBookService(users repository.Users, books repository.Books) *BookService {
	return &BookService{users: users, books: books}
}

var _ Books = (*BookService)(nil)

func validateBookFields(in BookInput) error {
	if strings.TrimSpace(in.Title) == "" {
		return fmt.Errorf("title is required: %w", ErrValidation)
	}
	if strings.TrimSpace(in.Author) == "" {
		return fmt.Errorf("author is required: %w", ErrValidation)
	}
	return nil
}

func validateStatus(status models.ReadStatus) error {
	if !status.Valid() {
		return fmt.Errorf("invalid status %q: %w", status, ErrValidation)
	}
	return nil
}

// requireUser fails with ErrNotFound when the user row is absent.
func (s *BookService) requireUser(ctx context.Context, userID int) error {
	present, err := s.users.Exists(ctx, userID)
	if err != nil {
		return err
	}
	if !present {
		return fmt.Errorf("user id=%d: %w", userID, ErrNotFound)
	}
	return nil
}

// ListForUser returns all books owned by userID.
func (s *BookService) ListForUser(ctx context.Context, userID int) ([]models.Book, error) {
	if err := s.requireUser(ctx, userID); err != nil {
		return nil, err
	}
	return s.books.ListByUser(ctx, userID)
}

// Get returns one book; a book under a different owner behaves as absent.
func (s *BookService) Get(ctx context.Context, userID, bookID int) (*models.Book, error) {
	if err := s.requireUser(ctx, userID); err != nil {
		return nil, err
	}
	b, err := s.books.GetByID(ctx, userID, bookID)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, fmt.Errorf("book id=%d user id=%d: %w", bookID, userID, ErrNotFound)
	}
	return b, nil
}

// Create adds a book for userID; new books always start at ToRead.
func (s *BookService) Create(ctx context.Context, userID int, in BookInput) (*models.Book, error) {
	if err := validateBookFields(in); err != nil {
		return nil, err
	}

	book := models.Book{
		UserID: userID,
		Title:  in.Title,
		Author: in.Author,
		Year:   in.Year,
		Genre:  in.Genre,
		Status: models.StatusToRead,
	}
	id, err := s.books.Create(ctx, book)
	if err != nil {
		if errors.Is(err, repository.ErrOwnerNotFound) {
			return nil, fmt.Errorf("user id=%d: %w", userID, ErrNotFound)
		}
		return nil, err
	}
	book.ID = id
	if book.Genre == nil {
		book.Genre = []string{}
	}
	return &book, nil
}

// Update replaces all mutable fields of a book.
func (s *BookService) Update(ctx context.Context, userID, bookID int, in BookInput) (*models.Book, error) {
	if err := validateBookFields(in); err != nil {
		return nil, err
	}
	if err := validateStatus(in.Status); err != nil {
		return nil, err
	}

	book := models.Book{
		ID:     bookID,
		UserID: userID,
		Title:  in.Title,
		Author: in.Author,
		Year:   in.Year,
		Genre:  in.Genre,
		Status: in.Status,
	}
	ok, err := s.books.Update(ctx, book)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("book id=%d user id=%d: %w", bookID, userID, ErrNotFound)
	}
	if book.Genre == nil {
		book.Genre = []string{}
	}
	return &book, nil
}

// UpdateStatus changes only the status of a book, leaving every other field
// untouched, and returns the updated record.
func (s *BookService) UpdateStatus(ctx context.Context, userID, bookID int, status models.ReadStatus) (*models.Book, error) {
	if err := validateStatus(status); err != nil {
		return nil, err
	}
	ok, err := s.books.UpdateStatus(ctx, userID, bookID, status)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("book id=%d user id=%d: %w", bookID, userID, ErrNotFound)
	}
	b, err := s.books.GetByID(ctx, userID, bookID)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, fmt.Errorf("book id=%d user id=%d: %w", bookID, userID, ErrNotFound)
	}
	return b, nil
}

// Delete removes a book scoped to its owner.
func (s *BookService) Delete(ctx context.Context, userID, bookID int) error {
	ok, err := s.books.Delete(ctx, userID, bookID)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("book id=%d user id=%d: %w", bookID, userID, ErrNotFound)
	}
	return nil
}
