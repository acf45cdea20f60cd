package repository

import (
	"bookslist/internal/models"
	"context"
	"database/sql"
	"errors"
)

// ErrOwnerNotFound is returned by book writes whose owning user row is gone.
var ErrOwnerNotFound = errors.New("owner not found")

type Users interface {
	Create(ctx context.Context, name, passwordHash string) (int, error)
	GetByName(ctx context.Context, name string) (*models.User, error)
	GetByID(ctx context.Context, id int) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
	UpdateName(ctx context.Context, id int, name string) (bool, error)
	Delete(ctx context.Context, id int) (bool, error)
	Exists(ctx context.Context, id int) (bool, error)
}

// Books operations are always scoped by the owning user id; a book that
// exists under a different owner behaves exactly like a missing row.
type Books interface {
	ListByUser(ctx context.Context, userID int) ([]models.Book, error)
	GetByID(ctx context.Context, userID, bookID int) (*models.Book, error)
	Create(ctx context.Context, book models.Book) (int, error)
	Update(ctx context.Context, book models.Book) (bool, error)
	UpdateStatus(ctx context.Context, userID, bookID int, status models.ReadStatus) (bool, error)
	Delete(ctx context.Context, userID, bookID int) (bool, error)
}

type Repository struct {
	Users Users
	Books Books
}

func NewRepository(conn *sql.DB) *Repository {
	return &Repository{
		Users: NewUserSQLite(conn),
		Books: NewBookSQLite(conn),
	}
}
