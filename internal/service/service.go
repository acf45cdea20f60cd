package service

import (
	"context"

	"bookslist/internal/models"
	"bookslist/internal/repository"
)

type Authorization interface {
	SignUp(ctx context.Context, name, password string) (int, error)
	GenerateToken(ctx context.Context, name, password string) (string, error)
	ParseToken(accessToken string) (*Claims, error)
}

// Users exposes directory operations over accounts; returned users always
// carry their book list.
type Users interface {
	List(ctx context.Context) ([]models.User, error)
	Get(ctx context.Context, id int) (*models.User, error)
	Update(ctx context.Context, id int, name string) (*models.User, error)
	Delete(ctx context.Context, id int) error
}

// BookInput carries caller-supplied book fields for create/update.
type BookInput struct {
	Title  string
	Author string
	Year   int
	Genre  []string
	Status models.ReadStatus
}

// Books exposes catalog operations, always scoped by the owning user.
type Books interface {
	ListForUser(ctx context.Context, userID int) ([]models.Book, error)
	Get(ctx context.Context, userID, bookID int) (*models.Book, error)
	Create(ctx context.Context, userID int, in BookInput) (*models.Book, error)
	Update(ctx context.Context, userID, bookID int, in BookInput) (*models.Book, error)
	UpdateStatus(ctx context.Context, userID, bookID int, status models.ReadStatus) (*models.Book, error)
	Delete(ctx context.Context, userID, bookID int) error
}

//
// Root Service aggregates all sub-services.
//

type Service struct {
	Authorization
	Users
	Books
}

// NewService wires the repository layer into concrete services.
func NewService(repos *repository.Repository, tokens TokenConfig) *Service {
	return &Service{
		Authorization: NewAuthService(repos.Users, tokens),
		Users:         NewUserService(repos.Users, repos.Books),
		Books:         NewBookService(repos.Users, repos.Books),
	}
}
