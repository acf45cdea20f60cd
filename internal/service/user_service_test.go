package service

import (
	"context"
	"errors"
	"testing"

	"bookslist/internal/models"
)

// mockBookRepo is a lightweight in-test mock for repository.Books.
type mockBookRepo struct {
	ListByUserFn   func(userID int) ([]models.Book, error)
	GetByIDFn      func(userID, bookID int) (*models.Book, error)
	CreateFn       func(book models.Book) (int, error)
	UpdateFn       func(book models.Book) (bool, error)
	UpdateStatusFn func(userID, bookID int, status models.ReadStatus) (bool, error)
	DeleteFn       func(userID, bookID int) (bool, error)
}

func (m *mockBookRepo) ListByUser(_ context.Context, userID int) ([]models.Book, error) {
	return m.ListByUserFn(userID)
}

func (m *mockBookRepo) GetByID(_ context.Context, userID, bookID int) (*models.Book, error) {
	return m.GetByIDFn(userID, bookID)
}

func (m *mockBookRepo) Create(_ context.Context, book models.Book) (int, error) {
	return m.CreateFn(book)
}

func (m *mockBookRepo) Update(_ context.Context, book models.Book) (bool, error) {
	return m.UpdateFn(book)
}

func (m *mockBookRepo) UpdateStatus(_ context.Context, userID, bookID int, status models.ReadStatus) (bool, error) {
	return m.UpdateStatusFn(userID, bookID, status)
}

func (m *mockBookRepo) Delete(_ context.Context, userID, bookID int) (bool, error) {
	return m.DeleteFn(userID, bookID)
}

func TestUserService_List_AttachesBooks(t *testing.T) {
	users := &mockUserRepo{
		ListFn: func() ([]models.User, error) {
			return []models.User{{ID: 1, Name: "alice"}, {ID: 2, Name: "bob"}}, nil
		},
	}
	books := &mockBookRepo{
		ListByUserFn: func(userID int) ([]models.Book, error) {
			if userID == 1 {
				return []models.Book{{ID: 10, UserID: 1, Title: "Dune"}}, nil
			}
			return []models.Book{}, nil
		},
	}
	svc := NewUserService(users, books)

	got, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 users, got %d", len(got))
	}
	if len(got[0].Books) != 1 || got[0].Books[0].Title != "Dune" {
		t.Fatalf("expected alice's books attached, got %+v", got[0].Books)
	}
	if got[1].Books == nil || len(got[1].Books) != 0 {
		t.Fatalf("expected bob's books to be an empty list, got %#v", got[1].Books)
	}
}

func TestUserService_Get(t *testing.T) {
	users := &mockUserRepo{
		GetByIDFn: func(id int) (*models.User, error) {
			if id == 7 {
				return &models.User{ID: 7, Name: "alice"}, nil
			}
			return nil, nil
		},
	}
	books := &mockBookRepo{
		ListByUserFn: func(int) ([]models.Book, error) { return []models.Book{}, nil },
	}
	svc := NewUserService(users, books)

	u, err := svc.Get(context.Background(), 7)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if u.Name != "alice" || u.Books == nil {
		t.Fatalf("unexpected user: %+v", u)
	}

	if _, err := svc.Get(context.Background(), 99); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing user, got %v", err)
	}
}

func TestUserService_Update(t *testing.T) {
	t.Run("empty name", func(t *testing.T) {
		svc := NewUserService(&mockUserRepo{}, &mockBookRepo{})
		if _, err := svc.Update(context.Background(), 7, "  "); !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("name taken by another user", func(t *testing.T) {
		users := &mockUserRepo{
			GetByNameFn: func(name string) (*models.User, error) {
				return &models.User{ID: 2, Name: name}, nil
			},
		}
		svc := NewUserService(users, &mockBookRepo{})
		if _, err := svc.Update(context.Background(), 7, "bob"); !errors.Is(err, ErrConflict) {
			t.Fatalf("expected ErrConflict, got %v", err)
		}
	})

	t.Run("renaming to own current name is allowed", func(t *testing.T) {
		users := &mockUserRepo{
			GetByNameFn: func(name string) (*models.User, error) {
				return &models.User{ID: 7, Name: name}, nil
			},
			UpdateNameFn: func(id int, name string) (bool, error) { return true, nil },
			GetByIDFn: func(id int) (*models.User, error) {
				return &models.User{ID: 7, Name: "alice"}, nil
			},
		}
		books := &mockBookRepo{
			ListByUserFn: func(int) ([]models.Book, error) { return []models.Book{}, nil },
		}
		svc := NewUserService(users, books)
		if _, err := svc.Update(context.Background(), 7, "alice"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("missing user", func(t *testing.T) {
		users := &mockUserRepo{
			GetByNameFn:  func(string) (*models.User, error) { return nil, nil },
			UpdateNameFn: func(int, string) (bool, error) { return false, nil },
		}
		svc := NewUserService(users, &mockBookRepo{})
		if _, err := svc.Update(context.Background(), 99, "new"); !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestUserService_Delete(t *testing.T) {
	deleted := 0
	users := &mockUserRepo{
		DeleteFn: func(id int) (bool, error) {
			deleted = id
			return id == 7, nil
		},
	}
	svc := NewUserService(users, &mockBookRepo{})

	if err := svc.Delete(context.Background(), 7); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if deleted != 7 {
		t.Fatalf("expected repo delete for id 7, got %d", deleted)
	}

	if err := svc.Delete(context.Background(), 99); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
