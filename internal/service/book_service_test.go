package service

import (
	"context"
	"testing"

	"bookslist/internal/models"
	"bookslist/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func existingUsers(ids ...int) *mockUserRepo {
	present := map[int]bool{}
	for _, id := range ids {
		present[id] = true
	}
	return &mockUserRepo{
		ExistsFn: func(id int) (bool, error) { return present[id], nil },
	}
}

func TestBookService_Create_DefaultsToToRead(t *testing.T) {
	var inserted models.Book
	books := &mockBookRepo{
		CreateFn: func(b models.Book) (int, error) {
			inserted = b
			return 11, nil
		},
	}
	svc := NewBookService(existingUsers(3), books)

	got, err := svc.Create(context.Background(), 3, BookInput{
		Title:  "Dune",
		Author: "Herbert",
		Year:   1965,
		Genre:  []string{"scifi"},
	})
	require.NoError(t, err)
	assert.Equal(t, 11, got.ID)
	assert.Equal(t, 3, got.UserID)
	assert.Equal(t, models.StatusToRead, got.Status)
	assert.Equal(t, models.StatusToRead, inserted.Status)
	assert.Equal(t, []string{"scifi"}, got.Genre)
}

func TestBookService_Create_Validation(t *testing.T) {
	svc := NewBookService(existingUsers(3), &mockBookRepo{})

	_, err := svc.Create(context.Background(), 3, BookInput{Author: "Herbert"})
	require.ErrorIs(t, err, ErrValidation)

	_, err = svc.Create(context.Background(), 3, BookInput{Title: "Dune"})
	require.ErrorIs(t, err, ErrValidation)
}

func TestBookService_Create_OwnerMissing(t *testing.T) {
	books := &mockBookRepo{
		CreateFn: func(models.Book) (int, error) { return 0, repository.ErrOwnerNotFound },
	}
	svc := NewBookService(existingUsers(), books)

	_, err := svc.Create(context.Background(), 42, BookInput{Title: "X", Author: "Y"})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestBookService_ListForUser(t *testing.T) {
	books := &mockBookRepo{
		ListByUserFn: func(userID int) ([]models.Book, error) {
			return []models.Book{{ID: 1, UserID: userID, Title: "Dune"}}, nil
		},
	}
	svc := NewBookService(existingUsers(3), books)

	got, err := svc.ListForUser(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, got, 1)

	_, err = svc.ListForUser(context.Background(), 42)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestBookService_Get_WrongOwnerBehavesAsMissing(t *testing.T) {
	// Book 9 exists under user 3 only; repo scoping returns nil for user 4.
	books := &mockBookRepo{
		GetByIDFn: func(userID, bookID int) (*models.Book, error) {
			if userID == 3 && bookID == 9 {
				return &models.Book{ID: 9, UserID: 3, Title: "Dune", Author: "Herbert"}, nil
			}
			return nil, nil
		},
	}
	svc := NewBookService(existingUsers(3, 4), books)

	got, err := svc.Get(context.Background(), 3, 9)
	require.NoError(t, err)
	assert.Equal(t, "Dune", got.Title)

	_, err = svc.Get(context.Background(), 4, 9)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestBookService_Update(t *testing.T) {
	var updated models.Book
	books := &mockBookRepo{
		UpdateFn: func(b models.Book) (bool, error) {
			updated = b
			return b.UserID == 3 && b.ID == 9, nil
		},
	}
	svc := NewBookService(existingUsers(3, 4), books)

	in := BookInput{Title: "Dune", Author: "Herbert", Year: 1965, Genre: []string{"scifi"}, Status: models.StatusCompleted}

	got, err := svc.Update(context.Background(), 3, 9, in)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, got.Status)
	assert.Equal(t, "Dune", updated.Title)

	// wrong owner behaves exactly like a missing book
	_, err = svc.Update(context.Background(), 4, 9, in)
	require.ErrorIs(t, err, ErrNotFound)

	// unknown status value
	in.Status = "Reading"
	_, err = svc.Update(context.Background(), 3, 9, in)
	require.ErrorIs(t, err, ErrValidation)
}

func TestBookService_UpdateStatus_ChangesOnlyStatus(t *testing.T) {
	stored := models.Book{
		ID: 9, UserID: 3, Title: "Dune", Author: "Herbert",
		Year: 1965, Genre: []string{"scifi"}, Status: models.StatusToRead,
	}
	books := &mockBookRepo{
		UpdateStatusFn: func(userID, bookID int, status models.ReadStatus) (bool, error) {
			if userID != 3 || bookID != 9 {
				return false, nil
			}
			stored.Status = status
			return true, nil
		},
		GetByIDFn: func(userID, bookID int) (*models.Book, error) {
			b := stored
			return &b, nil
		},
	}
	svc := NewBookService(existingUsers(3), books)

	got, err := svc.UpdateStatus(context.Background(), 3, 9, models.StatusCompleted)
	require.NoError(t, err)

	assert.Equal(t, models.StatusCompleted, got.Status)
	// every other field is untouched
	assert.Equal(t, "Dune", got.Title)
	assert.Equal(t, "Herbert", got.Author)
	assert.Equal(t, 1965, got.Year)
	assert.Equal(t, []string{"scifi"}, got.Genre)

	_, err = svc.UpdateStatus(context.Background(), 3, 9, "Paused")
	require.ErrorIs(t, err, ErrValidation)

	_, err = svc.UpdateStatus(context.Background(), 4, 9, models.StatusCompleted)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestBookService_Delete(t *testing.T) {
	books := &mockBookRepo{
		DeleteFn: func(userID, bookID int) (bool, error) {
			return userID == 3 && bookID == 9, nil
		},
	}
	svc := NewBookService(existingUsers(3, 4), books)

	require.NoError(t, svc.Delete(context.Background(), 3, 9))
	require.ErrorIs(t, svc.Delete(context.Background(), 4, 9), ErrNotFound)
	require.ErrorIs(t, svc.Delete(context.Background(), 3, 10), ErrNotFound)
}
