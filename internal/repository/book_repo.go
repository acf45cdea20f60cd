package repository

import (
	"bookslist/internal/models"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

type BookSQLite struct {
	db *sql.DB
}

func NewBookSQLite(db *sql.DB) *BookSQLite {
	return &BookSQLite{db: db}
}

var _ Books = (*BookSQLite)(nil)

const (
	selectBooksByUserSQL = `
		SELECT id, user_id, title, author, year, genre, status
		FROM books WHERE user_id = ? ORDER BY id
	`
	selectBookSQL = `
		SELECT id, user_id, title, author, year, genre, status
		FROM books WHERE id = ? AND user_id = ?
	`
	insertBookSQL = `
		INSERT INTO books (user_id, title, author, year, genre, status)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	updateBookSQL = `
		UPDATE books SET title = ?, author = ?, year = ?, genre = ?, status = ?
		WHERE id = ? AND user_id = ?
	`
	updateBookStatusSQL = `UPDATE books SET status = ? WHERE id = ? AND user_id = ?`
	deleteBookSQL       = `DELETE FROM books WHERE id = ? AND user_id = ?`
)

// marshalGenre converts the tag slice to a JSON string for the TEXT column.
func marshalGenre(genre []string) (string, error) {
	if genre == nil {
		genre = []string{}
	}
	b, err := json.Marshal(genre)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// unmarshalGenre parses a JSON string into a tag slice, never returning nil
// so that the field serializes as [] rather than null.
func unmarshalGenre(s string) ([]string, error) {
	genre := []string{}
	if s == "" {
		return genre, nil
	}
	if err := json.Unmarshal([]byte(s), &genre); err != nil {
		return nil, err
	}
	if genre == nil {
		genre = []string{}
	}
	return genre, nil
}

func scanBook(row interface{ Scan(...any) error }) (*models.Book, error) {
	var b models.Book
	var genreJSON string
	if err := row.Scan(&b.ID, &b.UserID, &b.Title, &b.Author, &b.Year, &genreJSON, &b.Status); err != nil {
		return nil, err
	}
	genre, err := unmarshalGenre(genreJSON)
	if err != nil {
		return nil, fmt.Errorf("decode genre for book id=%d: %w", b.ID, err)
	}
	b.Genre = genre
	return &b, nil
}

// ListByUser returns all books owned by userID ordered by id.
func (r *BookSQLite) ListByUser(ctx context.Context, userID int) ([]models.Book, error) {
	rows, err := r.db.QueryContext(ctx, selectBooksByUserSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("select books for user id=%d: %w", userID, err)
	}
	defer func() { _ = rows.Close() }()

	books := []models.Book{}
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, fmt.Errorf("scan book row: %w", err)
		}
		books = append(books, *b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate book rows: %w", err)
	}
	return books, nil
}

// GetByID fetches a book scoped to its owner. Returns (nil, nil) if there is
// no such book under that user.
func (r *BookSQLite) GetByID(ctx context.Context, userID, bookID int) (*models.Book, error) {
	b, err := scanBook(r.db.QueryRowContext(ctx, selectBookSQL, bookID, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select book id=%d user id=%d: %w", bookID, userID, err)
	}
	return b, nil
}

// Create inserts a book inside a single transaction: the owner row is checked
// and the insert committed as one unit, so a concurrently deleted owner can
// never leave an orphan. Returns ErrOwnerNotFound if the user is gone.
func (r *BookSQLite) Create(ctx context.Context, book models.Book) (int, error) {
	genreJSON, err := marshalGenre(book.Genre)
	if err != nil {
		return 0, fmt.Errorf("encode genre: %w", err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin insert book: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var ownerPresent bool
	if err := tx.QueryRowContext(ctx, userExistsSQL, book.UserID).Scan(&ownerPresent); err != nil {
		return 0, fmt.Errorf("check owner id=%d: %w", book.UserID, err)
	}
	if !ownerPresent {
		return 0, ErrOwnerNotFound
	}

	res, err := tx.ExecContext(ctx, insertBookSQL,
		book.UserID, book.Title, book.Author, book.Year, genreJSON, book.Status)
	if err != nil {
		return 0, fmt.Errorf("insert book for user id=%d: %w", book.UserID, err)
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for book: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit insert book: %w", err)
	}
	return int(lastID), nil
}

// Update replaces all mutable fields of a book scoped to its owner.
// Returns false if no row matched the (id, user_id) pair.
func (r *BookSQLite) Update(ctx context.Context, book models.Book) (bool, error) {
	genreJSON, err := marshalGenre(book.Genre)
	if err != nil {
		return false, fmt.Errorf("encode genre: %w", err)
	}
	res, err := r.db.ExecContext(ctx, updateBookSQL,
		book.Title, book.Author, book.Year, genreJSON, book.Status, book.ID, book.UserID)
	if err != nil {
		return false, fmt.Errorf("update book id=%d user id=%d: %w", book.ID, book.UserID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected for book id=%d: %w", book.ID, err)
	}
	return n > 0, nil
}

// UpdateStatus changes only the status column of a book scoped to its owner.
// Returns false if no row matched.
func (r *BookSQLite) UpdateStatus(ctx context.Context, userID, bookID int, status models.ReadStatus) (bool, error) {
	res, err := r.db.ExecContext(ctx, updateBookStatusSQL, status, bookID, userID)
	if err != nil {
		return false, fmt.Errorf("update status for book id=%d user id=%d: %w", bookID, userID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected for book id=%d: %w", bookID, err)
	}
	return n > 0, nil
}

// Delete removes a book scoped to its owner. Returns false if no row matched.
func (r *BookSQLite) Delete(ctx context.Context, userID, bookID int) (bool, error) {
	res, err := r.db.ExecContext(ctx, deleteBookSQL, bookID, userID)
	if err != nil {
		return false, fmt.Errorf("delete book id=%d user id=%d: %w", bookID, userID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected for book id=%d: %w", bookID, err)
	}
	return n > 0, nil
}
