package repository

import (
	"bookslist/internal/models"
	"context"
	"database/sql"
	"errors"
	"fmt"
)

type UserSQLite struct {
	db *sql.DB
}

func NewUserSQLite(db *sql.DB) *UserSQLite {
	return &UserSQLite{db: db}
}

// Ensure implementation of Users interface at compile time.
var _ Users = (*UserSQLite)(nil)

const (
	insertUserSQL       = `INSERT INTO users (name, password_hash) VALUES (?, ?)`
	selectUserByNameSQL = `SELECT id, name, password_hash FROM users WHERE name = ?`
	selectUserByIDSQL   = `SELECT id, name, password_hash FROM users WHERE id = ?`
	selectAllUsersSQL   = `SELECT id, name, password_hash FROM users ORDER BY id`
	updateUserNameSQL   = `UPDATE users SET name = ? WHERE id = ?`
	deleteUserSQL       = `DELETE FROM users WHERE id = ?`
	userExistsSQL       = `SELECT EXISTS(SELECT 1 FROM users WHERE id = ?)`
)

// Create inserts a new user and returns its ID.
func (r *UserSQLite) Create(ctx context.Context, name, passwordHash string) (int, error) {
	res, err := r.db.ExecContext(ctx, insertUserSQL, name, passwordHash)
	if err != nil {
		return 0, fmt.Errorf("insert user %q: %w", name, err)
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for user %q: %w", name, err)
	}
	return int(lastID), nil
}

// GetByName fetches a user by name. Returns (nil, nil) if not found.
func (r *UserSQLite) GetByName(ctx context.Context, name string) (*models.User, error) {
	var u models.User
	err := r.db.QueryRowContext(ctx, selectUserByNameSQL, name).Scan(&u.ID, &u.Name, &u.PasswordHash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select user %q: %w", name, err)
	}
	return &u, nil
}

// GetByID fetches a user by id. Returns (nil, nil) if not found.
// Books are not attached here; the service layer joins them in.
func (r *UserSQLite) GetByID(ctx context.Context, id int) (*models.User, error) {
	var u models.User
	err := r.db.QueryRowContext(ctx, selectUserByIDSQL, id).Scan(&u.ID, &u.Name, &u.PasswordHash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select user id=%d: %w", id, err)
	}
	return &u, nil
}

// List returns all users ordered by id.
func (r *UserSQLite) List(ctx context.Context) ([]models.User, error) {
	rows, err := r.db.QueryContext(ctx, selectAllUsersSQL)
	if err != nil {
		return nil, fmt.Errorf("select users: %w", err)
	}
	defer func() { _ = rows.Close() }()

	users := []models.User{}
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Name, &u.PasswordHash); err != nil {
			return nil, fmt.Errorf("scan user row: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate user rows: %w", err)
	}
	return users, nil
}

// UpdateName renames a user. Returns false if no row matched.
func (r *UserSQLite) UpdateName(ctx context.Context, id int, name string) (bool, error) {
	res, err := r.db.ExecContext(ctx, updateUserNameSQL, name, id)
	if err != nil {
		return false, fmt.Errorf("update user id=%d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected for user id=%d: %w", id, err)
	}
	return n > 0, nil
}

// Delete removes a user. Owned books go with it via the FK cascade.
// Returns false if no row matched.
func (r *UserSQLite) Delete(ctx context.Context, id int) (bool, error) {
	res, err := r.db.ExecContext(ctx, deleteUserSQL, id)
	if err != nil {
		return false, fmt.Errorf("delete user id=%d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected for user id=%d: %w", id, err)
	}
	return n > 0, nil
}

// Exists reports whether a user row with the given id is present.
func (r *UserSQLite) Exists(ctx context.Context, id int) (bool, error) {
	var present bool
	if err := r.db.QueryRowContext(ctx, userExistsSQL, id).Scan(&present); err != nil {
		return false, fmt.Errorf("check user id=%d: %w", id, err)
	}
	return present, nil
}
