package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"catalog_service/internal/models"

	"github.com/jmoiron/sqlx"
)

type UserRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Ensure implementation of Authorization interface at compile time.
var _ Authorization = (*UserRepository)(nil)

const (
	insertUserSQL              = `INSERT INTO users (username, password_hash) VALUES (?, ?) RETURNING id`
	selectUserByCredentialsSQL = `SELECT id, username, password_hash FROM users WHERE username = ? AND password_hash = ?`
)

// Create inserts a new user and returns its ID. A taken username yields ErrDuplicate.
func (r *UserRepository) Create(ctx context.Context, username, passwordHash string) (int64, error) {
	var id int64
	err := r.db.QueryRowxContext(ctx, r.db.Rebind(insertUserSQL), username, passwordHash).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("insert user %q: %w", username, ErrDuplicate)
		}
		return 0, fmt.Errorf("insert user %q: %w", username, err)
	}
	return id, nil
}

// GetByCredentials fetches the user whose username and digest both match.
// Returns (nil, nil) if not found.
func (r *UserRepository) GetByCredentials(ctx context.Context, username, passwordHash string) (*models.User, error) {
	var u models.User
	err := r.db.GetContext(ctx, &u, r.db.Rebind(selectUserByCredentialsSQL), username, passwordHash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select user %q: %w", username, err)
	}
	return &u, nil
}
