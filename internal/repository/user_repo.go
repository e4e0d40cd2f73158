package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/kenoreyes238/keno-reyes-final-project-back/internal/db"
	"github.com/kenoreyes238/keno-reyes-final-project-back/internal/model"
)

// ErrUserNotFound is returned when no user row matches the lookup.
var ErrUserNotFound = errors.New("user not found")

// UserRepository runs user queries over the session bound to the current
// request. Construct one per request with the checked-out session.
type UserRepository struct {
	DB db.Querier
}

func NewUserRepository(q db.Querier) *UserRepository {
	return &UserRepository{DB: q}
}

// Create inserts a new user and returns the generated id. A duplicate email
// surfaces as a unique-violation error for the caller to classify.
func (r *UserRepository) Create(ctx context.Context, email, passwordHash string) (int64, error) {
	var id int64
	query := `INSERT INTO users (email, passwordhash) VALUES ($1, $2) RETURNING id`
	if err := r.DB.QueryRowContext(ctx, query, email, passwordHash).Scan(&id); err != nil {
		return 0, fmt.Errorf("error creating user: %w", err)
	}
	return id, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	var u model.User
	query := `SELECT id, email, passwordhash, created_at FROM users WHERE email=$1`
	err := r.DB.QueryRowContext(ctx, query, email).
		Scan(&u.ID, &u.Email, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("error fetching user by email: %w", err)
	}
	return &u, nil
}
