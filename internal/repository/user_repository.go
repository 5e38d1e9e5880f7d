package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Aasthik17/ExpenseEase/shared/apperrors"
	"github.com/Aasthik17/ExpenseEase/shared/models"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (user_id, name, email, pin, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.db.ExecContext(ctx, query, user.ID, user.Name, user.Email, user.Pin, user.CreatedAt)
	if err != nil {
		return writeError("create user", err)
	}
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	query := `
		SELECT user_id, name, email, created_at
		FROM users
		WHERE user_id = $1
	`
	return r.scanOne(r.db.QueryRowContext(ctx, query, id))
}

// GetByCredentials matches email and PIN exactly; both comparisons are
// case-sensitive.
func (r *UserRepository) GetByCredentials(ctx context.Context, email, pin string) (*models.User, error) {
	query := `
		SELECT user_id, name, email, created_at
		FROM users
		WHERE email = $1 AND pin = $2
		LIMIT 1
	`
	return r.scanOne(r.db.QueryRowContext(ctx, query, email, pin))
}

func (r *UserRepository) scanOne(row *sql.Row) (*models.User, error) {
	var user models.User
	err := row.Scan(&user.ID, &user.Name, &user.Email, &user.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NotFound("user")
	}
	if err != nil {
		return nil, apperrors.Store("get user", err)
	}
	return &user, nil
}
