package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Aasthik17/ExpenseEase/shared/apperrors"
	"github.com/Aasthik17/ExpenseEase/shared/models"
)

type PreferencesRepository struct {
	db *sql.DB
}

func NewPreferencesRepository(db *sql.DB) *PreferencesRepository {
	return &PreferencesRepository{db: db}
}

// Create inserts a preferences row. It does not check for an existing row
// for the same user.
func (r *PreferencesRepository) Create(ctx context.Context, prefs *models.Preferences) error {
	query := `
		INSERT INTO user_preferences (user_id, theme_mode, currency_code)
		VALUES ($1, $2, $3)
	`
	_, err := r.db.ExecContext(ctx, query, prefs.UserID, prefs.ThemeMode, prefs.CurrencyCode)
	if err != nil {
		return writeError("create preferences", err)
	}
	return nil
}

// GetByUserID returns the oldest preferences row for the user.
func (r *PreferencesRepository) GetByUserID(ctx context.Context, userID string) (*models.Preferences, error) {
	query := `
		SELECT user_id, theme_mode, currency_code
		FROM user_preferences
		WHERE user_id = $1
		ORDER BY preference_id
		LIMIT 1
	`
	var prefs models.Preferences
	err := r.db.QueryRowContext(ctx, query, userID).Scan(&prefs.UserID, &prefs.ThemeMode, &prefs.CurrencyCode)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NotFound("preferences")
	}
	if err != nil {
		return nil, apperrors.Store("get preferences", err)
	}
	return &prefs, nil
}
