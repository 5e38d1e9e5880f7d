package repository

import (
	"context"
	"database/sql"

	"github.com/Aasthik17/ExpenseEase/shared/apperrors"
	"github.com/Aasthik17/ExpenseEase/shared/models"
)

// ExpenseReadRepository serves ledger listings straight from PostgreSQL.
type ExpenseReadRepository struct {
	db *sql.DB
}

func NewExpenseReadRepository(db *sql.DB) *ExpenseReadRepository {
	return &ExpenseReadRepository{db: db}
}

// ListByUserID returns the user's expenses, newest date first. The result is
// never nil.
func (r *ExpenseReadRepository) ListByUserID(ctx context.Context, userID string) ([]models.Expense, error) {
	query := `
		SELECT ` + expenseColumns + `
		FROM expenses
		WHERE user_id = $1
		ORDER BY date DESC
	`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, apperrors.Store("list expenses", err)
	}
	defer rows.Close()

	expenses := make([]models.Expense, 0)
	for rows.Next() {
		expense, err := scanExpense(rows)
		if err != nil {
			return nil, apperrors.Store("scan expense", err)
		}
		expenses = append(expenses, *expense)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Store("list expenses", err)
	}
	return expenses, nil
}
