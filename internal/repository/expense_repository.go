package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Aasthik17/ExpenseEase/shared/apperrors"
	"github.com/Aasthik17/ExpenseEase/shared/models"
)

const expenseColumns = `expense_id, user_id, title, amount, category, to_char(date, 'YYYY-MM-DD'), notes, source`

// ExpenseWriteRepository handles all state-mutating operations for expenses.
type ExpenseWriteRepository struct {
	db *sql.DB
}

func NewExpenseWriteRepository(db *sql.DB) *ExpenseWriteRepository {
	return &ExpenseWriteRepository{db: db}
}

// Create inserts the expense as given. user_id is not checked against users.
func (r *ExpenseWriteRepository) Create(ctx context.Context, expense *models.Expense) error {
	query := `
		INSERT INTO expenses (expense_id, user_id, title, amount, category, date, notes, source)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.db.ExecContext(ctx, query,
		expense.ID, expense.UserID, expense.Title, expense.Amount, expense.Category,
		expense.Date, nullString(expense.Notes), nullString(expense.Source),
	)
	if err != nil {
		return writeError("create expense", err)
	}
	return nil
}

// GetByID reads back a stored expense, including any values the store
// normalised on insert (e.g. amount rounding).
func (r *ExpenseWriteRepository) GetByID(ctx context.Context, id string) (*models.Expense, error) {
	query := `
		SELECT ` + expenseColumns + `
		FROM expenses
		WHERE expense_id = $1
	`
	expense, err := scanExpense(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NotFound("expense")
	}
	if err != nil {
		return nil, apperrors.Store("get expense", err)
	}
	return expense, nil
}

func (r *ExpenseWriteRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM expenses WHERE expense_id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return apperrors.Store("delete expense", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return apperrors.Store("check rows affected", err)
	}
	if rows == 0 {
		return apperrors.NotFound("expense")
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanExpense(row rowScanner) (*models.Expense, error) {
	var expense models.Expense
	var notes, source sql.NullString
	if err := row.Scan(
		&expense.ID, &expense.UserID, &expense.Title, &expense.Amount,
		&expense.Category, &expense.Date, &notes, &source,
	); err != nil {
		return nil, err
	}
	expense.Notes = stringPtr(notes)
	expense.Source = stringPtr(source)
	return &expense, nil
}
