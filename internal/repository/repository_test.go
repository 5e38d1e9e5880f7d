package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/Aasthik17/ExpenseEase/shared/apperrors"
	"github.com/Aasthik17/ExpenseEase/shared/models"
	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
)

// ---- helpers ----

func newMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	t.Cleanup(func() {
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("unmet expectations: %v", err)
		}
		db.Close()
	})
	return db, mock
}

var expenseRowColumns = []string{"expense_id", "user_id", "title", "amount", "category", "date", "notes", "source"}

func strPtr(s string) *string { return &s }

// ---- users ----

func TestUserRepositoryCreate(t *testing.T) {
	user := &models.User{ID: "usr-AAAAAAAAAA", Name: "Asha", Email: "asha@example.com", Pin: "1234", CreatedAt: time.Now().UTC()}

	tests := []struct {
		name           string
		execErr        error
		wantConstraint bool
		wantMessage    string
		wantStore      bool
	}{
		{name: "success"},
		{
			name:           "constraint violation surfaces store message",
			execErr:        &pq.Error{Code: "23505", Message: `duplicate key value violates unique constraint "users_email_key"`},
			wantConstraint: true,
			wantMessage:    `duplicate key value violates unique constraint "users_email_key"`,
		},
		{
			name:           "malformed input is a constraint error",
			execErr:        &pq.Error{Code: "22001", Message: "value too long for type character varying(255)"},
			wantConstraint: true,
			wantMessage:    "value too long for type character varying(255)",
		},
		{name: "connection failure is a store error", execErr: errors.New("connection reset"), wantStore: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMock(t)
			exp := mock.ExpectExec(`INSERT INTO users`).
				WithArgs(user.ID, user.Name, user.Email, user.Pin, sqlmock.AnyArg())
			if tt.execErr != nil {
				exp.WillReturnError(tt.execErr)
			} else {
				exp.WillReturnResult(sqlmock.NewResult(0, 1))
			}

			err := NewUserRepository(db).Create(context.Background(), user)

			var constraintErr *apperrors.ConstraintError
			var storeErr *apperrors.StoreError
			switch {
			case tt.wantConstraint:
				if !errors.As(err, &constraintErr) {
					t.Fatalf("expected ConstraintError, got %v", err)
				}
				if constraintErr.Error() != tt.wantMessage {
					t.Errorf("expected message %q, got %q", tt.wantMessage, constraintErr.Error())
				}
			case tt.wantStore:
				if !errors.As(err, &storeErr) {
					t.Fatalf("expected StoreError, got %v", err)
				}
			default:
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
			}
		})
	}
}

func TestUserRepositoryGetByCredentials(t *testing.T) {
	created := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	t.Run("match", func(t *testing.T) {
		db, mock := newMock(t)
		mock.ExpectQuery(`(?s)FROM users.*WHERE email = \$1 AND pin = \$2`).
			WithArgs("asha@example.com", "1234").
			WillReturnRows(sqlmock.NewRows([]string{"user_id", "name", "email", "created_at"}).
				AddRow("usr-AAAAAAAAAA", "Asha", "asha@example.com", created))

		user, err := NewUserRepository(db).GetByCredentials(context.Background(), "asha@example.com", "1234")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if user.ID != "usr-AAAAAAAAAA" || user.Name != "Asha" || !user.CreatedAt.Equal(created) {
			t.Errorf("unexpected user %+v", user)
		}
		if user.Pin != "" {
			t.Errorf("PIN must not be read back")
		}
	})

	t.Run("no match", func(t *testing.T) {
		db, mock := newMock(t)
		mock.ExpectQuery(`(?s)FROM users.*WHERE email = \$1 AND pin = \$2`).
			WithArgs("asha@example.com", "9999").
			WillReturnRows(sqlmock.NewRows([]string{"user_id", "name", "email", "created_at"}))

		_, err := NewUserRepository(db).GetByCredentials(context.Background(), "asha@example.com", "9999")
		if !errors.Is(err, apperrors.ErrNotFound) {
			t.Fatalf("expected not found, got %v", err)
		}
	})

	t.Run("backend failure", func(t *testing.T) {
		db, mock := newMock(t)
		mock.ExpectQuery(`(?s)FROM users.*WHERE email = \$1 AND pin = \$2`).
			WillReturnError(errors.New("too many connections"))

		_, err := NewUserRepository(db).GetByCredentials(context.Background(), "asha@example.com", "1234")
		var storeErr *apperrors.StoreError
		if !errors.As(err, &storeErr) {
			t.Fatalf("expected StoreError, got %v", err)
		}
		if errors.Is(err, apperrors.ErrNotFound) {
			t.Errorf("backend failure must not look like not found")
		}
	})
}

func TestUserRepositoryGetByID(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectQuery(`(?s)FROM users.*WHERE user_id = \$1`).
		WithArgs("usr-MISSING000").
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "name", "email", "created_at"}))

	_, err := NewUserRepository(db).GetByID(context.Background(), "usr-MISSING000")
	var nf *apperrors.NotFoundError
	if !errors.As(err, &nf) || nf.Resource != "user" {
		t.Fatalf("expected user not found, got %v", err)
	}
}

// ---- preferences ----

func TestPreferencesRepositoryCreate(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectExec(`INSERT INTO user_preferences`).
		WithArgs("usr-AAAAAAAAAA", "system", "INR").
		WillReturnResult(sqlmock.NewResult(1, 1))

	prefs := &models.Preferences{UserID: "usr-AAAAAAAAAA", ThemeMode: "system", CurrencyCode: "INR"}
	if err := NewPreferencesRepository(db).Create(context.Background(), prefs); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestPreferencesRepositoryCreateForeignKeyViolation(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectExec(`INSERT INTO user_preferences`).
		WillReturnError(&pq.Error{Code: "23503", Message: "insert or update on table \"user_preferences\" violates foreign key constraint"})

	err := NewPreferencesRepository(db).Create(context.Background(), &models.Preferences{UserID: "usr-GHOST00000"})
	var constraintErr *apperrors.ConstraintError
	if !errors.As(err, &constraintErr) || constraintErr.Code != "23503" {
		t.Fatalf("expected foreign key ConstraintError, got %v", err)
	}
}

func TestPreferencesRepositoryGetByUserID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		db, mock := newMock(t)
		mock.ExpectQuery(`(?s)FROM user_preferences.*WHERE user_id = \$1`).
			WithArgs("usr-AAAAAAAAAA").
			WillReturnRows(sqlmock.NewRows([]string{"user_id", "theme_mode", "currency_code"}).
				AddRow("usr-AAAAAAAAAA", "dark", "USD"))

		prefs, err := NewPreferencesRepository(db).GetByUserID(context.Background(), "usr-AAAAAAAAAA")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if prefs.ThemeMode != "dark" || prefs.CurrencyCode != "USD" {
			t.Errorf("unexpected preferences %+v", prefs)
		}
	})

	t.Run("absent", func(t *testing.T) {
		db, mock := newMock(t)
		mock.ExpectQuery(`(?s)FROM user_preferences.*WHERE user_id = \$1`).
			WithArgs("usr-AAAAAAAAAA").
			WillReturnRows(sqlmock.NewRows([]string{"user_id", "theme_mode", "currency_code"}))

		_, err := NewPreferencesRepository(db).GetByUserID(context.Background(), "usr-AAAAAAAAAA")
		if !errors.Is(err, apperrors.ErrNotFound) {
			t.Fatalf("expected not found, got %v", err)
		}
	})
}

// ---- expenses ----

func TestExpenseWriteRepositoryCreate(t *testing.T) {
	db, mock := newMock(t)
	expense := &models.Expense{
		ID: "exp-AAAAAAAAAA", UserID: "usr-AAAAAAAAAA", Title: "Groceries", Amount: 12.5,
		Category: "Food", Date: "2024-03-10", Notes: nil, Source: strPtr("receipt"),
	}
	mock.ExpectExec(`INSERT INTO expenses`).
		WithArgs("exp-AAAAAAAAAA", "usr-AAAAAAAAAA", "Groceries", 12.5, "Food", "2024-03-10", nil, "receipt").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := NewExpenseWriteRepository(db).Create(context.Background(), expense); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestExpenseWriteRepositoryCreateBadDate(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectExec(`INSERT INTO expenses`).
		WillReturnError(&pq.Error{Code: "22008", Message: "date/time field value out of range"})

	err := NewExpenseWriteRepository(db).Create(context.Background(), &models.Expense{ID: "exp-AAAAAAAAAA"})
	var constraintErr *apperrors.ConstraintError
	if !errors.As(err, &constraintErr) {
		t.Fatalf("expected ConstraintError, got %v", err)
	}
}

func TestExpenseWriteRepositoryGetByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		db, mock := newMock(t)
		mock.ExpectQuery(`(?s)FROM expenses.*WHERE expense_id = \$1`).
			WithArgs("exp-AAAAAAAAAA").
			WillReturnRows(sqlmock.NewRows(expenseRowColumns).
				AddRow("exp-AAAAAAAAAA", "usr-AAAAAAAAAA", "Groceries", 12.5, "Food", "2024-03-10", nil, "receipt"))

		expense, err := NewExpenseWriteRepository(db).GetByID(context.Background(), "exp-AAAAAAAAAA")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if expense.Amount != 12.5 || expense.Date != "2024-03-10" {
			t.Errorf("unexpected expense %+v", expense)
		}
		if expense.Notes != nil {
			t.Errorf("expected nil notes, got %q", *expense.Notes)
		}
		if expense.Source == nil || *expense.Source != "receipt" {
			t.Errorf("expected source receipt, got %v", expense.Source)
		}
	})

	t.Run("missing", func(t *testing.T) {
		db, mock := newMock(t)
		mock.ExpectQuery(`(?s)FROM expenses.*WHERE expense_id = \$1`).
			WillReturnRows(sqlmock.NewRows(expenseRowColumns))

		_, err := NewExpenseWriteRepository(db).GetByID(context.Background(), "exp-AAAAAAAAAA")
		if !errors.Is(err, apperrors.ErrNotFound) {
			t.Fatalf("expected not found, got %v", err)
		}
	})
}

func TestExpenseWriteRepositoryDelete(t *testing.T) {
	tests := []struct {
		name         string
		rowsAffected int64
		execErr      error
		wantNotFound bool
		wantStore    bool
	}{
		{name: "deleted", rowsAffected: 1},
		{name: "no such expense", rowsAffected: 0, wantNotFound: true},
		{name: "backend failure", execErr: errors.New("broken pipe"), wantStore: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMock(t)
			exp := mock.ExpectExec(`DELETE FROM expenses WHERE expense_id = \$1`).WithArgs("exp-AAAAAAAAAA")
			if tt.execErr != nil {
				exp.WillReturnError(tt.execErr)
			} else {
				exp.WillReturnResult(sqlmock.NewResult(0, tt.rowsAffected))
			}

			err := NewExpenseWriteRepository(db).Delete(context.Background(), "exp-AAAAAAAAAA")
			var storeErr *apperrors.StoreError
			switch {
			case tt.wantNotFound:
				if !errors.Is(err, apperrors.ErrNotFound) {
					t.Fatalf("expected not found, got %v", err)
				}
			case tt.wantStore:
				if !errors.As(err, &storeErr) || errors.Is(err, apperrors.ErrNotFound) {
					t.Fatalf("expected StoreError, got %v", err)
				}
			default:
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
			}
		})
	}
}

func TestExpenseReadRepositoryListByUserID(t *testing.T) {
	t.Run("ordered rows", func(t *testing.T) {
		db, mock := newMock(t)
		mock.ExpectQuery(`(?s)FROM expenses.*WHERE user_id = \$1.*ORDER BY date DESC`).
			WithArgs("usr-AAAAAAAAAA").
			WillReturnRows(sqlmock.NewRows(expenseRowColumns).
				AddRow("exp-BBBBBBBBBB", "usr-AAAAAAAAAA", "Taxi", 8.0, "Travel", "2024-03-11", "late", nil).
				AddRow("exp-AAAAAAAAAA", "usr-AAAAAAAAAA", "Groceries", 12.5, "Food", "2024-03-10", nil, nil))

		expenses, err := NewExpenseReadRepository(db).ListByUserID(context.Background(), "usr-AAAAAAAAAA")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(expenses) != 2 || expenses[0].ID != "exp-BBBBBBBBBB" || expenses[1].ID != "exp-AAAAAAAAAA" {
			t.Fatalf("unexpected expenses %+v", expenses)
		}
		if expenses[0].Notes == nil || *expenses[0].Notes != "late" {
			t.Errorf("expected notes on first expense")
		}
	})

	t.Run("empty ledger", func(t *testing.T) {
		db, mock := newMock(t)
		mock.ExpectQuery(`(?s)FROM expenses.*WHERE user_id = \$1`).
			WillReturnRows(sqlmock.NewRows(expenseRowColumns))

		expenses, err := NewExpenseReadRepository(db).ListByUserID(context.Background(), "usr-AAAAAAAAAA")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if expenses == nil || len(expenses) != 0 {
			t.Fatalf("expected empty non-nil slice, got %#v", expenses)
		}
	})

	t.Run("backend failure", func(t *testing.T) {
		db, mock := newMock(t)
		mock.ExpectQuery(`(?s)FROM expenses.*WHERE user_id = \$1`).
			WillReturnError(errors.New("server closed the connection"))

		_, err := NewExpenseReadRepository(db).ListByUserID(context.Background(), "usr-AAAAAAAAAA")
		var storeErr *apperrors.StoreError
		if !errors.As(err, &storeErr) {
			t.Fatalf("expected StoreError, got %v", err)
		}
	})
}
