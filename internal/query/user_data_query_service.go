package query

import (
	"context"
	"errors"

	"github.com/Aasthik17/ExpenseEase/shared/apperrors"
	"github.com/Aasthik17/ExpenseEase/shared/cqrs"
	"github.com/Aasthik17/ExpenseEase/shared/models"
	"github.com/Aasthik17/ExpenseEase/shared/utils"
)

type UserReader interface {
	GetByID(ctx context.Context, id string) (*models.User, error)
}

type PreferencesReader interface {
	GetByUserID(ctx context.Context, userID string) (*models.Preferences, error)
}

type ExpenseLister interface {
	ListByUserID(ctx context.Context, userID string) ([]models.Expense, error)
}

// ExpenseQueryService lists a user's ledger.
type ExpenseQueryService struct {
	expenses ExpenseLister
}

func NewExpenseQueryService(expenses ExpenseLister) *ExpenseQueryService {
	return &ExpenseQueryService{expenses: expenses}
}

// ListExpenses returns the user's expenses, newest date first. The user is
// not checked for existence.
func (s *ExpenseQueryService) ListExpenses(userID string) ([]models.Expense, error) {
	expenses, err := s.expenses.ListByUserID(context.Background(), userID)
	if err != nil {
		return nil, err
	}
	if expenses == nil {
		expenses = []models.Expense{}
	}
	return expenses, nil
}

// UserDataQueryService assembles the consolidated user view. The three reads
// are independent statements and do not share a snapshot.
type UserDataQueryService struct {
	users       UserReader
	preferences PreferencesReader
	expenses    *ExpenseQueryService
}

func NewUserDataQueryService(users UserReader, preferences PreferencesReader, expenses *ExpenseQueryService) *UserDataQueryService {
	return &UserDataQueryService{users: users, preferences: preferences, expenses: expenses}
}

func (s *UserDataQueryService) GetUserData(q cqrs.GetUserDataQuery) (*models.UserData, error) {
	if !utils.ValidateUserID(q.UserID) {
		return nil, apperrors.NotFound("user")
	}
	ctx := context.Background()

	user, err := s.users.GetByID(ctx, q.UserID)
	if err != nil {
		return nil, err
	}

	prefs := models.DefaultPreferences()
	stored, err := s.preferences.GetByUserID(ctx, user.ID)
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
	case err != nil:
		return nil, err
	default:
		prefs = *stored
	}

	expenses, err := s.expenses.ListExpenses(user.ID)
	if err != nil {
		return nil, err
	}

	return &models.UserData{
		User:        *user.View(),
		Preferences: prefs,
		Expenses:    expenses,
	}, nil
}
