package query

import (
	"context"
	"errors"

	"github.com/Aasthik17/ExpenseEase/shared/apperrors"
	"github.com/Aasthik17/ExpenseEase/shared/cqrs"
	"github.com/Aasthik17/ExpenseEase/shared/models"
)

type CredentialsReader interface {
	GetByCredentials(ctx context.Context, email, pin string) (*models.User, error)
}

// AuthQueryService checks email/PIN pairs against stored users.
type AuthQueryService struct {
	users CredentialsReader
}

func NewAuthQueryService(users CredentialsReader) *AuthQueryService {
	return &AuthQueryService{users: users}
}

// Login returns the matching user. Both email and PIN must match exactly.
func (s *AuthQueryService) Login(cmd cqrs.LoginCommand) (*models.UserView, error) {
	if cmd.Email == "" || cmd.Pin == "" {
		return nil, apperrors.ErrInvalidCredentials
	}
	user, err := s.users.GetByCredentials(context.Background(), cmd.Email, cmd.Pin)
	if errors.Is(err, apperrors.ErrNotFound) {
		return nil, apperrors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	return user.View(), nil
}
