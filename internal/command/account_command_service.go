package command

import (
	"context"
	"log"
	"time"

	"github.com/Aasthik17/ExpenseEase/shared/cqrs"
	"github.com/Aasthik17/ExpenseEase/shared/events"
	"github.com/Aasthik17/ExpenseEase/shared/models"
	"github.com/Aasthik17/ExpenseEase/shared/utils"
)

type UserWriter interface {
	Create(ctx context.Context, user *models.User) error
}

// DefaultsInitializer seeds dependent records for a freshly created user.
type DefaultsInitializer interface {
	InitializeDefaults(ctx context.Context, userID string) error
}

// AccountCommandService registers users. The user insert and the preferences
// insert are separate statements; a failure of the second does not undo the first.
type AccountCommandService struct {
	users       UserWriter
	preferences DefaultsInitializer
	publisher   events.EventPublisher
	now         func() time.Time
}

func NewAccountCommandService(users UserWriter, preferences DefaultsInitializer, publisher events.EventPublisher) *AccountCommandService {
	return &AccountCommandService{
		users:       users,
		preferences: preferences,
		publisher:   publisher,
		now:         time.Now,
	}
}

func (s *AccountCommandService) Signup(cmd cqrs.SignupCommand) (*cqrs.SignupResult, error) {
	ctx := context.Background()
	id, err := utils.GenerateID(utils.UserIDPrefix)
	if err != nil {
		return nil, err
	}
	user := &models.User{
		ID:        id,
		Name:      cmd.Name,
		Email:     cmd.Email,
		Pin:       cmd.Pin,
		CreatedAt: s.now().UTC(),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	result := &cqrs.SignupResult{User: user.View()}
	if err := s.preferences.InitializeDefaults(ctx, user.ID); err != nil {
		log.Printf("Failed to create default preferences for %s: %v", user.ID, err)
		result.Warning = err
	}

	if err := s.publisher.Publish(ctx, events.UserEventsStream, events.UserCreated, events.UserCreatedEvent{
		UserID:             user.ID,
		Email:              user.Email,
		Name:               user.Name,
		PreferencesCreated: result.Warning == nil,
	}); err != nil {
		log.Printf("Failed to publish user.created event: %v", err)
	}
	return result, nil
}
