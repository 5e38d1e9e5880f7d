package command

import (
	"context"

	"github.com/Aasthik17/ExpenseEase/shared/models"
)

// PreferencesWriter stores a preferences row.
type PreferencesWriter interface {
	Create(ctx context.Context, prefs *models.Preferences) error
}

// PreferencesInitializer writes the starting preferences of a new account.
type PreferencesInitializer struct {
	writer PreferencesWriter
}

func NewPreferencesInitializer(writer PreferencesWriter) *PreferencesInitializer {
	return &PreferencesInitializer{writer: writer}
}

// InitializeDefaults inserts the default theme and currency for userID. The
// values are always sent explicitly; column defaults are never relied on.
func (p *PreferencesInitializer) InitializeDefaults(ctx context.Context, userID string) error {
	prefs := models.DefaultPreferences()
	prefs.UserID = userID
	return p.writer.Create(ctx, &prefs)
}
