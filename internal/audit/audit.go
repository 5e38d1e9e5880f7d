// Package audit turns ledger events into a log trail.
package audit

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/Aasthik17/ExpenseEase/shared/events"
)

// Logger handles events from the user and expense streams.
type Logger struct {
	logf func(format string, args ...any)
}

func NewLogger() *Logger {
	return &Logger{logf: log.Printf}
}

// Handle logs one line per event. Unknown event types are logged as-is and
// still acknowledged.
func (l *Logger) Handle(_ context.Context, event events.Event) error {
	l.logf("[audit] %s %s", event.Timestamp.Format(time.RFC3339), Describe(event))
	return nil
}

// Describe renders an event as a single human-readable line.
func Describe(event events.Event) string {
	switch data := event.Data.(type) {
	case events.UserCreatedEvent:
		desc := fmt.Sprintf("user %s signed up as %s", data.UserID, data.Email)
		if !data.PreferencesCreated {
			desc += " (default preferences missing)"
		}
		return desc
	case events.ExpenseCreatedEvent:
		return fmt.Sprintf("expense %s recorded for %s: %s in %s on %s",
			data.ExpenseID, data.UserID, strconv.FormatFloat(data.Amount, 'f', 2, 64), data.Category, data.Date)
	case events.ExpenseDeletedEvent:
		return fmt.Sprintf("expense %s deleted", data.ExpenseID)
	default:
		return fmt.Sprintf("%s %s", event.Type, data)
	}
}
