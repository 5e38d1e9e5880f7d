package events

import "time"

// Event types
const (
	UserCreated = "user.created"

	ExpenseCreated = "expense.created"
	ExpenseDeleted = "expense.deleted"
)

// Stream names
const (
	UserEventsStream    = "user.events"
	ExpenseEventsStream = "expense.events"
)

// Base event structure
type Event struct {
	Type      string    `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Data      any       `json:"data"`
}

type UserCreatedEvent struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	// PreferencesCreated is false when signup could not write the default
	// preferences row.
	PreferencesCreated bool `json:"preferencesCreated"`
}

type ExpenseCreatedEvent struct {
	ExpenseID string  `json:"expenseId"`
	UserID    string  `json:"userId"`
	Amount    float64 `json:"amount"`
	Category  string  `json:"category"`
	Date      string  `json:"date"`
}

type ExpenseDeletedEvent struct {
	ExpenseID string `json:"expenseId"`
}
