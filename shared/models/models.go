package models

import "time"

// Preference defaults applied when a user has no stored preferences row.
const (
	DefaultThemeMode    = "system"
	DefaultCurrencyCode = "INR"
)

// DateLayout is the calendar-date format used for expense dates.
const DateLayout = "2006-01-02"

type User struct {
	ID        string    `json:"user_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Pin       string    `json:"-"`
	CreatedAt time.Time `json:"-"`
}

type Preferences struct {
	UserID       string `json:"user_id,omitempty"`
	ThemeMode    string `json:"theme_mode"`
	CurrencyCode string `json:"currency_code"`
}

// DefaultPreferences returns the preferences served for users without a stored row.
func DefaultPreferences() Preferences {
	return Preferences{
		ThemeMode:    DefaultThemeMode,
		CurrencyCode: DefaultCurrencyCode,
	}
}

// Expense is a single ledger entry. Notes and Source are nil when absent and
// serialise as JSON null.
type Expense struct {
	ID       string  `json:"expense_id"`
	UserID   string  `json:"user_id"`
	Title    string  `json:"title"`
	Amount   float64 `json:"amount"`
	Category string  `json:"category"`
	Date     string  `json:"date"`
	Notes    *string `json:"notes"`
	Source   *string `json:"source"`
}
