package cqrs

import "github.com/Aasthik17/ExpenseEase/shared/models"

type SignupCommand struct {
	Name  string
	Email string
	Pin   string
}

// SignupResult carries the created user. Warning is set when the account was
// created but its default preferences row could not be written.
type SignupResult struct {
	User    *models.UserView
	Warning error
}

type LoginCommand struct {
	Email string
	Pin   string
}

// CreateExpenseCommand holds raw client input; the command service validates
// and normalises it. Amount is the textual form of a number, e.g. "12.50".
type CreateExpenseCommand struct {
	UserID   string
	Title    string
	Amount   string
	Category string
	Date     string
	Notes    string
	Source   string
}

type DeleteExpenseCommand struct {
	ExpenseID string
}
