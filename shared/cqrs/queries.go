package cqrs

// GetUserDataQuery fetches the consolidated view of a single user.
type GetUserDataQuery struct {
	UserID string
}
