package models

// UserView is the public projection of a user. It never exposes the PIN.
type UserView struct {
	ID    string `json:"user_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// UserData is the consolidated account view: profile, preferences and the
// expense ledger ordered by date, newest first.
type UserData struct {
	User        UserView    `json:"user"`
	Preferences Preferences `json:"preferences"`
	Expenses    []Expense   `json:"expenses"`
}

func (u *User) View() *UserView {
	return &UserView{ID: u.ID, Name: u.Name, Email: u.Email}
}
