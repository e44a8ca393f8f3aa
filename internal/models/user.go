package models

// PasswordSentinel is stored in the password column for accounts that are
// authenticated by the external identity service. The local store never
// checks passwords.
const PasswordSentinel = "external_auth"

// User represents a row in the users table.
type User struct {
	UserID   int    `json:"user_id" db:"user_id"` // Assigned by the directory, max+1
	Name     string `json:"name" db:"name"`
	Email    string `json:"email" db:"email"` // Unique, external identity key
	Password string `json:"-" db:"password"`  // Always PasswordSentinel
}

// UserSummary is the public shape of a user returned by the API.
type UserSummary struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Summary returns the public view of the user.
func (u *User) Summary() UserSummary {
	return UserSummary{ID: u.UserID, Name: u.Name, Email: u.Email}
}
