package models

import "time"

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user,
	// assigned by the database at registration time.
	UserID int64 `json:"userId"`

	// Name is the display name of the user.
	// It is non-sensitive and may be shown in UI.
	Name string `json:"name"`

	// Email is the unique login identifier of the account.
	// Matching is exact-string: the server performs no case folding,
	// so "A@x.com" and "a@x.com" are two distinct accounts.
	Email string `json:"email"`

	// PasswordHash stores the bcrypt digest of the user's password.
	// It is never serialized outward and never holds plaintext.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
