package models

// UserDB represents a user record in the database.
type UserDB struct {
	ID       int64  `json:"id" db:"id"`       // Primary key
	Name     string `json:"name" db:"name"`   // Display name
	Email    string `json:"email" db:"email"` // Unique email
	Password string `json:"-" db:"password"`  // Bcrypt hash, never serialized
}
