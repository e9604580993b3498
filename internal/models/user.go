package models

// User is a registered account. Created on signup, read on login,
// never mutated or deleted.
type User struct {
	ID           int    `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"` // never serialized
}
