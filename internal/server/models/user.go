// Package models defines the server-side data structures persisted by
// the repositories.
package models

import "time"

// User is an identity record. PasswordHash is the argon2id encoding of
// the user's password and is never serialized to clients.
type User struct {
	ID           string
	Email        string
	Username     string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
