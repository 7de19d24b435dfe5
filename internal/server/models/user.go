// Package models contains the persisted entity types of the server.
package models

import "time"

// User is a registered account. PasswordHash is a bcrypt digest; the raw
// password is never stored and never serialized.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"-"`
}
