// Package common defines sentinel errors shared across the service layers.
// Callers match them with errors.Is.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors.
	ErrorInternal   = errors.New("internal error")
	ErrorValidation = errors.New("validation error")

	// Credential errors. ErrorUnauthorized covers an unknown account,
	// ErrorInvalidLoginPassword a known account with a wrong password.
	// The HTTP layer maps them to different status codes.
	ErrorUnauthorized         = errors.New("unauthorized")
	ErrorInvalidLoginPassword = errors.New("invalid login/password")

	// Token lifecycle errors.
	ErrInvalidToken   = errors.New("invalid token")
	ErrTokenExpired   = errors.New("token expired")
	ErrTokenMalformed = errors.New("token malformed")
)
