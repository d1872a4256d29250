package service

import "errors"

// Deterministic failures surfaced to controllers, which map them to
// HTTP statuses and the wire-level messages.
var (
	ErrPasswordRequired   = errors.New("password is required")
	ErrPasswordTooShort   = errors.New("password too short")
	ErrUsernameTaken      = errors.New("username must be unique")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrAnimeNotFound      = errors.New("anime not found")
	ErrNotOwner           = errors.New("insufficient permissions")
	ErrAlreadyInList      = errors.New("anime already exists in your list")
	ErrUserNotFound       = errors.New("user not found")
	ErrEntryNotFound      = errors.New("watch-list entry not found")
)
