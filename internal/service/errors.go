package service

import "errors"

// Business errors returned by the service layer. Handlers map these to
// HTTP statuses; anything else is treated as an internal error.
var (
	ErrAuthenticationFailed = errors.New("authentication failed")
	ErrRegistrationFailed   = errors.New("registration failed")
	ErrForbidden            = errors.New("forbidden")
	ErrNoteNotFound         = errors.New("note not found")
	ErrUserNotFound         = errors.New("user not found")
	ErrSpeciesNotFound      = errors.New("species not found")
	ErrInvalidInput         = errors.New("invalid input")
	ErrInternalServer       = errors.New("internal server error")
)
