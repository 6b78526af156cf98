package domain

import "errors"

var (
	ErrEventNotFound        = errors.New("event not found")
	ErrProfileNotFound      = errors.New("profile not found")
	ErrRegistrationNotFound = errors.New("registration not found")
)

var (
	ErrEventFull             = errors.New("event is full")
	ErrAlreadyRegistered     = errors.New("already registered for this event")
	ErrEventNotActive        = errors.New("event is not active")
	ErrEventStarted          = errors.New("cannot cancel past event registration")
	ErrRegistrationNotActive = errors.New("registration is not active")
)

var (
	ErrProfileExists = errors.New("profile already exists")
	ErrAdminRequired = errors.New("admin access required")
	ErrInvalidToken  = errors.New("invalid token")
)

var (
	ErrValidation = errors.New("validation error")
)
