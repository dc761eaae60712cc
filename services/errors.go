package services

import "errors"

var (
	ErrNotFound                 = errors.New("record not found")
	ErrConflict                 = errors.New("record already exists for this day")
	ErrInvalidDay               = errors.New("unrecognized date")
	ErrActiveSubscriptionExists = errors.New("user already has an active subscription")
	ErrInvalidCredentials       = errors.New("invalid email or password")
	ErrEmailTaken               = errors.New("email already registered")
)
