package services

import "errors"

var (
	// ErrEmailReserved rejects signups using the reserved admin address.
	ErrEmailReserved = errors.New("email is reserved for administrator use")
	// ErrEmailTaken rejects signups for an email already registered.
	ErrEmailTaken = errors.New("an account with this email already exists")
	// ErrInvalidCredentials covers both unknown email and wrong password.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrNotFound reports a lookup by id that matched nothing.
	ErrNotFound = errors.New("record not found")
	// ErrNoSession reports that no session is active for the given id.
	ErrNoSession = errors.New("no active session")
	// ErrInvalidTransition rejects a status change the variant's transition
	// table does not allow.
	ErrInvalidTransition = errors.New("status transition not allowed")
)
