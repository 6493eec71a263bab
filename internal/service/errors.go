package service

import "errors"

var (
	// ErrInvalidDataProvided is returned when a request fails validation.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials covers both an unknown username and a wrong
	// password so callers cannot tell the two apart.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrUnauthenticated is returned by Resolve for every token that cannot
	// be turned into a live principal.
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrForbidden means the principal does not own the resource.
	ErrForbidden = errors.New("not authorized")

	// ErrDuplicateUser means the username or email is already registered.
	ErrDuplicateUser = errors.New("user already exists")

	ErrTransactionNotFound = errors.New("transaction not found")

	ErrTokenCreationFailed   = errors.New("token creation failed")
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
