package store

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUserAlreadyExists is returned when an attempt to register a new user
	// violates one of the uniqueness constraints of the "users" table.
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrUsernameTaken and ErrEmailTaken tell which unique column clashed.
	// Both wrap [ErrUserAlreadyExists].
	ErrUsernameTaken = fmt.Errorf("%w: username already taken", ErrUserAlreadyExists)
	ErrEmailTaken    = fmt.Errorf("%w: email already taken", ErrUserAlreadyExists)

	// ErrNoUserWasFound is returned when a query expected to match a user
	// record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrTransactionNotFound is returned when no transaction has the
	// requested id.
	ErrTransactionNotFound = errors.New("transaction was not found")

	// ErrNothingToUpdate is returned by an update that sets no column.
	ErrNothingToUpdate = errors.New("nothing to update")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRows is returned when scanning fails during multi-row
	// iteration.
	ErrScanningRows = errors.New("failed to scan rows")
)
