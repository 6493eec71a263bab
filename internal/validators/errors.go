package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyUsername    = errors.New("username is required")
	ErrUsernameTooLong  = errors.New("username is too long")
	ErrInvalidEmail     = errors.New("invalid email")
	ErrEmptyPassword    = errors.New("password is required")
	ErrPasswordTooLong  = errors.New("password is longer than 72 bytes")
	ErrInvalidUserID    = errors.New("invalid user ID")
	ErrEmptyName        = errors.New("name is required")
	ErrNameTooLong      = errors.New("name is too long")
	ErrInvalidType      = errors.New("type must be income or expense")
	ErrInvalidAmount    = errors.New("amount must be a non-negative number")
	ErrEmptyDate        = errors.New("transaction_date is required")
	ErrInvalidDateRange = errors.New("start_date is after end_date")
	ErrLimitTooLarge    = errors.New("limit is too large")
)
