package store

import (
	"context"

	"github.com/MKhiriev/go-budget-tracker/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts in the "users" table.
type UserRepository interface {
	// CreateUser inserts a new account. A username or email that is already
	// taken yields an error wrapping [ErrUserAlreadyExists].
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByUsername returns [ErrNoUserWasFound] when nothing matches.
	FindUserByUsername(ctx context.Context, username string) (models.User, error)

	// FindUserByID returns [ErrNoUserWasFound] when nothing matches. Tokens
	// carry the username, so request handling looks users up by name; this
	// lookup is for callers that only hold the id.
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
}

// TransactionRepository persists transactions in the "transactions" table.
// Ownership checks are not performed here; callers compare UserID themselves.
type TransactionRepository interface {
	Create(ctx context.Context, tx models.Transaction) (models.Transaction, error)
	GetByID(ctx context.Context, id int64) (models.Transaction, error)
	List(ctx context.Context, filter models.TransactionFilter) ([]models.Transaction, error)
	Count(ctx context.Context, filter models.TransactionFilter) (int64, error)
	Update(ctx context.Context, id int64, update models.TransactionUpdate) (models.Transaction, error)
	Delete(ctx context.Context, id int64) error
	Summary(ctx context.Context, userID int64) (models.Summary, error)
}

// ErrorClassificator decides whether a failed database call is worth retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
