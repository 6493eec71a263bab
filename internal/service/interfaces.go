package service

import (
	"context"

	"github.com/MKhiriev/go-budget-tracker/models"
)

// AuthService is the authentication gate in front of every protected
// operation.
type AuthService interface {
	// RegisterUser validates the request, hashes the password and stores the
	// account. Taken usernames or emails yield ErrDuplicateUser.
	RegisterUser(ctx context.Context, request models.RegisterRequest) (models.User, error)

	// Login exchanges valid credentials for a bearer token. Any mismatch is
	// ErrInvalidCredentials.
	Login(ctx context.Context, request models.LoginRequest) (models.Token, error)

	// Resolve turns a bearer token into the user it was issued for. Every
	// failure is reported as ErrUnauthenticated.
	Resolve(ctx context.Context, token string) (models.User, error)

	// AuthorizeOwner returns ErrForbidden unless principal owns ownerID.
	AuthorizeOwner(principal models.User, ownerID int64) error
}

// TransactionService manages the transactions of an authenticated principal.
type TransactionService interface {
	Create(ctx context.Context, principal models.User, tx models.TransactionCreate) (models.Transaction, error)
	List(ctx context.Context, principal models.User, filter models.TransactionFilter) (models.TransactionPage, error)
	Get(ctx context.Context, principal models.User, id int64) (models.Transaction, error)
	Update(ctx context.Context, principal models.User, id int64, update models.TransactionUpdate) (models.Transaction, error)
	Delete(ctx context.Context, principal models.User, id int64) error
	Summary(ctx context.Context, principal models.User) (models.Summary, error)
}

// AppInfoService exposes static information about the running server.
type AppInfoService interface {
	GetAppName(ctx context.Context) string
	GetAppVersion(ctx context.Context) string
}
