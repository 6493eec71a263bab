package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-budget-tracker/internal/service"
	"github.com/MKhiriev/go-budget-tracker/internal/store"
)

// Messages shown to clients. Authentication failures never say which check
// failed.
const (
	detailInvalidToken       = "Invalid token"
	detailInvalidCredentials = "Invalid username or password"
	detailNotAuthorized      = "Not authorized"
	detailNotFound           = "Transaction not found"
	detailInternal           = "Internal server error"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided: http.StatusBadRequest,
	service.ErrDuplicateUser:       http.StatusBadRequest,
	service.ErrInvalidCredentials:  http.StatusUnauthorized,
	service.ErrUnauthenticated:     http.StatusUnauthorized,
	service.ErrForbidden:           http.StatusForbidden,
	service.ErrTransactionNotFound: http.StatusNotFound,

	ErrInvalidJSON:          http.StatusBadRequest,
	ErrInvalidTransactionID: http.StatusBadRequest,
	ErrInvalidQueryParam:    http.StatusBadRequest,
}

// errorDetails is ordered: the first match wins, so the specific duplicate
// reasons come before the generic one.
var errorDetails = []struct {
	target error
	detail string
}{
	{store.ErrUsernameTaken, "Username already taken"},
	{store.ErrEmailTaken, "Email already taken"},
	{service.ErrDuplicateUser, "Username or email already taken"},
	{service.ErrInvalidCredentials, detailInvalidCredentials},
	{service.ErrUnauthenticated, detailInvalidToken},
	{service.ErrForbidden, detailNotAuthorized},
	{service.ErrTransactionNotFound, detailNotFound},
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// detailFromError returns the client-facing message for err. Validation and
// decoding errors carry their own reason; anything unexpected is masked.
func detailFromError(err error) string {
	for _, d := range errorDetails {
		if errors.Is(err, d.target) {
			return d.detail
		}
	}

	switch {
	case errors.Is(err, service.ErrInvalidDataProvided),
		errors.Is(err, ErrInvalidJSON),
		errors.Is(err, ErrInvalidTransactionID),
		errors.Is(err, ErrInvalidQueryParam):
		return capitalize(err.Error())
	default:
		return detailInternal
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
