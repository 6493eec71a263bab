package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-budget-tracker/internal/service"
	"github.com/MKhiriev/go-budget-tracker/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestStatusAndDetailFromError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantDetail string
	}{
		{"invalid credentials", service.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid username or password"},
		{"unauthenticated", fmt.Errorf("%w: expired", service.ErrUnauthenticated), http.StatusUnauthorized, "Invalid token"},
		{"forbidden", service.ErrForbidden, http.StatusForbidden, "Not authorized"},
		{"not found", fmt.Errorf("lookup: %w", service.ErrTransactionNotFound), http.StatusNotFound, "Transaction not found"},
		{"duplicate username", fmt.Errorf("%w: %w", service.ErrDuplicateUser, store.ErrUsernameTaken), http.StatusBadRequest, "Username already taken"},
		{"duplicate email", fmt.Errorf("%w: %w", service.ErrDuplicateUser, store.ErrEmailTaken), http.StatusBadRequest, "Email already taken"},
		{"invalid data", fmt.Errorf("%w: empty name", service.ErrInvalidDataProvided), http.StatusBadRequest, "Invalid data provided: empty name"},
		{"invalid json", ErrInvalidJSON, http.StatusBadRequest, "Invalid JSON was passed"},
		{"unknown", errors.New("pq: password authentication failed for user"), http.StatusInternalServerError, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantStatus, statusFromError(tt.err))
			assert.Equal(t, tt.wantDetail, detailFromError(tt.err))
		})
	}
}

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "", capitalize(""))
	assert.Equal(t, "Abc", capitalize("abc"))
	assert.Equal(t, "Abc", capitalize("Abc"))
}
