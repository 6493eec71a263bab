package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithRetry(t *testing.T) {
	tests := []struct {
		name       string
		maxRetries uint64
		errs       []error
		wantCalls  int
		wantErr    bool
	}{
		{name: "success first try", maxRetries: 3, errs: []error{nil}, wantCalls: 1},
		{name: "retryable then success", maxRetries: 3, errs: []error{pgError(pgerrcode.SerializationFailure), pgError(pgerrcode.DeadlockDetected), nil}, wantCalls: 3},
		{name: "non retryable stops", maxRetries: 3, errs: []error{pgError(pgerrcode.UniqueViolation)}, wantCalls: 1, wantErr: true},
		{name: "retries exhausted", maxRetries: 2, errs: []error{pgError(pgerrcode.ConnectionFailure), pgError(pgerrcode.ConnectionFailure), pgError(pgerrcode.ConnectionFailure)}, wantCalls: 3, wantErr: true},
		{name: "no retries configured", maxRetries: 0, errs: []error{pgError(pgerrcode.ConnectionFailure)}, wantCalls: 1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, _ := newTestDB(t, tt.maxRetries)
			db.retryBaseDelay = time.Millisecond

			calls := 0
			err := db.withRetry(context.Background(), func(ctx context.Context) error {
				e := tt.errs[calls]
				calls++
				return e
			})

			assert.Equal(t, tt.wantCalls, calls)
			if !tt.wantErr {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.errs[len(tt.errs)-1], err)
		})
	}
}

func TestWithRetry_RetryQueryAgainstDB(t *testing.T) {
	db, mock := newTestDB(t, 1)
	repo := NewUserRepository(db, db.logger)

	mock.ExpectQuery("FROM users").WillReturnError(pgError(pgerrcode.SerializationFailure))
	mock.ExpectQuery("FROM users").WillReturnError(errors.New("final"))

	_, err := repo.FindUserByUsername(context.Background(), "alice")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "final")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestWithRetry_ContextCanceled(t *testing.T) {
	db, _ := newTestDB(t, 5)
	db.retryBaseDelay = time.Hour

	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	err := db.withRetry(ctx, func(ctx context.Context) error {
		calls++
		cancel()
		return pgError(pgerrcode.ConnectionFailure)
	})

	require.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestStoragesClose(t *testing.T) {
	var s *Storages
	assert.NoError(t, s.Close())

	db, mock := newTestDB(t, 0)
	mock.ExpectClose()
	s = newStoragesFromDB(db, db.logger)
	assert.NotNil(t, s.UserRepository)
	assert.NotNil(t, s.TransactionRepository)
	assert.NoError(t, s.Close())
}
