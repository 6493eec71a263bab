package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/MKhiriev/go-budget-tracker/internal/logger"
	"github.com/MKhiriev/go-budget-tracker/migrations"
	"github.com/sethvargo/go-retry"
)

// defaultRetryBaseDelay is the first backoff step between attempts.
const defaultRetryBaseDelay = 50 * time.Millisecond

// DB wraps *sql.DB with the error classifier and retry policy shared by all
// repositories.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger

	maxRetries     uint64
	retryBaseDelay time.Duration
}

// Migrate applies the embedded schema migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}

// withRetry runs fn and repeats it with exponential backoff while the
// classifier reports the failure as [Retryable], at most maxRetries times.
// The last error is returned unwrapped.
func (db *DB) withRetry(ctx context.Context, fn func(ctx context.Context) error) error {
	base := db.retryBaseDelay
	if base <= 0 {
		base = defaultRetryBaseDelay
	}
	backoff := retry.WithMaxRetries(db.maxRetries, retry.NewExponential(base))

	attempt := 0
	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		err := fn(ctx)
		if err == nil {
			return nil
		}
		if db.errorClassificator != nil && db.errorClassificator.Classify(err) == Retryable {
			logger.FromContext(ctx).Warn().Err(err).Int("attempt", attempt).Str("func", "*DB.withRetry").Msg("retryable database error")
			return retry.RetryableError(err)
		}
		return err
	})
}
