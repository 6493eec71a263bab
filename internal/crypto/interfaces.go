package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

import "time"

// PasswordHasher hashes and verifies user passwords.
//
// Implementations must salt every hash with fresh randomness, so hashing the
// same password twice yields two different strings that both verify.
// Neither method performs I/O.
type PasswordHasher interface {
	// Hash returns a salted, adaptive one-way hash of password.
	Hash(password string) (string, error)

	// Verify reports whether password matches hash. A malformed hash is
	// reported as a mismatch, never as an error.
	Verify(password, hash string) bool
}

// TokenManager issues and validates signed, time-limited bearer tokens that
// carry a single identity claim (the subject).
//
// The signing secret is fixed at construction time and never changes, so a
// TokenManager is safe for concurrent use without locking.
type TokenManager interface {
	// Issue signs a token for subject that expires at now+ttl.
	Issue(subject string, now time.Time, ttl time.Duration) (string, error)

	// Validate checks the token's signature and expiry against now and
	// returns its subject. Errors are one of [ErrTokenMalformed],
	// [ErrTokenExpired] or [ErrTokenMissingSubject].
	Validate(token string, now time.Time) (string, error)
}
