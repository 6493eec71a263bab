// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"errors"
	"fmt"
)

// ErrEmptySigningSecret is returned by [NewTokenManager] when the configured
// secret is empty. The application treats it as a fatal startup error.
var ErrEmptySigningSecret = errors.New("token signing secret is empty")

// ErrInvalidToken is the common parent of every token validation failure.
// Match it with [errors.Is] when the exact reason does not matter.
var ErrInvalidToken = errors.New("invalid token")

// Token validation failures returned by [TokenManager.Validate]. Each of them
// wraps [ErrInvalidToken].
var (
	// ErrTokenMalformed means the token could not be parsed, used an
	// unexpected algorithm, lacked an expiry or failed signature verification.
	ErrTokenMalformed = fmt.Errorf("%w: malformed", ErrInvalidToken)

	// ErrTokenExpired means the signature is valid but exp <= now.
	ErrTokenExpired = fmt.Errorf("%w: expired", ErrInvalidToken)

	// ErrTokenMissingSubject means the signature is valid and the token is
	// not expired, but the "sub" claim is absent or empty.
	ErrTokenMissingSubject = fmt.Errorf("%w: missing subject", ErrInvalidToken)
)

// ErrPasswordTooLong is returned by [PasswordHasher.Hash] for passwords that
// exceed bcrypt's 72 byte input limit.
var ErrPasswordTooLong = errors.New("password is too long")
