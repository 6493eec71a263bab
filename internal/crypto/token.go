// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// jwtTokenManager is the HMAC-SHA256 JWT implementation of [TokenManager].
type jwtTokenManager struct {
	// signKey is the HMAC secret. It is set once by NewTokenManager and
	// only read afterwards.
	signKey []byte
}

// NewTokenManager constructs a [TokenManager] that signs with signKey.
//
// An empty (or whitespace-only) key is rejected with [ErrEmptySigningSecret]:
// HMAC happily signs with a zero-length key, so accepting one would make
// every token forgeable.
func NewTokenManager(signKey string) (TokenManager, error) {
	if strings.TrimSpace(signKey) == "" {
		return nil, ErrEmptySigningSecret
	}

	return &jwtTokenManager{signKey: []byte(signKey)}, nil
}

// Issue implements [TokenManager].
//
// The token carries the following registered claims:
//   - Subject   (sub): subject
//   - IssuedAt  (iat): now
//   - ExpiresAt (exp): now + ttl
func (m *jwtTokenManager) Issue(subject string, now time.Time, ttl time.Duration) (string, error) {
	if subject == "" {
		return "", ErrTokenMissingSubject
	}
	if ttl <= 0 {
		return "", fmt.Errorf("invalid token ttl: %s", ttl)
	}

	claims := &jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(m.signKey)
	if err != nil {
		return "", fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return tokenString, nil
}

// Validate implements [TokenManager].
//
// The signature is verified before any claim, so a tampered token is always
// reported as [ErrTokenMalformed] even if it is also expired. Segments are
// decoded strictly: non-canonical base64 (e.g. flipped padding bits in the
// last character of the signature) is rejected.
func (m *jwtTokenManager) Validate(tokenString string, now time.Time) (string, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithStrictDecoding(),
		jwt.WithTimeFunc(func() time.Time { return now }),
	)

	claims := &jwt.RegisteredClaims{}
	_, err := parser.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return m.signKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrTokenExpired
		}
		return "", fmt.Errorf("%w: %w", ErrTokenMalformed, err)
	}

	if claims.Subject == "" {
		return "", ErrTokenMissingSubject
	}

	return claims.Subject, nil
}
