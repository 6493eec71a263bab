// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the authentication middleware when parsing the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned when the request has no
	// "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the header is not of the
	// form "Bearer <token>". The scheme is matched case-insensitively.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyToken is returned when the scheme is present but the token
	// value is blank.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")
)

// Errors produced while decoding request input.
var (
	ErrInvalidJSON          = errors.New("invalid JSON was passed")
	ErrInvalidTransactionID = errors.New("invalid transaction id")
	ErrInvalidQueryParam    = errors.New("invalid query parameter")
)
