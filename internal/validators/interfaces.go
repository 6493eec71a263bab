// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks request payloads before they reach the services.
//
// Every validator accepts both the value and the pointer form of the models
// it knows, and an optional list of field names restricting the checks.
// Unknown models yield ErrUnsupportedType, unknown field names ErrUnknownField.
package validators

import "context"

// Validator validates an arbitrary input value.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
