// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-budget-tracker/models"
)

// Field names accepted by [TransactionValidator].
const (
	FieldUserID          = "user_id"
	FieldName            = "name"
	FieldType            = "type"
	FieldAmount          = "amount"
	FieldTransactionDate = "transaction_date"
	FieldDateRange       = "date_range"
	FieldLimit           = "limit"
)

// MaxNameLength matches the transactions.name column.
const MaxNameLength = 255

// TransactionValidator checks transaction payloads and list filters.
type TransactionValidator struct{}

// NewTransactionValidator returns a [Validator] for models.TransactionCreate,
// models.TransactionUpdate and models.TransactionFilter.
func NewTransactionValidator() Validator {
	return &TransactionValidator{}
}

func (v *TransactionValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.TransactionCreate:
		return v.validateCreate(value, fields...)
	case *models.TransactionCreate:
		return v.validateCreate(*value, fields...)

	case models.TransactionUpdate:
		return v.validateUpdate(value, fields...)
	case *models.TransactionUpdate:
		return v.validateUpdate(*value, fields...)

	case models.TransactionFilter:
		return v.validateFilter(value, fields...)
	case *models.TransactionFilter:
		return v.validateFilter(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *TransactionValidator) validateCreate(tx models.TransactionCreate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldType, FieldAmount, FieldTransactionDate}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if err := validateName(tx.Name); err != nil {
				return err
			}
		case FieldType:
			if !tx.Type.Valid() {
				return ErrInvalidType
			}
		case FieldAmount:
			if !isValidAmount(tx.Amount) {
				return ErrInvalidAmount
			}
		case FieldTransactionDate:
			if tx.TransactionDate.IsZero() {
				return ErrEmptyDate
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateUpdate checks only the fields that are set. An update setting
// nothing is valid.
func (v *TransactionValidator) validateUpdate(update models.TransactionUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldType, FieldAmount, FieldTransactionDate}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if update.Name != nil {
				if err := validateName(*update.Name); err != nil {
					return err
				}
			}
		case FieldType:
			if update.Type != nil && !update.Type.Valid() {
				return ErrInvalidType
			}
		case FieldAmount:
			if update.Amount != nil && !isValidAmount(*update.Amount) {
				return ErrInvalidAmount
			}
		case FieldTransactionDate:
			if update.TransactionDate != nil && update.TransactionDate.IsZero() {
				return ErrEmptyDate
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *TransactionValidator) validateFilter(filter models.TransactionFilter, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldType, FieldDateRange, FieldLimit}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if filter.UserID <= 0 {
				return ErrInvalidUserID
			}
		case FieldType:
			if filter.Type != nil && !filter.Type.Valid() {
				return ErrInvalidType
			}
		case FieldDateRange:
			if filter.StartDate != nil && filter.EndDate != nil && filter.StartDate.After(filter.EndDate.Time) {
				return ErrInvalidDateRange
			}
		case FieldLimit:
			if filter.Limit > models.MaxTransactionLimit {
				return ErrLimitTooLarge
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		return ErrNameTooLong
	}
	return nil
}

func isValidAmount(amount float64) bool {
	return amount >= 0 && !math.IsInf(amount, 0) && !math.IsNaN(amount)
}
