// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-budget-tracker/internal/logger"
	"github.com/MKhiriev/go-budget-tracker/internal/store"
	"github.com/MKhiriev/go-budget-tracker/internal/validators"
	"github.com/MKhiriev/go-budget-tracker/models"
)

// ownerAuthorizer is the part of AuthService the transaction service needs.
type ownerAuthorizer interface {
	AuthorizeOwner(principal models.User, ownerID int64) error
}

// transactionService is the concrete implementation of TransactionService.
// Every single-record operation loads the record first and then checks
// ownership, so a missing id is reported before a foreign one.
type transactionService struct {
	repository store.TransactionRepository
	authorizer ownerAuthorizer
	validator  validators.Validator

	logger *logger.Logger
}

func NewTransactionService(repository store.TransactionRepository, authorizer ownerAuthorizer, logger *logger.Logger) TransactionService {
	logger.Debug().Msg("creating transaction service")
	return &transactionService{
		repository: repository,
		authorizer: authorizer,
		validator:  validators.NewTransactionValidator(),
		logger:     logger,
	}
}

// Create stores a new transaction owned by principal.
func (s *transactionService) Create(ctx context.Context, principal models.User, create models.TransactionCreate) (models.Transaction, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, create); err != nil {
		log.Debug().Err(err).Msg("invalid transaction data provided")
		return models.Transaction{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	created, err := s.repository.Create(ctx, models.Transaction{
		UserID:          principal.UserID,
		Name:            create.Name,
		Description:     create.Description,
		Type:            create.Type,
		Category:        create.Category,
		Amount:          create.Amount,
		TransactionDate: create.TransactionDate,
	})
	if err != nil {
		log.Err(err).Int64("user_id", principal.UserID).Msg("transaction creation failed")
		return models.Transaction{}, fmt.Errorf("transaction creation failed: %w", err)
	}

	return created, nil
}

// List returns one page of the principal's transactions and the total
// number of matches. The limit is used as given, so a zero limit yields an
// empty page with the real total.
func (s *transactionService) List(ctx context.Context, principal models.User, filter models.TransactionFilter) (models.TransactionPage, error) {
	log := logger.FromContext(ctx)

	filter.UserID = principal.UserID

	if err := s.validator.Validate(ctx, filter); err != nil {
		log.Debug().Err(err).Msg("invalid transaction filter provided")
		return models.TransactionPage{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	total, err := s.repository.Count(ctx, filter)
	if err != nil {
		log.Err(err).Int64("user_id", principal.UserID).Msg("counting transactions failed")
		return models.TransactionPage{}, fmt.Errorf("counting transactions failed: %w", err)
	}

	transactions, err := s.repository.List(ctx, filter)
	if err != nil {
		log.Err(err).Int64("user_id", principal.UserID).Msg("listing transactions failed")
		return models.TransactionPage{}, fmt.Errorf("listing transactions failed: %w", err)
	}
	if transactions == nil {
		transactions = []models.Transaction{}
	}

	return models.TransactionPage{Transactions: transactions, Total: total}, nil
}

func (s *transactionService) Get(ctx context.Context, principal models.User, id int64) (models.Transaction, error) {
	return s.getOwned(ctx, principal, id)
}

// Update applies a partial update to a transaction owned by principal. An
// update that sets nothing returns the stored transaction unchanged.
func (s *transactionService) Update(ctx context.Context, principal models.User, id int64, update models.TransactionUpdate) (models.Transaction, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, update); err != nil {
		log.Debug().Err(err).Msg("invalid transaction update provided")
		return models.Transaction{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	current, err := s.getOwned(ctx, principal, id)
	if err != nil {
		return models.Transaction{}, err
	}
	if update.IsEmpty() {
		return current, nil
	}

	updated, err := s.repository.Update(ctx, id, update)
	if err != nil {
		if errors.Is(err, store.ErrTransactionNotFound) {
			return models.Transaction{}, ErrTransactionNotFound
		}
		log.Err(err).Int64("transaction_id", id).Msg("transaction update failed")
		return models.Transaction{}, fmt.Errorf("transaction update failed: %w", err)
	}

	return updated, nil
}

func (s *transactionService) Delete(ctx context.Context, principal models.User, id int64) error {
	log := logger.FromContext(ctx)

	if _, err := s.getOwned(ctx, principal, id); err != nil {
		return err
	}

	if err := s.repository.Delete(ctx, id); err != nil {
		if errors.Is(err, store.ErrTransactionNotFound) {
			return ErrTransactionNotFound
		}
		log.Err(err).Int64("transaction_id", id).Msg("transaction deletion failed")
		return fmt.Errorf("transaction deletion failed: %w", err)
	}

	log.Info().Int64("transaction_id", id).Msg("transaction deleted")
	return nil
}

// Summary totals income and expense over all of the principal's transactions.
func (s *transactionService) Summary(ctx context.Context, principal models.User) (models.Summary, error) {
	summary, err := s.repository.Summary(ctx, principal.UserID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", principal.UserID).Msg("summary failed")
		return models.Summary{}, fmt.Errorf("summary failed: %w", err)
	}

	return summary, nil
}

// getOwned loads a transaction and checks that principal owns it.
func (s *transactionService) getOwned(ctx context.Context, principal models.User, id int64) (models.Transaction, error) {
	log := logger.FromContext(ctx)

	tx, err := s.repository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrTransactionNotFound) {
			return models.Transaction{}, ErrTransactionNotFound
		}
		log.Err(err).Int64("transaction_id", id).Msg("transaction lookup failed")
		return models.Transaction{}, fmt.Errorf("transaction lookup failed: %w", err)
	}

	if err = s.authorizer.AuthorizeOwner(principal, tx.UserID); err != nil {
		log.Info().Int64("transaction_id", id).Int64("user_id", principal.UserID).Msg("access to foreign transaction denied")
		return models.Transaction{}, err
	}

	return tx, nil
}
