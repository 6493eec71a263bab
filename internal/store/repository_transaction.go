// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-budget-tracker/internal/logger"
	"github.com/MKhiriev/go-budget-tracker/models"
)

// transactionRepository is the PostgreSQL-backed implementation of
// [TransactionRepository]. Dynamic queries are assembled with squirrel in
// sql_queries.go.
type transactionRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewTransactionRepository constructs a [TransactionRepository] backed by db.
func NewTransactionRepository(db *DB, logger *logger.Logger) TransactionRepository {
	logger.Debug().Msg("creating transaction repository")
	return &transactionRepository{
		db:     db,
		logger: logger,
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTransaction(row rowScanner) (models.Transaction, error) {
	var tx models.Transaction
	err := row.Scan(
		&tx.ID,
		&tx.UserID,
		&tx.Name,
		&tx.Description,
		&tx.Type,
		&tx.Category,
		&tx.Amount,
		&tx.TransactionDate,
		&tx.CreatedAt,
	)
	return tx, err
}

func (r *transactionRepository) Create(ctx context.Context, tx models.Transaction) (models.Transaction, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertTransactionQuery(tx)
	if err != nil {
		log.Err(err).Str("func", "*transactionRepository.Create").Msg("error building query")
		return models.Transaction{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var created models.Transaction
	err = r.db.withRetry(ctx, func(ctx context.Context) error {
		var scanErr error
		created, scanErr = scanTransaction(r.db.QueryRowContext(ctx, query, args...))
		return scanErr
	})
	if err != nil {
		log.Err(err).Str("func", "*transactionRepository.Create").Msg("error inserting transaction")
		return models.Transaction{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return created, nil
}

func (r *transactionRepository) GetByID(ctx context.Context, id int64) (models.Transaction, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectTransactionQuery(id)
	if err != nil {
		log.Err(err).Str("func", "*transactionRepository.GetByID").Msg("error building query")
		return models.Transaction{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var found models.Transaction
	err = r.db.withRetry(ctx, func(ctx context.Context) error {
		var scanErr error
		found, scanErr = scanTransaction(r.db.QueryRowContext(ctx, query, args...))
		return scanErr
	})
	switch {
	case err == nil:
		return found, nil
	case errors.Is(err, sql.ErrNoRows):
		return models.Transaction{}, ErrTransactionNotFound
	default:
		log.Err(err).Str("func", "*transactionRepository.GetByID").Msg("error selecting transaction")
		return models.Transaction{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
}

// List returns one page of the filtered transactions, newest first.
func (r *transactionRepository) List(ctx context.Context, filter models.TransactionFilter) ([]models.Transaction, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListTransactionsQuery(filter)
	if err != nil {
		log.Err(err).Str("func", "*transactionRepository.List").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var result []models.Transaction
	err = r.db.withRetry(ctx, func(ctx context.Context) error {
		rows, err := r.db.QueryContext(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		result = make([]models.Transaction, 0, filter.Limit)
		for rows.Next() {
			tx, err := scanTransaction(rows)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrScanningRows, err)
			}
			result = append(result, tx)
		}
		return rows.Err()
	})
	if err != nil {
		log.Err(err).Str("func", "*transactionRepository.List").Msg("error listing transactions")
		if errors.Is(err, ErrScanningRows) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return result, nil
}

// Count returns the number of transactions matching filter, ignoring paging.
func (r *transactionRepository) Count(ctx context.Context, filter models.TransactionFilter) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCountTransactionsQuery(filter)
	if err != nil {
		log.Err(err).Str("func", "*transactionRepository.Count").Msg("error building query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var total int64
	err = r.db.withRetry(ctx, func(ctx context.Context) error {
		return r.db.QueryRowContext(ctx, query, args...).Scan(&total)
	})
	if err != nil {
		log.Err(err).Str("func", "*transactionRepository.Count").Msg("error counting transactions")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return total, nil
}

// Update applies the non-nil fields of update and returns the stored row.
func (r *transactionRepository) Update(ctx context.Context, id int64, update models.TransactionUpdate) (models.Transaction, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateTransactionQuery(id, update)
	if err != nil {
		log.Err(err).Str("func", "*transactionRepository.Update").Msg("error building query")
		return models.Transaction{}, err
	}

	var updated models.Transaction
	err = r.db.withRetry(ctx, func(ctx context.Context) error {
		var scanErr error
		updated, scanErr = scanTransaction(r.db.QueryRowContext(ctx, query, args...))
		return scanErr
	})
	switch {
	case err == nil:
		return updated, nil
	case errors.Is(err, sql.ErrNoRows):
		return models.Transaction{}, ErrTransactionNotFound
	default:
		log.Err(err).Str("func", "*transactionRepository.Update").Msg("error updating transaction")
		return models.Transaction{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
}

func (r *transactionRepository) Delete(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteTransactionQuery(id)
	if err != nil {
		log.Err(err).Str("func", "*transactionRepository.Delete").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var affected int64
	err = r.db.withRetry(ctx, func(ctx context.Context) error {
		res, err := r.db.ExecContext(ctx, query, args...)
		if err != nil {
			return err
		}
		affected, err = res.RowsAffected()
		return err
	})
	if err != nil {
		log.Err(err).Str("func", "*transactionRepository.Delete").Msg("error deleting transaction")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrTransactionNotFound
	}

	return nil
}

// Summary sums income and expense over all transactions of userID.
func (r *transactionRepository) Summary(ctx context.Context, userID int64) (models.Summary, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSummaryQuery(userID)
	if err != nil {
		log.Err(err).Str("func", "*transactionRepository.Summary").Msg("error building query")
		return models.Summary{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var summary models.Summary
	err = r.db.withRetry(ctx, func(ctx context.Context) error {
		return r.db.QueryRowContext(ctx, query, args...).Scan(&summary.TotalIncome, &summary.TotalExpense)
	})
	if err != nil {
		log.Err(err).Str("func", "*transactionRepository.Summary").Msg("error summarizing transactions")
		return models.Summary{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	summary.NetBalance = summary.TotalIncome - summary.TotalExpense

	return summary, nil
}
