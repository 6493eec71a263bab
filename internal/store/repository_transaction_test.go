// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-budget-tracker/internal/logger"
	"github.com/MKhiriev/go-budget-tracker/models"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTransactionRepo(t *testing.T) (TransactionRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newTestDB(t, 0)
	return NewTransactionRepository(db, logger.Nop()), mock
}

func ptr[T any](v T) *T { return &v }

func transactionRow(id, userID int64, name string, txType string, amount float64, date time.Time) []driver.Value {
	return []driver.Value{id, userID, name, nil, txType, "food", amount, date, time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)}
}

func TestTransactionRepository_Create(t *testing.T) {
	repo, mock := newTestTransactionRepo(t)
	date := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO transactions (user_id,name,description,type,category,amount,transaction_date) VALUES ($1,$2,$3,$4,$5,$6,$7) RETURNING id")).
		WithArgs(int64(3), "Groceries", nil, "expense", "food", 42.5, "2024-03-15").
		WillReturnRows(sqlmock.NewRows(transactionColumns).
			AddRow(transactionRow(10, 3, "Groceries", "expense", 42.5, date)...))

	created, err := repo.Create(context.Background(), models.Transaction{
		UserID:          3,
		Name:            "Groceries",
		Type:            models.Expense,
		Category:        ptr("food"),
		Amount:          42.5,
		TransactionDate: models.NewDate(2024, time.March, 15),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(10), created.ID)
	assert.Equal(t, int64(3), created.UserID)
	assert.Equal(t, models.Expense, created.Type)
	assert.Nil(t, created.Description)
	require.NotNil(t, created.Category)
	assert.Equal(t, "food", *created.Category)
	assert.Equal(t, "2024-03-15", created.TransactionDate.String())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRepository_Create_CheckViolation(t *testing.T) {
	repo, mock := newTestTransactionRepo(t)

	mock.ExpectQuery("INSERT INTO transactions").
		WillReturnError(pgError(pgerrcode.CheckViolation))

	_, err := repo.Create(context.Background(), models.Transaction{UserID: 1, Type: "bogus"})
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestTransactionRepository_GetByID(t *testing.T) {
	date := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	t.Run("found", func(t *testing.T) {
		repo, mock := newTestTransactionRepo(t)
		mock.ExpectQuery(regexp.QuoteMeta("FROM transactions WHERE id = $1")).
			WithArgs(int64(10)).
			WillReturnRows(sqlmock.NewRows(transactionColumns).
				AddRow(transactionRow(10, 3, "Salary", "income", 1000, date)...))

		tx, err := repo.GetByID(context.Background(), 10)
		require.NoError(t, err)
		assert.Equal(t, "Salary", tx.Name)
		assert.Equal(t, models.Income, tx.Type)
		assert.InDelta(t, 1000, tx.Amount, 1e-9)
	})

	t.Run("not found", func(t *testing.T) {
		repo, mock := newTestTransactionRepo(t)
		mock.ExpectQuery("FROM transactions").
			WithArgs(int64(11)).
			WillReturnRows(sqlmock.NewRows(transactionColumns))

		_, err := repo.GetByID(context.Background(), 11)
		assert.ErrorIs(t, err, ErrTransactionNotFound)
	})

	t.Run("db error", func(t *testing.T) {
		repo, mock := newTestTransactionRepo(t)
		mock.ExpectQuery("FROM transactions").
			WillReturnError(errors.New("boom"))

		_, err := repo.GetByID(context.Background(), 11)
		assert.ErrorIs(t, err, ErrExecutingQuery)
	})
}

func TestTransactionRepository_List(t *testing.T) {
	repo, mock := newTestTransactionRepo(t)
	d1 := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	d2 := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	filter := models.TransactionFilter{
		UserID:    3,
		Type:      ptr(models.Expense),
		StartDate: ptr(models.NewDate(2024, time.March, 1)),
		Limit:     15,
	}

	mock.ExpectQuery(regexp.QuoteMeta("WHERE (user_id = $1 AND type = $2 AND transaction_date >= $3) ORDER BY transaction_date DESC, id DESC LIMIT 15 OFFSET 0")).
		WithArgs(int64(3), "expense", "2024-03-01").
		WillReturnRows(sqlmock.NewRows(transactionColumns).
			AddRow(transactionRow(2, 3, "Rent", "expense", 500, d1)...).
			AddRow(transactionRow(1, 3, "Food", "expense", 20, d2)...))

	list, err := repo.List(context.Background(), filter)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, int64(2), list[0].ID)
	assert.Equal(t, int64(1), list[1].ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRepository_List_Empty(t *testing.T) {
	repo, mock := newTestTransactionRepo(t)

	mock.ExpectQuery("FROM transactions").
		WillReturnRows(sqlmock.NewRows(transactionColumns))

	list, err := repo.List(context.Background(), models.TransactionFilter{UserID: 3, Limit: 15})
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestTransactionRepository_List_ScanError(t *testing.T) {
	repo, mock := newTestTransactionRepo(t)

	mock.ExpectQuery("FROM transactions").
		WillReturnRows(sqlmock.NewRows(transactionColumns).
			AddRow(int64(1), int64(3), "x", nil, "expense", nil, "not-a-number", time.Now(), time.Now()))

	_, err := repo.List(context.Background(), models.TransactionFilter{UserID: 3, Limit: 15})
	assert.ErrorIs(t, err, ErrScanningRows)
}

func TestTransactionRepository_Count(t *testing.T) {
	repo, mock := newTestTransactionRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM transactions WHERE (user_id = $1 AND category = $2)")).
		WithArgs(int64(3), "food").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(42)))

	total, err := repo.Count(context.Background(), models.TransactionFilter{UserID: 3, Category: ptr("food"), Skip: 10, Limit: 5})
	require.NoError(t, err)
	assert.Equal(t, int64(42), total)
}

func TestTransactionRepository_Update(t *testing.T) {
	date := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	t.Run("partial", func(t *testing.T) {
		repo, mock := newTestTransactionRepo(t)

		mock.ExpectQuery(regexp.QuoteMeta("UPDATE transactions SET amount = $1, name = $2 WHERE id = $3 RETURNING")).
			WithArgs(99.0, "Dinner", int64(10)).
			WillReturnRows(sqlmock.NewRows(transactionColumns).
				AddRow(transactionRow(10, 3, "Dinner", "expense", 99, date)...))

		tx, err := repo.Update(context.Background(), 10, models.TransactionUpdate{Name: ptr("Dinner"), Amount: ptr(99.0)})
		require.NoError(t, err)
		assert.Equal(t, "Dinner", tx.Name)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("clears description", func(t *testing.T) {
		repo, mock := newTestTransactionRepo(t)

		mock.ExpectQuery(regexp.QuoteMeta("UPDATE transactions SET description = $1 WHERE id = $2 RETURNING")).
			WithArgs(nil, int64(10)).
			WillReturnRows(sqlmock.NewRows(transactionColumns).
				AddRow(transactionRow(10, 3, "Dinner", "expense", 99, date)...))

		tx, err := repo.Update(context.Background(), 10, models.TransactionUpdate{Description: models.Null[string]()})
		require.NoError(t, err)
		assert.Nil(t, tx.Description)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		repo, mock := newTestTransactionRepo(t)

		mock.ExpectQuery("UPDATE transactions").
			WillReturnRows(sqlmock.NewRows(transactionColumns))

		_, err := repo.Update(context.Background(), 10, models.TransactionUpdate{Name: ptr("Dinner")})
		assert.ErrorIs(t, err, ErrTransactionNotFound)
	})

	t.Run("empty update", func(t *testing.T) {
		repo, _ := newTestTransactionRepo(t)

		_, err := repo.Update(context.Background(), 10, models.TransactionUpdate{})
		assert.ErrorIs(t, err, ErrNothingToUpdate)
	})
}

func TestTransactionRepository_Delete(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		repo, mock := newTestTransactionRepo(t)
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM transactions WHERE id = $1")).
			WithArgs(int64(10)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.Delete(context.Background(), 10))
	})

	t.Run("not found", func(t *testing.T) {
		repo, mock := newTestTransactionRepo(t)
		mock.ExpectExec("DELETE FROM transactions").
			WithArgs(int64(10)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.Delete(context.Background(), 10), ErrTransactionNotFound)
	})

	t.Run("db error", func(t *testing.T) {
		repo, mock := newTestTransactionRepo(t)
		mock.ExpectExec("DELETE FROM transactions").
			WillReturnError(sql.ErrConnDone)

		assert.ErrorIs(t, repo.Delete(context.Background(), 10), ErrExecutingQuery)
	})
}

func TestTransactionRepository_Summary(t *testing.T) {
	repo, mock := newTestTransactionRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("FILTER (WHERE type = 'income')")).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"income", "expense"}).AddRow(1500.0, 320.25))

	summary, err := repo.Summary(context.Background(), 3)
	require.NoError(t, err)
	assert.InDelta(t, 1500.0, summary.TotalIncome, 1e-9)
	assert.InDelta(t, 320.25, summary.TotalExpense, 1e-9)
	assert.InDelta(t, 1179.75, summary.NetBalance, 1e-9)
}
