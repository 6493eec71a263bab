package store

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-budget-tracker/models"
	sq "github.com/Masterminds/squirrel"
)

const (
	createUser = `INSERT INTO users (username, email, password_hash)
    VALUES ($1, $2, $3)
    RETURNING user_id, username, email, password_hash, created_at;`

	findUserByUsername = `SELECT user_id, username, email, password_hash, created_at
    FROM users
    WHERE username = $1;`

	findUserByID = `SELECT user_id, username, email, password_hash, created_at
    FROM users
    WHERE user_id = $1;`
)

// unique constraints of the users table, see migrations/00001_create_users.sql
const (
	usersUsernameKey = "users_username_key"
	usersEmailKey    = "users_email_key"
)

const transactionsTable = "transactions"

var transactionColumns = []string{
	"id", "user_id", "name", "description", "type",
	"category", "amount", "transaction_date", "created_at",
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func returningTransaction() string {
	return "RETURNING " + strings.Join(transactionColumns, ", ")
}

// transactionFilterWhere turns a filter into WHERE conditions. The owner
// condition is always present.
func transactionFilterWhere(filter models.TransactionFilter) sq.And {
	where := sq.And{sq.Eq{"user_id": filter.UserID}}

	if filter.Type != nil {
		where = append(where, sq.Eq{"type": string(*filter.Type)})
	}
	if filter.Category != nil {
		where = append(where, sq.Eq{"category": *filter.Category})
	}
	if filter.StartDate != nil {
		where = append(where, sq.GtOrEq{"transaction_date": filter.StartDate.String()})
	}
	if filter.EndDate != nil {
		where = append(where, sq.LtOrEq{"transaction_date": filter.EndDate.String()})
	}

	return where
}

func buildInsertTransactionQuery(tx models.Transaction) (string, []any, error) {
	return psql.Insert(transactionsTable).
		Columns("user_id", "name", "description", "type", "category", "amount", "transaction_date").
		Values(tx.UserID, tx.Name, tx.Description, string(tx.Type), tx.Category, tx.Amount, tx.TransactionDate.String()).
		Suffix(returningTransaction()).
		ToSql()
}

func buildSelectTransactionQuery(id int64) (string, []any, error) {
	return psql.Select(transactionColumns...).
		From(transactionsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildListTransactionsQuery(filter models.TransactionFilter) (string, []any, error) {
	return psql.Select(transactionColumns...).
		From(transactionsTable).
		Where(transactionFilterWhere(filter)).
		OrderBy("transaction_date DESC", "id DESC").
		Limit(filter.Limit).
		Offset(filter.Skip).
		ToSql()
}

func buildCountTransactionsQuery(filter models.TransactionFilter) (string, []any, error) {
	return psql.Select("COUNT(*)").
		From(transactionsTable).
		Where(transactionFilterWhere(filter)).
		ToSql()
}

// buildUpdateTransactionQuery sets only the fields present in update. A
// present null on a nullable column is written as NULL.
func buildUpdateTransactionQuery(id int64, update models.TransactionUpdate) (string, []any, error) {
	set := make(map[string]any, 6)
	if update.Name != nil {
		set["name"] = *update.Name
	}
	if update.Description.Set {
		set["description"] = nullableArg(update.Description)
	}
	if update.Type != nil {
		set["type"] = string(*update.Type)
	}
	if update.Category.Set {
		set["category"] = nullableArg(update.Category)
	}
	if update.Amount != nil {
		set["amount"] = *update.Amount
	}
	if update.TransactionDate != nil {
		set["transaction_date"] = update.TransactionDate.String()
	}
	if len(set) == 0 {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, ErrNothingToUpdate)
	}

	return psql.Update(transactionsTable).
		SetMap(set).
		Where(sq.Eq{"id": id}).
		Suffix(returningTransaction()).
		ToSql()
}

func buildDeleteTransactionQuery(id int64) (string, []any, error) {
	return psql.Delete(transactionsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildSummaryQuery(userID int64) (string, []any, error) {
	return psql.Select(
		"COALESCE(SUM(amount) FILTER (WHERE type = 'income'), 0)",
		"COALESCE(SUM(amount) FILTER (WHERE type = 'expense'), 0)",
	).
		From(transactionsTable).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

func nullableArg[T any](n models.Nullable[T]) any {
	if n.Value == nil {
		return nil
	}
	return *n.Value
}
