package models

import "time"

// TransactionType classifies a transaction as money coming in or going out.
type TransactionType string

const (
	// Income increases the user's balance.
	Income TransactionType = "income"

	// Expense decreases the user's balance.
	Expense TransactionType = "expense"
)

// Valid reports whether t is one of the known transaction types.
func (t TransactionType) Valid() bool {
	return t == Income || t == Expense
}

// Transaction is a single financial record owned by a user.
type Transaction struct {
	// ID is the server-assigned identifier.
	ID int64 `json:"id"`

	// UserID is the owner of the transaction. Only the owner may read,
	// update or delete it.
	UserID int64 `json:"user_id"`

	// Name is a short label, e.g. "Groceries".
	Name string `json:"name"`

	// Description is an optional free-form note.
	Description *string `json:"description"`

	// Type is either income or expense.
	Type TransactionType `json:"type"`

	// Category is an optional user-defined grouping, e.g. "food".
	Category *string `json:"category"`

	// Amount is the absolute value of the transaction.
	Amount float64 `json:"amount"`

	// TransactionDate is the calendar date the transaction happened on.
	TransactionDate Date `json:"transaction_date"`

	// CreatedAt is the timestamp the record was stored.
	CreatedAt time.Time `json:"created_at"`
}

// TransactionCreate is the body of POST /transactions.
type TransactionCreate struct {
	Name            string          `json:"name"`
	Description     *string         `json:"description"`
	Type            TransactionType `json:"type"`
	Category        *string         `json:"category"`
	Amount          float64         `json:"amount"`
	TransactionDate Date            `json:"transaction_date"`
}

// TransactionUpdate is the body of PUT /transactions/{id}.
// Only the fields present in the body are updated. The nullable columns
// use [Nullable] so that an explicit null clears them; a null sent for any
// other field is treated as absent.
type TransactionUpdate struct {
	Name            *string          `json:"name,omitempty"`
	Description     Nullable[string] `json:"description,omitzero"`
	Type            *TransactionType `json:"type,omitempty"`
	Category        Nullable[string] `json:"category,omitzero"`
	Amount          *float64         `json:"amount,omitempty"`
	TransactionDate *Date            `json:"transaction_date,omitempty"`
}

// IsEmpty reports whether the update changes nothing.
func (u TransactionUpdate) IsEmpty() bool {
	return u.Name == nil &&
		!u.Description.Set &&
		u.Type == nil &&
		!u.Category.Set &&
		u.Amount == nil &&
		u.TransactionDate == nil
}

// Default paging values of [TransactionFilter].
const (
	DefaultTransactionLimit uint64 = 15
	MaxTransactionLimit     uint64 = 100
)

// TransactionFilter represents search criteria for listing transactions.
// UserID is always set by the server from the authenticated principal.
type TransactionFilter struct {
	// UserID restricts the result to a single owner.
	UserID int64

	// Type, when set, keeps only transactions of that type.
	Type *TransactionType

	// Category, when set, keeps only transactions with exactly that category.
	Category *string

	// StartDate and EndDate bound TransactionDate, both inclusive.
	StartDate *Date
	EndDate   *Date

	// Skip is the number of matching rows to skip.
	Skip uint64

	// Limit is the maximum number of rows returned.
	Limit uint64
}
