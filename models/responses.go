package models

// MessageResponse is a generic acknowledgement body, e.g.
// {"message": "User registered"}.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the body of every non-2xx response produced by the API.
// Detail is a human-readable message that never contains secrets or raw
// token contents.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// TransactionPage is the body returned by GET /transactions.
type TransactionPage struct {
	// Transactions holds the requested page of matching transactions.
	Transactions []Transaction `json:"transactions"`

	// Total is the number of transactions matching the filter before
	// skip/limit are applied.
	Total int64 `json:"total"`
}

// Summary aggregates every transaction owned by a user.
type Summary struct {
	TotalIncome  float64 `json:"total_income"`
	TotalExpense float64 `json:"total_expense"`
	NetBalance   float64 `json:"net_balance"`
}
