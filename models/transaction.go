package models

import "time"

// TransactionType is the kind of a ledger record. Only the two values below
// are permitted; anything else is rejected before persistence.
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// Valid reports whether t is one of the permitted transaction types.
func (t TransactionType) Valid() bool {
	return t == TransactionTypeIncome || t == TransactionTypeExpense
}

// Transaction represents a single financial event owned by a user.
//
// UserID is a lookup key, not a lifetime dependency: the schema keeps a
// foreign-key reference but transactions are never cascaded when an account
// disappears.
type Transaction struct {
	// TransactionID is the internal unique identifier of the record,
	// assigned by the database at creation time.
	TransactionID int64 `json:"id"`

	// UserID is the identifier of the owning user. It is always taken
	// from the authenticated identity, never from the request body.
	UserID int64 `json:"userId"`

	// Title is a non-empty human-readable label for the event.
	Title string `json:"title"`

	// Type marks the record as income or expense.
	Type TransactionType `json:"type"`

	// Date is the calendar date/time the event refers to,
	// as reported by the client.
	Date time.Time `json:"date"`

	// Amount is the monetary value of the event. No sign constraint is
	// applied; negative values are stored as given.
	Amount float64 `json:"amount"`

	// CreatedAt is the server-assigned creation timestamp.
	// Listings are ordered by it, most recent first.
	CreatedAt time.Time `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the Transaction model.
func (t Transaction) TableName() string {
	return "transactions"
}
