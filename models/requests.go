package models

import "time"

// RegisterRequest is the input schema for POST /api/auth/register.
// All three fields are required.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the input schema for POST /api/auth/login.
// Both fields are required.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AddTransactionRequest is the input schema for POST /api/transactions/add.
//
// The owner of the created record is always the authenticated identity
// resolved by the auth middleware. A "userId" field present in the request
// body is deliberately not part of this schema and is ignored.
type AddTransactionRequest struct {
	Title  string          `json:"title"`
	Type   TransactionType `json:"type"`
	Date   time.Time       `json:"date"`
	Amount float64         `json:"amount"`
}
