package domain

import "errors"

var (
	// ErrInvalidAmount is returned when a deposit or withdrawal amount is zero or negative
	ErrInvalidAmount = errors.New("amount must be positive")

	// ErrInsufficientFunds is returned when a withdrawal exceeds the current balance
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrNilAccount is returned when an operation receives no account
	ErrNilAccount = errors.New("account cannot be nil")

	// ErrInvalidTransactionType is returned for an empty or unknown transaction type
	ErrInvalidTransactionType = errors.New("invalid transaction type")
)
