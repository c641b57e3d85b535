package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType defines the direction of a balance change (DEPOSIT or WITHDRAWAL).
type TransactionType string

const (
	TransactionTypeDeposit    TransactionType = "DEPOSIT"
	TransactionTypeWithdrawal TransactionType = "WITHDRAWAL"
)

// Valid reports whether t is one of the known transaction types.
func (t TransactionType) Valid() bool {
	switch t {
	case TransactionTypeDeposit, TransactionTypeWithdrawal:
		return true
	}
	return false
}

func (t TransactionType) String() string {
	return string(t)
}

// ParseTransactionType maps a case-insensitive name to a TransactionType.
func ParseTransactionType(s string) (TransactionType, error) {
	t := TransactionType(strings.ToUpper(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", ErrInvalidTransactionType
	}
	return t, nil
}

// Transaction is an immutable snapshot of one balance-affecting event.
type Transaction struct {
	Timestamp    time.Time       `json:"timestamp"`
	Type         TransactionType `json:"type"`
	Amount       decimal.Decimal `json:"amount"`        // Always positive, direction is carried by Type
	BalanceAfter decimal.Decimal `json:"balance_after"` // Account balance right after this event
}

// NewTransaction builds a transaction stamped at the given time.
func NewTransaction(txType TransactionType, amount, balanceAfter decimal.Decimal, at time.Time) Transaction {
	return Transaction{
		Timestamp:    at,
		Type:         txType,
		Amount:       amount,
		BalanceAfter: balanceAfter,
	}
}
