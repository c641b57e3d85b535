package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Account holds a balance and its ledger.
//
// Transactions is append-only and kept in chronological order. Balance is
// changed through the account usecase; tests may set it directly.
type Account struct {
	ID           uuid.UUID       `json:"id"`
	OwnerName    string          `json:"owner_name"`
	Currency     string          `json:"currency"`
	CreatedAt    time.Time       `json:"created_at"`
	Balance      decimal.Decimal `json:"balance"`
	Transactions []Transaction   `json:"transactions"`
}

// NewAccount creates an empty account with a fresh identifier.
func NewAccount(ownerName, currency string, createdAt time.Time) *Account {
	return &Account{
		ID:           uuid.New(),
		OwnerName:    ownerName,
		Currency:     currency,
		CreatedAt:    createdAt,
		Balance:      decimal.Zero,
		Transactions: make([]Transaction, 0),
	}
}
