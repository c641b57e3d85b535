package domain

import "github.com/shopspring/decimal"

// Operation is a requested deposit or withdrawal read from an operation journal.
type Operation struct {
	Line   int             `json:"line"` // 1-based line in the source file
	Type   TransactionType `json:"type"`
	Amount decimal.Decimal `json:"amount"`
}
