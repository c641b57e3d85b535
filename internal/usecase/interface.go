package usecase

import (
	"context"
	"time"

	"bank-ledger/internal/domain"

	"github.com/shopspring/decimal"
)

// TransactionRecorder appends ledger entries to an account.
// The account usecase depends on this interface, not on a concrete implementation.
//
//go:generate mockgen -destination=mocks/mock_interface.go -source=interface.go
type TransactionRecorder interface {
	RecordTransaction(account *domain.Account, txType domain.TransactionType, amount decimal.Decimal) (*domain.Account, error)
	GetTransactionHistory(account *domain.Account) ([]domain.Transaction, error)
}

// Clock supplies the time used to stamp transactions.
type Clock interface {
	Now() time.Time
}

// OperationRepository defines the interface for fetching operation journals.
type OperationRepository interface {
	GetOperations(ctx context.Context, path string) ([]domain.Operation, error)
}
