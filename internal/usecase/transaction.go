package usecase

import (
	"bank-ledger/internal/domain"

	"github.com/shopspring/decimal"
)

// TransactionUseCase appends transactions to an account's ledger.
type TransactionUseCase struct {
	clock Clock
}

// NewTransactionUseCase creates a recorder stamping entries with clock.
func NewTransactionUseCase(clock Clock) *TransactionUseCase {
	return &TransactionUseCase{clock: clock}
}

// RecordTransaction appends a transaction whose balance-after is the account's
// current balance, so the caller must update the balance first. The amount is
// not validated here.
func (uc *TransactionUseCase) RecordTransaction(account *domain.Account, txType domain.TransactionType, amount decimal.Decimal) (*domain.Account, error) {
	if account == nil {
		return nil, domain.ErrNilAccount
	}
	if !txType.Valid() {
		return nil, domain.ErrInvalidTransactionType
	}

	tx := domain.NewTransaction(txType, amount, account.Balance, uc.clock.Now())
	account.Transactions = append(account.Transactions, tx)

	return account, nil
}

// GetTransactionHistory returns the account's ledger in recorded order.
func (uc *TransactionUseCase) GetTransactionHistory(account *domain.Account) ([]domain.Transaction, error) {
	if account == nil {
		return nil, domain.ErrNilAccount
	}
	return account.Transactions, nil
}
