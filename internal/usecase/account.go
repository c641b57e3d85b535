package usecase

import (
	"bank-ledger/internal/domain"

	"github.com/shopspring/decimal"
)

// AccountUseCase validates and applies deposits and withdrawals.
//
// It does no locking: callers must not mutate the same account from more
// than one goroutine at a time.
type AccountUseCase struct {
	recorder TransactionRecorder
}

// NewAccountUseCase creates a new instance of the usecase.
func NewAccountUseCase(recorder TransactionRecorder) *AccountUseCase {
	return &AccountUseCase{recorder: recorder}
}

// Deposit adds a positive amount to the balance and records a DEPOSIT.
func (uc *AccountUseCase) Deposit(account *domain.Account, amount decimal.Decimal) error {
	if account == nil {
		return domain.ErrNilAccount
	}
	if !amount.IsPositive() {
		return domain.ErrInvalidAmount
	}

	return uc.apply(account, domain.TransactionTypeDeposit, amount, account.Balance.Add(amount))
}

// Withdraw removes a positive amount not exceeding the balance and records a WITHDRAWAL.
// The positivity check runs before the funds check.
func (uc *AccountUseCase) Withdraw(account *domain.Account, amount decimal.Decimal) error {
	if account == nil {
		return domain.ErrNilAccount
	}
	if !amount.IsPositive() {
		return domain.ErrInvalidAmount
	}
	if amount.GreaterThan(account.Balance) {
		return domain.ErrInsufficientFunds
	}

	return uc.apply(account, domain.TransactionTypeWithdrawal, amount, account.Balance.Sub(amount))
}

// apply sets the new balance and records the entry. A failed recording
// restores the previous balance so no change is left without its entry.
func (uc *AccountUseCase) apply(account *domain.Account, txType domain.TransactionType, amount, newBalance decimal.Decimal) error {
	previous := account.Balance
	account.Balance = newBalance

	if _, err := uc.recorder.RecordTransaction(account, txType, amount); err != nil {
		account.Balance = previous
		return err
	}
	return nil
}
