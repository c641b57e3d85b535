package usecase

import (
	"context"
	"errors"
	"fmt"

	"bank-ledger/internal/domain"
)

// ReplayUseCase applies an operation journal to an account.
type ReplayUseCase struct {
	repo     OperationRepository
	accounts *AccountUseCase
}

// NewReplayUseCase creates a new instance of the usecase.
func NewReplayUseCase(repo OperationRepository, accounts *AccountUseCase) *ReplayUseCase {
	return &ReplayUseCase{repo: repo, accounts: accounts}
}

// Replay loads the journal at path and applies every operation in order.
// Operations the account rejects are listed in the report and skipped.
func (uc *ReplayUseCase) Replay(ctx context.Context, account *domain.Account, path string) (*domain.ReplayReport, error) {
	if account == nil {
		return nil, domain.ErrNilAccount
	}

	// Step 1: Load the journal
	operations, err := uc.repo.GetOperations(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("could not get operations: %w", err)
	}

	report := domain.ReplayReport{
		AccountID: account.ID.String(),
		Rejected:  make([]domain.RejectedOperation, 0),
	}

	// Step 2: Apply operations in file order
	for _, op := range operations {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("replay interrupted at line %d: %w", op.Line, err)
		}

		err := uc.apply(account, op)
		switch {
		case err == nil:
			report.Applied++
		case isRejection(err):
			report.Rejected = append(report.Rejected, domain.RejectedOperation{
				Operation: op,
				Reason:    err.Error(),
			})
		default:
			return nil, fmt.Errorf("could not apply operation at line %d: %w", op.Line, err)
		}
	}

	report.FinalBalance = account.Balance
	return &report, nil
}

func (uc *ReplayUseCase) apply(account *domain.Account, op domain.Operation) error {
	switch op.Type {
	case domain.TransactionTypeDeposit:
		return uc.accounts.Deposit(account, op.Amount)
	case domain.TransactionTypeWithdrawal:
		return uc.accounts.Withdraw(account, op.Amount)
	default:
		return domain.ErrInvalidTransactionType
	}
}

// isRejection reports whether err is an ordinary business-rule refusal.
func isRejection(err error) bool {
	return errors.Is(err, domain.ErrInvalidAmount) || errors.Is(err, domain.ErrInsufficientFunds)
}
