package usecase_test

import (
	"context"
	"errors"
	"testing"

	"bank-ledger/internal/domain"
	"bank-ledger/internal/usecase"
	mock_usecase "bank-ledger/internal/usecase/mocks"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func op(line int, txType domain.TransactionType, amount string) domain.Operation {
	return domain.Operation{Line: line, Type: txType, Amount: decimal.RequireFromString(amount)}
}

func TestReplayUseCase_Replay(t *testing.T) {
	const path = "/examples/operations/journal.csv"

	tests := []struct {
		name         string
		operations   []domain.Operation
		repoError    error
		wantApplied  int
		wantRejected []string
		wantBalance  string
		wantHistory  int
		wantErr      bool
	}{
		{
			name: "all operations applied",
			operations: []domain.Operation{
				op(2, domain.TransactionTypeDeposit, "100.00"),
				op(3, domain.TransactionTypeWithdrawal, "50.00"),
				op(4, domain.TransactionTypeDeposit, "12.34"),
			},
			wantApplied:  3,
			wantRejected: []string{},
			wantBalance:  "62.34",
			wantHistory:  3,
		},
		{
			name: "rejected operations are reported and skipped",
			operations: []domain.Operation{
				op(2, domain.TransactionTypeDeposit, "100.00"),
				op(3, domain.TransactionTypeWithdrawal, "200.00"),
				op(4, domain.TransactionTypeDeposit, "0"),
				op(5, domain.TransactionTypeWithdrawal, "-1"),
				op(6, domain.TransactionTypeWithdrawal, "100.00"),
			},
			wantApplied:  2,
			wantRejected: []string{"insufficient funds", "amount must be positive", "amount must be positive"},
			wantBalance:  "0",
			wantHistory:  2,
		},
		{
			name:         "empty journal",
			operations:   []domain.Operation{},
			wantApplied:  0,
			wantRejected: []string{},
			wantBalance:  "0",
			wantHistory:  0,
		},
		{
			name: "unknown operation type aborts",
			operations: []domain.Operation{
				op(2, domain.TransactionTypeDeposit, "10"),
				op(3, domain.TransactionType("TRANSFER"), "10"),
			},
			wantErr: true,
		},
		{
			name:      "repository error",
			repoError: errors.New("failed to read operations"),
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mRepo := mock_usecase.NewMockOperationRepository(ctrl)
			if tt.repoError != nil {
				mRepo.EXPECT().
					GetOperations(gomock.Any(), path).
					Return(nil, tt.repoError)
			} else {
				mRepo.EXPECT().
					GetOperations(gomock.Any(), path).
					Return(tt.operations, nil)
			}

			mClock := mock_usecase.NewMockClock(ctrl)
			mClock.EXPECT().Now().Return(fixedTime).AnyTimes()

			accounts := usecase.NewAccountUseCase(usecase.NewTransactionUseCase(mClock))
			uc := usecase.NewReplayUseCase(mRepo, accounts)

			account := newAccount("0")
			got, gotErr := uc.Replay(context.Background(), account, path)

			if tt.wantErr {
				assert.Error(t, gotErr)
				assert.Nil(t, got)
				if tt.repoError != nil {
					assert.ErrorIs(t, gotErr, tt.repoError)
				}
				return
			}

			assert.NoError(t, gotErr)
			assert.NotNil(t, got)
			assert.Equal(t, account.ID.String(), got.AccountID)
			assert.Equal(t, tt.wantApplied, got.Applied)

			reasons := make([]string, 0, len(got.Rejected))
			for _, r := range got.Rejected {
				reasons = append(reasons, r.Reason)
			}
			assert.Equal(t, tt.wantRejected, reasons)

			assertDecimal(t, tt.wantBalance, got.FinalBalance)
			assertDecimal(t, tt.wantBalance, account.Balance)
			assert.Len(t, account.Transactions, tt.wantHistory)
			if n := len(account.Transactions); n > 0 {
				assert.True(t, account.Transactions[n-1].BalanceAfter.Equal(account.Balance))
			}
		})
	}
}

func TestReplayUseCase_RejectedOperationKeepsLine(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mRepo := mock_usecase.NewMockOperationRepository(ctrl)
	mRepo.EXPECT().
		GetOperations(gomock.Any(), "journal.csv").
		Return([]domain.Operation{op(7, domain.TransactionTypeWithdrawal, "1")}, nil)

	uc := usecase.NewReplayUseCase(mRepo, usecase.NewAccountUseCase(usecase.NewTransactionUseCase(usecase.SystemClock{})))
	got, err := uc.Replay(context.Background(), newAccount("0"), "journal.csv")

	assert.NoError(t, err)
	if assert.Len(t, got.Rejected, 1) {
		assert.Equal(t, 7, got.Rejected[0].Operation.Line)
		assert.Equal(t, domain.ErrInsufficientFunds.Error(), got.Rejected[0].Reason)
	}
}

func TestReplayUseCase_CancelledContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mRepo := mock_usecase.NewMockOperationRepository(ctrl)
	mRepo.EXPECT().
		GetOperations(gomock.Any(), "journal.csv").
		Return([]domain.Operation{op(2, domain.TransactionTypeDeposit, "10")}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	uc := usecase.NewReplayUseCase(mRepo, usecase.NewAccountUseCase(usecase.NewTransactionUseCase(usecase.SystemClock{})))
	account := newAccount("0")
	got, err := uc.Replay(ctx, account, "journal.csv")

	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, got)
	assert.Empty(t, account.Transactions)
}

func TestReplayUseCase_NilAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := usecase.NewReplayUseCase(mock_usecase.NewMockOperationRepository(ctrl), usecase.NewAccountUseCase(usecase.NewTransactionUseCase(usecase.SystemClock{})))
	_, err := uc.Replay(context.Background(), nil, "journal.csv")

	assert.ErrorIs(t, err, domain.ErrNilAccount)
}
