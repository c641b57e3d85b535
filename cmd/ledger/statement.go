package main

import (
	"context"
	"fmt"
	"io"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"bank-ledger/internal/domain"
)

type accountFlags struct {
	Ops      string
	Owner    string
	Currency string
}

func (f *accountFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.Ops, "ops", "o", "", "Path to the operations CSV file (required)")
	cmd.Flags().StringVar(&f.Owner, "owner", "", "Account owner name (overrides config)")
	cmd.Flags().StringVar(&f.Currency, "currency", "", "Account currency code (overrides config)")
	_ = cmd.MarkFlagRequired("ops")
}

type statementRunner struct {
	app   *app
	flags *accountFlags
}

func newStatementCmd(a *app) *cobra.Command {
	flags := &accountFlags{}

	cmd := &cobra.Command{
		Use:   "statement",
		Short: "Print the account statement after replaying a journal",
		Long: `Replay a CSV journal of deposits and withdrawals on a new account and
print the statement: owner metadata followed by the transaction table.

Rejected operations are reported as warnings and skipped.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &statementRunner{
				app:   a,
				flags: flags,
			}
			return runner.Run(cmd)
		},
	}

	flags.register(cmd)
	return cmd
}

func (r *statementRunner) Run(cmd *cobra.Command) error {
	account, _, err := r.app.replayJournal(cmd.Context(), cmd.ErrOrStderr(), r.flags)
	if err != nil {
		return err
	}

	out, err := r.app.formatter.FormatAccount(account)
	if err != nil {
		return fmt.Errorf("failed to format statement: %w", err)
	}

	_, err = fmt.Fprint(cmd.OutOrStdout(), out)
	return err
}

// replayJournal creates an account from config and flags and applies the
// journal to it, warning about every rejected operation on warnings.
func (a *app) replayJournal(ctx context.Context, warnings io.Writer, flags *accountFlags) (*domain.Account, *domain.ReplayReport, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	owner := a.cfg.Account.Owner
	if flags.Owner != "" {
		owner = flags.Owner
	}
	currency := a.cfg.Account.Currency
	if flags.Currency != "" {
		currency = flags.Currency
	}

	account := domain.NewAccount(owner, currency, a.clock.Now())

	report, err := a.replay.Replay(ctx, account, flags.Ops)
	if err != nil {
		return nil, nil, fmt.Errorf("replay failed: %w", err)
	}

	warn := pterm.Warning.WithWriter(warnings)
	for _, rejected := range report.Rejected {
		op := rejected.Operation
		warn.Printfln("line %d: %s %s rejected: %s", op.Line, op.Type, op.Amount.StringFixed(2), rejected.Reason)
	}

	return account, report, nil
}
