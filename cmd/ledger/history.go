package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"bank-ledger/internal/domain"
)

type historyFlags struct {
	accountFlags
	JSON bool
}

type historyRunner struct {
	app   *app
	flags *historyFlags
}

type historyOutput struct {
	Report       *domain.ReplayReport `json:"report"`
	Transactions []domain.Transaction `json:"transactions"`
}

func newHistoryCmd(a *app) *cobra.Command {
	flags := &historyFlags{}

	cmd := &cobra.Command{
		Use:     "history",
		Aliases: []string{"hist"},
		Short:   "Print the transaction history after replaying a journal",
		Long: `Replay a CSV journal on a new account and print only its transaction
table, or the replay report and history as JSON with --json.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &historyRunner{
				app:   a,
				flags: flags,
			}
			return runner.Run(cmd)
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&flags.JSON, "json", false, "Print the replay report and history as JSON")

	return cmd
}

func (r *historyRunner) Run(cmd *cobra.Command) error {
	account, report, err := r.app.replayJournal(cmd.Context(), cmd.ErrOrStderr(), &r.flags.accountFlags)
	if err != nil {
		return err
	}

	history, err := r.app.recorder.GetTransactionHistory(account)
	if err != nil {
		return fmt.Errorf("failed to get transactions: %w", err)
	}

	if !r.flags.JSON {
		_, err = fmt.Fprint(cmd.OutOrStdout(), r.app.formatter.FormatTransactions(history))
		return err
	}

	output, err := json.MarshalIndent(historyOutput{Report: report, Transactions: history}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to generate JSON report: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(output))
	return err
}
