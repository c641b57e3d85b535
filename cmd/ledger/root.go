package main

import (
	"github.com/spf13/cobra"

	"bank-ledger/internal/config"
	"bank-ledger/internal/gateway"
	"bank-ledger/internal/statement"
	"bank-ledger/internal/usecase"
)

// app wires the usecases shared by every command.
type app struct {
	cfg       *config.Config
	clock     usecase.Clock
	recorder  *usecase.TransactionUseCase
	replay    *usecase.ReplayUseCase
	formatter *statement.Formatter
}

func newApp(cfg *config.Config, clock usecase.Clock) *app {
	// Dependency Injection, outermost layer first
	repo := gateway.NewCSVOperationRepository()
	recorder := usecase.NewTransactionUseCase(clock)
	accounts := usecase.NewAccountUseCase(recorder)

	return &app{
		cfg:       cfg,
		clock:     clock,
		recorder:  recorder,
		replay:    usecase.NewReplayUseCase(repo, accounts),
		formatter: statement.NewFormatter(),
	}
}

func newRootCmd() *cobra.Command {
	var cfgFile string
	a := &app{}

	rootCmd := &cobra.Command{
		Use:           "ledger",
		Short:         "ledger replays account operations and prints statements",
		Long:          `ledger applies a CSV journal of deposits and withdrawals to a fresh in-memory account and prints its statement.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgFile)
			if err != nil {
				return err
			}
			*a = *newApp(cfg, usecase.SystemClock{})
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "set the config file path")

	rootCmd.AddCommand(newStatementCmd(a))
	rootCmd.AddCommand(newHistoryCmd(a))

	return rootCmd
}
