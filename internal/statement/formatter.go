// Package statement renders an account's ledger as a fixed-width plain-text table.
package statement

import (
	"fmt"
	"strings"

	"bank-ledger/internal/domain"
)

const (
	// TimeLayout renders timestamps in exactly 19 characters.
	TimeLayout = "2006-01-02T15:04:05"

	header         = "Date                | Type       | Amount   | Balance\n"
	separator      = "-----------------------------------------------------\n"
	noTransactions = "No transactions available for this account.\n"
	rowFormat      = "%-19s | %-10s | %-8s | %-8s\n"
)

// Formatter renders statements. It only reads the account.
type Formatter struct{}

// NewFormatter creates a new statement formatter.
func NewFormatter() *Formatter {
	return &Formatter{}
}

// FormatAccount renders the owner metadata followed by the ledger table.
// An empty ledger is rendered as a single explanatory line.
func (f *Formatter) FormatAccount(account *domain.Account) (string, error) {
	if account == nil {
		return "", domain.ErrNilAccount
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Account Owner: %s\n", account.OwnerName)
	fmt.Fprintf(&b, "Currency: %s\n", account.Currency)
	fmt.Fprintf(&b, "Created At: %s\n\n", account.CreatedAt.Format(TimeLayout))

	writeTable(&b, account.Transactions)
	if len(account.Transactions) == 0 {
		b.WriteString(noTransactions)
	}
	return b.String(), nil
}

// FormatTransactions renders the ledger table alone. An empty list yields
// only the header and separator.
func (f *Formatter) FormatTransactions(transactions []domain.Transaction) string {
	var b strings.Builder
	writeTable(&b, transactions)
	return b.String()
}

func writeTable(b *strings.Builder, transactions []domain.Transaction) {
	b.WriteString(header)
	b.WriteString(separator)
	for _, tx := range transactions {
		writeRow(b, tx)
	}
}

func writeRow(b *strings.Builder, tx domain.Transaction) {
	fmt.Fprintf(b, rowFormat,
		tx.Timestamp.Format(TimeLayout),
		tx.Type,
		tx.Amount.StringFixed(2),
		tx.BalanceAfter.StringFixed(2),
	)
}
