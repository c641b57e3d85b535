package gateway

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"bank-ledger/internal/domain"

	"github.com/shopspring/decimal"
)

const operationFields = 2

// CSVOperationRepository implements the OperationRepository interface for CSV files.
// Files have a header row followed by "type,amount" records.
type CSVOperationRepository struct{}

// NewCSVOperationRepository creates a new repository instance.
func NewCSVOperationRepository() *CSVOperationRepository {
	return &CSVOperationRepository{}
}

// GetOperations reads and parses an operation journal.
func (r *CSVOperationRepository) GetOperations(ctx context.Context, path string) ([]domain.Operation, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open operation file %s: %w", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = operationFields
	reader.TrimLeadingSpace = true

	// Skip header
	if _, err := reader.Read(); err != nil {
		return nil, fmt.Errorf("failed to read header from %s: %w", path, err)
	}

	operations := make([]domain.Operation, 0)
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading record from %s: %w", path, err)
		}
		line, _ := reader.FieldPos(0)

		txType, err := domain.ParseTransactionType(record[0])
		if err != nil {
			return nil, fmt.Errorf("%s:%d: could not parse type '%s': %w", path, line, record[0], err)
		}

		amount, err := decimal.NewFromString(strings.TrimSpace(record[1]))
		if err != nil {
			return nil, fmt.Errorf("%s:%d: could not parse amount '%s': %w", path, line, record[1], err)
		}

		operations = append(operations, domain.Operation{
			Line:   line,
			Type:   txType,
			Amount: amount,
		})
	}
	return operations, nil
}
