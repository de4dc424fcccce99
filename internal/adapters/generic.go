package adapters

import (
	"fmt"
	"strings"

	"github.com/SuperB747/walnutbook-sub002/internal/domain"
	"github.com/SuperB747/walnutbook-sub002/internal/normalize"
)

// GenericCSV is the lowest-priority fallback for any export whose header
// names a date column and an amount column. Amounts are taken at face
// value: negative = expense, positive = income, with an explicit type
// column as keyword hint when one exists.
type GenericCSV struct{}

func (a *GenericCSV) Name() string        { return "generic-csv" }
func (a *GenericCSV) Description() string { return "Generic CSV with Date and Amount columns" }
func (a *GenericCSV) Headerless() bool    { return false }

func (a *GenericCSV) Detect(header []string) bool {
	return headerHas(header, "date") && headerHas(header, "amount")
}

func (a *GenericCSV) MapColumns(header []string) ColumnMapping {
	m := NoMapping()
	m.Date = headerIndex(header, "date")
	m.Amount = headerIndex(header, "amount")
	m.Payee = headerIndex(header, "description", "payee", "merchant", "name", "detail")
	m.Type = headerIndex(header, "type")
	m.Notes = headerIndex(header, "memo", "note")
	return m
}

func (a *GenericCSV) ParseRow(row []string, m ColumnMapping) (*domain.DraftTransaction, error) {
	date, ok := normalize.ParseDate(field(row, m.Date))
	if !ok {
		return nil, nil
	}

	amountRaw := field(row, m.Amount)
	amount, err := normalize.ParseAmount(amountRaw)
	if err != nil {
		return nil, fmt.Errorf("invalid amount %q: %w", amountRaw, err)
	}
	if amount == 0 {
		return nil, nil
	}

	payee := normalize.CleanPayee(field(row, m.Payee))
	if payee == "" {
		return nil, nil
	}

	txnType := normalize.InferType(amount, field(row, m.Type))

	return &domain.DraftTransaction{
		Date:   date,
		Payee:  payee,
		Amount: normalize.NormalizeAmount(amount, txnType),
		Type:   txnType,
		Notes:  strings.TrimSpace(field(row, m.Notes)),
	}, nil
}

func (a *GenericCSV) Validate(d *domain.DraftTransaction) bool { return d.Valid() }
