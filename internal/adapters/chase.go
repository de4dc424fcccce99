package adapters

import (
	"fmt"

	"github.com/SuperB747/walnutbook-sub002/internal/domain"
	"github.com/SuperB747/walnutbook-sub002/internal/normalize"
)

// Chase parses Chase checking CSV exports. Header:
// Details, Posting Date, Description, Amount, Type, Balance, Check or Slip #.
// Amounts are already signed from the holder's perspective; the Type
// column (DEBIT/CREDIT/...) is used as a keyword hint when present.
type Chase struct{}

func (a *Chase) Name() string        { return "chase" }
func (a *Chase) Description() string { return "Chase checking CSV" }
func (a *Chase) Headerless() bool    { return false }

func (a *Chase) Detect(header []string) bool {
	return headerHas(header, "posting date") && headerHas(header, "details")
}

func (a *Chase) MapColumns(header []string) ColumnMapping {
	m := NoMapping()
	m.Date = headerIndex(header, "posting date")
	m.Payee = headerIndex(header, "description")
	m.Amount = headerIndex(header, "amount")
	m.Type = headerIndex(header, "type")
	return m
}

func (a *Chase) ParseRow(row []string, m ColumnMapping) (*domain.DraftTransaction, error) {
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
	}, nil
}

func (a *Chase) Validate(d *domain.DraftTransaction) bool { return d.Valid() }
