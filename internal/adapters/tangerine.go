package adapters

import (
	"fmt"
	"strings"

	"github.com/SuperB747/walnutbook-sub002/internal/domain"
	"github.com/SuperB747/walnutbook-sub002/internal/normalize"
)

// Tangerine parses Tangerine savings/chequing CSV exports. Header:
// Date, Transaction, Name, Memo, Amount. The Transaction column carries an
// explicit DEBIT/CREDIT keyword that wins over the amount sign.
type Tangerine struct{}

func (a *Tangerine) Name() string        { return "tangerine" }
func (a *Tangerine) Description() string { return "Tangerine chequing/savings CSV" }
func (a *Tangerine) Headerless() bool    { return false }

func (a *Tangerine) Detect(header []string) bool {
	norm := NormalizeHeader(header)
	if len(norm) < 5 {
		return false
	}
	return norm[0] == "date" && norm[1] == "transaction" && norm[2] == "name"
}

func (a *Tangerine) MapColumns(header []string) ColumnMapping {
	m := NoMapping()
	m.Date = 0
	m.Type = 1
	m.Payee = 2
	m.Notes = 3
	m.Amount = 4
	return m
}

func (a *Tangerine) ParseRow(row []string, m ColumnMapping) (*domain.DraftTransaction, error) {
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

func (a *Tangerine) Validate(d *domain.DraftTransaction) bool { return d.Valid() }
