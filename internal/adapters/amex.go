package adapters

import (
	"fmt"

	"github.com/SuperB747/walnutbook-sub002/internal/domain"
	"github.com/SuperB747/walnutbook-sub002/internal/normalize"
)

// AmexCard parses American Express CSV exports. Minimal header:
// Date, Description, Amount. Charges are positive, credits negative
// (standard card-issuer convention), so the sign interpretation flips.
type AmexCard struct{}

func (a *AmexCard) Name() string        { return "amex-card" }
func (a *AmexCard) Description() string { return "American Express CSV" }
func (a *AmexCard) Headerless() bool    { return false }

// Detect requires the exact three-token Amex header. A bare
// date/description/amount header is otherwise claimed by generic-csv,
// which uses the opposite sign interpretation, so this predicate must
// stay narrow enough to never overlap it.
func (a *AmexCard) Detect(header []string) bool {
	if len(header) != 3 {
		return false
	}
	norm := NormalizeHeader(header)
	return norm[0] == "date" && norm[1] == "description" && norm[2] == "amount"
}

func (a *AmexCard) MapColumns(header []string) ColumnMapping {
	m := NoMapping()
	m.Date = 0
	m.Payee = 1
	m.Amount = 2
	return m
}

func (a *AmexCard) ParseRow(row []string, m ColumnMapping) (*domain.DraftTransaction, error) {
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

	txnType := domain.TxnExpense
	if amount < 0 {
		txnType = domain.TxnIncome
	}

	return &domain.DraftTransaction{
		Date:   date,
		Payee:  payee,
		Amount: normalize.NormalizeAmount(amount, txnType),
		Type:   txnType,
	}, nil
}

func (a *AmexCard) Validate(d *domain.DraftTransaction) bool { return d.Valid() }
