package adapters

import (
	"fmt"

	"github.com/SuperB747/walnutbook-sub002/internal/domain"
	"github.com/SuperB747/walnutbook-sub002/internal/normalize"
)

// BMOCard parses BMO MasterCard CSV exports. Header:
// Item #, Card #, Transaction Date, Posting Date, Transaction Amount, Description.
// BMO reports charges as positive numbers and payments as negative, the
// inverse of the ledger's sign convention, so the sign interpretation is
// flipped entirely. The card number column is discarded.
type BMOCard struct{}

func (a *BMOCard) Name() string        { return "bmo-card" }
func (a *BMOCard) Description() string { return "BMO MasterCard CSV" }
func (a *BMOCard) Headerless() bool    { return false }

func (a *BMOCard) Detect(header []string) bool {
	return headerHas(header, "transaction date") &&
		headerHas(header, "transaction amount") &&
		headerHas(header, "card #")
}

func (a *BMOCard) MapColumns(header []string) ColumnMapping {
	m := NoMapping()
	m.Date = headerIndex(header, "transaction date")
	m.Amount = headerIndex(header, "transaction amount")
	m.Payee = headerIndex(header, "description")
	return m
}

func (a *BMOCard) ParseRow(row []string, m ColumnMapping) (*domain.DraftTransaction, error) {
	date, ok := normalize.ParseDateLayout(field(row, m.Date), "20060102")
	if !ok {
		// Some exports use slashed dates instead of compact ones.
		date, ok = normalize.ParseDate(field(row, m.Date))
		if !ok {
			return nil, nil
		}
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

	// Flipped sign interpretation: positive = charge, negative = payment.
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

func (a *BMOCard) Validate(d *domain.DraftTransaction) bool { return d.Valid() }
