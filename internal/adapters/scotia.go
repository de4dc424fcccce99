package adapters

import (
	"fmt"
	"regexp"

	"github.com/SuperB747/walnutbook-sub002/internal/domain"
	"github.com/SuperB747/walnutbook-sub002/internal/normalize"
)

// ScotiaVisa parses Scotiabank Visa CSV exports. Headerless, three
// columns: Date (MM/DD/YYYY), Description, Amount. The export has no type
// column and lists charges only, so every row is an Expense with a
// negative normalized sign.
type ScotiaVisa struct{}

var scotiaDatePattern = regexp.MustCompile(`^\d{1,2}/\d{1,2}/\d{4}$`)

const (
	scotiaColDate   = 0
	scotiaColPayee  = 1
	scotiaColAmount = 2
)

func (a *ScotiaVisa) Name() string        { return "scotia-visa" }
func (a *ScotiaVisa) Description() string { return "Scotiabank Visa CSV (no header)" }
func (a *ScotiaVisa) Headerless() bool    { return true }

func (a *ScotiaVisa) Detect(header []string) bool {
	if len(header) != 3 {
		return false
	}
	if !scotiaDatePattern.MatchString(field(header, scotiaColDate)) {
		return false
	}
	_, err := normalize.ParseAmount(field(header, scotiaColAmount))
	return err == nil
}

func (a *ScotiaVisa) MapColumns(header []string) ColumnMapping {
	m := NoMapping()
	m.Date = scotiaColDate
	m.Payee = scotiaColPayee
	m.Amount = scotiaColAmount
	return m
}

func (a *ScotiaVisa) ParseRow(row []string, m ColumnMapping) (*domain.DraftTransaction, error) {
	date, ok := normalize.ParseDateLayout(field(row, m.Date), "1/2/2006")
	if !ok {
		return nil, nil
	}

	payee := normalize.CleanPayee(field(row, m.Payee))
	if payee == "" {
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

	// No type column: every row is a charge.
	return &domain.DraftTransaction{
		Date:   date,
		Payee:  payee,
		Amount: normalize.NormalizeAmount(amount, domain.TxnExpense),
		Type:   domain.TxnExpense,
	}, nil
}

func (a *ScotiaVisa) Validate(d *domain.DraftTransaction) bool { return d.Valid() }
