package adapters

import (
	"fmt"
	"regexp"

	"github.com/SuperB747/walnutbook-sub002/internal/domain"
	"github.com/SuperB747/walnutbook-sub002/internal/normalize"
)

// TDChequing parses TD Canada Trust chequing/savings CSV exports.
// The file has no header row; columns are fixed:
// Date, Description, Debit, Credit, Balance with MM/DD/YYYY dates.
type TDChequing struct{}

var tdDatePattern = regexp.MustCompile(`^\d{2}/\d{2}/\d{4}$`)

const (
	tdColDate   = 0
	tdColPayee  = 1
	tdColDebit  = 2
	tdColCredit = 3
)

func (a *TDChequing) Name() string        { return "td-chequing" }
func (a *TDChequing) Description() string { return "TD Canada Trust chequing/savings CSV" }
func (a *TDChequing) Headerless() bool    { return true }

// Detect matches a 5-field data row whose first field is an MM/DD/YYYY
// date and whose debit or credit column carries a parsable amount.
func (a *TDChequing) Detect(header []string) bool {
	if len(header) != 5 {
		return false
	}
	if !tdDatePattern.MatchString(field(header, tdColDate)) {
		return false
	}
	_, debitErr := normalize.ParseAmount(field(header, tdColDebit))
	_, creditErr := normalize.ParseAmount(field(header, tdColCredit))
	return debitErr == nil || creditErr == nil
}

// MapColumns returns the fixed positional layout. The debit column stands
// in as the amount column; ParseRow reads both debit and credit.
func (a *TDChequing) MapColumns(header []string) ColumnMapping {
	m := NoMapping()
	m.Date = tdColDate
	m.Payee = tdColPayee
	m.Amount = tdColDebit
	return m
}

func (a *TDChequing) ParseRow(row []string, m ColumnMapping) (*domain.DraftTransaction, error) {
	date, ok := normalize.ParseDateLayout(field(row, m.Date), "01/02/2006")
	if !ok {
		return nil, nil
	}

	payee := normalize.CleanPayee(field(row, m.Payee))
	if payee == "" {
		return nil, nil
	}

	// Exactly one of debit/credit is populated per row.
	debitRaw := field(row, tdColDebit)
	creditRaw := field(row, tdColCredit)

	var txnType domain.TxnType
	var amount float64
	switch {
	case debitRaw != "":
		v, err := normalize.ParseAmount(debitRaw)
		if err != nil {
			return nil, fmt.Errorf("invalid debit amount %q: %w", debitRaw, err)
		}
		amount, txnType = v, domain.TxnExpense
	case creditRaw != "":
		v, err := normalize.ParseAmount(creditRaw)
		if err != nil {
			return nil, fmt.Errorf("invalid credit amount %q: %w", creditRaw, err)
		}
		amount, txnType = v, domain.TxnIncome
	default:
		return nil, nil
	}

	if amount == 0 {
		return nil, nil
	}

	return &domain.DraftTransaction{
		Date:   date,
		Payee:  payee,
		Amount: normalize.NormalizeAmount(amount, txnType),
		Type:   txnType,
	}, nil
}

func (a *TDChequing) Validate(d *domain.DraftTransaction) bool { return d.Valid() }
