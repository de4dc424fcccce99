package adapters

import (
	"fmt"
	"regexp"

	"github.com/SuperB747/walnutbook-sub002/internal/domain"
	"github.com/SuperB747/walnutbook-sub002/internal/normalize"
)

// CIBCHeaderless parses CIBC account CSV exports. Structurally close to
// the TD layout but four columns and ISO dates:
// Date, Description, Debit, Credit. Kept as its own catalog entry rather
// than merged with TD so the detection predicates stay independent.
type CIBCHeaderless struct{}

var cibcDatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

const (
	cibcColDate   = 0
	cibcColPayee  = 1
	cibcColDebit  = 2
	cibcColCredit = 3
)

func (a *CIBCHeaderless) Name() string        { return "cibc-banking" }
func (a *CIBCHeaderless) Description() string { return "CIBC account CSV (no header)" }
func (a *CIBCHeaderless) Headerless() bool    { return true }

// Detect matches a 4-field data row with an ISO date in the first field.
func (a *CIBCHeaderless) Detect(header []string) bool {
	if len(header) != 4 {
		return false
	}
	if !cibcDatePattern.MatchString(field(header, cibcColDate)) {
		return false
	}
	_, debitErr := normalize.ParseAmount(field(header, cibcColDebit))
	_, creditErr := normalize.ParseAmount(field(header, cibcColCredit))
	return debitErr == nil || creditErr == nil
}

func (a *CIBCHeaderless) MapColumns(header []string) ColumnMapping {
	m := NoMapping()
	m.Date = cibcColDate
	m.Payee = cibcColPayee
	m.Amount = cibcColDebit
	return m
}

func (a *CIBCHeaderless) ParseRow(row []string, m ColumnMapping) (*domain.DraftTransaction, error) {
	date, ok := normalize.ParseDate(field(row, m.Date))
	if !ok {
		return nil, nil
	}

	payee := normalize.CleanPayee(field(row, m.Payee))
	if payee == "" {
		return nil, nil
	}

	debitRaw := field(row, cibcColDebit)
	creditRaw := field(row, cibcColCredit)

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

func (a *CIBCHeaderless) Validate(d *domain.DraftTransaction) bool { return d.Valid() }
