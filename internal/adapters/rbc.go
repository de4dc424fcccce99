package adapters

import (
	"fmt"
	"strings"

	"github.com/SuperB747/walnutbook-sub002/internal/domain"
	"github.com/SuperB747/walnutbook-sub002/internal/normalize"
)

// RBCBanking parses RBC Royal Bank CSV exports. The header is:
// "Account Type","Account Number","Transaction Date","Cheque Number",
// "Description 1","Description 2","CAD$","USD$".
// The account number column is discarded on purpose: it is the holder's
// own account, not payee information, and has no place in notes.
type RBCBanking struct{}

func (a *RBCBanking) Name() string        { return "rbc-banking" }
func (a *RBCBanking) Description() string { return "RBC Royal Bank CSV" }
func (a *RBCBanking) Headerless() bool    { return false }

func (a *RBCBanking) Detect(header []string) bool {
	return headerHas(header, "account type") &&
		headerHas(header, "transaction date") &&
		headerHas(header, "cad$")
}

func (a *RBCBanking) MapColumns(header []string) ColumnMapping {
	m := NoMapping()
	m.Date = headerIndex(header, "transaction date")
	m.Amount = headerIndex(header, "cad$")
	m.Payee = headerIndex(header, "description 1")
	m.Notes = headerIndex(header, "description 2")
	return m
}

func (a *RBCBanking) ParseRow(row []string, m ColumnMapping) (*domain.DraftTransaction, error) {
	date, ok := normalize.ParseDate(field(row, m.Date))
	if !ok {
		return nil, nil
	}

	amountRaw := field(row, m.Amount)
	if amountRaw == "" {
		// USD-denominated rows leave CAD$ blank; out of scope for the
		// single-currency ledger.
		return nil, nil
	}
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

	txnType := normalize.InferType(amount, "")
	notes := strings.TrimSpace(field(row, m.Notes))

	return &domain.DraftTransaction{
		Date:   date,
		Payee:  payee,
		Amount: normalize.NormalizeAmount(amount, txnType),
		Type:   txnType,
		Notes:  notes,
	}, nil
}

func (a *RBCBanking) Validate(d *domain.DraftTransaction) bool { return d.Valid() }
