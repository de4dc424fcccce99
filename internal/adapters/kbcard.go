package adapters

import (
	"fmt"
	"regexp"

	"github.com/SuperB747/walnutbook-sub002/internal/domain"
	"github.com/SuperB747/walnutbook-sub002/internal/normalize"
)

// KBCard parses KB Kookmin card exports: semicolon-delimited, dotted
// YYYY.MM.DD dates, plain-integer won amounts, charges positive. Header:
// 이용일;이용카드;가맹점명;이용금액;승인번호
// (date; card; merchant; amount; approval number). The card and approval
// number columns are discarded rather than kept as notes.
type KBCard struct{}

// approvalRun matches the approval numbers KB embeds into merchant names.
var approvalRun = regexp.MustCompile(`\s*\(?\d{8}\)?\s*$`)

func (a *KBCard) Name() string        { return "kb-card" }
func (a *KBCard) Description() string { return "KB Kookmin card CSV (semicolon)" }
func (a *KBCard) Headerless() bool    { return false }

func (a *KBCard) Detect(header []string) bool {
	return headerHas(header, "이용일") && headerHas(header, "이용금액")
}

func (a *KBCard) MapColumns(header []string) ColumnMapping {
	m := NoMapping()
	m.Date = headerIndex(header, "이용일")
	m.Payee = headerIndex(header, "가맹점명")
	m.Amount = headerIndex(header, "이용금액")
	return m
}

func (a *KBCard) ParseRow(row []string, m ColumnMapping) (*domain.DraftTransaction, error) {
	date, ok := normalize.ParseDateLayout(field(row, m.Date), "2006.01.02")
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

	payee := normalize.CleanPayee(approvalRun.ReplaceAllString(field(row, m.Payee), ""))
	if payee == "" {
		return nil, nil
	}

	// Charges are positive in the export; refunds come through negative.
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

func (a *KBCard) Validate(d *domain.DraftTransaction) bool { return d.Valid() }
