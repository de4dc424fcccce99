package readers

import (
	"strings"

	"github.com/SuperB747/walnutbook-sub002/internal/domain"
	"github.com/SuperB747/walnutbook-sub002/internal/normalize"
)

// qifRecord is one non-investment QIF transaction record.
// Field codes per the QIF line-record format: D date, T amount, P payee,
// M memo, L category, ^ record terminator.
type qifRecord struct {
	date     string
	amount   string
	payee    string
	memo     string
	category string
}

func (r *qifRecord) empty() bool {
	return r.date == "" && r.amount == "" && r.payee == ""
}

// ParseQIF parses QIF content into draft transactions. The sign rule
// matches OFX: negative amount is Expense, positive is Income.
func ParseQIF(content string) *domain.ImportResult {
	result := domain.NewImportResult()
	result.DetectedFormat = "qif"

	var cur qifRecord
	recordNum := 0

	flush := func() {
		if cur.empty() {
			cur = qifRecord{}
			return
		}
		recordNum++
		if draft := cur.build(); draft != nil {
			result.Transactions = append(result.Transactions, *draft)
		} else {
			result.AddWarning("skipped QIF record %d: missing or invalid date, amount, or payee", recordNum)
		}
		cur = qifRecord{}
	}

	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimRight(line, "\r")
		if line == "" {
			continue
		}

		// Header/type lines like !Type:Bank carry no record data.
		if strings.HasPrefix(line, "!") {
			continue
		}

		code, value := line[0], strings.TrimSpace(line[1:])
		switch code {
		case 'D':
			cur.date = value
		case 'T', 'U':
			cur.amount = value
		case 'P':
			cur.payee = value
		case 'M':
			cur.memo = value
		case 'L':
			cur.category = value
		case '^':
			flush()
		}
	}
	flush()

	return result
}

func (r *qifRecord) build() *domain.DraftTransaction {
	date, ok := normalize.ParseDate(r.date)
	if !ok {
		return nil
	}

	amount, err := normalize.ParseAmount(r.amount)
	if err != nil || amount == 0 {
		return nil
	}

	payee := normalize.CleanPayee(r.payee)
	if payee == "" {
		return nil
	}

	txnType := domain.TxnIncome
	if amount < 0 {
		txnType = domain.TxnExpense
	}

	notes := r.memo
	if r.category != "" {
		// QIF category labels rarely line up with the ledger's category
		// set; carried as notes so nothing is silently dropped.
		if notes != "" {
			notes += " "
		}
		notes += "[" + r.category + "]"
	}

	return &domain.DraftTransaction{
		Date:   date,
		Payee:  payee,
		Amount: normalize.NormalizeAmount(amount, txnType),
		Type:   txnType,
		Notes:  notes,
	}
}
