// Package readers holds the whole-file parsers for non-columnar inputs:
// OFX/QFX tag streams, QIF line records, and freeform pasted statements.
// All three produce the same ImportResult shape as the CSV router.
package readers

import (
	"regexp"
	"strings"

	"github.com/SuperB747/walnutbook-sub002/internal/domain"
	"github.com/SuperB747/walnutbook-sub002/internal/normalize"
)

var (
	pasteDateLine = regexp.MustCompile(`^\s*(\d{1,2}/\d{1,2}/\d{4}|\d{4}-\d{2}-\d{2})\s*$`)

	pasteAmountLine    = regexp.MustCompile(`^\s*\$?(\d{1,3}(,\d{3})+|\d+)(\.\d{1,2})?\s*$`)
	pasteNegAmountLine = regexp.MustCompile(`^\s*(-\$?|\(\$?)(\d{1,3}(,\d{3})+|\d+)(\.\d{1,2})?\)?\s*$`)
)

// pasteTriple is the rolling (date, payee, amount) accumulator.
type pasteTriple struct {
	date      string
	payee     string
	amountRaw string
	negative  bool
	hasAmount bool
}

// ParsePaste parses freeform pasted statement text: an ungrouped stream of
// lines where each non-empty line is a date, an amount, or payee text.
// A transaction is emitted whenever a new date line starts and at
// end-of-input.
func ParsePaste(content string) *domain.ImportResult {
	result := domain.NewImportResult()
	result.DetectedFormat = "paste"

	var cur pasteTriple

	flush := func() {
		if cur.date == "" && cur.payee == "" && !cur.hasAmount {
			return
		}
		if draft := cur.build(); draft != nil {
			result.Transactions = append(result.Transactions, *draft)
		} else {
			result.AddWarning("skipped incomplete pasted entry (date %q, payee %q)", cur.date, cur.payee)
		}
		cur = pasteTriple{}
	}

	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(strings.TrimRight(line, "\r"))
		if line == "" {
			continue
		}

		switch {
		case pasteDateLine.MatchString(line):
			flush()
			cur.date, _ = normalize.ParseDate(line)
		case pasteNegAmountLine.MatchString(line):
			cur.amountRaw = line
			cur.negative = true
			cur.hasAmount = true
		case pasteAmountLine.MatchString(line):
			cur.amountRaw = line
			cur.negative = false
			cur.hasAmount = true
		default:
			if cur.payee == "" {
				cur.payee = line
			} else {
				cur.payee += " " + line
			}
		}
	}
	flush()

	return result
}

// build turns the accumulated triple into a draft, or nil if any part is
// missing or unparsable.
func (t *pasteTriple) build() *domain.DraftTransaction {
	if t.date == "" || !t.hasAmount {
		return nil
	}

	payee := normalize.CleanPayee(t.payee)
	if payee == "" {
		return nil
	}

	raw := strings.Trim(t.amountRaw, "()")
	amount, err := normalize.ParseAmount(raw)
	if err != nil || amount == 0 {
		return nil
	}
	if t.negative && amount > 0 {
		amount = -amount
	}

	txnType := classifyPaste(payee, amount)

	return &domain.DraftTransaction{
		Date:   t.date,
		Payee:  payee,
		Amount: normalize.NormalizeAmount(amount, txnType),
		Type:   txnType,
	}
}

var (
	pasteIncomeWords  = []string{"deposit", "refund", "interest", "rebate", "payroll", "salary"}
	pasteExpenseWords = []string{"withdrawal", "fee", "purchase", "charge"}
)

// classifyPaste infers the type keyword-first: payee keywords take
// precedence over the amount sign. Card payments invert the sign rule:
// a negative payment reduces a card balance and is Income on that account,
// a positive one is Expense.
func classifyPaste(payee string, amount float64) domain.TxnType {
	p := strings.ToLower(payee)

	if normalize.IsCardPayment(p) {
		if amount < 0 {
			return domain.TxnIncome
		}
		return domain.TxnExpense
	}

	for _, kw := range pasteIncomeWords {
		if strings.Contains(p, kw) {
			return domain.TxnIncome
		}
	}
	for _, kw := range pasteExpenseWords {
		if strings.Contains(p, kw) {
			return domain.TxnExpense
		}
	}

	if amount < 0 {
		return domain.TxnExpense
	}
	return domain.TxnIncome
}
