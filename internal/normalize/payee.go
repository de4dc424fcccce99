package normalize

import (
	"regexp"
	"strings"

	"github.com/SuperB747/walnutbook-sub002/internal/domain"
)

var (
	whitespaceRun = regexp.MustCompile(`\s+`)

	// Embedded reference noise: trailing store/approval/transaction numbers
	// like "TIM HORTONS #1234 0057893214" or "AMZN Mktp CA*RT4X23".
	trailingRefNumber = regexp.MustCompile(`\s+\d{6,}$`)
	embeddedStarRef   = regexp.MustCompile(`\*[A-Z0-9]{4,}\b`)

	// Vendor prefixes that carry no payee information.
	vendorPrefixes = []string{
		"POS PURCHASE - ",
		"POS PURCHASE ",
		"PREAUTHORIZED DEBIT ",
		"PREAUTH ",
		"VISA DEBIT PUR-",
		"E-TRANSFER ",
	}
)

// CleanPayee strips vendor noise from a raw payee string: known export
// prefixes, embedded transaction/approval identifiers, and redundant
// whitespace. Returns the empty string when nothing displayable remains.
func CleanPayee(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}

	upper := strings.ToUpper(s)
	for _, prefix := range vendorPrefixes {
		if strings.HasPrefix(upper, prefix) {
			s = s[len(prefix):]
			break
		}
	}

	s = embeddedStarRef.ReplaceAllString(s, "")
	s = trailingRefNumber.ReplaceAllString(s, "")
	s = whitespaceRun.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

var (
	incomeKeywords = []string{
		"credit", "deposit", "income", "refund", "rebate",
		"interest", "payroll", "salary", "reimbursement",
	}
	expenseKeywords = []string{
		"debit", "withdrawal", "expense", "fee", "purchase", "charge",
	}

	// cardPaymentKeywords identify credit-card bill payments. These get a
	// relaxed dedup rule because the bank side and the card side of the
	// same payment post on slightly different dates.
	cardPaymentKeywords = []string{
		"payment", "autopay", "auto pay", "credit card", "bill pay", "pymt",
	}
)

// InferType classifies a transaction as Income or Expense. A keyword hint
// (an explicit type column, or OFX TRNTYPE) wins over the amount sign;
// with no hint the sign decides.
func InferType(amount float64, hint string) domain.TxnType {
	h := strings.ToLower(strings.TrimSpace(hint))
	if h != "" {
		for _, kw := range incomeKeywords {
			if strings.Contains(h, kw) {
				return domain.TxnIncome
			}
		}
		for _, kw := range expenseKeywords {
			if strings.Contains(h, kw) {
				return domain.TxnExpense
			}
		}
	}
	if amount < 0 {
		return domain.TxnExpense
	}
	return domain.TxnIncome
}

// IsCardPayment reports whether a payee string indicates a credit-card
// bill payment, independent of its Income/Expense classification.
func IsCardPayment(payee string) bool {
	p := strings.ToLower(payee)
	for _, kw := range cardPaymentKeywords {
		if strings.Contains(p, kw) {
			return true
		}
	}
	return false
}
