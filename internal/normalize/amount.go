// Package normalize provides the shared field normalizers used by every
// format adapter and container reader: amount parsing, date parsing, payee
// cleaning, and transaction-type inference.
package normalize

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/SuperB747/walnutbook-sub002/internal/domain"
)

// currencyStripper removes the characters banks decorate amounts with.
// Thousands separators are commas; some exports also pad with NBSP.
var currencyStripper = strings.NewReplacer(
	"$", "",
	"CAD", "",
	"USD", "",
	"CA", "",
	"US", "",
	"₩", "",
	"€", "",
	"£", "",
	",", "",
	" ", "",
	" ", "",
)

// ParseAmount parses a raw amount string as exported by a bank or card
// issuer. Currency symbols, thousands separators, and whitespace are
// stripped; a parenthesized amount is negative. A zero result is returned
// as-is; callers decide whether zero invalidates the row.
func ParseAmount(raw string) (float64, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, fmt.Errorf("amount cannot be empty")
	}

	negative := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		negative = true
		s = s[1 : len(s)-1]
	}

	s = currencyStripper.Replace(s)
	s = strings.TrimSpace(s)
	if s == "" || s == "-" || s == "+" {
		return 0, fmt.Errorf("invalid amount %q", raw)
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", raw, err)
	}
	if negative {
		d = d.Neg()
	}

	f, _ := d.Float64()
	return f, nil
}

// NormalizeAmount applies the single sign rule: Income carries a positive
// magnitude, Expense a negative one, independent of account kind.
func NormalizeAmount(amount float64, txnType domain.TxnType) float64 {
	magnitude := amount
	if magnitude < 0 {
		magnitude = -magnitude
	}
	if txnType == domain.TxnExpense {
		return -magnitude
	}
	return magnitude
}

// Cents converts an amount to integer cents using decimal arithmetic so
// that dedup keys never drift from float rounding.
func Cents(amount float64) int64 {
	return decimal.NewFromFloat(amount).Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}
