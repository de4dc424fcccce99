// Package dedup compares freshly parsed drafts against the existing
// ledger set so previously imported transactions are never re-inserted.
package dedup

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/SuperB747/walnutbook-sub002/internal/domain"
	"github.com/SuperB747/walnutbook-sub002/internal/normalize"
)

// paymentDayTolerance is how far apart (in calendar days) two card-payment
// transactions may post and still be the same payment. The bank side and
// the card side of one payment routinely differ by a day or two.
const paymentDayTolerance = 2

// Key builds the composite identity key for an ordinary transaction:
// {date}|{lowercased trimmed payee}|{amount in integer cents}.
// Card-payment transactions collapse to payment-{cents} with no date,
// because their match uses the day tolerance instead.
// Returns "" when a required field is missing.
func Key(date, payee string, amount float64) string {
	payee = strings.ToLower(strings.TrimSpace(payee))
	if date == "" || payee == "" {
		return ""
	}
	cents := normalize.Cents(amount)
	if normalize.IsCardPayment(payee) {
		return fmt.Sprintf("payment-%d", cents)
	}
	return fmt.Sprintf("%s|%s|%d", date, payee, cents)
}

// Dedupe partitions drafts into accepted and skipped against the existing
// set. Only the existing set seeds the index: a file may legitimately
// contain repeated identical-looking entries, so drafts are never deduped
// against each other. Drafts that cannot produce a key pass through as
// accepted (fail-open).
func Dedupe(drafts []domain.DraftTransaction, existing []domain.Transaction) domain.DedupOutcome {
	outcome := domain.DedupOutcome{
		Accepted: []domain.DraftTransaction{},
		Skipped:  []domain.DraftTransaction{},
	}

	// Index maps identity key to the dates it was seen on. Ordinary keys
	// embed the date, so their date list is only used for existence;
	// payment keys need the dates for the tolerance check.
	index := make(map[string][]string, len(existing))
	for _, txn := range existing {
		key := Key(txn.Date, txn.Payee, txn.Amount)
		if key == "" {
			continue
		}
		index[key] = append(index[key], txn.Date)
	}

	for _, draft := range drafts {
		key := Key(draft.Date, draft.Payee, draft.Amount)
		if key == "" {
			outcome.Accepted = append(outcome.Accepted, draft)
			continue
		}

		dates, seen := index[key]
		isDup := false
		if seen {
			if strings.HasPrefix(key, "payment-") {
				for _, d := range dates {
					if withinDays(draft.Date, d, paymentDayTolerance) {
						isDup = true
						break
					}
				}
			} else {
				isDup = true
			}
		}

		if isDup {
			outcome.Skipped = append(outcome.Skipped, draft)
			outcome.DuplicateCount++
		} else {
			outcome.Accepted = append(outcome.Accepted, draft)
		}
	}

	return outcome
}

// withinDays reports whether two YYYY-MM-DD dates are at most n calendar
// days apart, by ceiling-rounded absolute day difference. Unparsable
// dates never match.
func withinDays(a, b string, n int) bool {
	ta, errA := time.Parse("2006-01-02", a)
	tb, errB := time.Parse("2006-01-02", b)
	if errA != nil || errB != nil {
		return false
	}
	days := math.Ceil(math.Abs(ta.Sub(tb).Hours()) / 24)
	return int(days) <= n
}
