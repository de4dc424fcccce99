package readers

import (
	"regexp"
	"strings"

	"github.com/aclindsa/ofxgo"

	"github.com/SuperB747/walnutbook-sub002/internal/domain"
	"github.com/SuperB747/walnutbook-sub002/internal/normalize"
)

// stmtTrnSplit splits the content on each <STMTTRN> opening tag.
var stmtTrnSplit = regexp.MustCompile(`(?i)<STMTTRN>`)

// ofxTag extracts a tag value terminated either by a closing tag or, in
// SGML-style files, by the next tag opening or end of line.
func ofxTag(fragment, tag string) string {
	re := regexp.MustCompile(`(?is)<` + tag + `>([^<\r\n]*)`)
	m := re.FindStringSubmatch(fragment)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}

// ParseOFX parses OFX/QFX content. A well-formed response is handled by
// the ofxgo decoder; real-world QFX exports are frequently SGML with
// unterminated tags or missing headers that the strict decoder rejects,
// so those fall back to lenient tag-bounded extraction of <STMTTRN>
// blocks.
func ParseOFX(content string) *domain.ImportResult {
	if result, ok := parseOFXStrict(content); ok {
		return result
	}
	return parseOFXLenient(content)
}

// parseOFXStrict decodes via ofxgo and returns ok=false when the file is
// not a well-formed OFX response.
func parseOFXStrict(content string) (*domain.ImportResult, bool) {
	resp, err := ofxgo.ParseResponse(strings.NewReader(content))
	if err != nil {
		return nil, false
	}

	result := domain.NewImportResult()
	result.DetectedFormat = "ofx"

	appendList := func(list *ofxgo.TransactionList) {
		if list == nil {
			return
		}
		for _, txn := range list.Transactions {
			appendOFXTransaction(result, txn)
		}
	}

	for _, msg := range resp.Bank {
		if stmt, ok := msg.(*ofxgo.StatementResponse); ok {
			appendList(stmt.BankTranList)
		}
	}
	for _, msg := range resp.CreditCard {
		if stmt, ok := msg.(*ofxgo.CCStatementResponse); ok {
			appendList(stmt.BankTranList)
		}
	}

	return result, true
}

func appendOFXTransaction(result *domain.ImportResult, txn ofxgo.Transaction) {
	date := txn.DtPosted.Time
	if date.IsZero() {
		result.AddWarning("skipped OFX transaction %s: missing posted date", txn.FiTID.String())
		return
	}

	amount, _ := txn.TrnAmt.Float64()
	if amount == 0 {
		result.AddWarning("skipped OFX transaction %s: zero amount", txn.FiTID.String())
		return
	}

	payee, notes := combineNameMemo(txn.Name.String(), txn.Memo.String())
	if payee == "" {
		result.AddWarning("skipped OFX transaction %s: no name or memo", txn.FiTID.String())
		return
	}

	txnType := domain.TxnIncome
	if amount < 0 {
		txnType = domain.TxnExpense
	}

	result.Transactions = append(result.Transactions, domain.DraftTransaction{
		Date:   date.Format("2006-01-02"),
		Payee:  payee,
		Amount: normalize.NormalizeAmount(amount, txnType),
		Type:   txnType,
		Notes:  notes,
	})
}

// parseOFXLenient extracts <STMTTRN> blocks with tag-bounded regexes.
// Tolerates SGML unterminated tags and files with no OFX header at all.
func parseOFXLenient(content string) *domain.ImportResult {
	result := domain.NewImportResult()
	result.DetectedFormat = "ofx"

	fragments := stmtTrnSplit.Split(content, -1)
	if len(fragments) < 2 {
		result.AddError("no transaction records found in OFX file")
		return result
	}

	for i, fragment := range fragments[1:] {
		dtPosted := ofxTag(fragment, "DTPOSTED")
		trnAmt := ofxTag(fragment, "TRNAMT")
		if dtPosted == "" || trnAmt == "" {
			result.AddWarning("skipped OFX record %d: missing DTPOSTED or TRNAMT", i+1)
			continue
		}

		// Truncate fractional-seconds/timezone suffixes like
		// 20240115120000.000[-5:EST] down to the date digits.
		if len(dtPosted) > 8 {
			dtPosted = dtPosted[:8]
		}
		date, ok := normalize.ParseDateLayout(dtPosted, "20060102")
		if !ok {
			result.AddWarning("skipped OFX record %d: unparsable date %q", i+1, dtPosted)
			continue
		}

		amount, err := normalize.ParseAmount(trnAmt)
		if err != nil || amount == 0 {
			result.AddWarning("skipped OFX record %d: unparsable amount %q", i+1, trnAmt)
			continue
		}

		payee, notes := combineNameMemo(ofxTag(fragment, "NAME"), ofxTag(fragment, "MEMO"))
		if payee == "" {
			result.AddWarning("skipped OFX record %d: no NAME or MEMO", i+1)
			continue
		}

		txnType := domain.TxnIncome
		if amount < 0 {
			txnType = domain.TxnExpense
		}

		result.Transactions = append(result.Transactions, domain.DraftTransaction{
			Date:   date,
			Payee:  payee,
			Amount: normalize.NormalizeAmount(amount, txnType),
			Type:   txnType,
			Notes:  notes,
		})
	}

	return result
}

// combineNameMemo merges NAME and the first segment of a double-space
// split MEMO into the payee; any remaining memo segment becomes notes.
func combineNameMemo(name, memo string) (payee, notes string) {
	name = normalize.CleanPayee(name)
	memo = strings.TrimSpace(memo)

	if memo != "" {
		segments := strings.SplitN(memo, "  ", 2)
		first := normalize.CleanPayee(segments[0])
		if name == "" {
			name = first
		} else if first != "" && !strings.EqualFold(name, first) {
			name = strings.TrimSpace(name + " " + first)
		}
		if len(segments) == 2 {
			notes = strings.TrimSpace(segments[1])
		}
	}

	return name, notes
}
