// Package router drives column-based CSV parsing: header discovery,
// delimiter detection, adapter resolution, and the per-row parse loop.
//
// The router never logs; every diagnostic it produces lands in the
// ImportResult's errors/warnings accumulators, which are the only
// observability channel of the import core.
package router

import (
	"encoding/csv"
	"fmt"
	"regexp"
	"strings"

	"github.com/SuperB747/walnutbook-sub002/internal/adapters"
	"github.com/SuperB747/walnutbook-sub002/internal/domain"
	"github.com/SuperB747/walnutbook-sub002/internal/readers"
)

// headerScanLimit bounds how many leading lines are examined for a header.
// Statement files routinely open with account metadata before the real
// header; 15 lines covers every export seen so far.
const headerScanLimit = 15

var (
	dateToken   = regexp.MustCompile(`(?i)date`)
	amountToken = regexp.MustCompile(`(?i)amount`)

	// Bare-line patterns for the freeform paste heuristic.
	bareDateLine   = regexp.MustCompile(`^\s*(\d{1,2}/\d{1,2}/\d{4}|\d{4}-\d{2}-\d{2})\s*$`)
	bareAmountLine = regexp.MustCompile(`^\s*\(?-?\$?(\d{1,3}(,\d{3})+|\d+)(\.\d{1,2})?\)?\s*$`)
)

// Route parses file content through the adapter catalog and returns the
// per-file result. A non-nil explicit adapter bypasses auto-detection.
// Fatal failures (empty input, unrecognized format, unmappable required
// columns) yield a result with zero transactions and a single error;
// row-level failures drop the row and continue.
func Route(content string, explicit adapters.Adapter) *domain.ImportResult {
	result := domain.NewImportResult()

	lines := splitLines(content)
	if len(lines) < 2 {
		result.AddError("file is empty or contains no transaction rows")
		return result
	}

	// Pasted bank statements are line-oriented, not column-oriented. When
	// no format was chosen explicitly and the content looks like a paste,
	// the column machinery is skipped entirely.
	if explicit == nil && looksLikePaste(lines) {
		return readers.ParsePaste(content)
	}

	headerIdx, headerFields := findHeader(lines)
	delim := detectDelimiter(lines[headerIdx])

	adapter := explicit
	if adapter == nil {
		for _, a := range adapters.Catalog() {
			if a.Detect(headerFields) {
				adapter = a
				break
			}
		}
	}
	if adapter == nil {
		result.AddError("format not recognized: no adapter matched the file header")
		return result
	}
	result.DetectedFormat = adapter.Name()

	mapping := adapter.MapColumns(headerFields)
	if !adapter.Headerless() {
		if missing := mapping.MissingRequired(); len(missing) > 0 {
			result.AddError("format %s could not map required columns: %s",
				adapter.Name(), strings.Join(missing, ", "))
			return result
		}
	}

	// Headerless layouts have no header row to skip; the detected line is
	// already transaction data.
	start := headerIdx + 1
	if adapter.Headerless() {
		start = headerIdx
	}

	for i := start; i < len(lines); i++ {
		lineNum := i + 1 // 1-based, over non-empty lines

		row := splitFields(lines[i], delim)
		if len(row) < 2 {
			result.AddWarning("line %d: skipped, fewer than 2 fields", lineNum)
			continue
		}

		draft, rowErr, parseErr := parseRow(adapter, row, mapping)
		if parseErr != nil {
			result.AddError("line %d: %v", lineNum, parseErr)
			continue
		}
		if rowErr != nil {
			result.AddWarning("line %d: %v", lineNum, rowErr)
			continue
		}
		if draft == nil || !adapter.Validate(draft) {
			result.AddWarning("line %d: skipped, not a valid transaction row", lineNum)
			continue
		}

		result.Transactions = append(result.Transactions, *draft)
	}

	return result
}

// parseRow invokes the adapter's row parser, separating recoverable row
// failures (rowErr, reported as warnings) from a panicking adapter
// (parseErr, reported as an error) so one bad row never aborts the file.
func parseRow(a adapters.Adapter, row []string, m adapters.ColumnMapping) (draft *domain.DraftTransaction, rowErr, parseErr error) {
	defer func() {
		if r := recover(); r != nil {
			draft = nil
			rowErr = nil
			parseErr = fmt.Errorf("row parser failed: %v", r)
		}
	}()
	draft, rowErr = a.ParseRow(row, m)
	return draft, rowErr, nil
}

// splitLines returns the non-empty lines of the content, CR-stripped.
func splitLines(content string) []string {
	var lines []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// findHeader scans the leading lines for a header: a line whose fields
// contain both a date token and an amount token, or one that matches any
// adapter's detection fingerprint. Falls back to line 0.
func findHeader(lines []string) (int, []string) {
	limit := headerScanLimit
	if len(lines) < limit {
		limit = len(lines)
	}

	catalog := adapters.Catalog()
	for i := 0; i < limit; i++ {
		fields := splitFields(lines[i], detectDelimiter(lines[i]))

		hasDate, hasAmount := false, false
		for _, f := range fields {
			if dateToken.MatchString(f) {
				hasDate = true
			}
			if amountToken.MatchString(f) {
				hasAmount = true
			}
		}
		if hasDate && hasAmount {
			return i, fields
		}

		for _, a := range catalog {
			if a.Detect(fields) {
				return i, fields
			}
		}
	}

	return 0, splitFields(lines[0], detectDelimiter(lines[0]))
}

// detectDelimiter picks comma or semicolon by counting occurrences on the
// header line. Ties favor comma.
func detectDelimiter(line string) rune {
	if strings.Count(line, ";") > strings.Count(line, ",") {
		return ';'
	}
	return ','
}

// splitFields splits one line into fields, honoring quoted fields that
// may enclose the delimiter.
func splitFields(line string, delim rune) []string {
	r := csv.NewReader(strings.NewReader(line))
	r.Comma = delim
	r.LazyQuotes = true
	r.TrimLeadingSpace = true
	r.FieldsPerRecord = -1

	record, err := r.Read()
	if err != nil {
		// Unbalanced quotes; fall back to a plain split so the row still
		// reaches the adapter (which may reject it with a diagnostic).
		return strings.Split(line, string(delim))
	}
	return record
}

// looksLikePaste reports whether the lines resemble a pasted multi-line
// bank statement: more than one bare date line and more than one bare
// amount line, checked independently of header detection.
func looksLikePaste(lines []string) bool {
	dates, amounts := 0, 0
	for _, line := range lines {
		if bareDateLine.MatchString(line) {
			dates++
		}
		if bareAmountLine.MatchString(line) {
			amounts++
		}
	}
	return dates > 1 && amounts > 1
}
