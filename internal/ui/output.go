// Package ui renders import previews and diagnostics for the terminal.
package ui

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/SuperB747/walnutbook-sub002/internal/domain"
)

var (
	headerColor  = color.New(color.FgCyan, color.Bold)
	successColor = color.New(color.FgGreen)
	warnColor    = color.New(color.FgYellow)
	errorColor   = color.New(color.FgRed)
	dimColor     = color.New(color.Faint)
)

// Header prints a section header.
func Header(w io.Writer, text string) {
	headerColor.Fprintln(w, text)
}

// Preview renders the parse result and dedup outcome the way the user
// sees them before committing an import: counts first, then the rows to
// import, then skipped duplicates, then diagnostics.
func Preview(w io.Writer, result *domain.ImportResult, outcome domain.DedupOutcome) {
	format := result.DetectedFormat
	if format == "" {
		format = "unknown"
	}
	Header(w, fmt.Sprintf("Import preview (%s)", format))

	successColor.Fprintf(w, "  to import: %d\n", len(outcome.Accepted))
	if outcome.DuplicateCount > 0 {
		warnColor.Fprintf(w, "  skipped as duplicate: %d\n", outcome.DuplicateCount)
	}
	fmt.Fprintln(w)

	for _, t := range outcome.Accepted {
		printTransaction(w, t, false)
	}
	for _, t := range outcome.Skipped {
		printTransaction(w, t, true)
	}

	diagnostics(w, result)
}

func printTransaction(w io.Writer, t domain.DraftTransaction, skipped bool) {
	line := fmt.Sprintf("  %s  %9.2f  %-7s  %s", t.Date, t.Amount, t.Type, t.Payee)
	if t.Category != "" {
		line += dimColor.Sprintf("  [%s]", t.Category)
	}
	if skipped {
		dimColor.Fprintf(w, "%s  (duplicate)\n", line)
		return
	}
	fmt.Fprintln(w, line)
}

func diagnostics(w io.Writer, result *domain.ImportResult) {
	for _, e := range result.Errors {
		errorColor.Fprintf(w, "  error: %s\n", e)
	}
	for _, warn := range result.Warnings {
		warnColor.Fprintf(w, "  warning: %s\n", warn)
	}
}

// Success prints a completion message.
func Success(w io.Writer, format string, args ...any) {
	successColor.Fprintf(w, format+"\n", args...)
}
