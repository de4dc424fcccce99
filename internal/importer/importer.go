// Package importer is the entry point of the import pipeline: it decodes
// raw file bytes, dispatches by extension to the CSV router or a
// container-format reader, applies per-account sign logic, and exposes
// the adapter catalog for the format picker.
package importer

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/SuperB747/walnutbook-sub002/internal/adapters"
	"github.com/SuperB747/walnutbook-sub002/internal/domain"
	"github.com/SuperB747/walnutbook-sub002/internal/normalize"
	"github.com/SuperB747/walnutbook-sub002/internal/readers"
	"github.com/SuperB747/walnutbook-sub002/internal/router"
)

// ErrUnsupportedFileType is returned for extensions outside the supported
// set (.csv, .txt, .ofx, .qfx, .qif).
var ErrUnsupportedFileType = errors.New("unsupported file type")

// SignLogic selects the per-account CSV sign interpretation, the
// account_import_settings.csv_sign_logic setting of the ledger.
type SignLogic string

const (
	// SignStandard keeps the adapter's own sign interpretation.
	SignStandard SignLogic = "standard"
	// SignFlipped inverts the adapter's sign interpretation for accounts
	// whose institution exports the opposite convention.
	SignFlipped SignLogic = "flipped"
)

// Options configures one import invocation.
type Options struct {
	// Adapter forces a specific format by name; empty means auto-detect.
	Adapter string

	// SignLogic inverts amount signs when set to SignFlipped. Applies to
	// column-based formats only; OFX/QIF amounts are already signed.
	SignLogic SignLogic
}

// ImportFile parses one statement file's text content into an
// ImportResult. The caller deduplicates the result against its existing
// transaction set (dedup.Dedupe) and attaches account IDs before any
// persistence.
func ImportFile(filename, content string, opts Options) (*domain.ImportResult, error) {
	content = strings.TrimPrefix(content, "\uFEFF")

	var explicit adapters.Adapter
	if opts.Adapter != "" {
		explicit = adapters.ByName(opts.Adapter)
		if explicit == nil {
			return nil, fmt.Errorf("unknown format %q", opts.Adapter)
		}
	}

	var result *domain.ImportResult
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv", ".txt":
		result = router.Route(content, explicit)
	case ".ofx", ".qfx":
		result = readers.ParseOFX(content)
	case ".qif":
		result = readers.ParseQIF(content)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFileType, filepath.Ext(filename))
	}

	switch result.DetectedFormat {
	case "ofx", "qif", "paste":
		// Container formats carry their own signs; csv_sign_logic is a
		// column-format setting only.
	default:
		if opts.SignLogic == SignFlipped {
			flipSigns(result)
		}
	}

	return result, nil
}

// flipSigns inverts every draft's direction: amounts change sign and the
// Income/Expense classification swaps with them.
func flipSigns(result *domain.ImportResult) {
	for i := range result.Transactions {
		d := &result.Transactions[i]
		if d.Type == domain.TxnExpense {
			d.Type = domain.TxnIncome
		} else {
			d.Type = domain.TxnExpense
		}
		d.Amount = normalize.NormalizeAmount(d.Amount, d.Type)
	}
}

// ListFormats returns the adapter catalog as {name, description} pairs
// for manual format selection.
func ListFormats() []adapters.FormatInfo {
	return adapters.Formats()
}
