// Package adapters holds the per-institution format adapters and the
// ordered catalog the router detects against.
//
// Each adapter is one institution's export layout: how to recognize it
// from a header (or first data row, for headerless layouts), how semantic
// fields map to column positions, and how one raw row becomes a draft
// transaction. Near-identical institutions stay as separate entries on
// purpose: real-world header ambiguity needs narrowly scoped detection
// predicates, and merging them risks silent misclassification.
package adapters

import (
	"sort"
	"strings"

	"github.com/SuperB747/walnutbook-sub002/internal/domain"
)

// ColumnMapping maps semantic fields to column indices. Absent is -1.
type ColumnMapping struct {
	Date   int
	Amount int
	Payee  int
	Type   int
	Notes  int
}

// Absent marks a semantic field with no column in this format.
const Absent = -1

// NoMapping returns a mapping with every field absent.
func NoMapping() ColumnMapping {
	return ColumnMapping{Date: Absent, Amount: Absent, Payee: Absent, Type: Absent, Notes: Absent}
}

// MissingRequired lists the required fields (date, amount, payee) this
// mapping fails to resolve.
func (m ColumnMapping) MissingRequired() []string {
	var missing []string
	if m.Date < 0 {
		missing = append(missing, "date")
	}
	if m.Amount < 0 {
		missing = append(missing, "amount")
	}
	if m.Payee < 0 {
		missing = append(missing, "payee")
	}
	return missing
}

// Adapter is the strategy interface every institution format implements.
type Adapter interface {
	// Name returns the adapter identifier (e.g. "td-chequing").
	Name() string

	// Description returns the human-readable label for the format picker.
	Description() string

	// Headerless reports whether this layout has no header row; column
	// roles are fixed by position and the detected line is data.
	Headerless() bool

	// Detect is a pure function of the header tokens (case-insensitive,
	// quote-stripped). Ties between adapters are broken by catalog priority.
	Detect(header []string) bool

	// MapColumns resolves semantic fields to column positions for the
	// whole file.
	MapColumns(header []string) ColumnMapping

	// ParseRow turns one raw row into a draft transaction. A (nil, nil)
	// return means the row produced no result and is skipped with a
	// warning; an error return is reported as a row-level error.
	ParseRow(row []string, m ColumnMapping) (*domain.DraftTransaction, error)

	// Validate is the adapter's final gate on a parsed draft.
	Validate(d *domain.DraftTransaction) bool
}

// entry pins an adapter at an explicit priority. Detection order is
// priority order, not registration order, so ambiguous files always
// resolve the same way regardless of how the catalog is assembled.
type entry struct {
	priority int
	adapter  Adapter
}

var catalog = []entry{
	{10, &TDChequing{}},
	{20, &CIBCHeaderless{}},
	{30, &RBCBanking{}},
	{40, &ScotiaVisa{}},
	{50, &BMOCard{}},
	{60, &AmexCard{}},
	{70, &Tangerine{}},
	{80, &Chase{}},
	{90, &KBCard{}},
	{900, &GenericCSV{}},
}

// Catalog returns all adapters in detection order (ascending priority,
// stable). The generic date+amount adapter is last so specific institution
// signatures always win.
func Catalog() []Adapter {
	sorted := make([]entry, len(catalog))
	copy(sorted, catalog)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].priority < sorted[j].priority })

	out := make([]Adapter, len(sorted))
	for i, e := range sorted {
		out[i] = e.adapter
	}
	return out
}

// ByName returns the adapter with the given name, or nil.
func ByName(name string) Adapter {
	for _, a := range Catalog() {
		if strings.EqualFold(a.Name(), name) {
			return a
		}
	}
	return nil
}

// FormatInfo is the UI-facing descriptor for manual format selection.
type FormatInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Formats lists all adapters as {name, description} pairs in detection
// order, for the format picker.
func Formats() []FormatInfo {
	all := Catalog()
	infos := make([]FormatInfo, len(all))
	for i, a := range all {
		infos[i] = FormatInfo{Name: a.Name(), Description: a.Description()}
	}
	return infos
}

// NormalizeHeader lowercases, quote-strips, and trims header tokens for
// detection and column mapping.
func NormalizeHeader(fields []string) []string {
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = strings.ToLower(strings.TrimSpace(strings.Trim(strings.TrimSpace(f), `"`)))
	}
	return out
}

// headerIndex returns the index of the first header token containing any
// of the given names, or Absent.
func headerIndex(header []string, names ...string) int {
	norm := NormalizeHeader(header)
	for i, h := range norm {
		for _, name := range names {
			if strings.Contains(h, name) {
				return i
			}
		}
	}
	return Absent
}

// headerHas reports whether any header token contains the given name.
func headerHas(header []string, name string) bool {
	return headerIndex(header, name) != Absent
}

// field safely extracts a trimmed column value; out-of-range is "".
func field(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
