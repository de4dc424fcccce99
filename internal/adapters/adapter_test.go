package adapters

import (
	"reflect"
	"testing"
)

func TestCatalogOrder(t *testing.T) {
	all := Catalog()
	if len(all) == 0 {
		t.Fatal("catalog is empty")
	}

	// The generic fallback must always come last, after every
	// institution-specific adapter.
	if got := all[len(all)-1].Name(); got != "generic-csv" {
		t.Errorf("last catalog entry = %s, want generic-csv", got)
	}

	names := make(map[string]bool, len(all))
	for _, a := range all {
		if names[a.Name()] {
			t.Errorf("duplicate adapter name %q", a.Name())
		}
		names[a.Name()] = true
	}
}

func TestByName(t *testing.T) {
	if a := ByName("td-chequing"); a == nil || a.Name() != "td-chequing" {
		t.Errorf("ByName(td-chequing) = %v", a)
	}
	if a := ByName("TD-CHEQUING"); a == nil {
		t.Error("ByName should be case-insensitive")
	}
	if a := ByName("no-such-format"); a != nil {
		t.Errorf("ByName(no-such-format) = %v, want nil", a)
	}
}

func TestFormats(t *testing.T) {
	infos := Formats()
	if len(infos) != len(Catalog()) {
		t.Fatalf("Formats returned %d entries, catalog has %d", len(infos), len(Catalog()))
	}
	for _, info := range infos {
		if info.Name == "" || info.Description == "" {
			t.Errorf("format entry missing name or description: %+v", info)
		}
	}
}

func TestNormalizeHeader(t *testing.T) {
	got := NormalizeHeader([]string{` "Transaction Date" `, "AMOUNT", "  Description 1"})
	want := []string{"transaction date", "amount", "description 1"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("NormalizeHeader = %v, want %v", got, want)
	}
}

func TestMissingRequired(t *testing.T) {
	m := NoMapping()
	if got := m.MissingRequired(); !reflect.DeepEqual(got, []string{"date", "amount", "payee"}) {
		t.Errorf("NoMapping missing = %v", got)
	}

	m.Date, m.Amount, m.Payee = 0, 1, 2
	if got := m.MissingRequired(); len(got) != 0 {
		t.Errorf("full mapping missing = %v, want none", got)
	}

	m.Payee = Absent
	if got := m.MissingRequired(); !reflect.DeepEqual(got, []string{"payee"}) {
		t.Errorf("payee-less mapping missing = %v", got)
	}
}
