package rules

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/SuperB747/walnutbook-sub002/internal/domain"
)

const sampleRules = `
rules:
  - name: coffee
    pattern: coffee
    match_type: contains
    priority: 10
    category: Dining
  - name: payroll exact
    pattern: ACME CORP PAYROLL
    match_type: exact
    priority: 50
    category: Salary
  - name: broad catch
    pattern: shop
    match_type: contains
    priority: 5
    category: Shopping
`

func TestNewEngine(t *testing.T) {
	e, err := NewEngine([]byte(sampleRules))
	if err != nil {
		t.Fatal(err)
	}
	if e.Len() != 3 {
		t.Errorf("Len = %d, want 3", e.Len())
	}
}

func TestCategorize(t *testing.T) {
	e, err := NewEngine([]byte(sampleRules))
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		payee string
		want  string
	}{
		{"COFFEE SHOP", "Dining"},          // priority 10 beats priority 5
		{"Corner Shop", "Shopping"},        // only the broad rule matches
		{"ACME CORP PAYROLL", "Salary"},    // exact match
		{"acme corp payroll", "Salary"},    // exact is case-insensitive
		{"ACME CORP PAYROLL EXTRA", ""},    // exact does not substring-match
		{"Unmatched Vendor", ""},           // no rule
	}

	for _, tt := range tests {
		if got := e.Categorize(tt.payee); got != tt.want {
			t.Errorf("Categorize(%q) = %q, want %q", tt.payee, got, tt.want)
		}
	}
}

func TestEngineValidation(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{
			"empty pattern",
			"rules:\n  - name: bad\n    pattern: \"\"\n    match_type: contains\n    priority: 1\n    category: X\n",
			"pattern cannot be empty",
		},
		{
			"bad match type",
			"rules:\n  - name: bad\n    pattern: x\n    match_type: regex\n    priority: 1\n    category: X\n",
			"match_type",
		},
		{
			"priority out of range",
			"rules:\n  - name: bad\n    pattern: x\n    match_type: contains\n    priority: 1000\n    category: X\n",
			"out of range",
		},
		{
			"empty category",
			"rules:\n  - name: bad\n    pattern: x\n    match_type: contains\n    priority: 1\n    category: \"\"\n",
			"category cannot be empty",
		},
		{
			"not yaml",
			"rules: [unclosed",
			"failed to parse",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewEngine([]byte(tt.yaml))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("err = %v, want containing %q", err, tt.want)
			}
		})
	}
}

func TestApply(t *testing.T) {
	e, err := NewEngine([]byte(sampleRules))
	if err != nil {
		t.Fatal(err)
	}

	drafts := []domain.DraftTransaction{
		{Date: "2024-01-15", Payee: "COFFEE SHOP", Amount: -4.50, Type: domain.TxnExpense},
		{Date: "2024-01-16", Payee: "Unmatched Vendor", Amount: -10, Type: domain.TxnExpense},
		{Date: "2024-01-17", Payee: "COFFEE SHOP", Amount: -4.50, Type: domain.TxnExpense, Category: "Preset"},
	}

	n := e.Apply(drafts)
	if n != 1 {
		t.Errorf("Apply = %d, want 1", n)
	}
	if drafts[0].Category != "Dining" {
		t.Errorf("draft 0 category = %q", drafts[0].Category)
	}
	if drafts[1].Category != "" {
		t.Errorf("draft 1 category = %q, want unset", drafts[1].Category)
	}
	if drafts[2].Category != "Preset" {
		t.Errorf("draft 2 category = %q, want untouched", drafts[2].Category)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	if err := os.WriteFile(path, []byte(sampleRules), 0o644); err != nil {
		t.Fatal(err)
	}

	e, err := LoadFromFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if e.Len() != 3 {
		t.Errorf("Len = %d, want 3", e.Len())
	}

	if _, err := LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
