package normalize

import (
	"testing"

	"github.com/SuperB747/walnutbook-sub002/internal/domain"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    float64
		wantErr bool
	}{
		{"plain", "42.50", 42.50, false},
		{"plain negative", "-15.00", -15.00, false},
		{"dollar sign", "$1,234.56", 1234.56, false},
		{"negative with dollar sign", "-$1,000", -1000, false},
		{"parenthesized is negative", "(42.50)", -42.50, false},
		{"parenthesized with symbol", "($250.00)", -250.00, false},
		{"currency code CAD", "CAD 1,234.56", 1234.56, false},
		{"currency code prefix", "US$12.00", 12.00, false},
		{"won integer", "₩5500", 5500, false},
		{"surrounding whitespace", "  99.95  ", 99.95, false},
		{"integer without decimals", "2000", 2000, false},
		{"zero passes through", "0.00", 0, false},
		{"empty", "", 0, true},
		{"whitespace only", "   ", 0, true},
		{"not a number", "abc", 0, true},
		{"symbol only", "$", 0, true},
		{"bare minus", "-", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAmount(tt.raw)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseAmount(%q) expected error, got %v", tt.raw, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseAmount(%q) unexpected error: %v", tt.raw, err)
			}
			if got != tt.want {
				t.Errorf("ParseAmount(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestNormalizeAmount(t *testing.T) {
	tests := []struct {
		name    string
		amount  float64
		txnType domain.TxnType
		want    float64
	}{
		{"expense forces negative", 42.50, domain.TxnExpense, -42.50},
		{"expense keeps negative", -42.50, domain.TxnExpense, -42.50},
		{"income forces positive", -2500, domain.TxnIncome, 2500},
		{"income keeps positive", 2500, domain.TxnIncome, 2500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeAmount(tt.amount, tt.txnType); got != tt.want {
				t.Errorf("NormalizeAmount(%v, %s) = %v, want %v", tt.amount, tt.txnType, got, tt.want)
			}
		})
	}
}

func TestCents(t *testing.T) {
	tests := []struct {
		amount float64
		want   int64
	}{
		{42.50, 4250},
		{-42.50, -4250},
		{0.1, 10},
		{19.99, 1999},
		{2000, 200000},
		{0, 0},
	}

	for _, tt := range tests {
		if got := Cents(tt.amount); got != tt.want {
			t.Errorf("Cents(%v) = %d, want %d", tt.amount, got, tt.want)
		}
	}
}
