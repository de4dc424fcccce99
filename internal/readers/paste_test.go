package readers

import (
	"testing"

	"github.com/SuperB747/walnutbook-sub002/internal/domain"
)

func TestParsePaste(t *testing.T) {
	content := "01/15/2024\n" +
		"Salary Deposit\n" +
		"$2,000.00\n" +
		"\n" +
		"01/16/2024\n" +
		"Coffee Shop\n" +
		"-$4.50\n"

	result := ParsePaste(content)

	if result.DetectedFormat != "paste" {
		t.Fatalf("DetectedFormat = %q, want paste", result.DetectedFormat)
	}
	if len(result.Transactions) != 2 {
		t.Fatalf("got %d transactions, want 2; warnings=%v", len(result.Transactions), result.Warnings)
	}

	want := []domain.DraftTransaction{
		{Date: "2024-01-15", Payee: "Salary Deposit", Amount: 2000, Type: domain.TxnIncome},
		{Date: "2024-01-16", Payee: "Coffee Shop", Amount: -4.50, Type: domain.TxnExpense},
	}
	for i, w := range want {
		if result.Transactions[i] != w {
			t.Errorf("transaction %d = %+v, want %+v", i, result.Transactions[i], w)
		}
	}
}

func TestParsePasteMultiLinePayee(t *testing.T) {
	content := "2024-01-15\n" +
		"AMAZON.CA ORDER\n" +
		"MARKETPLACE\n" +
		"(32.99)\n"

	result := ParsePaste(content)
	if len(result.Transactions) != 1 {
		t.Fatalf("got %d transactions, want 1; warnings=%v", len(result.Transactions), result.Warnings)
	}
	txn := result.Transactions[0]
	if txn.Payee != "AMAZON.CA ORDER MARKETPLACE" {
		t.Errorf("payee = %q", txn.Payee)
	}
	if txn.Amount != -32.99 || txn.Type != domain.TxnExpense {
		t.Errorf("transaction = %+v", txn)
	}
}

func TestParsePasteCardPaymentSignInversion(t *testing.T) {
	// On a card account a negative payment reduces the balance owed, so
	// it classifies as Income; a positive payment entry is Expense.
	content := "2024-01-15\n" +
		"PAYMENT - THANK YOU\n" +
		"-300.00\n" +
		"2024-02-15\n" +
		"CREDIT CARD PAYMENT\n" +
		"300.00\n"

	result := ParsePaste(content)
	if len(result.Transactions) != 2 {
		t.Fatalf("got %d transactions, want 2; warnings=%v", len(result.Transactions), result.Warnings)
	}
	if result.Transactions[0].Type != domain.TxnIncome || result.Transactions[0].Amount != 300 {
		t.Errorf("negative payment = %+v, want Income +300", result.Transactions[0])
	}
	if result.Transactions[1].Type != domain.TxnExpense || result.Transactions[1].Amount != -300 {
		t.Errorf("positive payment = %+v, want Expense -300", result.Transactions[1])
	}
}

func TestParsePasteIncompleteEntry(t *testing.T) {
	// A date and amount with no payee text cannot form a transaction.
	content := "2024-01-15\n" +
		"$5.00\n"

	result := ParsePaste(content)
	if len(result.Transactions) != 0 {
		t.Fatalf("got transactions from incomplete entry: %+v", result.Transactions)
	}
	if len(result.Warnings) != 1 {
		t.Errorf("warnings = %v, want exactly one", result.Warnings)
	}
}

func TestParsePasteEmpty(t *testing.T) {
	result := ParsePaste("")
	if len(result.Transactions) != 0 || len(result.Warnings) != 0 {
		t.Errorf("empty paste result = %+v", result)
	}
}

func TestClassifyPaste(t *testing.T) {
	tests := []struct {
		payee  string
		amount float64
		want   domain.TxnType
	}{
		{"Salary Deposit", 2000, domain.TxnIncome},
		{"Interest Earned", 1.23, domain.TxnIncome},
		{"ATM Withdrawal", -100, domain.TxnExpense},
		{"Monthly Fee", -3.50, domain.TxnExpense},
		// Keyword wins over sign.
		{"Refund Issued", -12.00, domain.TxnIncome},
		// No keyword: sign decides.
		{"Coffee Shop", -4.50, domain.TxnExpense},
		{"Misc", 10, domain.TxnIncome},
	}

	for _, tt := range tests {
		if got := classifyPaste(tt.payee, tt.amount); got != tt.want {
			t.Errorf("classifyPaste(%q, %v) = %s, want %s", tt.payee, tt.amount, got, tt.want)
		}
	}
}
