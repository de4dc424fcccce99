package adapters

import (
	"testing"

	"github.com/SuperB747/walnutbook-sub002/internal/domain"
)

func TestTDChequingParseRow(t *testing.T) {
	a := &TDChequing{}
	m := a.MapColumns(nil)

	tests := []struct {
		name    string
		row     []string
		want    *domain.DraftTransaction
		wantErr bool
	}{
		{
			"debit row",
			[]string{"01/15/2024", "POS PURCHASE - TIM HORTONS #1234", "4.50", "", "995.50"},
			&domain.DraftTransaction{Date: "2024-01-15", Payee: "TIM HORTONS #1234", Amount: -4.50, Type: domain.TxnExpense},
			false,
		},
		{
			"credit row",
			[]string{"01/16/2024", "PAYROLL DEPOSIT", "", "2500.00", "3495.50"},
			&domain.DraftTransaction{Date: "2024-01-16", Payee: "PAYROLL DEPOSIT", Amount: 2500, Type: domain.TxnIncome},
			false,
		},
		{"unparsable date skipped", []string{"not-a-date", "X", "1.00", "", ""}, nil, false},
		{"neither debit nor credit skipped", []string{"01/15/2024", "X", "", "", "100.00"}, nil, false},
		{"bad debit amount errors", []string{"01/15/2024", "X", "abc", "", ""}, nil, true},
		{"empty payee skipped", []string{"01/15/2024", "", "4.50", "", ""}, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := a.ParseRow(tt.row, m)
			checkRow(t, got, err, tt.want, tt.wantErr)
		})
	}
}

func TestCIBCHeaderlessParseRow(t *testing.T) {
	a := &CIBCHeaderless{}
	m := a.MapColumns(nil)

	got, err := a.ParseRow([]string{"2024-01-15", "HYDRO BILL", "85.00", ""}, m)
	checkRow(t, got, err,
		&domain.DraftTransaction{Date: "2024-01-15", Payee: "HYDRO BILL", Amount: -85, Type: domain.TxnExpense}, false)

	got, err = a.ParseRow([]string{"2024-01-20", "E-TRANSFER RECEIVED", "", "120.00"}, m)
	checkRow(t, got, err,
		&domain.DraftTransaction{Date: "2024-01-20", Payee: "RECEIVED", Amount: 120, Type: domain.TxnIncome}, false)
}

func TestRBCBankingParseRow(t *testing.T) {
	a := &RBCBanking{}
	header := []string{"Account Type", "Account Number", "Transaction Date", "Cheque Number", "Description 1", "Description 2", "CAD$", "USD$"}
	m := a.MapColumns(header)

	got, err := a.ParseRow([]string{"Chequing", "00012345678", "2024-01-15", "", "PAYROLL DEPOSIT", "ACME CORP", "2500.00", ""}, m)
	checkRow(t, got, err,
		&domain.DraftTransaction{Date: "2024-01-15", Payee: "PAYROLL DEPOSIT", Amount: 2500, Type: domain.TxnIncome, Notes: "ACME CORP"}, false)

	// USD-denominated rows leave the CAD$ column blank and are skipped.
	got, err = a.ParseRow([]string{"Chequing", "00012345678", "2024-01-16", "", "AMAZON.COM", "", "", "24.99"}, m)
	checkRow(t, got, err, nil, false)
}

func TestScotiaVisaParseRow(t *testing.T) {
	a := &ScotiaVisa{}
	m := a.MapColumns(nil)

	// No type column: every row is a charge with a negative normalized sign.
	got, err := a.ParseRow([]string{"1/15/2024", "NETFLIX.COM", "14.99"}, m)
	checkRow(t, got, err,
		&domain.DraftTransaction{Date: "2024-01-15", Payee: "NETFLIX.COM", Amount: -14.99, Type: domain.TxnExpense}, false)
}

func TestBMOCardParseRow(t *testing.T) {
	a := &BMOCard{}
	header := []string{"Item #", "Card #", "Transaction Date", "Posting Date", "Transaction Amount", "Description"}
	m := a.MapColumns(header)

	// Flipped sign interpretation: positive export value is a charge.
	got, err := a.ParseRow([]string{"1", "5191XXXX", "20240115", "20240116", "52.30", "GAS STATION"}, m)
	checkRow(t, got, err,
		&domain.DraftTransaction{Date: "2024-01-15", Payee: "GAS STATION", Amount: -52.30, Type: domain.TxnExpense}, false)

	got, err = a.ParseRow([]string{"2", "5191XXXX", "20240120", "20240120", "-300.00", "PAYMENT RECEIVED"}, m)
	checkRow(t, got, err,
		&domain.DraftTransaction{Date: "2024-01-20", Payee: "PAYMENT RECEIVED", Amount: 300, Type: domain.TxnIncome}, false)
}

func TestAmexCardParseRow(t *testing.T) {
	a := &AmexCard{}
	m := a.MapColumns([]string{"Date", "Description", "Amount"})

	got, err := a.ParseRow([]string{"01/15/2024", "RESTAURANT ROW", "84.20"}, m)
	checkRow(t, got, err,
		&domain.DraftTransaction{Date: "2024-01-15", Payee: "RESTAURANT ROW", Amount: -84.20, Type: domain.TxnExpense}, false)

	got, err = a.ParseRow([]string{"01/20/2024", "PAYMENT RECEIVED", "-200.00"}, m)
	checkRow(t, got, err,
		&domain.DraftTransaction{Date: "2024-01-20", Payee: "PAYMENT RECEIVED", Amount: 200, Type: domain.TxnIncome}, false)
}

func TestTangerineParseRow(t *testing.T) {
	a := &Tangerine{}
	m := a.MapColumns([]string{"Date", "Transaction", "Name", "Memo", "Amount"})

	got, err := a.ParseRow([]string{"1/15/2024", "DEBIT", "Grocery Store", "weekly run", "-45.10"}, m)
	checkRow(t, got, err,
		&domain.DraftTransaction{Date: "2024-01-15", Payee: "Grocery Store", Amount: -45.10, Type: domain.TxnExpense, Notes: "weekly run"}, false)

	// The Transaction keyword wins over the amount sign.
	got, err = a.ParseRow([]string{"1/16/2024", "CREDIT", "Refund", "", "12.00"}, m)
	checkRow(t, got, err,
		&domain.DraftTransaction{Date: "2024-01-16", Payee: "Refund", Amount: 12, Type: domain.TxnIncome}, false)
}

func TestChaseParseRow(t *testing.T) {
	a := &Chase{}
	header := []string{"Details", "Posting Date", "Description", "Amount", "Type", "Balance", "Check or Slip #"}
	m := a.MapColumns(header)

	got, err := a.ParseRow([]string{"DEBIT", "01/15/2024", "STARBUCKS", "-5.75", "DEBIT_CARD", "994.25", ""}, m)
	checkRow(t, got, err,
		&domain.DraftTransaction{Date: "2024-01-15", Payee: "STARBUCKS", Amount: -5.75, Type: domain.TxnExpense}, false)
}

func TestKBCardParseRow(t *testing.T) {
	a := &KBCard{}
	header := []string{"이용일", "이용카드", "가맹점명", "이용금액", "승인번호"}
	m := a.MapColumns(header)

	// Approval numbers embedded into merchant names are stripped.
	got, err := a.ParseRow([]string{"2024.01.15", "KB국민카드", "스타벅스 (12345678)", "5500", "12345678"}, m)
	checkRow(t, got, err,
		&domain.DraftTransaction{Date: "2024-01-15", Payee: "스타벅스", Amount: -5500, Type: domain.TxnExpense}, false)

	got, err = a.ParseRow([]string{"2024.01.18", "KB국민카드", "환불처리", "-5500", ""}, m)
	checkRow(t, got, err,
		&domain.DraftTransaction{Date: "2024-01-18", Payee: "환불처리", Amount: 5500, Type: domain.TxnIncome}, false)
}

func TestGenericCSVParseRow(t *testing.T) {
	a := &GenericCSV{}
	m := a.MapColumns([]string{"Date", "Amount", "Description"})

	got, err := a.ParseRow([]string{"2024-01-01", "-15.00", "Grocery Store"}, m)
	checkRow(t, got, err,
		&domain.DraftTransaction{Date: "2024-01-01", Payee: "Grocery Store", Amount: -15, Type: domain.TxnExpense}, false)

	got, err = a.ParseRow([]string{"2024-01-03", "2500.00", "Payroll Deposit"}, m)
	checkRow(t, got, err,
		&domain.DraftTransaction{Date: "2024-01-03", Payee: "Payroll Deposit", Amount: 2500, Type: domain.TxnIncome}, false)

	if _, err := a.ParseRow([]string{"2024-01-02", "abc", "Bad Row"}, m); err == nil {
		t.Error("expected error for non-numeric amount")
	}

	got, err = a.ParseRow([]string{"2024-01-04", "0.00", "Zero Row"}, m)
	checkRow(t, got, err, nil, false)
}

func checkRow(t *testing.T, got *domain.DraftTransaction, err error, want *domain.DraftTransaction, wantErr bool) {
	t.Helper()
	if wantErr {
		if err == nil {
			t.Fatalf("expected error, got draft %+v", got)
		}
		return
	}
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want == nil {
		if got != nil {
			t.Fatalf("expected row to be skipped, got %+v", got)
		}
		return
	}
	if got == nil {
		t.Fatalf("expected draft %+v, got nil", want)
	}
	if *got != *want {
		t.Errorf("draft = %+v, want %+v", *got, *want)
	}
}
