package adapters

import "testing"

// resolve runs catalog-order detection the way the router does.
func resolve(header []string) string {
	for _, a := range Catalog() {
		if a.Detect(header) {
			return a.Name()
		}
	}
	return ""
}

func TestDetection(t *testing.T) {
	tests := []struct {
		name   string
		header []string
		want   string
	}{
		{
			"td headerless data row",
			[]string{"01/15/2024", "TIM HORTONS #1234", "4.50", "", "1000.00"},
			"td-chequing",
		},
		{
			"cibc headerless data row",
			[]string{"2024-01-15", "HYDRO BILL", "85.00", ""},
			"cibc-banking",
		},
		{
			"rbc header",
			[]string{"Account Type", "Account Number", "Transaction Date", "Cheque Number", "Description 1", "Description 2", "CAD$", "USD$"},
			"rbc-banking",
		},
		{
			"scotia headerless data row",
			[]string{"1/15/2024", "NETFLIX.COM", "14.99"},
			"scotia-visa",
		},
		{
			"bmo header",
			[]string{"Item #", "Card #", "Transaction Date", "Posting Date", "Transaction Amount", "Description"},
			"bmo-card",
		},
		{
			"amex exact header",
			[]string{"Date", "Description", "Amount"},
			"amex-card",
		},
		{
			"tangerine header",
			[]string{"Date", "Transaction", "Name", "Memo", "Amount"},
			"tangerine",
		},
		{
			"chase header",
			[]string{"Details", "Posting Date", "Description", "Amount", "Type", "Balance", "Check or Slip #"},
			"chase",
		},
		{
			"kb card header",
			[]string{"이용일", "이용카드", "가맹점명", "이용금액", "승인번호"},
			"kb-card",
		},
		{
			// Same tokens as Amex but in a different order: this must fall
			// through to the generic adapter, whose sign interpretation is
			// the opposite of a card issuer's.
			"reordered header falls to generic",
			[]string{"Date", "Amount", "Description"},
			"generic-csv",
		},
		{
			"generic header with extras",
			[]string{"Posted Date", "Reference", "Amount", "Payee", "Memo"},
			"generic-csv",
		},
		{
			"unrecognized header",
			[]string{"foo", "bar", "baz"},
			"",
		},
		{
			"date without amount is not generic",
			[]string{"Date", "Description", "Balance"},
			"",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := resolve(tt.header); got != tt.want {
				t.Errorf("resolve(%v) = %q, want %q", tt.header, got, tt.want)
			}
		})
	}
}
