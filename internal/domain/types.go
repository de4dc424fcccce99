// Package domain defines the transaction model shared by the import
// pipeline and the ledger store.
package domain

import (
	"fmt"
	"time"
)

// TxnType represents the transaction type enum.
// Import only ever produces Income or Expense; Transfer and Adjust exist
// because the ledger store must round-trip them.
type TxnType string

const (
	TxnIncome   TxnType = "Income"
	TxnExpense  TxnType = "Expense"
	TxnTransfer TxnType = "Transfer"
	TxnAdjust   TxnType = "Adjust"
)

// AccountKind represents the account type enum.
type AccountKind string

const (
	AccountChecking   AccountKind = "checking"
	AccountSavings    AccountKind = "savings"
	AccountCredit     AccountKind = "credit"
	AccountCash       AccountKind = "cash"
	AccountInvestment AccountKind = "investment"
)

var (
	validTxnTypes = map[TxnType]struct{}{
		TxnIncome: {}, TxnExpense: {}, TxnTransfer: {}, TxnAdjust: {},
	}

	validAccountKinds = map[AccountKind]struct{}{
		AccountChecking: {}, AccountSavings: {}, AccountCredit: {},
		AccountCash: {}, AccountInvestment: {},
	}
)

// ValidateTxnType checks if a transaction type is valid.
func ValidateTxnType(t TxnType) bool {
	_, ok := validTxnTypes[t]
	return ok
}

// ValidateAccountKind checks if an account kind is valid.
func ValidateAccountKind(k AccountKind) bool {
	_, ok := validAccountKinds[k]
	return ok
}

// DraftTransaction is a parsed, normalized, not-yet-persisted transaction.
//
// Sign convention:
//
//	Positive = income/inflow (deposits, refunds, card payments received)
//	Negative = expense/outflow (charges, withdrawals, fees)
//
// Adapters and readers must normalize to this convention regardless of how
// the source file represents amounts.
//
// Category and AccountID are left zero by the import core; the caller
// assigns both before persistence.
type DraftTransaction struct {
	Date      string  `json:"date"` // ISO format YYYY-MM-DD
	Payee     string  `json:"payee"`
	Amount    float64 `json:"amount"`
	Type      TxnType `json:"type"`
	Notes     string  `json:"notes,omitempty"`
	Category  string  `json:"category,omitempty"`
	AccountID int64   `json:"accountId,omitempty"`
}

// NewDraftTransaction creates a validated draft transaction.
// A draft is either fully valid or it does not exist: a missing date,
// empty payee, or zero amount is an error, never a partially filled record.
func NewDraftTransaction(date, payee string, amount float64, txnType TxnType) (*DraftTransaction, error) {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, fmt.Errorf("invalid date format: %w", err)
	}
	if payee == "" {
		return nil, fmt.Errorf("payee cannot be empty")
	}
	if amount == 0 {
		return nil, fmt.Errorf("amount cannot be zero")
	}
	if txnType != TxnIncome && txnType != TxnExpense {
		return nil, fmt.Errorf("import cannot produce transaction type %q", txnType)
	}

	return &DraftTransaction{
		Date:   date,
		Payee:  payee,
		Amount: amount,
		Type:   txnType,
	}, nil
}

// Valid reports whether the draft satisfies the full-record invariant.
func (d *DraftTransaction) Valid() bool {
	if d == nil {
		return false
	}
	if _, err := time.Parse("2006-01-02", d.Date); err != nil {
		return false
	}
	return d.Payee != "" && d.Amount != 0
}

// Transaction is the persisted ledger form, mirroring the transactions
// table schema.
type Transaction struct {
	ID         int64   `json:"id"`
	Date       string  `json:"date"` // YYYY-MM-DD
	AccountID  int64   `json:"accountId"`
	Type       TxnType `json:"type"`
	CategoryID *int64  `json:"categoryId,omitempty"`
	Amount     float64 `json:"amount"`
	Payee      string  `json:"payee"`
	Notes      string  `json:"notes,omitempty"`
	TransferID *int64  `json:"transferId,omitempty"`
	CreatedAt  string  `json:"createdAt,omitempty"`
}

// Account mirrors the accounts table.
type Account struct {
	ID          int64       `json:"id"`
	Name        string      `json:"name"`
	Kind        AccountKind `json:"type"`
	Balance     float64     `json:"balance"`
	Description string      `json:"description,omitempty"`
	CreatedAt   string      `json:"createdAt,omitempty"`
}

// Category mirrors the categories table. Import treats category names as
// opaque identifiers; the reimbursement fields belong to the downstream
// ledger.
type Category struct {
	ID                            int64   `json:"id"`
	Name                          string  `json:"name"`
	Type                          TxnType `json:"type"`
	IsReimbursement               bool    `json:"isReimbursement"`
	ReimbursementTargetCategoryID *int64  `json:"reimbursementTargetCategoryId,omitempty"`
}

// ImportResult is produced once per file and consumed by the caller to
// render a preview before any persistence commitment.
type ImportResult struct {
	Transactions   []DraftTransaction `json:"transactions"`
	Errors         []string           `json:"errors"`
	Warnings       []string           `json:"warnings"`
	DetectedFormat string             `json:"detectedFormat,omitempty"`
}

// NewImportResult creates an empty result with initialized slices.
func NewImportResult() *ImportResult {
	return &ImportResult{
		Transactions: []DraftTransaction{},
		Errors:       []string{},
		Warnings:     []string{},
	}
}

// AddError records a fatal or row-level error message.
func (r *ImportResult) AddError(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

// AddWarning records a row-level warning message.
func (r *ImportResult) AddWarning(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

// DedupOutcome partitions freshly parsed drafts into accepted and skipped
// (duplicate) sets.
type DedupOutcome struct {
	Accepted       []DraftTransaction `json:"accepted"`
	Skipped        []DraftTransaction `json:"skipped"`
	DuplicateCount int                `json:"duplicateCount"`
}
