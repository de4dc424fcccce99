// Package store is the SQLite ledger persistence collaborator. It supplies
// the existing transaction set that deduplication runs against and
// receives the accepted drafts after the user confirms the preview.
package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"

	"github.com/SuperB747/walnutbook-sub002/internal/domain"
)

// Store wraps the ledger database.
type Store struct {
	db  *sql.DB
	log zerolog.Logger
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS accounts (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL UNIQUE,
		type TEXT NOT NULL,
		balance REAL NOT NULL DEFAULT 0,
		description TEXT,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS categories (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL UNIQUE,
		type TEXT NOT NULL,
		is_reimbursement BOOLEAN NOT NULL DEFAULT 0,
		reimbursement_target_category_id INTEGER,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS transactions (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		date TEXT NOT NULL,
		account_id INTEGER NOT NULL,
		type TEXT NOT NULL,
		category_id INTEGER,
		amount REAL NOT NULL,
		payee TEXT NOT NULL,
		notes TEXT,
		transfer_id INTEGER,
		import_batch_id TEXT,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (account_id) REFERENCES accounts (id) ON DELETE CASCADE,
		FOREIGN KEY (category_id) REFERENCES categories (id) ON DELETE SET NULL
	)`,
	`CREATE TABLE IF NOT EXISTS account_import_settings (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		account_id INTEGER NOT NULL UNIQUE,
		csv_sign_logic TEXT NOT NULL DEFAULT 'standard',
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (account_id) REFERENCES accounts (id) ON DELETE CASCADE
	)`,
	`CREATE INDEX IF NOT EXISTS idx_transactions_account_date
		ON transactions (account_id, date)`,
}

// Open opens (creating if needed) the ledger database at path.
func Open(path string, log zerolog.Logger) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database %s: %w", path, err)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to initialize schema: %w", err)
		}
	}

	return &Store{db: db, log: log}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// EnsureAccount returns the ID of the named account, creating it when it
// does not exist yet.
func (s *Store) EnsureAccount(ctx context.Context, name string, kind domain.AccountKind) (int64, error) {
	if name == "" {
		return 0, fmt.Errorf("account name cannot be empty")
	}
	if !domain.ValidateAccountKind(kind) {
		return 0, fmt.Errorf("invalid account kind %q", kind)
	}

	var id int64
	err := s.db.QueryRowContext(ctx, "SELECT id FROM accounts WHERE name = ?", name).Scan(&id)
	if err == nil {
		return id, nil
	}
	if err != sql.ErrNoRows {
		return 0, fmt.Errorf("failed to look up account %q: %w", name, err)
	}

	res, err := s.db.ExecContext(ctx,
		"INSERT INTO accounts (name, type) VALUES (?, ?)", name, string(kind))
	if err != nil {
		return 0, fmt.Errorf("failed to create account %q: %w", name, err)
	}
	id, err = res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read new account ID: %w", err)
	}

	s.log.Info().Str("account", name).Int64("id", id).Msg("created account")
	return id, nil
}

// ListTransactions returns the persisted transactions for an account
// (accountID 0 = all accounts), ordered by date. This is the existing set
// deduplication runs against.
func (s *Store) ListTransactions(ctx context.Context, accountID int64) ([]domain.Transaction, error) {
	query := `SELECT id, date, account_id, type, category_id, amount, payee,
		COALESCE(notes, ''), transfer_id, created_at FROM transactions`
	args := []any{}
	if accountID != 0 {
		query += " WHERE account_id = ?"
		args = append(args, accountID)
	}
	query += " ORDER BY date, id"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	var txns []domain.Transaction
	for rows.Next() {
		var t domain.Transaction
		if err := rows.Scan(&t.ID, &t.Date, &t.AccountID, &t.Type, &t.CategoryID,
			&t.Amount, &t.Payee, &t.Notes, &t.TransferID, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		txns = append(txns, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read transactions: %w", err)
	}
	return txns, nil
}

// InsertTransactions persists accepted drafts for one account in a single
// transaction, resolving category names to IDs and updating the account
// balance. Returns the number of rows inserted.
func (s *Store) InsertTransactions(ctx context.Context, accountID int64, drafts []domain.DraftTransaction, batchID string) (int, error) {
	if accountID == 0 {
		return 0, fmt.Errorf("account ID is required before storage")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var balanceDelta float64
	inserted := 0
	for _, d := range drafts {
		if !d.Valid() {
			return 0, fmt.Errorf("refusing to persist invalid draft (date %q, payee %q)", d.Date, d.Payee)
		}

		var categoryID any
		if d.Category != "" {
			var id int64
			err := tx.QueryRowContext(ctx, "SELECT id FROM categories WHERE name = ?", d.Category).Scan(&id)
			switch {
			case err == sql.ErrNoRows:
				categoryID = nil // unknown category names stay unassigned
			case err != nil:
				return 0, fmt.Errorf("failed to resolve category %q: %w", d.Category, err)
			default:
				categoryID = id
			}
		}

		_, err := tx.ExecContext(ctx,
			`INSERT INTO transactions (date, account_id, type, category_id, amount, payee, notes, import_batch_id)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			d.Date, accountID, string(d.Type), categoryID, d.Amount, d.Payee, d.Notes, batchID)
		if err != nil {
			return 0, fmt.Errorf("failed to insert transaction (%s, %q): %w", d.Date, d.Payee, err)
		}

		balanceDelta += d.Amount
		inserted++
	}

	if _, err := tx.ExecContext(ctx,
		"UPDATE accounts SET balance = balance + ? WHERE id = ?", balanceDelta, accountID); err != nil {
		return 0, fmt.Errorf("failed to update account balance: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit import: %w", err)
	}

	s.log.Info().
		Int64("account", accountID).
		Str("batch", batchID).
		Int("inserted", inserted).
		Float64("balanceDelta", balanceDelta).
		Msg("imported transactions")
	return inserted, nil
}

// SignLogic returns the per-account csv_sign_logic setting, defaulting to
// "standard" when none is stored.
func (s *Store) SignLogic(ctx context.Context, accountID int64) (string, error) {
	var logic string
	err := s.db.QueryRowContext(ctx,
		"SELECT csv_sign_logic FROM account_import_settings WHERE account_id = ?", accountID).Scan(&logic)
	if err == sql.ErrNoRows {
		return "standard", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read import settings: %w", err)
	}
	return logic, nil
}

// SaveSignLogic stores the per-account csv_sign_logic setting.
func (s *Store) SaveSignLogic(ctx context.Context, accountID int64, logic string) error {
	if logic != "standard" && logic != "flipped" {
		return fmt.Errorf("invalid sign logic %q", logic)
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO account_import_settings (account_id, csv_sign_logic) VALUES (?, ?)
		 ON CONFLICT(account_id) DO UPDATE SET csv_sign_logic = excluded.csv_sign_logic`,
		accountID, logic)
	if err != nil {
		return fmt.Errorf("failed to save import settings: %w", err)
	}
	return nil
}
