package store

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// requiredTables are checked before any backup is taken; a database
// missing one of these is corrupt or not a ledger file at all.
var requiredTables = []string{"accounts", "categories", "transactions"}

// Backup copies the ledger database file into destDir under a
// timestamped name, after verifying the schema is intact. Returns the
// backup file path.
func (s *Store) Backup(dbPath, destDir string) (string, error) {
	for _, table := range requiredTables {
		var name string
		err := s.db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?", table).Scan(&name)
		if err != nil {
			return "", fmt.Errorf("database is missing %s table: %w", table, err)
		}
	}

	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}

	base := strings.TrimSuffix(filepath.Base(dbPath), filepath.Ext(dbPath))
	timestamp := time.Now().Format("20060102_150405")
	dst := filepath.Join(destDir, fmt.Sprintf("%s_%s.db", base, timestamp))

	src, err := os.Open(dbPath)
	if err != nil {
		return "", fmt.Errorf("failed to open database file: %w", err)
	}
	defer src.Close()

	out, err := os.Create(dst)
	if err != nil {
		return "", fmt.Errorf("failed to create backup file: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, src); err != nil {
		os.Remove(dst)
		return "", fmt.Errorf("failed to copy database: %w", err)
	}

	s.log.Info().Str("backup", dst).Msg("database backed up")
	return dst, nil
}
