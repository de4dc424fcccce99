// Package config loads the CLI configuration from a .env file and the
// environment.
package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Config holds the resolved runtime configuration.
type Config struct {
	// DBPath is the ledger SQLite file. WALNUTBOOK_DB.
	DBPath string
	// RulesPath is an optional category rules YAML file. WALNUTBOOK_RULES.
	RulesPath string
	// BackupDir is where database backups land. WALNUTBOOK_BACKUP_DIR.
	BackupDir string
}

// Load reads .env (when present) and the environment, applying defaults
// under the user's home directory.
func Load() Config {
	// A missing .env is fine; the environment still applies.
	_ = godotenv.Load()

	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	dataDir := filepath.Join(home, ".walnutbook")

	cfg := Config{
		DBPath:    filepath.Join(dataDir, "walnutbook.db"),
		RulesPath: "",
		BackupDir: filepath.Join(dataDir, "backups"),
	}

	if v := os.Getenv("WALNUTBOOK_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("WALNUTBOOK_RULES"); v != "" {
		cfg.RulesPath = v
	}
	if v := os.Getenv("WALNUTBOOK_BACKUP_DIR"); v != "" {
		cfg.BackupDir = v
	}

	return cfg
}
