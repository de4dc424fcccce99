// Package commands wires the CLI: statement import, preview, format
// listing, and database backup.
package commands

import (
	"github.com/spf13/cobra"
)

const version = "0.2.0"

// NewRootCommand creates the root CLI command with all subcommands
// registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "walnutbook-import",
		Short:   "Bank statement import for the WalnutBook ledger",
		Version: version,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newImportCommand())
	rootCmd.AddCommand(newPreviewCommand())
	rootCmd.AddCommand(newFormatsCommand())
	rootCmd.AddCommand(newBackupCommand())

	return rootCmd
}
