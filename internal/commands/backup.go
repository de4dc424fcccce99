package commands

import (
	"github.com/spf13/cobra"

	"github.com/SuperB747/walnutbook-sub002/internal/config"
	"github.com/SuperB747/walnutbook-sub002/internal/store"
	"github.com/SuperB747/walnutbook-sub002/internal/ui"
)

func newBackupCommand() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Back up the ledger database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger(verbose)
			cfg := config.Load()

			s, err := store.Open(cfg.DBPath, log)
			if err != nil {
				return err
			}
			defer s.Close()

			dst, err := s.Backup(cfg.DBPath, cfg.BackupDir)
			if err != nil {
				return err
			}

			ui.Success(cmd.OutOrStdout(), "backup written to %s", dst)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Verbose logging")
	return cmd
}
