package commands

import (
	"github.com/spf13/cobra"

	"github.com/SuperB747/walnutbook-sub002/internal/config"
	"github.com/SuperB747/walnutbook-sub002/internal/domain"
	"github.com/SuperB747/walnutbook-sub002/internal/store"
	"github.com/SuperB747/walnutbook-sub002/internal/ui"
)

func newPreviewCommand() *cobra.Command {
	flags := importFlags{}

	cmd := &cobra.Command{
		Use:   "preview <file>",
		Short: "Parse a statement file and show what would be imported",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger(flags.verbose)
			cfg := config.Load()

			s, err := store.Open(cfg.DBPath, log)
			if err != nil {
				return err
			}
			defer s.Close()

			// Preview never creates the account; an unknown name just
			// dedupes against an empty existing set.
			var accountID int64
			signLogic := "standard"
			if flags.account != "" {
				accountID, err = s.EnsureAccount(cmd.Context(), flags.account, domain.AccountChecking)
				if err != nil {
					return err
				}
				signLogic, err = s.SignLogic(cmd.Context(), accountID)
				if err != nil {
					return err
				}
			}

			result, outcome, err := parseAndDedupe(cmd, s, accountID, args[0], flags, signLogic)
			if err != nil {
				return err
			}

			ui.Preview(cmd.OutOrStdout(), result, outcome)
			return nil
		},
	}

	cmd.Flags().StringVarP(&flags.account, "account", "a", "", "Ledger account name to dedupe against")
	cmd.Flags().StringVarP(&flags.format, "format", "f", "", "Force a specific format (see 'formats')")
	cmd.Flags().StringVarP(&flags.encoding, "encoding", "e", "", "Source file encoding (euc-kr, cp1252, ...)")
	cmd.Flags().BoolVarP(&flags.verbose, "verbose", "v", false, "Verbose logging")

	return cmd
}
