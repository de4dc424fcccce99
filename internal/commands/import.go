package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/SuperB747/walnutbook-sub002/internal/config"
	"github.com/SuperB747/walnutbook-sub002/internal/dedup"
	"github.com/SuperB747/walnutbook-sub002/internal/domain"
	"github.com/SuperB747/walnutbook-sub002/internal/importer"
	"github.com/SuperB747/walnutbook-sub002/internal/rules"
	"github.com/SuperB747/walnutbook-sub002/internal/store"
	"github.com/SuperB747/walnutbook-sub002/internal/ui"
)

type importFlags struct {
	account   string
	format    string
	encoding  string
	rulesFile string
	dryRun    bool
	verbose   bool
}

func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	return zerolog.New(output).Level(level).With().Timestamp().Logger()
}

func newImportCommand() *cobra.Command {
	flags := importFlags{}

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Parse a statement file and import new transactions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(cmd, args[0], flags)
		},
	}

	cmd.Flags().StringVarP(&flags.account, "account", "a", "", "Ledger account name (required)")
	cmd.Flags().StringVarP(&flags.format, "format", "f", "", "Force a specific format (see 'formats')")
	cmd.Flags().StringVarP(&flags.encoding, "encoding", "e", "", "Source file encoding (euc-kr, cp1252, ...)")
	cmd.Flags().StringVar(&flags.rulesFile, "rules", "", "Category rules YAML file")
	cmd.Flags().BoolVar(&flags.dryRun, "dry-run", false, "Preview without writing to the ledger")
	cmd.Flags().BoolVarP(&flags.verbose, "verbose", "v", false, "Verbose logging")
	_ = cmd.MarkFlagRequired("account")

	return cmd
}

func runImport(cmd *cobra.Command, path string, flags importFlags) error {
	log := newLogger(flags.verbose)
	cfg := config.Load()
	out := cmd.OutOrStdout()

	s, err := store.Open(cfg.DBPath, log)
	if err != nil {
		return err
	}
	defer s.Close()

	accountID, err := s.EnsureAccount(cmd.Context(), flags.account, domain.AccountChecking)
	if err != nil {
		return err
	}

	signLogic, err := s.SignLogic(cmd.Context(), accountID)
	if err != nil {
		return err
	}

	result, outcome, err := parseAndDedupe(cmd, s, accountID, path, flags, signLogic)
	if err != nil {
		return err
	}

	if flags.rulesFile == "" {
		flags.rulesFile = cfg.RulesPath
	}
	if flags.rulesFile != "" {
		engine, err := rules.LoadFromFile(flags.rulesFile)
		if err != nil {
			return err
		}
		n := engine.Apply(outcome.Accepted)
		log.Debug().Int("categorized", n).Msg("applied category rules")
	}

	ui.Preview(out, result, outcome)

	if len(result.Errors) > 0 && len(result.Transactions) == 0 {
		return fmt.Errorf("import failed: %s", result.Errors[0])
	}

	if flags.dryRun {
		ui.Success(out, "dry run: nothing written")
		return nil
	}
	if len(outcome.Accepted) == 0 {
		ui.Success(out, "nothing new to import")
		return nil
	}

	batchID := uuid.NewString()
	inserted, err := s.InsertTransactions(cmd.Context(), accountID, outcome.Accepted, batchID)
	if err != nil {
		return err
	}

	ui.Success(out, "imported %d transactions into %s (batch %s)", inserted, flags.account, batchID)
	return nil
}

// parseAndDedupe runs the shared parse + dedup flow used by both the
// import and preview commands.
func parseAndDedupe(cmd *cobra.Command, s *store.Store, accountID int64, path string, flags importFlags, signLogic string) (*domain.ImportResult, domain.DedupOutcome, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, domain.DedupOutcome{}, fmt.Errorf("failed to read %s: %w", path, err)
	}

	content, err := importer.DecodeContent(data, flags.encoding)
	if err != nil {
		return nil, domain.DedupOutcome{}, err
	}

	opts := importer.Options{
		Adapter:   flags.format,
		SignLogic: importer.SignLogic(signLogic),
	}
	result, err := importer.ImportFile(filepath.Base(path), content, opts)
	if err != nil {
		return nil, domain.DedupOutcome{}, err
	}

	// No account means no existing set to dedupe against.
	var existing []domain.Transaction
	if accountID != 0 {
		existing, err = s.ListTransactions(cmd.Context(), accountID)
		if err != nil {
			return nil, domain.DedupOutcome{}, err
		}
	}

	return result, dedup.Dedupe(result.Transactions, existing), nil
}
