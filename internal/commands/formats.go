package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SuperB747/walnutbook-sub002/internal/importer"
	"github.com/SuperB747/walnutbook-sub002/internal/ui"
)

func newFormatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List supported statement formats",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			ui.Header(out, "Supported formats (detection order)")
			for _, f := range importer.ListFormats() {
				fmt.Fprintf(out, "  %-14s %s\n", f.Name, f.Description)
			}
			fmt.Fprintln(out, "  (OFX/QFX and QIF files are detected by extension)")
			return nil
		},
	}
}
