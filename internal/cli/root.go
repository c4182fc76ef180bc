package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/citenet/backend/internal/util"
)

// RootOptions holds global flags shared by all subcommands.
type RootOptions struct {
	Verbose bool
	Format  string // "json" | "text"

	DataDir          string
	CitationTable    string
	AffiliationTable string
}

// CitationTablePath returns the resolved path of the citation table.
func (o *RootOptions) CitationTablePath() string {
	return filepath.Join(o.DataDir, o.CitationTable)
}

// AffiliationTablePath returns the resolved path of the affiliation table.
func (o *RootOptions) AffiliationTablePath() string {
	return filepath.Join(o.DataDir, o.AffiliationTable)
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the citenet CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "citenet",
		Short: "Citation network toolbox",
		Long:  "Inspect the source tables and build the citation and collaboration networks served by the backend.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return nil
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.DataDir, "data-dir",
		util.EnvString("DATA_DIR", "."), "directory holding the source tables")
	cmd.PersistentFlags().StringVar(&opts.CitationTable, "citation-table",
		util.EnvString("CITATION_TABLE", "refs_yeshiva_cs_20_25.csv"), "citation table file name")
	cmd.PersistentFlags().StringVar(&opts.AffiliationTable, "affiliation-table",
		util.EnvString("AFFILIATION_TABLE", "affils_yeshiva_cs_20_25.csv"), "affiliation table file name")

	cmd.AddCommand(NewCheckCommand(opts))
	cmd.AddCommand(NewStatsCommand(opts))

	return cmd
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
