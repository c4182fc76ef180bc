package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/citenet/backend/pkg/network"
	"github.com/citenet/backend/pkg/table"
)

// TableReport holds the outcome of loading one source table.
type TableReport struct {
	Table string `json:"table"`
	Path  string `json:"path"`
	Rows  int    `json:"rows"`
	Error string `json:"error,omitempty"`
}

// NewCheckCommand creates the check command.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check that the source tables load cleanly",
		Long: `Load the citation and affiliation tables and report their row counts.

Row counts are raw: no year filtering, sampling or cleaning is applied.
Useful to verify table paths and schemas before starting the server.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(rootOpts, cmd)
		},
	}

	return cmd
}

func runCheck(opts *RootOptions, cmd *cobra.Command) error {
	reports := []TableReport{
		checkTable(opts, cmd, "citation", opts.CitationTablePath(), network.CitationSchema),
		checkTable(opts, cmd, "affiliation", opts.AffiliationTablePath(), network.AffiliationSchema),
	}

	failed := 0
	for _, report := range reports {
		if report.Error != "" {
			failed++
		}
	}

	if opts.Format == "json" {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(reports); err != nil {
			return err
		}
	} else {
		for _, report := range reports {
			if report.Error != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "✗ %-11s %s\n    %s\n", report.Table, report.Path, report.Error)
				continue
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✓ %-11s %s (%d rows)\n", report.Table, report.Path, report.Rows)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d tables failed to load", failed, len(reports))
	}
	return nil
}

func checkTable(opts *RootOptions, cmd *cobra.Command, name, path string, schema table.Schema) TableReport {
	if opts.Verbose {
		fmt.Fprintf(cmd.ErrOrStderr(), "loading %s table from %s\n", name, path)
	}

	report := TableReport{Table: name, Path: path}
	rows, err := table.Load(path, schema)
	if err != nil {
		report.Error = err.Error()
		return report
	}
	report.Rows = len(rows)
	return report
}
