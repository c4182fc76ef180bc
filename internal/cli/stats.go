package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/citenet/backend/pkg/network"
)

// NetworkStats holds the outcome of one network build.
type NetworkStats struct {
	Network string `json:"network"`
	Nodes   int    `json:"nodes"`
	Links   int    `json:"links"`
	Error   string `json:"error,omitempty"`
}

// NewStatsCommand creates the stats command.
func NewStatsCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Build every network and report its size",
		Long: `Run all graph builders against the source tables and report node and
link counts. This exercises the same code paths as the HTTP endpoints,
including year filtering, sampling and cleaning.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(rootOpts, cmd)
		},
	}

	return cmd
}

func runStats(opts *RootOptions, cmd *cobra.Command) error {
	builders := []struct {
		name  string
		path  string
		build func(string) network.Result
	}{
		{"citation", opts.CitationTablePath(), network.BuildCitationNetwork},
		{"collaboration", opts.AffiliationTablePath(), network.BuildCollaborationNetwork},
		{"enhanced_citation", opts.CitationTablePath(), network.BuildEnhancedCitationNetwork},
	}

	stats := make([]NetworkStats, 0, len(builders))
	failed := 0
	for _, builder := range builders {
		if opts.Verbose {
			fmt.Fprintf(cmd.ErrOrStderr(), "building %s network from %s\n", builder.name, builder.path)
		}

		res := builder.build(builder.path)
		entry := NetworkStats{
			Network: builder.name,
			Nodes:   len(res.Nodes),
			Links:   len(res.Links),
			Error:   res.Error,
		}
		if res.Failed() {
			failed++
		}
		stats = append(stats, entry)
	}

	if opts.Format == "json" {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(stats); err != nil {
			return err
		}
	} else {
		for _, entry := range stats {
			if entry.Error != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "✗ %-18s %s\n", entry.Network, entry.Error)
				continue
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✓ %-18s %d nodes, %d links\n", entry.Network, entry.Nodes, entry.Links)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d network builds failed", failed, len(builders))
	}
	return nil
}
