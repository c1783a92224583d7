package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"dealscope/internal/codec"
	"dealscope/internal/domain"
	"dealscope/internal/engine"
)

var (
	evaluateFormat  string
	evaluateSummary bool
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate <snapshot-file>",
	Short: "Run the full evaluation pipeline on a snapshot file",
	Long: `Evaluate cross-validates the snapshot's signal bundles, arbitrates any
conflicts, scores the opportunity and prints the full report as JSON.

The exit code reflects the recommendation: 0 for GO, 2 for
GO_WITH_RESERVES, 3 for NO-GO.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		snap, err := loadSnapshot(args[0], evaluateFormat)
		if err != nil {
			return err
		}

		report := engine.NewEvaluator().Evaluate(snap)

		if evaluateSummary {
			s := report.Summarize()
			fmt.Fprintf(cmd.OutOrStdout(), "%s  score=%d coherence=%d risk=%d conflicts=%d\n",
				s.Recommendation, s.Score, s.CoherenceScore, s.RiskScore, s.ConflictCount)
		} else {
			if err := codec.NewJSONCodec().Export(report, cmd.OutOrStdout()); err != nil {
				return err
			}
		}

		switch report.Decision.Recommendation {
		case domain.RecommendationGoWithReserves:
			return exitError{code: 2}
		case domain.RecommendationNoGo:
			return exitError{code: 3}
		}
		return nil
	},
}

func init() {
	evaluateCmd.Flags().StringVar(&evaluateFormat, "format", "", "snapshot format: json or yaml (default: by extension)")
	evaluateCmd.Flags().BoolVar(&evaluateSummary, "summary", false, "print a one-line summary instead of the full report")
}
