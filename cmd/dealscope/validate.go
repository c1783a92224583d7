package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"dealscope/internal/domain"
	"dealscope/internal/engine"
)

var validateFormat string

var validateCmd = &cobra.Command{
	Use:   "validate <snapshot-file>",
	Short: "Decode a snapshot file and report bundle completeness and conflicts",
	Long: `Validate decodes the snapshot, lists which collector bundles are present
and runs cross-validation without scoring. Useful for checking a dossier
before submitting it.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		snap, err := loadSnapshot(args[0], validateFormat)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		completeness := snap.Completeness()
		names := make([]string, 0, len(completeness))
		for name := range completeness {
			names = append(names, name)
		}
		sort.Strings(names)

		fmt.Fprintln(out, "Bundles:")
		for _, name := range names {
			state := "missing"
			if completeness[name] {
				state = "present"
			}
			fmt.Fprintf(out, "  %-12s %s\n", name, state)
		}

		issues := engine.CrossValidate(snap)
		if len(issues) == 0 {
			fmt.Fprintln(out, "No cross-validation issues.")
			return nil
		}

		fmt.Fprintf(out, "Issues (%d):\n", len(issues))
		blocking := false
		for _, issue := range issues {
			fmt.Fprintf(out, "  [%s] %s: %s\n", issue.Severity, issue.Type, issue.Description)
			if issue.Severity == domain.SeverityCritical {
				blocking = true
			}
		}
		if blocking {
			return exitError{code: 3}
		}
		return nil
	},
}

func init() {
	validateCmd.Flags().StringVar(&validateFormat, "format", "", "snapshot format: json or yaml (default: by extension)")
}
