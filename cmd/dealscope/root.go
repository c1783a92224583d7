package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"dealscope/internal/codec"
	"dealscope/internal/domain"
)

var rootCmd = &cobra.Command{
	Use:   "dealscope",
	Short: "Reconcile and score retail-acquisition dossiers",
	Long: `dealscope cross-validates the signal bundles collected for a retail
acquisition target, arbitrates their conflicts and produces a scored
GO / NO-GO recommendation.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddCommand(evaluateCmd)
	rootCmd.AddCommand(validateCmd)
}

// loadSnapshot decodes a snapshot file, picking the codec from the
// extension unless format overrides it.
func loadSnapshot(path, format string) (domain.Snapshot, error) {
	if format == "" {
		switch filepath.Ext(path) {
		case ".yaml", ".yml":
			format = "yaml"
		default:
			format = "json"
		}
	}

	var importer codec.Importer
	switch format {
	case "json":
		importer = codec.NewJSONCodec()
	case "yaml":
		importer = codec.NewYAMLCodec()
	default:
		return domain.Snapshot{}, fmt.Errorf("unknown format %q, want json or yaml", format)
	}

	f, err := os.Open(path)
	if err != nil {
		return domain.Snapshot{}, err
	}
	defer f.Close()

	return importer.Parse(f)
}
