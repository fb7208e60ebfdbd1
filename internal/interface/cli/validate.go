package cli

import (
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check that the configured corpus loads and indexes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		matcher, cfg, err := matcherLoader(cmd.Context())
		if err != nil {
			return err
		}
		cmd.Printf("corpus ok: %d faqs, %d terms, threshold %.2f\n",
			matcher.Corpus().Len(), matcher.VocabularySize(), cfg.SimilarityThreshold)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
