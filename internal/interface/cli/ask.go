package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yanqian/faqbot/internal/domain/faq"
)

var askJSON bool

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Answer a question from the FAQ corpus",
	Long: `Normalises the question, finds the most similar FAQ question and prints
its answer. Matches scoring below the configured threshold print the
fallback answer instead.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAsk,
}

func init() {
	askCmd.Flags().BoolVar(&askJSON, "json", false, "output the answer as JSON")
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	svc, err := newService(cmd.Context())
	if err != nil {
		return err
	}

	resp, err := svc.Ask(cmd.Context(), faq.AskRequest{Question: strings.Join(args, " ")})
	if err != nil {
		return fmt.Errorf("ask failed: %w", err)
	}

	if askJSON {
		data, err := json.MarshalIndent(resp, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal answer: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	cmd.Println(resp.Answer)
	if resp.MatchedQuestion != nil {
		category := faq.DefaultCategory
		if resp.Category != nil {
			category = *resp.Category
		}
		cmd.Printf("  matched: %s [%s]\n", *resp.MatchedQuestion, category)
	}
	cmd.Printf("  score:   %.3f\n", resp.Score)
	return nil
}
