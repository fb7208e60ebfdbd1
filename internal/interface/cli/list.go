package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	listCategory string
	listJSON     bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List FAQ entries",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	listCmd.Flags().StringVar(&listCategory, "category", "", "only entries whose category contains this text")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "output entries as JSON")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, _ []string) error {
	svc, err := newService(cmd.Context())
	if err != nil {
		return err
	}

	records, err := svc.List(cmd.Context(), listCategory)
	if err != nil {
		return fmt.Errorf("list failed: %w", err)
	}

	if listJSON {
		data, err := json.MarshalIndent(records, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal entries: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	if len(records) == 0 {
		cmd.Println("No FAQs found.")
		return nil
	}
	for i, r := range records {
		cmd.Printf("  [%d] (%s) %s\n", i+1, r.Category, r.Question)
		cmd.Printf("      %s\n", r.Answer)
	}
	return nil
}
