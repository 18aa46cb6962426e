package cli

import (
	"github.com/law-makers/scrape/pkg/models"
	"github.com/spf13/cobra"
)

var (
	customFields []string
	customOutput string
)

// customCmd represents the custom command
var customCmd = &cobra.Command{
	Use:   "custom <url> -f name=selector...",
	Short: "Extract named fields with CSS selectors",
	Long: `Fetches a page and records, for every field, the texts of all elements
its CSS selector matches. The result always starts with the page URL.

Selectors are checked before the page is requested.`,
	Example: `  scrape custom https://shop.example.com -f title=h1 -f prices=.price
  scrape custom https://example.com -f "links=a[href^='/docs']" -o fields.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runCustom,
}

func init() {
	rootCmd.AddCommand(customCmd)

	customCmd.Flags().StringArrayVarP(&customFields, "field", "f", nil, "Field as name=selector (repeatable)")
	customCmd.Flags().StringVarP(&customOutput, "output", "o", "", "File to export to (.csv, .json, .yaml)")
	_ = customCmd.MarkFlagRequired("field")
}

func runCustom(cmd *cobra.Command, args []string) error {
	fields, err := parseFields(customFields)
	if err != nil {
		return err
	}

	s, err := openSession(cmd, args[0], nil)
	if err != nil {
		return err
	}

	rec, err := s.ScrapeCustom(cmd.Context(), args[0], fields)
	if err != nil {
		return err
	}
	return emit(cmd, s, []*models.Record{rec}, customOutput)
}
