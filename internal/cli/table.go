package cli

import (
	"github.com/spf13/cobra"
)

var (
	tableIndex  int
	tableOutput string
)

// tableCmd represents the table command
var tableCmd = &cobra.Command{
	Use:   "table <url>",
	Short: "Convert an HTML table into records",
	Long: `Fetches a page and turns the selected table into one record per row.

By default the first row names the columns and each later row is paired
with those names by position. With --table-header=none every row is kept
as a plain list of cells.`,
	Example: `  # First table on the page, printed as JSON
  scrape table https://example.com/stats

  # Third table, exported to CSV
  scrape table https://example.com/stats --index 2 -o stats.csv`,
	Args: cobra.ExactArgs(1),
	RunE: runTable,
}

func init() {
	rootCmd.AddCommand(tableCmd)

	tableCmd.Flags().IntVarP(&tableIndex, "index", "i", 0, "Zero-based position of the table on the page")
	tableCmd.Flags().StringVarP(&tableOutput, "output", "o", "", "File to export to (.csv, .json, .yaml)")
}

func runTable(cmd *cobra.Command, args []string) error {
	s, err := openSession(cmd, args[0], nil)
	if err != nil {
		return err
	}

	rows, err := s.ScrapeTable(cmd.Context(), args[0], tableIndex)
	if err != nil {
		return err
	}
	return emit(cmd, s, rows, tableOutput)
}
