package cli

import (
	"github.com/spf13/cobra"
)

var (
	linksAll    bool
	linksOutput string
)

// linksCmd represents the links command
var linksCmd = &cobra.Command{
	Use:   "links <url>",
	Short: "List the links found on a page",
	Long: `Fetches a page and lists the distinct links it contains, resolved to
absolute URLs in the order they first appear.

Only links on the same host as the page are listed unless --all is given.`,
	Example: `  # Internal links only
  scrape links https://example.com

  # Every link, exported to CSV
  scrape links https://example.com --all -o links.csv`,
	Args: cobra.ExactArgs(1),
	RunE: runLinks,
}

func init() {
	rootCmd.AddCommand(linksCmd)

	linksCmd.Flags().BoolVarP(&linksAll, "all", "a", false, "Include links to other hosts")
	linksCmd.Flags().StringVarP(&linksOutput, "output", "o", "", "File to export to (.csv, .json, .yaml)")
}

func runLinks(cmd *cobra.Command, args []string) error {
	s, err := openSession(cmd, args[0], nil)
	if err != nil {
		return err
	}

	doc, err := s.Fetch(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	links := s.ExtractLinks(doc, !linksAll)
	return emit(cmd, s, stringRecords("link", links), linksOutput)
}
