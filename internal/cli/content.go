package cli

import (
	"github.com/law-makers/scrape/pkg/models"
	"github.com/spf13/cobra"
)

var (
	textTag       string
	contentOutput string
)

var textCmd = &cobra.Command{
	Use:   "text <url>",
	Short: "Extract the text of every element with a given tag",
	Example: `  scrape text https://example.com --tag h2
  scrape text https://example.com -o paragraphs.json`,
	Args: cobra.ExactArgs(1),
	RunE: runText,
}

var imagesCmd = &cobra.Command{
	Use:   "images <url>",
	Short: "List the images on a page with their alt text",
	Args:  cobra.ExactArgs(1),
	RunE:  runImages,
}

var metaCmd = &cobra.Command{
	Use:   "meta <url>",
	Short: "Show the title, description and keywords of a page",
	Args:  cobra.ExactArgs(1),
	RunE:  runMeta,
}

func init() {
	for _, c := range []*cobra.Command{textCmd, imagesCmd, metaCmd} {
		rootCmd.AddCommand(c)
		c.Flags().StringVarP(&contentOutput, "output", "o", "", "File to export to (.csv, .json, .yaml)")
	}
	textCmd.Flags().StringVarP(&textTag, "tag", "t", "p", "Tag name or CSS selector to collect")
}

func runText(cmd *cobra.Command, args []string) error {
	s, err := openSession(cmd, args[0], nil)
	if err != nil {
		return err
	}
	doc, err := s.Fetch(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	return emit(cmd, s, stringRecords("text", s.ExtractText(doc, textTag)), contentOutput)
}

func runImages(cmd *cobra.Command, args []string) error {
	s, err := openSession(cmd, args[0], nil)
	if err != nil {
		return err
	}
	doc, err := s.Fetch(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	images := s.ExtractImages(doc)
	records := make([]*models.Record, len(images))
	for i, img := range images {
		records[i] = models.RecordOf("src", img.URL, "alt", img.Alt)
	}
	return emit(cmd, s, records, contentOutput)
}

func runMeta(cmd *cobra.Command, args []string) error {
	s, err := openSession(cmd, args[0], nil)
	if err != nil {
		return err
	}
	doc, err := s.Fetch(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	return emit(cmd, s, []*models.Record{s.ExtractMetadata(doc)}, contentOutput)
}
