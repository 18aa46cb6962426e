package cli

import (
	"fmt"
	"net/url"
	"os"

	"github.com/law-makers/scrape/internal/engine/extract"
	"github.com/law-makers/scrape/internal/ui"
	"github.com/law-makers/scrape/pkg/models"
	"github.com/rs/zerolog/log"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

var (
	pagesExtract string
	pagesTag     string
	pagesFields  []string
	pagesAll     bool
	pagesOutput  string
)

// pagesCmd represents the pages command
var pagesCmd = &cobra.Command{
	Use:   "pages <url> [url...]",
	Short: "Scrape several pages of one site in sequence",
	Long: `Fetches each URL in turn, honoring the rate limit and delay, and produces
one record per page that loaded. Pages that fail are reported and skipped.
Every record carries the URL it came from.

The first URL is the base against which links and images are resolved.

Extractors:
  - summary   title, paragraph count and image count (default)
  - meta      title, description and keywords
  - text      texts of the elements matching --tag
  - links     links on the page (--all for other hosts too)
  - images    images with alt text
  - markdown  the page body as markdown
  - custom    metadata plus named CSS selector fields (-f name=selector)`,
	Example: `  scrape pages https://example.com/a https://example.com/b
  scrape pages https://example.com/p/1 https://example.com/p/2 --extract custom -f title=h1 -o pages.csv`,
	Args: cobra.MinimumNArgs(1),
	RunE: runPages,
}

func init() {
	rootCmd.AddCommand(pagesCmd)

	pagesCmd.Flags().StringVarP(&pagesExtract, "extract", "e", "summary", "Extractor: summary, meta, text, links, images, markdown or custom")
	pagesCmd.Flags().StringVarP(&pagesTag, "tag", "t", "p", "Tag for the text extractor")
	pagesCmd.Flags().StringArrayVarP(&pagesFields, "field", "f", nil, "Field for the custom extractor, as name=selector")
	pagesCmd.Flags().BoolVarP(&pagesAll, "all", "a", false, "Include links to other hosts")
	pagesCmd.Flags().StringVarP(&pagesOutput, "output", "o", "", "File to export to (.csv, .json, .yaml)")
}

func runPages(cmd *cobra.Command, args []string) error {
	a := application(cmd)
	if a == nil {
		return fmt.Errorf("application not initialized")
	}

	bar := progressbar.NewOptions(len(args),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetDescription("Scraping"),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionSetVisibility(!a.Config.JSONLog && a.Config.LogLevel != "error"),
	)
	failed := 0
	hook := func(res models.PageResult) {
		if res.Err != nil {
			failed++
			log.Debug().Err(res.Err).Str("url", res.URL).Msg("Page skipped")
		}
		_ = bar.Add(1)
	}

	s, err := openSession(cmd, args[0], hook)
	if err != nil {
		return err
	}

	ex, err := pagesExtractor(s.Base())
	if err != nil {
		return err
	}

	records := s.ScrapePages(cmd.Context(), args, ex)
	_ = bar.Finish()

	fmt.Fprintf(cmd.ErrOrStderr(), "%s  %s\n",
		ui.Label("Scraped", fmt.Sprintf("%d/%d", len(records), len(args))),
		ui.Label("Failed", fmt.Sprintf("%d", failed)))

	return emit(cmd, s, records, pagesOutput)
}

func pagesExtractor(base *url.URL) (extract.Extractor, error) {
	switch pagesExtract {
	case "summary":
		return extract.SummaryExtractor{Base: base}, nil
	case "meta":
		return extract.MetadataExtractor{}, nil
	case "text":
		return extract.TextExtractor{Tag: pagesTag}, nil
	case "links":
		return extract.LinksExtractor{Base: base, InternalOnly: !pagesAll}, nil
	case "images":
		return extract.ImagesExtractor{Base: base}, nil
	case "markdown":
		return extract.MarkdownExtractor{Base: base}, nil
	case "custom":
		fields, err := parseFields(pagesFields)
		if err != nil {
			return nil, err
		}
		if len(fields) == 0 {
			return nil, fmt.Errorf("the custom extractor needs at least one -f name=selector")
		}
		if err := extract.CompileFields(fields); err != nil {
			return nil, err
		}
		return extract.Combine(extract.MetadataExtractor{}, extract.SelectorExtractor{Fields: fields}), nil
	}
	return nil, fmt.Errorf("unknown extractor %q", pagesExtract)
}
