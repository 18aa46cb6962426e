package extract

import (
	"fmt"
	"net/url"
	"strings"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/JohannesKaufmann/html-to-markdown/plugin"
	"github.com/PuerkitoBio/goquery"
	urlutil "github.com/law-makers/scrape/internal/utils/url"
	"github.com/law-makers/scrape/pkg/models"
	"golang.org/x/net/html"
)

// MarkdownExtractor renders the page body as markdown under the "markdown" key
type MarkdownExtractor struct {
	Base *url.URL
}

func (e MarkdownExtractor) Extract(doc *goquery.Document) *models.Record {
	text, err := Markdown(doc, e.Base)
	if err != nil {
		text = ""
	}
	return models.RecordOf("markdown", text)
}

// Markdown converts the sanitized page body to GitHub-flavored markdown,
// resolving link targets against base.
func Markdown(doc *goquery.Document, base *url.URL) (string, error) {
	if doc == nil {
		return "", nil
	}

	body, err := doc.Find("body").Html()
	if err != nil {
		return "", fmt.Errorf("failed to render body: %w", err)
	}

	cleaned, err := cleanHTML(body)
	if err != nil {
		return "", fmt.Errorf("failed to clean HTML: %w", err)
	}

	converter := md.NewConverter("", true, nil)
	converter.Use(plugin.GitHubFlavored())
	converter.AddRules(md.Rule{
		Filter: []string{"a"},
		Replacement: func(content string, selec *goquery.Selection, opt *md.Options) *string {
			href, exists := selec.Attr("href")
			if !exists {
				return nil
			}

			resolved, ok := urlutil.Resolve(base, href)
			if !ok {
				resolved = href
			}
			str := fmt.Sprintf("[%s](%s)", strings.TrimSpace(selec.Text()), resolved)
			return &str
		},
	})

	out, err := converter.ConvertString(cleaned)
	if err != nil {
		return "", fmt.Errorf("failed to convert to markdown: %w", err)
	}
	return strings.TrimSpace(out), nil
}

// cleanHTML removes non-content elements and every attribute except link
// and image targets.
func cleanHTML(htmlContent string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return "", err
	}

	doc.Find("script, style, link, meta, noscript, iframe, svg, form, input, button, select, textarea, canvas").Remove()

	doc.Find("*").Each(func(i int, s *goquery.Selection) {
		node := s.Nodes[0]
		kept := node.Attr[:0]
		for _, attr := range node.Attr {
			if keepAttr(node, attr) {
				kept = append(kept, attr)
			}
		}
		node.Attr = kept
	})

	out, err := doc.Find("body").Html()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

func keepAttr(node *html.Node, attr html.Attribute) bool {
	switch node.Data {
	case "a":
		return attr.Key == "href" || attr.Key == "title"
	case "img":
		return attr.Key == "src" || attr.Key == "alt" || attr.Key == "title"
	}
	return false
}
