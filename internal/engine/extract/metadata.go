// internal/engine/extract/metadata.go
package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/law-makers/scrape/pkg/models"
)

// Metadata returns a record with exactly the keys title, description and
// keywords. Anything the page does not provide is filled with a placeholder.
func Metadata(doc *goquery.Document) *models.Record {
	title := models.NoTitle
	description := models.NoDescription
	keywords := models.NoKeywords

	if doc != nil {
		if sel := doc.Find("title").First(); sel.Length() > 0 {
			title = strings.TrimSpace(sel.Text())
		}
		if content, ok := metaContent(doc, "description"); ok {
			description = content
		}
		if content, ok := metaContent(doc, "keywords"); ok {
			keywords = content
		}
	}

	return models.RecordOf(
		models.KeyTitle, title,
		models.KeyDescription, description,
		models.KeyKeywords, keywords,
	)
}

// metaContent returns the content attribute of the first <meta name=...>
func metaContent(doc *goquery.Document, name string) (string, bool) {
	var (
		content string
		found   bool
	)
	doc.Find("meta[name]").EachWithBreak(func(i int, sel *goquery.Selection) bool {
		if n, _ := sel.Attr("name"); n != name {
			return true
		}
		content, found = sel.Attr("content")
		return false
	})
	return content, found
}
