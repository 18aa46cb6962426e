package extract

import (
	"net/url"

	"github.com/PuerkitoBio/goquery"
	urlutil "github.com/law-makers/scrape/internal/utils/url"
)

// Links returns the distinct absolute URLs of every anchor with an href,
// resolved against base. With internalOnly set, only URLs on base's exact
// host are kept. Order follows first appearance in the document.
func Links(doc *goquery.Document, base *url.URL, internalOnly bool) []string {
	links := []string{}
	if doc == nil {
		return links
	}

	seen := make(map[string]bool)
	doc.Find("a[href]").Each(func(i int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		resolved, ok := urlutil.Resolve(base, href)
		if !ok {
			return
		}
		if internalOnly && !urlutil.SameHost(base, resolved) {
			return
		}
		if !seen[resolved] {
			seen[resolved] = true
			links = append(links, resolved)
		}
	})

	return links
}
