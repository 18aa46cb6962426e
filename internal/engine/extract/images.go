package extract

import (
	"net/url"

	"github.com/PuerkitoBio/goquery"
	urlutil "github.com/law-makers/scrape/internal/utils/url"
	"github.com/law-makers/scrape/pkg/models"
)

// Images returns every img element with a non-empty src, the src resolved
// against base. A missing alt attribute yields models.NoAltText; a present
// but empty one is kept as "".
func Images(doc *goquery.Document, base *url.URL) []models.ImageRecord {
	images := []models.ImageRecord{}
	if doc == nil {
		return images
	}

	doc.Find("img").Each(func(i int, sel *goquery.Selection) {
		src, _ := sel.Attr("src")
		if src == "" {
			return
		}
		resolved, ok := urlutil.Resolve(base, src)
		if !ok {
			return
		}

		alt, exists := sel.Attr("alt")
		if !exists {
			alt = models.NoAltText
		}
		images = append(images, models.ImageRecord{URL: resolved, Alt: alt})
	})

	return images
}
