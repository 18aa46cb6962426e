package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
)

// Text returns the trimmed text of every element matching tag, skipping
// elements whose text is empty after trimming. A tag that is not a valid
// selector matches nothing.
func Text(doc *goquery.Document, tag string) []string {
	texts := []string{}
	if doc == nil || tag == "" {
		return texts
	}
	matcher, err := cascadia.Compile(tag)
	if err != nil {
		return texts
	}

	doc.FindMatcher(matcher).Each(func(i int, sel *goquery.Selection) {
		if text := strings.TrimSpace(sel.Text()); text != "" {
			texts = append(texts, text)
		}
	})
	return texts
}

// selectionTexts returns the trimmed text of every node in sel, empty ones included
func selectionTexts(sel *goquery.Selection) []string {
	texts := make([]string, 0, sel.Length())
	sel.Each(func(i int, s *goquery.Selection) {
		texts = append(texts, strings.TrimSpace(s.Text()))
	})
	return texts
}
