// Package extract holds the extraction strategies that turn a parsed
// document into data. Every function accepts a nil document and returns an
// empty or defaulted result for it.
package extract

import (
	"net/url"

	"github.com/PuerkitoBio/goquery"
	"github.com/law-makers/scrape/pkg/models"
)

// Extractor produces one record from a parsed page
type Extractor interface {
	Extract(doc *goquery.Document) *models.Record
}

// ExtractorFunc adapts a plain function to the Extractor interface
type ExtractorFunc func(doc *goquery.Document) *models.Record

// Extract calls fn(doc)
func (fn ExtractorFunc) Extract(doc *goquery.Document) *models.Record {
	return fn(doc)
}

// TextExtractor collects the text of every element matching Tag under the "text" key
type TextExtractor struct {
	Tag string
}

func (e TextExtractor) Extract(doc *goquery.Document) *models.Record {
	return models.RecordOf("text", Text(doc, e.Tag))
}

// MetadataExtractor yields the title/description/keywords record
type MetadataExtractor struct{}

func (MetadataExtractor) Extract(doc *goquery.Document) *models.Record {
	return Metadata(doc)
}

// SelectorExtractor yields one entry per field with the texts its selector matched
type SelectorExtractor struct {
	Fields []models.Field
}

func (e SelectorExtractor) Extract(doc *goquery.Document) *models.Record {
	return Fields(doc, e.Fields)
}

// LinksExtractor collects the page links under the "links" key
type LinksExtractor struct {
	Base         *url.URL
	InternalOnly bool
}

func (e LinksExtractor) Extract(doc *goquery.Document) *models.Record {
	return models.RecordOf("links", Links(doc, e.Base, e.InternalOnly))
}

// ImagesExtractor collects the page images under the "images" key
type ImagesExtractor struct {
	Base *url.URL
}

func (e ImagesExtractor) Extract(doc *goquery.Document) *models.Record {
	return models.RecordOf("images", Images(doc, e.Base))
}

// SummaryExtractor reports the page title along with paragraph and image counts
type SummaryExtractor struct {
	Base *url.URL
}

func (e SummaryExtractor) Extract(doc *goquery.Document) *models.Record {
	return models.RecordOf(
		models.KeyTitle, Metadata(doc).String(models.KeyTitle),
		"paragraphs", len(Text(doc, "p")),
		"images", len(Images(doc, e.Base)),
	)
}

// Combine runs each extractor in turn and merges their records; later
// extractors overwrite values of keys already set.
func Combine(extractors ...Extractor) Extractor {
	return ExtractorFunc(func(doc *goquery.Document) *models.Record {
		out := models.NewRecord()
		for _, e := range extractors {
			out.Merge(e.Extract(doc))
		}
		return out
	})
}
