package extract

import (
	"fmt"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/law-makers/scrape/internal/engine"
	"github.com/law-makers/scrape/pkg/models"
)

// CompileFields checks that every field has a name and a valid CSS selector
func CompileFields(fields []models.Field) error {
	for _, f := range fields {
		if f.Name == "" {
			return engine.NewScrapeError(engine.ErrCodeValidation, "field name is empty", nil)
		}
		if _, err := cascadia.Compile(f.Selector); err != nil {
			return engine.NewScrapeError(engine.ErrCodeValidation,
				fmt.Sprintf("invalid selector for field %q", f.Name), err)
		}
	}
	return nil
}

// Fields evaluates each field's selector and records the trimmed text of
// every match, in document order, under the field name. Fields keep the
// caller's order; a repeated name keeps its first position and last value.
// A selector that does not compile yields an empty list; use CompileFields
// to reject such fields up front.
func Fields(doc *goquery.Document, fields []models.Field) *models.Record {
	out := models.NewRecord()
	if doc == nil {
		return out
	}

	for _, f := range fields {
		matcher, err := cascadia.Compile(f.Selector)
		if err != nil {
			out.Set(f.Name, []string{})
			continue
		}
		out.Set(f.Name, selectionTexts(doc.FindMatcher(matcher)))
	}
	return out
}
