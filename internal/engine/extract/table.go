package extract

import (
	"fmt"

	"github.com/PuerkitoBio/goquery"
	"github.com/law-makers/scrape/internal/engine"
	"github.com/law-makers/scrape/pkg/models"
)

// HeaderMode says how the first row of a table is treated
type HeaderMode int

const (
	// HeaderFirstRow uses the first row's cells as column names, whatever they contain
	HeaderFirstRow HeaderMode = iota
	// HeaderNone treats every row as data
	HeaderNone
)

// TableOptions selects a table and its header policy
type TableOptions struct {
	// Index is the zero-based position of the table among all tables in the document
	Index  int
	Header HeaderMode
}

// Table converts the selected table into one record per data row.
//
// With a header, each record pairs header names with the row's cells by
// position, up to the shorter of the two; surplus names or cells are dropped
// for that row. Without one (HeaderNone, or an empty first row) each record
// is {"data": [cells...]}. Rows with no cells are skipped.
//
// A missing table yields an error with code ErrCodeMissingResource.
func Table(doc *goquery.Document, opts TableOptions) ([]*models.Record, error) {
	rows := []*models.Record{}
	if doc == nil {
		return rows, nil
	}

	tables := doc.Find("table")
	if opts.Index < 0 || opts.Index >= tables.Length() {
		return rows, engine.NewScrapeError(engine.ErrCodeMissingResource,
			fmt.Sprintf("table %d not found (page has %d)", opts.Index, tables.Length()), nil)
	}

	var header []string
	tables.Eq(opts.Index).Find("tr").Each(func(i int, tr *goquery.Selection) {
		cells := selectionTexts(tr.Find("th, td"))

		if i == 0 && opts.Header == HeaderFirstRow {
			header = cells
			return
		}
		if len(cells) == 0 {
			return
		}

		rows = append(rows, pairRow(header, cells))
	})

	return rows, nil
}

func pairRow(header, cells []string) *models.Record {
	if len(header) == 0 {
		return models.RecordOf(models.KeyData, cells)
	}

	n := min(len(header), len(cells))
	rec := models.NewRecord()
	for j := 0; j < n; j++ {
		rec.Set(header[j], cells[j])
	}
	return rec
}
