package output

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/law-makers/scrape/internal/engine"
	"github.com/law-makers/scrape/pkg/models"
)

// ListSeparator joins list values into a single CSV cell
const ListSeparator = "; "

// CSVOptions controls how records with differing keys are handled
type CSVOptions struct {
	// Strict rejects the export when any record's key set differs from the
	// first record's. Otherwise the first record's keys are the columns,
	// missing values are written empty and extra keys are ignored.
	Strict bool
}

// SaveCSV writes records to a UTF-8 CSV file whose header row is the first
// record's keys. An empty input writes nothing and returns ErrEmptyInput.
func SaveCSV(records []*models.Record, filepath string, opts CSVOptions) error {
	if len(records) == 0 {
		return engine.NewScrapeError(engine.ErrCodeEmptyInput, "no records to save", nil)
	}

	headers := records[0].Keys()
	if opts.Strict {
		if err := checkUniformKeys(records, headers); err != nil {
			return err
		}
	}

	file, err := os.Create(filepath)
	if err != nil {
		return persistenceError(filepath, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)

	if err := writer.Write(headers); err != nil {
		return persistenceError(filepath, err)
	}

	for _, rec := range records {
		row := make([]string, len(headers))
		for i, h := range headers {
			v, _ := rec.Get(h)
			row[i] = FormatCell(v)
		}
		if err := writer.Write(row); err != nil {
			return persistenceError(filepath, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return persistenceError(filepath, err)
	}
	return file.Close()
}

// FormatCell renders a record value as a single CSV cell
func FormatCell(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case []string:
		return strings.Join(val, ListSeparator)
	case []any:
		parts := make([]string, len(val))
		for i, item := range val {
			parts[i] = FormatCell(item)
		}
		return strings.Join(parts, ListSeparator)
	default:
		return fmt.Sprint(val)
	}
}

func checkUniformKeys(records []*models.Record, headers []string) error {
	for i, rec := range records {
		if rec.Len() != len(headers) {
			return raggedError(i, rec)
		}
		for _, h := range headers {
			if !rec.Has(h) {
				return raggedError(i, rec)
			}
		}
	}
	return nil
}

func raggedError(i int, rec *models.Record) error {
	return engine.NewScrapeError(engine.ErrCodeValidation,
		fmt.Sprintf("record %d has keys %v, which differ from the first record", i, rec.Keys()), nil)
}

func persistenceError(path string, err error) error {
	return engine.NewScrapeError(engine.ErrCodePersistence,
		fmt.Sprintf("failed to write %s", path), err)
}
