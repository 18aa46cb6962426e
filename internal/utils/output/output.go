// Package output persists scraped records as CSV, JSON or YAML files.
package output

import (
	"path/filepath"
	"strings"

	"github.com/law-makers/scrape/pkg/models"
)

// Format is a persisted output format
type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromPath picks a format from the file extension, defaulting to JSON
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return FormatCSV
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// SaveRecords writes records to path in the format its extension implies
func SaveRecords(records []*models.Record, path string, opts CSVOptions) error {
	switch FormatFromPath(path) {
	case FormatCSV:
		return SaveCSV(records, path, opts)
	case FormatYAML:
		return SaveYAML(records, path)
	default:
		return SaveJSON(records, path)
	}
}
