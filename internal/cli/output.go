package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/law-makers/scrape/internal/app"
	"github.com/law-makers/scrape/internal/engine"
	"github.com/law-makers/scrape/internal/engine/batch"
	"github.com/law-makers/scrape/internal/scraper"
	"github.com/law-makers/scrape/internal/ui"
	urlutil "github.com/law-makers/scrape/internal/utils/url"
	"github.com/law-makers/scrape/pkg/models"
	"github.com/spf13/cobra"
)

// openSession validates target and opens a session rooted at it
func openSession(cmd *cobra.Command, target string, hook batch.Hook) (*scraper.Session, error) {
	if err := urlutil.ValidateURL(target); err != nil {
		return nil, err
	}
	a := GetAppFromCmd(cmd)
	if a == nil {
		return nil, fmt.Errorf("application not initialized")
	}
	return a.NewSession(target, hook)
}

func application(cmd *cobra.Command) *app.Application {
	return GetAppFromCmd(cmd)
}

// emit prints records to stdout as indented JSON, or exports them to path
// in the format its extension names.
func emit(cmd *cobra.Command, s *scraper.Session, records []*models.Record, path string) error {
	if path == "" {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "    ")
		enc.SetEscapeHTML(false)
		return enc.Encode(records)
	}

	err := s.Save(records, path)
	switch {
	case errors.Is(err, engine.ErrEmptyInput):
		fmt.Fprintln(cmd.ErrOrStderr(), ui.Info("Nothing to save."))
		return nil
	case err != nil:
		return err
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "%s %s\n", ui.Success("✓ Saved"), ui.Label(fmt.Sprintf("%d record(s) to", len(records)), path))
	return nil
}

// parseFields turns "name=selector" pairs into fields. The selector may
// itself contain '='.
func parseFields(specs []string) ([]models.Field, error) {
	fields := make([]models.Field, 0, len(specs))
	for _, raw := range specs {
		name, sel, ok := strings.Cut(raw, "=")
		name, sel = strings.TrimSpace(name), strings.TrimSpace(sel)
		if !ok || name == "" || sel == "" {
			return nil, fmt.Errorf("invalid field %q: expected name=selector", raw)
		}
		fields = append(fields, models.Field{Name: name, Selector: sel})
	}
	return fields, nil
}

func stringRecords(key string, values []string) []*models.Record {
	records := make([]*models.Record, len(values))
	for i, v := range values {
		records[i] = models.RecordOf(key, v)
	}
	return records
}
