package scraper

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/law-makers/scrape/internal/engine"
	"github.com/law-makers/scrape/internal/engine/extract"
	"github.com/law-makers/scrape/pkg/models"
)

const sitePage = `<!DOCTYPE html>
<html>
<head>
	<title>Catalog</title>
	<meta name="description" content="Products">
</head>
<body>
	<h1>Products</h1>
	<p>Intro text.</p>
	<a href="/page2">Next</a>
	<a href="https://elsewhere.org/">Elsewhere</a>
	<img src="/logo.png" alt="Logo">
	<div class="price">$1</div>
	<div class="price">$2</div>
	<table>
		<tr><th>Name</th><th>Price</th></tr>
		<tr><td>Widget</td><td>$1</td></tr>
		<tr><td>Gadget</td></tr>
	</table>
</body>
</html>`

func newSite(t *testing.T) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/broken" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte(sitePage))
	}))
	t.Cleanup(server.Close)
	return server
}

func newSession(t *testing.T, baseURL string, opts ...Option) *Session {
	t.Helper()
	s, err := New(models.SessionConfig{BaseURL: baseURL, Timeout: 5 * time.Second}, opts...)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return s
}

func TestNew_Validation(t *testing.T) {
	if _, err := New(models.SessionConfig{BaseURL: "/relative"}); !errors.Is(err, engine.ErrValidation) {
		t.Errorf("expected validation error for relative base, got %v", err)
	}
	if _, err := New(models.SessionConfig{BaseURL: "https://example.com", Delay: -time.Second}); !errors.Is(err, engine.ErrValidation) {
		t.Errorf("expected validation error for negative delay, got %v", err)
	}

	s, err := New(models.SessionConfig{BaseURL: "https://example.com"})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if cfg := s.Config(); cfg.UserAgent != DefaultUserAgent || cfg.Timeout <= 0 {
		t.Errorf("defaults not applied: %+v", cfg)
	}
}

func TestSession_FetchAndExtract(t *testing.T) {
	site := newSite(t)
	s := newSession(t, site.URL)

	doc, err := s.Fetch(context.Background(), site.URL)
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}

	if got := s.ExtractLinks(doc, true); !reflect.DeepEqual(got, []string{site.URL + "/page2"}) {
		t.Errorf("internal links = %v", got)
	}
	if got := s.ExtractLinks(doc, false); len(got) != 2 {
		t.Errorf("all links = %v", got)
	}
	if got := s.ExtractText(doc, "p"); !reflect.DeepEqual(got, []string{"Intro text."}) {
		t.Errorf("text = %v", got)
	}
	if got := s.ExtractImages(doc); len(got) != 1 || got[0].URL != site.URL+"/logo.png" {
		t.Errorf("images = %v", got)
	}
	if got := s.ExtractMetadata(doc).String("title"); got != "Catalog" {
		t.Errorf("title = %q", got)
	}
}

func TestSession_FailedFetchYieldsEmptyExtraction(t *testing.T) {
	site := newSite(t)
	s := newSession(t, site.URL)

	doc, err := s.Fetch(context.Background(), site.URL+"/broken")
	if !errors.Is(err, engine.ErrFetch) {
		t.Fatalf("expected fetch failure, got %v", err)
	}

	if len(s.ExtractLinks(doc, false)) != 0 || len(s.ExtractText(doc, "p")) != 0 || len(s.ExtractImages(doc)) != 0 {
		t.Error("extractors should return empty results for a failed fetch")
	}
	if s.ExtractMetadata(doc).String("title") != models.NoTitle {
		t.Error("metadata should carry placeholders for a failed fetch")
	}
}

func TestSession_ScrapeCustom(t *testing.T) {
	site := newSite(t)
	s := newSession(t, site.URL)

	fields := []models.Field{
		{Name: "prices", Selector: ".price"},
		{Name: "headings", Selector: "h1, h2"},
	}
	rec, err := s.ScrapeCustom(context.Background(), site.URL, fields)
	if err != nil {
		t.Fatalf("ScrapeCustom failed: %v", err)
	}

	if keys := rec.Keys(); !reflect.DeepEqual(keys, []string{"url", "prices", "headings"}) {
		t.Errorf("keys = %v", keys)
	}
	if got, _ := rec.Get("prices"); !reflect.DeepEqual(got, []string{"$1", "$2"}) {
		t.Errorf("prices = %v", got)
	}

	rec, err = s.ScrapeCustom(context.Background(), site.URL+"/broken", fields)
	if err == nil || rec.Len() != 0 {
		t.Errorf("expected empty record and error, got %v, %v", rec.Keys(), err)
	}

	rec, err = s.ScrapeCustom(context.Background(), site.URL, []models.Field{{Name: "bad", Selector: "[["}})
	if !errors.Is(err, engine.ErrValidation) || rec.Len() != 0 {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestSession_ScrapeTable(t *testing.T) {
	site := newSite(t)
	s := newSession(t, site.URL)

	rows, err := s.ScrapeTable(context.Background(), site.URL, 0)
	if err != nil {
		t.Fatalf("ScrapeTable failed: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].String("Name") != "Widget" || rows[0].String("Price") != "$1" {
		t.Errorf("row 0 = %v", rows[0].Keys())
	}
	if rows[1].Has("Price") {
		t.Error("short row should not carry the Price key")
	}

	rows, err = s.ScrapeTable(context.Background(), site.URL, 3)
	if !errors.Is(err, engine.ErrMissingResource) || len(rows) != 0 {
		t.Errorf("expected missing table, got %v, %v", rows, err)
	}

	noHeader := newSession(t, site.URL, WithTableHeader(extract.HeaderNone))
	rows, _ = noHeader.ScrapeTable(context.Background(), site.URL, 0)
	if len(rows) != 3 {
		t.Errorf("expected 3 data rows without a header, got %d", len(rows))
	}
}

func TestSession_ScrapePages(t *testing.T) {
	site := newSite(t)

	var seen []string
	s := newSession(t, site.URL, WithPageHook(func(res models.PageResult) {
		seen = append(seen, res.URL)
	}))

	urls := []string{site.URL + "/a", site.URL + "/broken", site.URL + "/c"}
	results := s.ScrapePages(context.Background(), urls, extract.SummaryExtractor{Base: s.Base()})

	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results[0].String("url") != urls[0] || results[1].String("url") != urls[2] {
		t.Errorf("unexpected result urls %q, %q", results[0].String("url"), results[1].String("url"))
	}
	if results[0].String("title") != "Catalog" {
		t.Errorf("title = %q", results[0].String("title"))
	}
	if !reflect.DeepEqual(seen, urls) {
		t.Errorf("hook saw %v", seen)
	}
}

func TestSession_Save(t *testing.T) {
	s := newSession(t, "https://example.com")
	dir := t.TempDir()

	if err := s.SaveCSV(nil, filepath.Join(dir, "empty.csv")); !errors.Is(err, engine.ErrEmptyInput) {
		t.Errorf("expected empty input, got %v", err)
	}

	records := []*models.Record{models.RecordOf("a", "1", "b", "2")}
	if err := s.SaveCSV(records, filepath.Join(dir, "out.csv")); err != nil {
		t.Fatalf("SaveCSV failed: %v", err)
	}
	if err := s.SaveJSON(records[0], filepath.Join(dir, "out.json")); err != nil {
		t.Fatalf("SaveJSON failed: %v", err)
	}
	if err := s.Save(records, filepath.Join(dir, "out.yaml")); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	data, _ := os.ReadFile(filepath.Join(dir, "out.json"))
	if string(data) != "{\n    \"a\": \"1\",\n    \"b\": \"2\"\n}\n" {
		t.Errorf("unexpected JSON %q", data)
	}

	strict := newSession(t, "https://example.com", WithStrictCSV(true))
	ragged := []*models.Record{models.RecordOf("a", "1"), models.RecordOf("b", "2")}
	if err := strict.SaveCSV(ragged, filepath.Join(dir, "ragged.csv")); !errors.Is(err, engine.ErrValidation) {
		t.Errorf("expected validation error, got %v", err)
	}
}
