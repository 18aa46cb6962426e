// Package scraper provides Session, the entry point that ties fetching,
// extraction, multi-page runs and export together for one site.
package scraper

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/law-makers/scrape/internal/engine"
	"github.com/law-makers/scrape/internal/engine/batch"
	"github.com/law-makers/scrape/internal/engine/extract"
	"github.com/law-makers/scrape/internal/engine/static"
	"github.com/law-makers/scrape/internal/proxy"
	"github.com/law-makers/scrape/internal/ratelimit"
	"github.com/law-makers/scrape/internal/utils/output"
	urlutil "github.com/law-makers/scrape/internal/utils/url"
	"github.com/law-makers/scrape/pkg/models"
	"github.com/rs/zerolog/log"
)

// DefaultUserAgent is the identity header sent when none is configured
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"

// Session scrapes a single site. Its configuration is fixed at creation and
// it owns the HTTP client used for every request. A Session is meant to be
// used from one goroutine.
type Session struct {
	cfg     models.SessionConfig
	base    *url.URL
	fetcher engine.Fetcher

	csv         output.CSVOptions
	tableHeader extract.HeaderMode
	pageHook    batch.Hook
}

type settings struct {
	client  *http.Client
	limiter ratelimit.RateLimiter
	proxies *proxy.Pool
	fetcher engine.Fetcher
}

// Option configures a Session
type Option func(*Session, *settings)

// WithHTTPClient sets the client used for requests
func WithHTTPClient(c *http.Client) Option {
	return func(_ *Session, st *settings) { st.client = c }
}

// WithRateLimiter caps the per-host request rate on top of the fixed delay
func WithRateLimiter(l ratelimit.RateLimiter) Option {
	return func(_ *Session, st *settings) { st.limiter = l }
}

// WithProxies routes requests through a rotating proxy pool
func WithProxies(p *proxy.Pool) Option {
	return func(_ *Session, st *settings) { st.proxies = p }
}

// WithFetcher replaces the HTTP fetcher entirely
func WithFetcher(f engine.Fetcher) Option {
	return func(_ *Session, st *settings) { st.fetcher = f }
}

// WithStrictCSV rejects CSV exports whose records have differing keys
func WithStrictCSV(strict bool) Option {
	return func(s *Session, _ *settings) { s.csv.Strict = strict }
}

// WithTableHeader sets how the first row of scraped tables is treated
func WithTableHeader(mode extract.HeaderMode) Option {
	return func(s *Session, _ *settings) { s.tableHeader = mode }
}

// WithPageHook observes every page of a multi-page run
func WithPageHook(h batch.Hook) Option {
	return func(s *Session, _ *settings) { s.pageHook = h }
}

// New creates a Session for cfg.BaseURL, which must be an absolute http(s) URL
func New(cfg models.SessionConfig, opts ...Option) (*Session, error) {
	base, err := urlutil.ParseBase(cfg.BaseURL)
	if err != nil {
		return nil, engine.NewScrapeError(engine.ErrCodeValidation, "invalid base URL", err).WithURL(cfg.BaseURL)
	}
	if cfg.Delay < 0 {
		return nil, engine.NewScrapeError(engine.ErrCodeValidation, "delay must be >= 0", nil)
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = static.DefaultTimeout
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}
	cfg.Headers = copyHeaders(cfg.Headers)

	s := &Session{cfg: cfg, base: base}
	st := &settings{}
	for _, opt := range opts {
		opt(s, st)
	}

	s.fetcher = st.fetcher
	if s.fetcher == nil {
		client := st.client
		if client == nil {
			client = &http.Client{
				Transport: &http.Transport{
					Proxy:               proxy.FromContext,
					MaxIdleConns:        10,
					MaxIdleConnsPerHost: 10,
					IdleConnTimeout:     90 * time.Second,
				},
			}
		}
		s.fetcher = static.New(client, static.Options{
			Timeout:   cfg.Timeout,
			Delay:     cfg.Delay,
			UserAgent: cfg.UserAgent,
			Headers:   cfg.Headers,
			Limiter:   st.limiter,
			Proxies:   st.proxies,
		})
	}

	log.Debug().
		Str("base_url", base.String()).
		Dur("delay", cfg.Delay).
		Dur("timeout", cfg.Timeout).
		Str("fetcher", s.fetcher.Name()).
		Msg("Session created")

	return s, nil
}

// Config returns a copy of the session configuration
func (s *Session) Config() models.SessionConfig {
	cfg := s.cfg
	cfg.Headers = copyHeaders(s.cfg.Headers)
	return cfg
}

// Base returns a copy of the parsed base URL
func (s *Session) Base() *url.URL {
	u := *s.base
	return &u
}

// Fetch retrieves and parses url. A failure is returned as an error with
// code ErrCodeFetch and a nil document; the extractors accept that nil.
func (s *Session) Fetch(ctx context.Context, url string) (*goquery.Document, error) {
	return s.fetcher.Fetch(ctx, url)
}

// ExtractLinks returns the distinct links of doc resolved against the base URL
func (s *Session) ExtractLinks(doc *goquery.Document, internalOnly bool) []string {
	return extract.Links(doc, s.base, internalOnly)
}

// ExtractText returns the non-empty trimmed texts of the elements matching tag
func (s *Session) ExtractText(doc *goquery.Document, tag string) []string {
	return extract.Text(doc, tag)
}

// ExtractImages returns the images of doc with sources resolved against the base URL
func (s *Session) ExtractImages(doc *goquery.Document) []models.ImageRecord {
	return extract.Images(doc, s.base)
}

// ExtractMetadata returns the title/description/keywords record of doc
func (s *Session) ExtractMetadata(doc *goquery.Document) *models.Record {
	return extract.Metadata(doc)
}

// ScrapeCustom fetches url and records the texts matched by each field's
// selector. The result starts with the "url" key followed by the fields in
// order. Selectors are validated before any request is made. On failure an
// empty record is returned together with the error.
func (s *Session) ScrapeCustom(ctx context.Context, url string, fields []models.Field) (*models.Record, error) {
	if err := extract.CompileFields(fields); err != nil {
		log.Warn().Err(err).Str("url", url).Msg("Custom extraction rejected")
		return models.NewRecord(), err
	}

	doc, err := s.Fetch(ctx, url)
	if err != nil {
		return models.NewRecord(), err
	}

	rec := models.RecordOf(models.KeyURL, url)
	rec.Merge(extract.Fields(doc, fields))
	return rec, nil
}

// ScrapeTable fetches url and converts the table at the zero-based index into
// records. A missing table is reported and yields an empty result.
func (s *Session) ScrapeTable(ctx context.Context, url string, index int) ([]*models.Record, error) {
	doc, err := s.Fetch(ctx, url)
	if err != nil {
		return []*models.Record{}, err
	}

	rows, err := extract.Table(doc, extract.TableOptions{Index: index, Header: s.tableHeader})
	if err != nil {
		log.Warn().Err(err).Str("url", url).Int("index", index).Msg("Table not found")
		return rows, err
	}

	log.Debug().Str("url", url).Int("rows", len(rows)).Msg("Table extracted")
	return rows, nil
}

// ScrapePages fetches urls one after another, applying ex to every page that
// loads. Failed pages are skipped; see batch.Runner.Run.
func (s *Session) ScrapePages(ctx context.Context, urls []string, ex extract.Extractor) []*models.Record {
	runner := batch.New(s.fetcher, batch.WithHook(s.pageHook))
	return runner.Run(ctx, urls, ex)
}

// SaveCSV writes records as CSV. Failures are logged and returned; nothing
// in memory is affected.
func (s *Session) SaveCSV(records []*models.Record, path string) error {
	return s.report(output.SaveCSV(records, path, s.csv), path)
}

// SaveJSON writes data (a record, a list of records or any JSON-encodable
// value) as indented JSON
func (s *Session) SaveJSON(data any, path string) error {
	return s.report(output.SaveJSON(data, path), path)
}

// SaveYAML writes data as YAML
func (s *Session) SaveYAML(data any, path string) error {
	return s.report(output.SaveYAML(data, path), path)
}

// Save writes records in the format implied by the extension of path
func (s *Session) Save(records []*models.Record, path string) error {
	return s.report(output.SaveRecords(records, path, s.csv), path)
}

func (s *Session) report(err error, path string) error {
	switch {
	case err == nil:
		log.Info().Str("file", path).Msg("Data saved")
	case errors.Is(err, engine.ErrEmptyInput):
		log.Warn().Str("file", path).Msg("No data to save")
	default:
		log.Warn().Err(err).Str("file", path).Msg("Failed to save data")
	}
	return err
}

func copyHeaders(h map[string]string) map[string]string {
	if h == nil {
		return nil
	}
	out := make(map[string]string, len(h))
	for k, v := range h {
		out[k] = v
	}
	return out
}
