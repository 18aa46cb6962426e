// Package batch drives a fetcher across a list of pages, one at a time.
package batch

import (
	"context"
	"time"

	"github.com/law-makers/scrape/internal/engine"
	"github.com/law-makers/scrape/internal/engine/extract"
	"github.com/law-makers/scrape/pkg/models"
	"github.com/rs/zerolog/log"
)

// Hook is notified after each page, successful or not
type Hook func(res models.PageResult)

// Runner fetches pages sequentially and applies an extractor to each one
type Runner struct {
	fetcher engine.Fetcher
	hook    Hook
}

// Option configures a Runner
type Option func(*Runner)

// WithHook registers a per-page observer
func WithHook(h Hook) Option {
	return func(r *Runner) {
		r.hook = h
	}
}

// New creates a Runner around fetcher
func New(fetcher engine.Fetcher, opts ...Option) *Runner {
	r := &Runner{fetcher: fetcher}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run fetches urls in order. Each page that fetches successfully yields one
// record from ex, stamped with the page URL under "url"; pages that fail are
// skipped. Output order follows input order. When ctx is done the run stops
// before the next page and returns what it has collected.
func (r *Runner) Run(ctx context.Context, urls []string, ex extract.Extractor) []*models.Record {
	results := make([]*models.Record, 0, len(urls))
	start := time.Now()
	failed := 0

	for i, u := range urls {
		if err := ctx.Err(); err != nil {
			log.Warn().
				Err(err).
				Int("remaining", len(urls)-i).
				Msg("Multi-page run cancelled")
			break
		}

		doc, err := r.fetcher.Fetch(ctx, u)
		if err != nil {
			failed++
			r.notify(models.PageResult{Index: i, URL: u, Err: err})
			continue
		}

		rec := ex.Extract(doc)
		if rec == nil {
			rec = models.NewRecord()
		}
		rec.Set(models.KeyURL, u)
		results = append(results, rec)

		r.notify(models.PageResult{Index: i, URL: u, Record: rec})
	}

	log.Debug().
		Int("pages", len(urls)).
		Int("scraped", len(results)).
		Int("failed", failed).
		Dur("elapsed", time.Since(start)).
		Msg("Multi-page run finished")

	return results
}

func (r *Runner) notify(res models.PageResult) {
	if r.hook != nil {
		r.hook(res)
	}
}
