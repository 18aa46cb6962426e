package engine

import (
	"context"

	"github.com/PuerkitoBio/goquery"
)

// Fetcher is the interface that document fetchers must implement
type Fetcher interface {
	// Fetch retrieves and parses the page at url. Any failure is returned
	// as a *ScrapeError with code ErrCodeFetch and a nil document.
	Fetch(ctx context.Context, url string) (*goquery.Document, error)

	// Name returns the name of the fetcher implementation
	Name() string
}
