// internal/engine/static/fetcher.go
package static

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/law-makers/scrape/internal/engine"
	"github.com/law-makers/scrape/internal/proxy"
	"github.com/law-makers/scrape/internal/ratelimit"
	"github.com/law-makers/scrape/internal/reqctx"
	"github.com/law-makers/scrape/internal/utils/headers"
	"github.com/rs/zerolog/log"
	"golang.org/x/net/html/charset"
)

// DefaultTimeout bounds a single request when Options.Timeout is unset
const DefaultTimeout = 10 * time.Second

// Options configures a Fetcher
type Options struct {
	// Timeout bounds each request, connection to end of body
	Timeout time.Duration
	// Delay is slept after every successful response
	Delay time.Duration
	// UserAgent is sent as the identity header on every request
	UserAgent string
	// Headers are extra headers sent on every request
	Headers map[string]string
	// Limiter caps the request rate per host; nil means unlimited
	Limiter ratelimit.RateLimiter
	// Proxies rotates outbound proxies; nil means direct connections
	Proxies *proxy.Pool
}

// Fetcher performs rate-limited, timeout-bounded GET requests and parses
// the body into a goquery document.
type Fetcher struct {
	client    *http.Client
	limiter   ratelimit.RateLimiter
	proxies   *proxy.Pool
	timeout   time.Duration
	delay     time.Duration
	userAgent string
	headers   map[string]string
}

// New creates a Fetcher around client. The client is reused for every
// request so connections are kept alive between pages.
func New(client *http.Client, opts Options) *Fetcher {
	if client == nil {
		client = &http.Client{}
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.Limiter == nil {
		opts.Limiter = ratelimit.Unlimited{}
	}

	return &Fetcher{
		client:    client,
		limiter:   opts.Limiter,
		proxies:   opts.Proxies,
		timeout:   opts.Timeout,
		delay:     opts.Delay,
		userAgent: opts.UserAgent,
		headers:   opts.Headers,
	}
}

// Name returns the name of this fetcher
func (f *Fetcher) Name() string {
	return "StaticFetcher"
}

// Fetch retrieves and parses a static HTML page. Every failure is returned
// as an *engine.ScrapeError with code ErrCodeFetch; no retry is attempted.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*goquery.Document, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, rc := reqctx.WithRequest(ctx, url)

	log.Debug().
		Str("url", url).
		Str("request_id", rc.RequestID).
		Str("fetcher", f.Name()).
		Msg("Starting fetch")

	doc, err := f.fetch(ctx, url)
	if err != nil {
		var se *engine.ScrapeError
		if !errors.As(err, &se) {
			se = engine.FetchFailure(url, "request failed", err)
		}
		se.WithRequestID(rc.RequestID)

		log.Warn().
			Err(se.Underlying).
			Str("url", url).
			Str("request_id", rc.RequestID).
			Int("status", se.StatusCode).
			Dur("elapsed", rc.Elapsed()).
			Msg(se.Message)
		return nil, se
	}

	log.Debug().
		Str("url", url).
		Str("request_id", rc.RequestID).
		Dur("elapsed", rc.Elapsed()).
		Msg("Fetch completed")

	// The pause is only paid for responses actually obtained from the server.
	if err := ratelimit.Pause(ctx, f.delay); err != nil {
		log.Debug().Err(err).Str("url", url).Msg("Post-fetch delay interrupted")
	}

	return doc, nil
}

func (f *Fetcher) fetch(ctx context.Context, url string) (*goquery.Document, error) {
	if err := f.limiter.Wait(ctx, url); err != nil {
		return nil, engine.FetchFailure(url, "rate limiter wait aborted", err)
	}

	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	via := f.proxies.Next()
	if via != nil {
		ctx = proxy.WithProxy(ctx, via)
		log.Debug().
			Str("request_id", reqctx.FromContext(ctx).RequestID).
			Str("proxy", via.Redacted()).
			Msg("Routing through proxy")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, engine.FetchFailure(url, "failed to create request", err)
	}

	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}
	headers.Apply(req.Header, f.headers)

	resp, err := f.client.Do(req)
	if err != nil {
		f.proxies.MarkFailed(via)
		return nil, engine.FetchFailure(url, "failed to fetch URL", err)
	}
	defer resp.Body.Close()
	f.proxies.MarkHealthy(via)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, engine.FetchFailure(url, "unexpected HTTP status",
			fmt.Errorf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode))).
			WithStatus(resp.StatusCode)
	}

	body, err := charset.NewReader(resp.Body, resp.Header.Get("Content-Type"))
	if err != nil {
		return nil, engine.FetchFailure(url, "failed to decode response body", err)
	}

	doc, err := goquery.NewDocumentFromReader(body)
	if err != nil {
		return nil, engine.FetchFailure(url, "failed to parse HTML", err)
	}
	doc.Url = resp.Request.URL

	return doc, nil
}
