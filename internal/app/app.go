// Package app provides the core application initialization and lifecycle management.
package app

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/law-makers/scrape/internal/config"
	"github.com/law-makers/scrape/internal/engine/batch"
	"github.com/law-makers/scrape/internal/proxy"
	"github.com/law-makers/scrape/internal/ratelimit"
	"github.com/law-makers/scrape/internal/scraper"
	"github.com/law-makers/scrape/pkg/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Application holds the dependencies shared by every session the CLI opens.
//
// It is created once at startup and shared across all CLI commands.
// Use Close() to release pooled connections on shutdown.
type Application struct {
	Config      *config.Config
	Logger      *zerolog.Logger
	RateLimiter ratelimit.RateLimiter
	Proxies     *proxy.Pool
	HTTPClient  *http.Client
	startTime   time.Time
}

// New creates and initializes a new Application with all dependencies.
//
// It performs the following initialization steps:
//   - Configures logging based on the provided config
//   - Creates the rate limiter for per-host request throttling
//   - Builds the proxy pool when proxies are configured
//   - Initializes the HTTP client shared by all sessions
//
// If any step fails, an error is returned and no resources are allocated.
func New(ctx context.Context, cfg *config.Config) (*Application, error) {
	return newWithWriter(ctx, cfg, nil)
}

func newWithWriter(_ context.Context, cfg *config.Config, w io.Writer) (*Application, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}

	logger := configureLogging(cfg, w)

	var limiter ratelimit.RateLimiter = ratelimit.Unlimited{}
	if cfg.RateLimitRPS > 0 {
		limiter = ratelimit.NewDomainLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	}
	logger.Debug().
		Float64("rps", cfg.RateLimitRPS).
		Int("burst", cfg.RateLimitBurst).
		Msg("Rate limiter initialized")

	var pool *proxy.Pool
	if len(cfg.Proxies) > 0 {
		p, err := proxy.NewPool(cfg.Proxies)
		if err != nil {
			return nil, fmt.Errorf("invalid proxy configuration: %w", err)
		}
		pool = p
		logger.Debug().Int("proxies", p.Len()).Msg("Proxy pool initialized")
	}

	// Request timeouts are enforced per fetch; the client itself is unbounded.
	httpClient := &http.Client{
		Transport: &http.Transport{
			Proxy:               proxy.FromContext,
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     90 * time.Second,
		},
	}

	app := &Application{
		Config:      cfg,
		Logger:      &logger,
		RateLimiter: limiter,
		Proxies:     pool,
		HTTPClient:  httpClient,
		startTime:   time.Now(),
	}

	logger.Debug().Msg("Application initialized successfully")
	return app, nil
}

// configureLogging sets the global zerolog level and output. Info logs are
// only shown with -v; warnings always are.
func configureLogging(cfg *config.Config, w io.Writer) zerolog.Logger {
	level := zerolog.WarnLevel
	switch cfg.LogLevel {
	case "debug":
		level = zerolog.DebugLevel
	case "error":
		level = zerolog.ErrorLevel
	}
	zerolog.SetGlobalLevel(level)

	if w == nil {
		if cfg.JSONLog {
			w = os.Stderr
		} else {
			w = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
		}
	}

	log.Logger = zerolog.New(w).With().Timestamp().Logger()
	logger := log.Logger
	logger.Debug().
		Str("level", cfg.LogLevel).
		Bool("json", cfg.JSONLog).
		Msg("Logger initialized")
	return logger
}

// NewSession opens a scraping session for baseURL using the application's
// configuration, client, limiter and proxies. hook, when non-nil, observes
// each page of multi-page runs.
func (a *Application) NewSession(baseURL string, hook batch.Hook) (*scraper.Session, error) {
	mode, err := a.Config.TableHeaderMode()
	if err != nil {
		return nil, err
	}

	cfg := models.SessionConfig{
		BaseURL:   baseURL,
		Delay:     a.Config.Delay,
		Timeout:   a.Config.HTTPTimeout,
		UserAgent: a.Config.UserAgent,
		Headers:   a.Config.Headers,
	}

	opts := []scraper.Option{
		scraper.WithHTTPClient(a.HTTPClient),
		scraper.WithRateLimiter(a.RateLimiter),
		scraper.WithStrictCSV(a.Config.StrictCSV),
		scraper.WithTableHeader(mode),
	}
	if a.Proxies != nil {
		opts = append(opts, scraper.WithProxies(a.Proxies))
	}
	if hook != nil {
		opts = append(opts, scraper.WithPageHook(hook))
	}

	return scraper.New(cfg, opts...)
}

// Close releases pooled connections. It never fails; the error is kept for
// symmetry with other closers.
func (a *Application) Close(ctx context.Context) error {
	if a.HTTPClient != nil {
		a.HTTPClient.CloseIdleConnections()
	}

	a.Logger.Debug().Dur("uptime", a.Uptime()).Msg("Application shutdown complete")
	return nil
}

// Uptime returns how long the application has been running.
func (a *Application) Uptime() time.Duration {
	return time.Since(a.startTime)
}
