package app

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/law-makers/scrape/internal/config"
	"github.com/law-makers/scrape/internal/ratelimit"
	"github.com/law-makers/scrape/pkg/models"
)

func testConfig() *config.Config {
	cfg := config.Defaults()
	cfg.Delay = 0
	cfg.HTTPTimeout = 5 * time.Second
	return cfg
}

func TestNew_RequiresConfig(t *testing.T) {
	if _, err := New(context.Background(), nil); err == nil {
		t.Error("expected error for nil config")
	}
}

func TestNew_Dependencies(t *testing.T) {
	cfg := testConfig()
	cfg.Proxies = []string{"http://127.0.0.1:3128"}

	a, err := newWithWriter(context.Background(), cfg, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer a.Close(context.Background())

	if _, ok := a.RateLimiter.(*ratelimit.DomainLimiter); !ok {
		t.Errorf("expected DomainLimiter, got %T", a.RateLimiter)
	}
	if a.Proxies == nil || a.Proxies.Len() != 1 {
		t.Error("expected one configured proxy")
	}

	cfg.RateLimitRPS = 0
	cfg.Proxies = nil
	a, err = newWithWriter(context.Background(), cfg, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if _, ok := a.RateLimiter.(ratelimit.Unlimited); !ok {
		t.Errorf("expected Unlimited limiter, got %T", a.RateLimiter)
	}
	if a.Proxies != nil {
		t.Error("expected no proxy pool")
	}
}

func TestNew_InvalidProxy(t *testing.T) {
	cfg := testConfig()
	cfg.Proxies = []string{"::not a url"}
	if _, err := newWithWriter(context.Background(), cfg, &bytes.Buffer{}); err == nil {
		t.Error("expected error for invalid proxy")
	}
}

func TestNewSession_UsesConfig(t *testing.T) {
	var gotUA, gotHeader string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		gotHeader = r.Header.Get("X-Token")
		w.Write([]byte(`<table><tr><td>a</td><td>b</td></tr></table>`))
	}))
	defer server.Close()

	cfg := testConfig()
	cfg.UserAgent = "AppTest/1.0"
	cfg.Headers = map[string]string{"X-Token": "abc"}
	cfg.TableHeader = "none"

	var logs bytes.Buffer
	a, err := newWithWriter(context.Background(), cfg, &logs)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	var pages []models.PageResult
	s, err := a.NewSession(server.URL, func(res models.PageResult) { pages = append(pages, res) })
	if err != nil {
		t.Fatalf("NewSession failed: %v", err)
	}

	rows, err := s.ScrapeTable(context.Background(), server.URL, 0)
	if err != nil {
		t.Fatalf("ScrapeTable failed: %v", err)
	}
	if len(rows) != 1 || !rows[0].Has(models.KeyData) {
		t.Errorf("expected one data row without a header, got %d", len(rows))
	}
	if gotUA != "AppTest/1.0" || gotHeader != "abc" {
		t.Errorf("session did not send configured headers: %q %q", gotUA, gotHeader)
	}

	if _, err := a.NewSession("not-a-url", nil); err == nil {
		t.Error("expected error for invalid base URL")
	}
}

func TestConfigureLogging_JSON(t *testing.T) {
	cfg := testConfig()
	cfg.LogLevel = "debug"
	cfg.JSONLog = true

	var logs bytes.Buffer
	if _, err := newWithWriter(context.Background(), cfg, &logs); err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if !strings.Contains(logs.String(), `"message":"Logger initialized"`) {
		t.Errorf("expected JSON debug output, got %q", logs.String())
	}
}
