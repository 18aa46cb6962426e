package proxy

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"
)

// FailureCooldown is how long a failed proxy is skipped
const FailureCooldown = 5 * time.Minute

// Pool rotates through a list of proxies, skipping ones that failed recently
type Pool struct {
	proxies []*url.URL
	index   int
	mu      sync.Mutex
	failed  map[string]time.Time
}

// NewPool parses the proxy URLs and creates a Pool
func NewPool(rawProxies []string) (*Pool, error) {
	p := &Pool{failed: make(map[string]time.Time)}
	for _, raw := range rawProxies {
		u, err := url.Parse(raw)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return nil, fmt.Errorf("invalid proxy %q", raw)
		}
		p.proxies = append(p.proxies, u)
	}
	return p, nil
}

// Len returns the number of configured proxies
func (p *Pool) Len() int {
	if p == nil {
		return 0
	}
	return len(p.proxies)
}

// Next returns the next healthy proxy, or nil when the pool is empty.
// When every proxy is cooling down the next one in order is returned anyway.
func (p *Pool) Next() *url.URL {
	if p == nil {
		return nil
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if len(p.proxies) == 0 {
		return nil
	}

	start := p.index
	for {
		candidate := p.proxies[p.index]
		p.index = (p.index + 1) % len(p.proxies)

		failTime, failed := p.failed[candidate.String()]
		if !failed {
			return candidate
		}
		if time.Since(failTime) >= FailureCooldown {
			delete(p.failed, candidate.String())
			return candidate
		}
		if p.index == start {
			return candidate
		}
	}
}

// MarkFailed marks a proxy as failed so it will be skipped for a while
func (p *Pool) MarkFailed(u *url.URL) {
	if p == nil || u == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.failed[u.String()] = time.Now()
}

// MarkHealthy clears the failure status of a proxy
func (p *Pool) MarkHealthy(u *url.URL) {
	if p == nil || u == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.failed, u.String())
}

type ctxKey struct{}

// WithProxy stores the proxy chosen for one request in ctx
func WithProxy(ctx context.Context, u *url.URL) context.Context {
	return context.WithValue(ctx, ctxKey{}, u)
}

// FromContext is an http.Transport Proxy func that routes a request through
// the proxy stored in its context, or directly when there is none.
func FromContext(req *http.Request) (*url.URL, error) {
	u, _ := req.Context().Value(ctxKey{}).(*url.URL)
	return u, nil
}
