// Package reqctx attaches a short random id to each outgoing page request so
// that the log lines of one fetch can be correlated.
package reqctx

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"time"
)

type key int

const requestKey key = 0

// RequestContext describes one page request in flight
type RequestContext struct {
	RequestID string
	URL       string
	StartTime time.Time
}

// Elapsed returns the time since the request started
func (rc *RequestContext) Elapsed() time.Duration {
	return time.Since(rc.StartTime)
}

// WithRequest returns a child context carrying a fresh RequestContext for url
func WithRequest(ctx context.Context, url string) (context.Context, *RequestContext) {
	rc := &RequestContext{
		RequestID: generateID(),
		URL:       url,
		StartTime: time.Now(),
	}
	return context.WithValue(ctx, requestKey, rc), rc
}

// FromContext returns the RequestContext stored in ctx, or a placeholder
func FromContext(ctx context.Context) *RequestContext {
	if rc, ok := ctx.Value(requestKey).(*RequestContext); ok {
		return rc
	}
	return &RequestContext{
		RequestID: "unknown",
		StartTime: time.Now(),
	}
}

func generateID() string {
	b := make([]byte, 8)
	rand.Read(b)
	return hex.EncodeToString(b)
}
