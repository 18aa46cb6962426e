package reqctx

import (
	"context"
	"testing"
)

func TestWithRequest(t *testing.T) {
	ctx, rc := WithRequest(context.Background(), "https://example.com")
	if len(rc.RequestID) != 16 {
		t.Errorf("expected 16 hex chars, got %q", rc.RequestID)
	}

	got := FromContext(ctx)
	if got != rc {
		t.Fatal("FromContext did not return the stored request")
	}
	if got.URL != "https://example.com" {
		t.Errorf("unexpected URL %q", got.URL)
	}

	_, other := WithRequest(context.Background(), "https://example.com")
	if other.RequestID == rc.RequestID {
		t.Error("expected distinct request ids")
	}
}

func TestFromContext_Missing(t *testing.T) {
	if rc := FromContext(context.Background()); rc.RequestID != "unknown" {
		t.Errorf("expected placeholder id, got %q", rc.RequestID)
	}
}
