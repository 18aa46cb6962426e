package ratelimit

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestDomainLimiter_PerHost(t *testing.T) {
	dl := NewDomainLimiter(1, 1)

	if !dl.Allow("https://a.example.com/1") {
		t.Fatal("first request to a host should be allowed")
	}
	if dl.Allow("https://a.example.com/2") {
		t.Error("second immediate request to the same host should be throttled")
	}
	if !dl.Allow("https://b.example.com/1") {
		t.Error("a different host has its own bucket")
	}
	if !dl.Allow("::not a url") {
		t.Error("unparseable URLs are never throttled")
	}
}

func TestDomainLimiter_WaitCancelled(t *testing.T) {
	dl := NewDomainLimiter(0.001, 1)
	dl.Allow("https://example.com")

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	if err := dl.Wait(ctx, "https://example.com"); err == nil {
		t.Error("expected Wait to fail when the context ends first")
	}
}

func TestPause(t *testing.T) {
	start := time.Now()
	if err := Pause(context.Background(), 30*time.Millisecond); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if elapsed := time.Since(start); elapsed < 30*time.Millisecond {
		t.Errorf("Pause returned after %v", elapsed)
	}

	if err := Pause(context.Background(), 0); err != nil {
		t.Errorf("zero pause should not fail: %v", err)
	}
}

func TestPause_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Pause(ctx, time.Hour)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}
