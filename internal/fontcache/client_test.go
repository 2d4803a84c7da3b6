package fontcache

import (
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
)

func TestFetchLocalFilePath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "font.ttf")
	if err := os.WriteFile(path, []byte("fake font bytes"), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	c := NewClient(filepath.Join(dir, "cache"), zerolog.Nop())
	data, err := c.Fetch(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(data) != "fake font bytes" {
		t.Errorf("expected file contents read back verbatim, got %q", data)
	}
}

func TestFetchLocalFileURL(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "font.ttf")
	if err := os.WriteFile(path, []byte("abc"), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	c := NewClient(filepath.Join(dir, "cache"), zerolog.Nop())
	data, err := c.Fetch("file://" + path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(data) != "abc" {
		t.Errorf("expected file contents, got %q", data)
	}
}

func TestFetchMissingLocalFileErrors(t *testing.T) {
	c := NewClient(t.TempDir(), zerolog.Nop())
	if _, err := c.Fetch("/does/not/exist.ttf"); err == nil {
		t.Error("expected an error for a nonexistent local path")
	}
}

func TestCacheKeyIsDeterministicAndDistinct(t *testing.T) {
	a := cacheKey("https://fonts.example/a.ttf")
	b := cacheKey("https://fonts.example/a.ttf")
	c := cacheKey("https://fonts.example/b.ttf")

	if a != b {
		t.Error("expected the same location to hash to the same key")
	}
	if a == c {
		t.Error("expected different locations to hash to different keys")
	}
}

func TestCacheableRejectsNoStoreAndPrivate(t *testing.T) {
	if cacheable("no-store") {
		t.Error("expected no-store to be uncacheable")
	}
	if cacheable("private, max-age=0") {
		t.Error("expected private to be uncacheable")
	}
	if !cacheable("public, max-age=31536000") {
		t.Error("expected a public cache-control to be cacheable")
	}
	if !cacheable("") {
		t.Error("expected an empty cache-control to be cacheable")
	}
}

func TestContainsToken(t *testing.T) {
	if !containsToken("public, no-store", "no-store") {
		t.Error("expected the token to be found")
	}
	if containsToken("public", "no-store") {
		t.Error("expected no match")
	}
}

func TestCheckRetryRetriesOn429And5xx(t *testing.T) {
	cases := []struct {
		status int
		want   bool
	}{
		{http.StatusTooManyRequests, true},
		{http.StatusInternalServerError, true},
		{http.StatusBadGateway, true},
		{http.StatusNotImplemented, false},
		{505, false},
		{http.StatusOK, false},
		{http.StatusNotFound, false},
	}
	for _, tc := range cases {
		resp := &http.Response{StatusCode: tc.status}
		got, err := checkRetry(nil, resp, nil)
		if err != nil {
			t.Fatalf("status %d: unexpected error: %v", tc.status, err)
		}
		if got != tc.want {
			t.Errorf("status %d: expected retry=%v, got %v", tc.status, tc.want, got)
		}
	}
}

func TestCheckRetryRetriesOnNetworkError(t *testing.T) {
	got, err := checkRetry(nil, nil, os.ErrDeadlineExceeded)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got {
		t.Error("expected a network error to trigger a retry")
	}
}
