// Package fontcache fetches font files by URL or file path, caching
// downloaded bytes on disk and serializing concurrent fetches of the
// same key, then decodes them into render.FontFace values.
package fontcache

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"
)

// Client fetches and caches font files.
type Client struct {
	dir   string
	http  *retryablehttp.Client
	group singleflight.Group
}

// NewClient returns a Client that caches downloaded font files under
// dir (created on demand) and retries transient HTTP failures with
// exponential backoff: 8 attempts, 1s base delay, capped at 15s, only
// for 429 and 5xx responses (other than 501 and 505+) and network
// errors.
func NewClient(dir string, logger zerolog.Logger) *Client {
	rc := retryablehttp.NewClient()
	rc.RetryMax = 7 // retries after the first attempt: 8 attempts in total
	rc.RetryWaitMin = 1 * time.Second
	rc.RetryWaitMax = 15 * time.Second
	rc.CheckRetry = checkRetry
	rc.Logger = zerologAdapter{logger}
	return &Client{dir: dir, http: rc}
}

func checkRetry(_ context.Context, resp *http.Response, err error) (bool, error) {
	if err != nil {
		return true, nil
	}
	if resp == nil {
		return false, nil
	}
	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return true, nil
	case resp.StatusCode == http.StatusNotImplemented:
		return false, nil
	case resp.StatusCode >= 505:
		return false, nil
	case resp.StatusCode >= 500:
		return true, nil
	default:
		return false, nil
	}
}

// Fetch returns the bytes for loc, which is either a local file path or
// an http(s) URL. Remote fetches are cached on disk keyed by URL and
// deduplicated both in-process (singleflight) and cross-process (an
// flock-guarded lockfile per cache entry).
func (c *Client) Fetch(loc string) ([]byte, error) {
	u, err := url.Parse(loc)
	if err != nil || u.Scheme == "" || u.Scheme == "file" {
		path := loc
		if u != nil && u.Scheme == "file" {
			path = u.Path
		}
		return os.ReadFile(path)
	}

	v, err, _ := c.group.Do(loc, func() (interface{}, error) {
		return c.fetchCached(loc)
	})
	if err != nil {
		return nil, err
	}
	return v.([]byte), nil
}

func (c *Client) fetchCached(loc string) ([]byte, error) {
	key := cacheKey(loc)
	dataPath := filepath.Join(c.dir, key+".font")
	lockPath := filepath.Join(c.dir, key+".lock")

	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return nil, fmt.Errorf("fontcache: create cache dir: %w", err)
	}

	fl := flock.New(lockPath)
	if err := fl.Lock(); err != nil {
		return nil, fmt.Errorf("fontcache: lock %s: %w", key, err)
	}
	defer fl.Unlock()

	if data, err := os.ReadFile(dataPath); err == nil {
		return data, nil
	}

	req, err := retryablehttp.NewRequest(http.MethodGet, loc, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fontcache: fetch %s: %w", loc, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fontcache: fetch %s: status %d", loc, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if cc := resp.Header.Get("Cache-Control"); !cacheable(cc) {
		return data, nil
	}

	tmp := dataPath + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err == nil {
		os.Rename(tmp, dataPath)
	}

	return data, nil
}

func cacheable(cacheControl string) bool {
	for _, bad := range []string{"no-store", "private"} {
		if containsToken(cacheControl, bad) {
			return false
		}
	}
	return true
}

func containsToken(haystack, needle string) bool {
	for i := 0; i+len(needle) <= len(haystack); i++ {
		if haystack[i:i+len(needle)] == needle {
			return true
		}
	}
	return false
}

func cacheKey(loc string) string {
	h := fnv64a(loc)
	return fmt.Sprintf("%016x", h)
}

func fnv64a(s string) uint64 {
	const (
		offset = 14695981039346656037
		prime  = 1099511628211
	)
	h := uint64(offset)
	for i := 0; i < len(s); i++ {
		h ^= uint64(s[i])
		h *= prime
	}
	return h
}

// zerologAdapter satisfies retryablehttp.LeveledLogger using a
// zerolog.Logger, since retryablehttp doesn't speak zerolog directly.
type zerologAdapter struct{ l zerolog.Logger }

func (a zerologAdapter) Error(msg string, kv ...interface{}) { a.logAt(a.l.Error(), msg, kv) }
func (a zerologAdapter) Info(msg string, kv ...interface{})  { a.logAt(a.l.Info(), msg, kv) }
func (a zerologAdapter) Debug(msg string, kv ...interface{}) { a.logAt(a.l.Debug(), msg, kv) }
func (a zerologAdapter) Warn(msg string, kv ...interface{})  { a.logAt(a.l.Warn(), msg, kv) }

func (a zerologAdapter) logAt(ev *zerolog.Event, msg string, kv []interface{}) {
	for i := 0; i+1 < len(kv); i += 2 {
		if key, ok := kv[i].(string); ok {
			ev = ev.Interface(key, kv[i+1])
		}
	}
	ev.Msg(msg)
}
