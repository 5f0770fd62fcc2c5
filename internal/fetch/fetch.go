// Package fetch implements the cached JSON fetch layer shared by the
// search crawler and the comment walker: a content-addressed on-disk
// cache, rate-limit retries with exponential backoff, and a jittered
// polite delay after every real network request.
package fetch

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/sethvargo/go-retry"
)

const userAgent = "reddit-leads/0.1 (+https://github.com; contact: local)"

// maxAttempts bounds the retry loop for rate-limited requests.
const maxAttempts = 5

// Doer is the interface for performing HTTP requests.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Error is a failed fetch: a network error, a non-2xx status, or a
// body that did not parse as JSON.
type Error struct {
	URL        string
	StatusCode int // zero when the request never produced a response
	Err        error
}

func (e *Error) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch %s: status %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// RateLimited reports whether err is a 429 response.
func RateLimited(err error) bool {
	var fe *Error
	return errors.As(err, &fe) && fe.StatusCode == http.StatusTooManyRequests
}

// Client fetches JSON resources. With a cache directory configured,
// repeat requests for the same URL are served from disk with no
// network call and no delay.
type Client struct {
	http        Doer
	cacheDir    string // empty disables caching
	politeDelay time.Duration

	sleep func(time.Duration) // test hook
}

// New creates a Client. A nil client falls back to a default
// http.Client with a 30 second timeout.
func New(client Doer, cacheDir string, politeDelay time.Duration) *Client {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{
		http:        client,
		cacheDir:    cacheDir,
		politeDelay: politeDelay,
		sleep:       time.Sleep,
	}
}

// GetJSON returns the parsed JSON value at url, consulting the cache
// first. Only 429 responses are retried; anything else fails fast
// with an *Error.
func (c *Client) GetJSON(ctx context.Context, url string) (any, error) {
	var cachePath string
	if c.cacheDir != "" {
		if err := os.MkdirAll(c.cacheDir, 0o755); err != nil {
			return nil, &Error{URL: url, Err: err}
		}
		cachePath = filepath.Join(c.cacheDir, cacheKey(url)+".json")
		if b, err := os.ReadFile(cachePath); err == nil {
			var v any
			if err := json.Unmarshal(b, &v); err == nil {
				return v, nil
			}
			// corrupt entry: fall through to a real fetch
		}
	}

	var out any
	err := retry.Do(ctx, rateLimitBackoff(c.politeDelay), func(ctx context.Context) error {
		v, err := c.getOnce(ctx, url)
		if err != nil {
			if RateLimited(err) {
				return retry.RetryableError(err)
			}
			return err
		}
		out = v
		return nil
	})
	if err != nil {
		return nil, err
	}

	if cachePath != "" {
		if b, err := json.Marshal(out); err == nil {
			_ = os.WriteFile(cachePath, b, 0o644)
		}
	}
	c.politeSleep()
	return out, nil
}

func (c *Client) getOnce(ctx context.Context, url string) (any, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &Error{URL: url, Err: err}
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &Error{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &Error{URL: url, StatusCode: resp.StatusCode, Err: errors.New(http.StatusText(resp.StatusCode))}
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{URL: url, Err: err}
	}
	var v any
	if err := json.Unmarshal(body, &v); err != nil {
		return nil, &Error{URL: url, Err: fmt.Errorf("parse json: %w", err)}
	}
	return v, nil
}

// backoffJitter returns the extra wait added to each backoff step,
// uniform in [0, 1s). Stubbed in tests.
var backoffJitter = func() time.Duration {
	return time.Duration(rand.Int63n(int64(time.Second)))
}

// rateLimitBackoff waits min(60s, 5d*2^(k-1)) plus up to one second
// of jitter before retry k, giving up after maxAttempts attempts.
func rateLimitBackoff(politeDelay time.Duration) retry.Backoff {
	base := 5 * politeDelay
	if base <= 0 {
		base = time.Second
	}
	attempt := 0
	return retry.BackoffFunc(func() (time.Duration, bool) {
		attempt++
		if attempt >= maxAttempts {
			return 0, true
		}
		d := base << (attempt - 1)
		if d > 60*time.Second {
			d = 60 * time.Second
		}
		return d + backoffJitter(), false
	})
}

// politeSleep pauses after a real network fetch so back-to-back
// requests stay under the polite rate. Cache hits skip it entirely.
func (c *Client) politeSleep() {
	if c.politeDelay <= 0 {
		return
	}
	jitter := time.Duration(rand.Float64() * 0.3 * float64(c.politeDelay))
	c.sleep(c.politeDelay + jitter)
}

func cacheKey(url string) string {
	h := sha1.Sum([]byte(url))
	return hex.EncodeToString(h[:])
}
