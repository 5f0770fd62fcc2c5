// Package reddit crawls the public Reddit search and comment listing
// endpoints through the cached fetch layer.
package reddit

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"reddit-leads/internal/fetch"
)

// DefaultBaseURL is the public JSON endpoint host.
const DefaultBaseURL = "https://www.reddit.com"

// Client drives the search and comment listing endpoints.
type Client struct {
	baseURL string
	fetch   *fetch.Client
}

// NewClient creates a Client. An empty baseURL defaults to the public
// reddit.com endpoint.
func NewClient(baseURL string, f *fetch.Client) *Client {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), fetch: f}
}

// SearchPosts pages through each subreddit's search listing in order
// and returns up to limit posts no older than afterUTC. A failed
// fetch skips to the next subreddit instead of aborting the scan.
func (c *Client) SearchPosts(ctx context.Context, query string, subs []string, limit int, afterUTC int64) []RawPost {
	if limit <= 0 {
		return nil
	}
	out := make([]RawPost, 0, limit)
	q := strings.TrimSpace(query)

	// Per-subreddit search tends to be more reliable than global.
	for _, sub := range subs {
		after := ""
		seen := map[string]bool{}
		for len(out) < limit {
			params := url.Values{
				"q":           {q},
				"restrict_sr": {"1"},
				"sort":        {"new"},
				"t":           {"all"},
				"limit":       {"100"},
			}
			if after != "" {
				params.Set("after", after)
			}
			endpoint := fmt.Sprintf("%s/r/%s/search.json?%s", c.baseURL, url.PathEscape(sub), params.Encode())
			obj, err := c.fetch.GetJSON(ctx, endpoint)
			if err != nil {
				slog.Warn("search: fetch failed, skipping subreddit", "subreddit", sub, "error", err)
				break
			}
			data := asMap(asMap(obj)["data"])
			children := asSlice(data["children"])
			if len(children) == 0 {
				break
			}
			for _, ch := range children {
				p := postFromMap(asMap(asMap(ch)["data"]))
				if p.CreatedUTC < afterUTC {
					continue // pages are not strictly time-ordered; skip, don't stop
				}
				out = append(out, p)
				if len(out) >= limit {
					break
				}
			}
			next := str(data, "after")
			if next == "" || seen[next] {
				break
			}
			seen[next] = true
			after = next
		}
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// FetchComments flattens a thread's reply tree into depth-first
// pre-order, capped at maxComments. Fetch failures and malformed
// thread listings yield an empty result.
func (c *Client) FetchComments(ctx context.Context, permalink string, maxComments int) []RawComment {
	if maxComments <= 0 || permalink == "" {
		return nil
	}
	endpoint := fmt.Sprintf("%s%s.json?limit=500", c.baseURL, permalink)
	obj, err := c.fetch.GetJSON(ctx, endpoint)
	if err != nil {
		slog.Warn("comments: fetch failed, skipping thread", "permalink", permalink, "error", err)
		return nil
	}
	parts := asSlice(obj)
	if len(parts) < 2 {
		return nil
	}
	children := asSlice(asMap(asMap(parts[1])["data"])["children"])

	out := make([]RawComment, 0, maxComments)
	// Iterative depth-first walk so hostile nesting depth cannot blow
	// the call stack. Children are pushed in reverse to keep pre-order.
	stack := make([]any, 0, len(children))
	for i := len(children) - 1; i >= 0; i-- {
		stack = append(stack, children[i])
	}
	for len(stack) > 0 && len(out) < maxComments {
		node := asMap(stack[len(stack)-1])
		stack = stack[:len(stack)-1]
		if str(node, "kind") != "t1" {
			continue // "more" continuation markers are not expanded
		}
		d := asMap(node["data"])
		body := strings.TrimSpace(str(d, "body"))
		if body != "" {
			out = append(out, RawComment{
				ID:         str(d, "id"),
				Author:     str(d, "author"),
				CreatedUTC: num(d, "created_utc"),
				Score:      int(num(d, "score")),
				Body:       body,
			})
			if len(out) >= maxComments {
				break
			}
		}
		replies := asSlice(asMap(asMap(d["replies"])["data"])["children"])
		for i := len(replies) - 1; i >= 0; i-- {
			stack = append(stack, replies[i])
		}
	}
	return out
}
