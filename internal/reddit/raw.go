package reddit

import "strings"

// RawPost holds the post fields the pipeline consumes. Fields missing
// from the API response come back as zero values, never as errors.
type RawPost struct {
	Title      string `json:"title"`
	SelfText   string `json:"selftext"`
	Permalink  string `json:"permalink"`
	URL        string `json:"url"`
	Subreddit  string `json:"subreddit"`
	Author     string `json:"author"`
	CreatedUTC int64  `json:"created_utc"`
	Score      int    `json:"score"`
}

// RawComment is one flattened comment from a thread's reply tree.
type RawComment struct {
	ID         string `json:"id"`
	Author     string `json:"author"`
	CreatedUTC int64  `json:"created_utc"`
	Score      int    `json:"score"`
	Body       string `json:"body"`
}

// The listing JSON is loosely typed; these accessors default instead
// of failing so a half-formed record degrades to empty fields.

func asMap(v any) map[string]any {
	m, _ := v.(map[string]any)
	return m
}

func asSlice(v any) []any {
	s, _ := v.([]any)
	return s
}

func str(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}

func num(m map[string]any, key string) int64 {
	f, _ := m[key].(float64)
	return int64(f)
}

func postFromMap(d map[string]any) RawPost {
	return RawPost{
		Title:      str(d, "title"),
		SelfText:   str(d, "selftext"),
		Permalink:  str(d, "permalink"),
		URL:        str(d, "url"),
		Subreddit:  str(d, "subreddit"),
		Author:     str(d, "author"),
		CreatedUTC: num(d, "created_utc"),
		Score:      int(num(d, "score")),
	}
}

// ParseSubreddits splits a comma-separated subreddit list, trimming
// whitespace and a leading "r/" and dropping empty entries.
func ParseSubreddits(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		part = strings.TrimPrefix(part, "r/")
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
