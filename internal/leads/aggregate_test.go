package leads

import (
	"context"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"reddit-leads/internal/intent"
	"reddit-leads/internal/model"
	"reddit-leads/internal/reddit"
)

// fakeSource returns canned posts and comments and records what the
// aggregator asked for.
type fakeSource struct {
	posts        []reddit.RawPost
	comments     map[string][]reddit.RawComment
	commentCalls []string
}

func (f *fakeSource) SearchPosts(_ context.Context, _ string, _ []string, limit int, _ int64) []reddit.RawPost {
	if len(f.posts) > limit {
		return f.posts[:limit]
	}
	return f.posts
}

func (f *fakeSource) FetchComments(_ context.Context, permalink string, _ int) []reddit.RawComment {
	f.commentCalls = append(f.commentCalls, permalink)
	return f.comments[permalink]
}

func baseParams() Params {
	return Params{
		Query:           "crm",
		Subreddits:      []string{"saas"},
		Limit:           50,
		IncludeComments: true,
		MaxComments:     50,
		MinIntent:       2.0,
	}
}

func TestScanFiltersAndRanks(t *testing.T) {
	src := &fakeSource{
		posts: []reddit.RawPost{
			{Title: "Looking for a CRM alternative", Permalink: "/p/1", Subreddit: "saas", Author: "a1", Score: 5},
			{Title: "weather is nice today", Permalink: "/p/2", Subreddit: "saas", Author: "a2", Score: 99},
		},
		comments: map[string][]reddit.RawComment{
			"/p/1": {
				{ID: "c1", Author: "c1", Score: 2, Body: "any suggestions on pricing?"},
				{ID: "c2", Author: "c2", Score: 7, Body: "nothing relevant here"},
			},
		},
	}

	got, posts := Scan(context.Background(), src, intent.Default(), baseParams())
	if len(posts) != 2 {
		t.Fatalf("raw posts = %d, want 2", len(posts))
	}

	// post 1 scores 4.8, its first comment 2.5; everything else is
	// below threshold
	var summary []string
	for _, l := range got {
		summary = append(summary, string(l.Kind)+":"+l.Author)
	}
	if diff := cmp.Diff([]string{"post:a1", "comment:c1"}, summary); diff != "" {
		t.Errorf("leads mismatch (-want +got):\n%s", diff)
	}
	if got[0].URL != reddit.DefaultBaseURL+"/p/1" {
		t.Errorf("post URL = %q, want permalink-based", got[0].URL)
	}
	if diff := cmp.Diff([]string{"looking_for", "alternative", "b2b_words"}, got[0].Signals); diff != "" {
		t.Errorf("signals mismatch (-want +got):\n%s", diff)
	}
}

func TestScanRankingStability(t *testing.T) {
	text := "need a crm alternative" // identical intent for all
	src := &fakeSource{
		posts: []reddit.RawPost{
			{Title: text, URL: "u1", Author: "low", Score: 1},
			{Title: text, URL: "u2", Author: "high", Score: 9},
			{Title: text, URL: "u3", Author: "tied-first", Score: 9},
		},
	}
	p := baseParams()
	p.IncludeComments = false

	got, _ := Scan(context.Background(), src, intent.Default(), p)
	var order []string
	for _, l := range got {
		order = append(order, l.Author)
	}
	// higher karma first; equal keys keep their original order
	if diff := cmp.Diff([]string{"high", "tied-first", "low"}, order); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestScanTextCompositionAndTruncation(t *testing.T) {
	long := strings.Repeat("x", 3000)
	src := &fakeSource{
		posts: []reddit.RawPost{
			{Title: "  need a crm  ", SelfText: long, URL: "u1"},
		},
	}
	p := baseParams()
	p.IncludeComments = false

	got, _ := Scan(context.Background(), src, intent.Default(), p)
	if len(got) != 1 {
		t.Fatalf("leads = %d, want 1", len(got))
	}
	l := got[0]
	if l.Title != "need a crm" {
		t.Errorf("title = %q, want trimmed", l.Title)
	}
	if !strings.HasPrefix(l.Text, "need a crm\n\nxxx") {
		t.Errorf("text prefix = %q, want title, blank line, body", l.Text[:20])
	}
	if n := len([]rune(l.Text)); n != 2000 {
		t.Errorf("text runes = %d, want 2000", n)
	}
	if l.URL != "u1" {
		t.Errorf("url = %q, want the post url when permalink is empty", l.URL)
	}
}

func TestScanCommentTruncation(t *testing.T) {
	src := &fakeSource{
		posts: []reddit.RawPost{{Title: "t", Permalink: "/p/1"}},
		comments: map[string][]reddit.RawComment{
			"/p/1": {{ID: "c", Body: "need a crm alternative " + strings.Repeat("y", 2000)}},
		},
	}
	got, _ := Scan(context.Background(), src, intent.Default(), baseParams())
	if len(got) != 1 {
		t.Fatalf("leads = %d, want 1", len(got))
	}
	if n := len([]rune(got[0].Text)); n != 1500 {
		t.Errorf("comment text runes = %d, want 1500", n)
	}
	if got[0].Kind != model.KindComment {
		t.Errorf("kind = %q, want comment", got[0].Kind)
	}
}

func TestScanCommentsToggle(t *testing.T) {
	src := &fakeSource{
		posts: []reddit.RawPost{{Title: "need a crm alternative", Permalink: "/p/1"}},
	}
	p := baseParams()
	p.IncludeComments = false

	Scan(context.Background(), src, intent.Default(), p)
	if len(src.commentCalls) != 0 {
		t.Errorf("comment fetches = %v, want none", src.commentCalls)
	}

	p.IncludeComments = true
	Scan(context.Background(), src, intent.Default(), p)
	if diff := cmp.Diff([]string{"/p/1"}, src.commentCalls); diff != "" {
		t.Errorf("comment fetches mismatch (-want +got):\n%s", diff)
	}
}

func TestScanSkipsCommentsWithoutPermalink(t *testing.T) {
	src := &fakeSource{
		posts: []reddit.RawPost{{Title: "need a crm alternative", URL: "u1"}},
	}
	Scan(context.Background(), src, intent.Default(), baseParams())
	if len(src.commentCalls) != 0 {
		t.Errorf("comment fetches = %v, want none for posts without a permalink", src.commentCalls)
	}
}
