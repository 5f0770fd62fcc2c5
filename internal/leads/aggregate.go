// Package leads turns crawled posts and comments into a ranked lead
// list: score everything, drop what falls under the threshold, sort
// by intent then karma.
package leads

import (
	"context"
	"log/slog"
	"sort"
	"strings"

	"reddit-leads/internal/intent"
	"reddit-leads/internal/model"
	"reddit-leads/internal/reddit"
)

// Text caps per lead kind, in runes.
const (
	maxPostText    = 2000
	maxCommentText = 1500
)

// Source is the crawl surface the aggregator consumes.
type Source interface {
	SearchPosts(ctx context.Context, query string, subs []string, limit int, afterUTC int64) []reddit.RawPost
	FetchComments(ctx context.Context, permalink string, maxComments int) []reddit.RawComment
}

// Params controls a single scan.
type Params struct {
	Query           string
	Subreddits      []string
	Limit           int
	AfterUTC        int64
	IncludeComments bool
	MaxComments     int
	MinIntent       float64
}

// Scan crawls, scores, filters and ranks. It returns the ranked leads
// plus every crawled post so the export layer can archive the raw
// listing.
func Scan(ctx context.Context, src Source, scorer *intent.Scorer, p Params) ([]model.Lead, []reddit.RawPost) {
	posts := src.SearchPosts(ctx, p.Query, p.Subreddits, p.Limit, p.AfterUTC)

	var out []model.Lead
	for _, post := range posts {
		title := strings.TrimSpace(post.Title)
		body := strings.TrimSpace(post.SelfText)
		text := strings.TrimSpace(title + "\n\n" + body)

		leadURL := post.URL
		if post.Permalink != "" {
			leadURL = reddit.DefaultBaseURL + post.Permalink
		}

		if r := scorer.Score(text); r.Score >= p.MinIntent {
			out = append(out, model.Lead{
				Kind:        model.KindPost,
				Subreddit:   post.Subreddit,
				Title:       title,
				Author:      post.Author,
				CreatedUTC:  post.CreatedUTC,
				Score:       post.Score,
				URL:         leadURL,
				Text:        truncate(text, maxPostText),
				IntentScore: r.Score,
				Signals:     r.Signals,
			})
		}

		if !p.IncludeComments || post.Permalink == "" {
			continue
		}
		for _, cm := range src.FetchComments(ctx, post.Permalink, p.MaxComments) {
			cbody := strings.TrimSpace(cm.Body)
			if cbody == "" {
				continue
			}
			r := scorer.Score(cbody)
			if r.Score < p.MinIntent {
				continue
			}
			out = append(out, model.Lead{
				Kind:        model.KindComment,
				Subreddit:   post.Subreddit,
				Title:       title,
				Author:      cm.Author,
				CreatedUTC:  cm.CreatedUTC,
				Score:       cm.Score,
				URL:         leadURL,
				Text:        truncate(cbody, maxCommentText),
				IntentScore: r.Score,
				Signals:     r.Signals,
			})
		}
	}

	// Descending by intent, karma breaking ties; otherwise stable.
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].IntentScore != out[j].IntentScore {
			return out[i].IntentScore > out[j].IntentScore
		}
		return out[i].Score > out[j].Score
	})

	slog.Info("scan: aggregated leads", "posts", len(posts), "leads", len(out))
	return out, posts
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}
