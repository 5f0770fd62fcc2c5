package model

// LeadKind tells whether a lead came from a post or a comment.
type LeadKind string

const (
	KindPost    LeadKind = "post"
	KindComment LeadKind = "comment"
)

// Lead is a single scored candidate ready for export.
// Score is forum karma; IntentScore is the lexical intent score.
type Lead struct {
	Kind        LeadKind `json:"kind"`
	Subreddit   string   `json:"subreddit"`
	Title       string   `json:"title"`
	Author      string   `json:"author"`
	CreatedUTC  int64    `json:"created_utc"`
	Score       int      `json:"score"`
	URL         string   `json:"url"`
	Text        string   `json:"text"`
	IntentScore float64  `json:"intent_score"`
	Signals     []string `json:"signals"`
}
