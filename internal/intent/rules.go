package intent

import "regexp"

// Rule is one case-insensitive whole-word pattern with a weight.
// Positive weights add intent, negative weights subtract it.
type Rule struct {
	Name    string
	Pattern *regexp.Regexp
	Weight  float64
}

// The two tables are fixed and ordered. Signal order in results
// follows table order, positives before negatives, never the order of
// appearance in the text.
var positiveRules = []Rule{
	{Name: "looking_for", Pattern: regexp.MustCompile(`(?i)\b(looking for|need|seeking|want)\b`), Weight: 2.0},
	{Name: "recommend", Pattern: regexp.MustCompile(`(?i)\b(recommend|recommendation|any suggestions|suggest)\b`), Weight: 1.5},
	{Name: "alternative", Pattern: regexp.MustCompile(`(?i)\b(alternative|replacement|instead of)\b`), Weight: 2.0},
	{Name: "pricing", Pattern: regexp.MustCompile(`(?i)\b(price|pricing|expensive|too expensive|budget)\b`), Weight: 1.0},
	{Name: "demo_trial", Pattern: regexp.MustCompile(`(?i)\b(trial|demo|free trial)\b`), Weight: 0.8},
	{Name: "b2b_words", Pattern: regexp.MustCompile(`(?i)\b(crm|pipeline|lead|prospect|invoic|quote|proposal|client)\b`), Weight: 0.8},
}

var negativeRules = []Rule{
	{Name: "rant", Pattern: regexp.MustCompile(`(?i)\b(rant|vent)\b`), Weight: -0.8},
	{Name: "no_buy", Pattern: regexp.MustCompile(`(?i)\b(not buying|won't buy|never pay)\b`), Weight: -1.5},
}
