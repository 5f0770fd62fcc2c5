// Package intent scores text for buying intent using fixed ordered
// lexical rule tables. Scoring is pure and deterministic.
package intent

// Result is the outcome of scoring one text. Signals lists every rule
// that fired, in table order, even when the net score was pulled down.
type Result struct {
	Score   float64  `json:"score"`
	Signals []string `json:"signals"`
}

// Scorer applies two immutable ordered rule tables.
type Scorer struct {
	positive []Rule
	negative []Rule
}

// NewScorer builds a Scorer over explicit rule tables.
func NewScorer(positive, negative []Rule) *Scorer {
	return &Scorer{positive: positive, negative: negative}
}

// Default returns a Scorer over the built-in rule tables.
func Default() *Scorer {
	return NewScorer(positiveRules, negativeRules)
}

// Score tests every rule independently against text and sums the
// weights of those that matched. A negative sum floors to zero.
func (s *Scorer) Score(text string) Result {
	var sum float64
	var signals []string
	for _, r := range s.positive {
		if r.Pattern.MatchString(text) {
			sum += r.Weight
			signals = append(signals, r.Name)
		}
	}
	for _, r := range s.negative {
		if r.Pattern.MatchString(text) {
			sum += r.Weight
			signals = append(signals, r.Name)
		}
	}
	if sum < 0 {
		sum = 0
	}
	return Result{Score: sum, Signals: signals}
}
