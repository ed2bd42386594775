package models

// Candidate is one template the classifier considers a plausible match for
// a request.
type Candidate struct {
	TemplateID string   `json:"template_id"`
	Category   Category `json:"category"`
	MatchScore float64  `json:"match_score"`
}

// ClassificationResult is the outcome of classifying one request. It is
// created per request and owned by the call that produced it.
type ClassificationResult struct {
	// Request is the original free text.
	Request string `json:"request"`

	// Candidates is sorted by descending MatchScore, ties broken by the
	// catalog's declared priority order. Empty when nothing matched.
	Candidates []Candidate `json:"candidates"`

	// Suggestions holds template IDs that fuzzily resemble the request
	// when Candidates is empty. They are advisory data for the caller,
	// never an implicit classification.
	Suggestions []string `json:"suggestions,omitempty"`
}

// Top returns the best candidate, if any.
func (r *ClassificationResult) Top() (Candidate, bool) {
	if len(r.Candidates) == 0 {
		return Candidate{}, false
	}
	return r.Candidates[0], true
}

// Margin returns the score gap between the first and second candidates.
// With fewer than two candidates the top stands alone and the margin is
// reported as 1.
func (r *ClassificationResult) Margin() float64 {
	if len(r.Candidates) < 2 {
		return 1
	}
	return r.Candidates[0].MatchScore - r.Candidates[1].MatchScore
}
