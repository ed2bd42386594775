// Package classifier maps free-text requests to catalog templates using the
// declared keyword tables. Classification is rule based and deterministic:
// the same request against the same catalog always yields the same ranked
// candidates, independent of definition storage order.
package classifier

import (
	"fmt"
	"sort"
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/dpshade/draftsmith/internal/catalog"
	"github.com/dpshade/draftsmith/internal/errors"
	"github.com/dpshade/draftsmith/internal/models"
)

const maxSuggestions = 3

// Classifier scores requests against the read-only catalog.
type Classifier struct {
	catalog *catalog.Catalog
}

// New creates a classifier over the given catalog.
func New(cat *catalog.Catalog) *Classifier {
	return &Classifier{catalog: cat}
}

// Classify ranks catalog templates against the request text. An explicit
// hint beats inference: a hint naming a single-template category returns
// that template at full score without keyword matching, and a hint naming a
// multi-template category restricts keyword matching to that category.
// Candidates carry matchScore > 0 only; an empty result carries fuzzy
// template suggestions as data, never a silent best-effort pick.
func (c *Classifier) Classify(requestText string, hint models.Category) (*models.ClassificationResult, error) {
	if strings.TrimSpace(requestText) == "" {
		return nil, errors.InvalidInputError("request text must not be empty")
	}

	pool := c.catalog.Descriptors()
	if hint != "" {
		if !models.IsValidCategory(string(hint)) {
			return nil, errors.InvalidInputError(fmt.Sprintf("unknown category hint %q", hint))
		}
		pool = c.catalog.ListByCategory(hint)
		if len(pool) == 1 {
			return &models.ClassificationResult{
				Request: requestText,
				Candidates: []models.Candidate{{
					TemplateID: pool[0].ID,
					Category:   pool[0].Category,
					MatchScore: 1.0,
				}},
			}, nil
		}
	}

	lowered := strings.ToLower(requestText)
	candidates := scoreKeywords(lowered, pool)

	result := &models.ClassificationResult{
		Request:    requestText,
		Candidates: candidates,
	}
	if len(candidates) == 0 {
		result.Suggestions = c.suggest(requestText)
	}
	return result, nil
}

// scoreKeywords computes per-descriptor scores as matched keyword count
// normalized by keyword count. Ties break by ascending declared priority;
// the pool is already in priority order, so a stable sort suffices.
func scoreKeywords(lowered string, pool []*models.TemplateDescriptor) []models.Candidate {
	var candidates []models.Candidate
	for _, d := range pool {
		matched := 0
		for _, kw := range d.MatchKeywords {
			if strings.Contains(lowered, strings.ToLower(kw)) {
				matched++
			}
		}
		if matched == 0 {
			continue
		}
		candidates = append(candidates, models.Candidate{
			TemplateID: d.ID,
			Category:   d.Category,
			MatchScore: float64(matched) / float64(len(d.MatchKeywords)),
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].MatchScore > candidates[j].MatchScore
	})
	return candidates
}

// suggest fuzzy-matches the request against template ids and names so an
// unclassified request still carries actionable next steps.
func (c *Classifier) suggest(requestText string) []string {
	descriptors := c.catalog.Descriptors()
	haystack := make([]string, len(descriptors))
	for i, d := range descriptors {
		haystack[i] = d.ID + " " + d.Name
	}

	matches := fuzzy.Find(requestText, haystack)
	var out []string
	for _, m := range matches {
		out = append(out, descriptors[m.Index].ID)
		if len(out) == maxSuggestions {
			break
		}
	}
	return out
}
