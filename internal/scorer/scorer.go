// Package scorer evaluates rendered documents against per-category weighted
// checklists. Checklist failures are data returned alongside the score, not
// errors: a low-scoring document is a valid result.
package scorer

import (
	"fmt"
	"math"
	"sort"

	"github.com/dpshade/draftsmith/internal/errors"
	"github.com/dpshade/draftsmith/internal/models"
)

// Scorer holds the per-category checklist tables. It is stateless between
// calls; scoring a document twice yields identical reports.
type Scorer struct {
	checklists map[models.Category]Checklist
}

// New creates a scorer with the builtin category checklists.
func New() *Scorer {
	return &Scorer{checklists: builtinChecklists()}
}

// Register replaces the checklist for a category. Intended for callers
// embedding the pipeline with their own rubrics.
func (s *Scorer) Register(cat models.Category, checklist Checklist) {
	s.checklists[cat] = checklist
}

// Score evaluates every checklist predicate for the document's category and
// derives the completeness percentage (rounded to one decimal) and band.
// Failed items come back sorted by descending weight so the caller can
// present the highest-impact gap first; equal weights keep checklist order.
func (s *Scorer) Score(doc *models.RenderedDocument) (*models.ScoreReport, error) {
	if doc == nil {
		return nil, errors.InvalidInputError("document must not be nil")
	}
	checklist, ok := s.checklists[doc.Category]
	if !ok {
		return nil, errors.InternalError(fmt.Sprintf("no checklist registered for category %q", doc.Category))
	}

	report := &models.ScoreReport{
		TemplateID:  doc.TemplateID,
		TotalWeight: checklist.TotalWeight(),
	}

	for _, item := range checklist {
		if item.Check(doc) {
			report.AchievedWeight += item.Weight
			continue
		}
		report.FailedItems = append(report.FailedItems, models.FailedItem{
			ItemID: item.ID,
			Weight: item.Weight,
			Reason: item.Reason,
		})
	}

	report.Percentage = roundPercentage(report.AchievedWeight, report.TotalWeight)
	report.Band = models.BandForPercentage(report.Percentage)

	sort.SliceStable(report.FailedItems, func(i, j int) bool {
		return report.FailedItems[i].Weight > report.FailedItems[j].Weight
	})

	return report, nil
}

func roundPercentage(achieved, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(achieved)/float64(total)*1000) / 10
}
