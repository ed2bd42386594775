package scorer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dpshade/draftsmith/internal/catalog"
	apperrors "github.com/dpshade/draftsmith/internal/errors"
	"github.com/dpshade/draftsmith/internal/models"
	"github.com/dpshade/draftsmith/internal/renderer"
)

func renderBugReport(t *testing.T, fields map[string]string) *models.RenderedDocument {
	t.Helper()
	cat, err := catalog.Load()
	require.NoError(t, err)
	doc, err := renderer.New(cat).Render("bug_report", fields)
	require.NoError(t, err)
	return doc
}

func requiredBugFields() map[string]string {
	return map[string]string{
		"description":        "Login returns 500",
		"steps_to_reproduce": "1. Submit form 2. Observe error",
		"expected_behavior":  "Redirect to dashboard",
		"actual_behavior":    "500 error page",
	}
}

func TestBandBoundaries(t *testing.T) {
	cases := []struct {
		percentage float64
		band       models.Band
	}{
		{100.0, models.BandExcellent},
		{90.0, models.BandExcellent},
		{89.9, models.BandGood},
		{70.0, models.BandGood},
		{69.9, models.BandNeedsWork},
		{50.0, models.BandNeedsWork},
		{49.9, models.BandPoor},
		{0.0, models.BandPoor},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.band, models.BandForPercentage(tc.percentage),
			"percentage %.1f", tc.percentage)
	}
}

func TestFullyFilledBugReportScoresExcellent(t *testing.T) {
	fields := requiredBugFields()
	fields["environment"] = "Ubuntu 24.04, Chrome 126"
	fields["screenshots_logs"] = "Stack trace attached in `server.log`"
	fields["possible_solution"] = "Guard the session lookup against nil"

	report, err := New().Score(renderBugReport(t, fields))
	require.NoError(t, err)

	assert.Equal(t, 15, report.TotalWeight)
	assert.Equal(t, 15, report.AchievedWeight)
	assert.Equal(t, 100.0, report.Percentage)
	assert.Equal(t, models.BandExcellent, report.Band)
	assert.Empty(t, report.FailedItems)
}

func TestRequiredOnlyBugReportScoresNeedsWork(t *testing.T) {
	report, err := New().Score(renderBugReport(t, requiredBugFields()))
	require.NoError(t, err)

	assert.Equal(t, 10, report.AchievedWeight)
	assert.Equal(t, 66.7, report.Percentage)
	assert.Equal(t, models.BandNeedsWork, report.Band)

	require.Len(t, report.FailedItems, 3)
	assert.Equal(t, "environment_documented", report.FailedItems[0].ItemID)
	assert.Equal(t, "evidence_attached", report.FailedItems[1].ItemID)
	assert.Equal(t, "fix_proposed", report.FailedItems[2].ItemID)
}

func TestFailedItemsSortedByDescendingWeight(t *testing.T) {
	report, err := New().Score(renderBugReport(t, requiredBugFields()))
	require.NoError(t, err)

	for i := 1; i < len(report.FailedItems); i++ {
		assert.GreaterOrEqual(t,
			report.FailedItems[i-1].Weight, report.FailedItems[i].Weight,
			"failed items must come highest impact first")
	}
}

func TestResidueInFilledSectionFailsChecklist(t *testing.T) {
	fields := requiredBugFields()
	fields["possible_solution"] = "TODO: figure this out"

	report, err := New().Score(renderBugReport(t, fields))
	require.NoError(t, err)

	var reasons []string
	for _, item := range report.FailedItems {
		reasons = append(reasons, item.Reason)
	}
	assert.Contains(t, reasons, "placeholder_text_remains")
}

func TestVagueStepsFailConcretenessCheck(t *testing.T) {
	fields := requiredBugFields()
	fields["steps_to_reproduce"] = "do the usual thing and it breaks"

	report, err := New().Score(renderBugReport(t, fields))
	require.NoError(t, err)

	var ids []string
	for _, item := range report.FailedItems {
		ids = append(ids, item.ItemID)
	}
	assert.Contains(t, ids, "steps_concrete")
}

func TestScoreMonotonicOnFillingRequiredSection(t *testing.T) {
	section := func(key string, required, filled bool, content string) models.RenderedSection {
		if !filled {
			content = models.PlaceholderMarker(key)
		}
		return models.RenderedSection{Heading: key, Key: key, Content: content, Filled: filled, Required: required}
	}

	unfilled := &models.RenderedDocument{
		TemplateID: "bug_report",
		Category:   models.CategoryBugReport,
		Title:      "Bug Report",
		Sections: []models.RenderedSection{
			section("description", true, false, ""),
			section("steps_to_reproduce", true, true, "1. Open the page"),
			section("expected_behavior", true, true, "It loads"),
			section("actual_behavior", true, true, "It crashes"),
			section("environment", false, false, ""),
		},
	}

	filled := &models.RenderedDocument{
		TemplateID: "bug_report",
		Category:   models.CategoryBugReport,
		Title:      "Bug Report",
		Sections: append([]models.RenderedSection{
			section("description", true, true, "The login page crashes on submit"),
		}, unfilled.Sections[1:]...),
	}

	s := New()
	before, err := s.Score(unfilled)
	require.NoError(t, err)
	after, err := s.Score(filled)
	require.NoError(t, err)

	assert.GreaterOrEqual(t, after.Percentage, before.Percentage,
		"filling a required section must not lower the score")
}

func TestScoringIsRepeatable(t *testing.T) {
	doc := renderBugReport(t, requiredBugFields())

	s := New()
	first, err := s.Score(doc)
	require.NoError(t, err)
	second, err := s.Score(doc)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestUnknownCategoryRejected(t *testing.T) {
	doc := &models.RenderedDocument{
		TemplateID: "custom",
		Category:   models.Category("unknown"),
		Sections:   []models.RenderedSection{{Key: "s", Filled: true, Content: "x"}},
	}

	_, err := New().Score(doc)
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeInternal))
}

func TestNilDocumentRejected(t *testing.T) {
	_, err := New().Score(nil)
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeInvalidInput))
}
