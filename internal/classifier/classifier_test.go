package classifier

import (
	"reflect"
	"strings"
	"testing"

	"github.com/dpshade/draftsmith/internal/catalog"
	apperrors "github.com/dpshade/draftsmith/internal/errors"
	"github.com/dpshade/draftsmith/internal/models"
)

func builtinClassifier(t *testing.T) *Classifier {
	t.Helper()
	cat, err := catalog.Load()
	if err != nil {
		t.Fatalf("Failed to load builtin catalog: %v", err)
	}
	return New(cat)
}

func TestRoundTripKeywords(t *testing.T) {
	cat, err := catalog.Load()
	if err != nil {
		t.Fatal(err)
	}
	c := New(cat)

	// Text built purely from a template's own keywords must classify back
	// to that template as top candidate.
	for _, desc := range cat.Descriptors() {
		text := strings.Join(desc.MatchKeywords, " ")
		result, err := c.Classify(text, "")
		if err != nil {
			t.Fatalf("Classify(%q) failed: %v", text, err)
		}
		top, ok := result.Top()
		if !ok {
			t.Fatalf("Expected a candidate for %q keywords, got none", desc.ID)
		}
		if top.TemplateID != desc.ID {
			t.Errorf("Expected top candidate %q for its own keywords, got %q", desc.ID, top.TemplateID)
		}
		if top.MatchScore != 1.0 {
			t.Errorf("Expected full match score for %q, got %f", desc.ID, top.MatchScore)
		}
	}
}

func TestBugReportRequestClassified(t *testing.T) {
	c := builtinClassifier(t)

	result, err := c.Classify("users report login fails with a 500 error", "")
	if err != nil {
		t.Fatal(err)
	}
	top, ok := result.Top()
	if !ok {
		t.Fatal("Expected a candidate for a bug report request")
	}
	if top.TemplateID != "bug_report" {
		t.Errorf("Expected bug_report, got %q", top.TemplateID)
	}
	if top.Category != models.CategoryBugReport {
		t.Errorf("Expected category bug_report, got %q", top.Category)
	}
}

func TestExplicitHintBeatsInference(t *testing.T) {
	c := builtinClassifier(t)

	// Text that would otherwise classify as a bug report.
	result, err := c.Classify("the login page shows an error", models.CategoryResearchTask)
	if err != nil {
		t.Fatal(err)
	}
	if len(result.Candidates) != 1 {
		t.Fatalf("Expected exactly one candidate from a single-template hint, got %d", len(result.Candidates))
	}
	if result.Candidates[0].TemplateID != "research_task" {
		t.Errorf("Expected research_task from hint, got %q", result.Candidates[0].TemplateID)
	}
	if result.Candidates[0].MatchScore != 1.0 {
		t.Errorf("Expected maximum score for hinted candidate, got %f", result.Candidates[0].MatchScore)
	}
}

func TestMultiTemplateHintRestrictsPool(t *testing.T) {
	c := builtinClassifier(t)

	result, err := c.Classify("write a guide for our node.js backend service", models.CategoryProjectGuide)
	if err != nil {
		t.Fatal(err)
	}
	top, ok := result.Top()
	if !ok {
		t.Fatal("Expected a candidate within the hinted category")
	}
	if top.TemplateID != "project_guide_node_service" {
		t.Errorf("Expected the node service variant, got %q", top.TemplateID)
	}
	for _, cand := range result.Candidates {
		if cand.Category != models.CategoryProjectGuide {
			t.Errorf("Hint should restrict candidates to project_guide, got %q", cand.Category)
		}
	}
}

func TestEmptyRequestRejected(t *testing.T) {
	c := builtinClassifier(t)

	if _, err := c.Classify("   ", ""); !apperrors.IsCode(err, apperrors.ErrCodeInvalidInput) {
		t.Errorf("Expected INVALID_INPUT for blank request, got %v", err)
	}
}

func TestUnknownHintRejected(t *testing.T) {
	c := builtinClassifier(t)

	if _, err := c.Classify("some request", models.Category("nonsense")); !apperrors.IsCode(err, apperrors.ErrCodeInvalidInput) {
		t.Errorf("Expected INVALID_INPUT for unknown hint, got %v", err)
	}
}

func TestNoMatchReturnsEmptyCandidates(t *testing.T) {
	c := builtinClassifier(t)

	result, err := c.Classify("xylophone quartet rehearsal cadence", "")
	if err != nil {
		t.Fatal(err)
	}
	if len(result.Candidates) != 0 {
		t.Errorf("Expected no candidates, got %d", len(result.Candidates))
	}
}

func TestTieBreakByDeclaredPriority(t *testing.T) {
	first := &models.TemplateDescriptor{
		ID: "first", Name: "first", Category: models.CategoryBugReport, Priority: 10,
		MatchKeywords: []string{"deploy"},
		Sections:      []models.SectionSpec{{Heading: "S", PlaceholderKey: "s", Required: true}},
	}
	second := &models.TemplateDescriptor{
		ID: "second", Name: "second", Category: models.CategoryFeatureRequest, Priority: 20,
		MatchKeywords: []string{"deploy"},
		Sections:      []models.SectionSpec{{Heading: "S", PlaceholderKey: "s", Required: true}},
	}

	// Register in reverse order to prove the tie-break follows declared
	// priority, not input order.
	cat, err := catalog.New([]*models.TemplateDescriptor{second, first})
	if err != nil {
		t.Fatal(err)
	}

	result, err := New(cat).Classify("please deploy this", "")
	if err != nil {
		t.Fatal(err)
	}
	if len(result.Candidates) != 2 {
		t.Fatalf("Expected 2 tied candidates, got %d", len(result.Candidates))
	}
	if result.Candidates[0].TemplateID != "first" {
		t.Errorf("Expected priority 10 template to win the tie, got %q", result.Candidates[0].TemplateID)
	}
}

func TestClassificationIsDeterministic(t *testing.T) {
	c := builtinClassifier(t)

	a, err := c.Classify("investigate why the build fails", "")
	if err != nil {
		t.Fatal(err)
	}
	b, err := c.Classify("investigate why the build fails", "")
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Error("Expected identical classification results for identical input")
	}
}
