package scorer

import (
	"strings"

	"github.com/dpshade/draftsmith/internal/models"
)

// Predicate is a pure pass/fail check over a rendered document.
type Predicate func(doc *models.RenderedDocument) bool

// ChecklistItem is one weighted rubric entry. Reason is a machine-readable
// code surfaced on failure.
type ChecklistItem struct {
	ID     string
	Weight int
	Reason string
	Check  Predicate
}

// Checklist is the fixed weighted rubric for one category. The rubric is a
// data table: adding an item extends scoring without touching evaluation
// logic.
type Checklist []ChecklistItem

// TotalWeight sums the weights of all items.
func (c Checklist) TotalWeight() int {
	total := 0
	for _, item := range c {
		total += item.Weight
	}
	return total
}

// residueTokens are leftover scaffolding phrases that signal unfinished
// content inside a filled section.
var residueTokens = []string{
	"todo",
	"tbd",
	"lorem ipsum",
	"to be filled",
	"fill me in",
	"<placeholder>",
}

func allRequiredFilled(doc *models.RenderedDocument) bool {
	for _, s := range doc.Sections {
		if s.Required && !s.Filled {
			return false
		}
	}
	return true
}

// noResidue scans filled sections only; unfilled sections carry their
// placeholder marker legitimately.
func noResidue(doc *models.RenderedDocument) bool {
	for _, s := range doc.Sections {
		if !s.Filled {
			continue
		}
		lowered := strings.ToLower(s.Content)
		for _, token := range residueTokens {
			if strings.Contains(lowered, token) {
				return false
			}
		}
	}
	return true
}

func sectionFilled(key string) Predicate {
	return func(doc *models.RenderedDocument) bool {
		s, ok := doc.Section(key)
		return ok && s.Filled
	}
}

// sectionConcrete requires content that names something executable or
// countable: a digit (numbered steps, versions) or a backticked command.
func sectionConcrete(key string) Predicate {
	return func(doc *models.RenderedDocument) bool {
		s, ok := doc.Section(key)
		if !ok || !s.Filled {
			return false
		}
		if strings.Contains(s.Content, "`") {
			return true
		}
		for _, r := range s.Content {
			if r >= '0' && r <= '9' {
				return true
			}
		}
		return false
	}
}

func minWords(key string, n int) Predicate {
	return func(doc *models.RenderedDocument) bool {
		s, ok := doc.Section(key)
		return ok && s.Filled && len(strings.Fields(s.Content)) >= n
	}
}

func optionalFilledAtLeast(n int) Predicate {
	return func(doc *models.RenderedDocument) bool {
		filled := 0
		for _, s := range doc.Sections {
			if !s.Required && s.Filled {
				filled++
			}
		}
		return filled >= n
	}
}

// builtinChecklists returns the fixed per-category rubrics.
func builtinChecklists() map[models.Category]Checklist {
	return map[models.Category]Checklist{
		models.CategoryBugReport: {
			{ID: "required_sections_filled", Weight: 5, Reason: "required_section_unfilled", Check: allRequiredFilled},
			{ID: "no_placeholder_residue", Weight: 2, Reason: "placeholder_text_remains", Check: noResidue},
			{ID: "steps_concrete", Weight: 3, Reason: "steps_not_concrete", Check: sectionConcrete("steps_to_reproduce")},
			{ID: "environment_documented", Weight: 2, Reason: "environment_missing", Check: sectionFilled("environment")},
			{ID: "evidence_attached", Weight: 2, Reason: "logs_or_screenshots_missing", Check: sectionFilled("screenshots_logs")},
			{ID: "fix_proposed", Weight: 1, Reason: "possible_solution_missing", Check: sectionFilled("possible_solution")},
		},
		models.CategoryFeatureRequest: {
			{ID: "required_sections_filled", Weight: 5, Reason: "required_section_unfilled", Check: allRequiredFilled},
			{ID: "no_placeholder_residue", Weight: 2, Reason: "placeholder_text_remains", Check: noResidue},
			{ID: "acceptance_criteria_defined", Weight: 2, Reason: "acceptance_criteria_missing", Check: sectionFilled("acceptance_criteria")},
			{ID: "solution_substantial", Weight: 1, Reason: "proposed_solution_too_thin", Check: minWords("proposed_solution", 10)},
			{ID: "alternatives_considered", Weight: 1, Reason: "alternatives_missing", Check: sectionFilled("alternatives")},
			{ID: "impact_assessed", Weight: 1, Reason: "impact_missing", Check: sectionFilled("impact")},
		},
		models.CategoryResearchTask: {
			{ID: "required_sections_filled", Weight: 5, Reason: "required_section_unfilled", Check: allRequiredFilled},
			{ID: "no_placeholder_residue", Weight: 2, Reason: "placeholder_text_remains", Check: noResidue},
			{ID: "methodology_defined", Weight: 2, Reason: "methodology_missing", Check: sectionFilled("methodology")},
			{ID: "success_criteria_defined", Weight: 2, Reason: "success_criteria_missing", Check: sectionFilled("success_criteria")},
			{ID: "timebox_set", Weight: 1, Reason: "timebox_missing", Check: sectionFilled("timebox")},
		},
		models.CategoryDocumentationTask: {
			{ID: "required_sections_filled", Weight: 5, Reason: "required_section_unfilled", Check: allRequiredFilled},
			{ID: "no_placeholder_residue", Weight: 2, Reason: "placeholder_text_remains", Check: noResidue},
			{ID: "outline_provided", Weight: 2, Reason: "outline_missing", Check: sectionFilled("outline")},
			{ID: "examples_included", Weight: 2, Reason: "examples_missing", Check: sectionFilled("examples")},
			{ID: "review_checklist_present", Weight: 1, Reason: "review_checklist_missing", Check: sectionFilled("review_checklist")},
		},
		models.CategoryProjectGuide: {
			{ID: "required_sections_filled", Weight: 5, Reason: "required_section_unfilled", Check: allRequiredFilled},
			{ID: "no_placeholder_residue", Weight: 2, Reason: "placeholder_text_remains", Check: noResidue},
			{ID: "commands_concrete", Weight: 3, Reason: "commands_not_concrete", Check: sectionConcrete("commands")},
			{ID: "optional_context_some", Weight: 2, Reason: "no_optional_sections_filled", Check: optionalFilledAtLeast(1)},
			{ID: "optional_context_rich", Weight: 2, Reason: "few_optional_sections_filled", Check: optionalFilledAtLeast(2)},
			{ID: "overview_substantial", Weight: 1, Reason: "overview_too_thin", Check: minWords("project_overview", 20)},
		},
	}
}
