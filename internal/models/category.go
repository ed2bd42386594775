package models

// Category classifies an incoming request into one of the closed set of
// document kinds the catalog can serve. The set is extended only by adding
// new values; existing values are never renamed.
type Category string

const (
	// CategoryBugReport covers defect reports: crashes, errors, regressions.
	CategoryBugReport Category = "bug_report"

	// CategoryFeatureRequest covers proposals for new behavior or enhancements.
	CategoryFeatureRequest Category = "feature_request"

	// CategoryResearchTask covers investigations, spikes, and comparisons.
	CategoryResearchTask Category = "research_task"

	// CategoryDocumentationTask covers writing or updating docs and guides.
	CategoryDocumentationTask Category = "documentation_task"

	// CategoryProjectGuide covers project-configuration guides (CLAUDE.md
	// style documents); served by several template variants.
	CategoryProjectGuide Category = "project_guide"
)

// ValidCategories maps category strings to their typed values.
var ValidCategories = map[string]Category{
	"bug_report":         CategoryBugReport,
	"feature_request":    CategoryFeatureRequest,
	"research_task":      CategoryResearchTask,
	"documentation_task": CategoryDocumentationTask,
	"project_guide":      CategoryProjectGuide,
}

// ParseCategory converts a string to a Category, reporting whether it is a
// member of the closed set.
func ParseCategory(s string) (Category, bool) {
	c, ok := ValidCategories[s]
	return c, ok
}

// IsValidCategory returns true if the string is a recognized category.
func IsValidCategory(s string) bool {
	_, ok := ValidCategories[s]
	return ok
}

func (c Category) String() string {
	return string(c)
}
